package domain

import "errors"

// ErrInvalidFrequency is returned when a payment frequency is not one of
// "1m", "3m" or "6m". The calculation cannot proceed; the input must be
// corrected.
var ErrInvalidFrequency = errors.New("unsupported payment frequency: must be \"1m\", \"3m\", or \"6m\"")

// ErrDegenerateSchedule is returned when a schedule repays no principal
// (zero term or zero principal), which leaves the weighted average maturity
// and the all-in rate undefined.
var ErrDegenerateSchedule = errors.New("degenerate schedule: no principal is repaid")
