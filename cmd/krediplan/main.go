package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/krediplan/krediplan/internal/calendar"
	"github.com/krediplan/krediplan/internal/config"
	"github.com/krediplan/krediplan/internal/domain"
	"github.com/krediplan/krediplan/internal/engine"
	"github.com/krediplan/krediplan/internal/output"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "krediplan %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "krediplan",
	Short: "Turkish commercial-loan repayment schedule calculator",
	Long:  "Computes cent-exact repayment schedules, payment calendars and cost summaries for commercial loans under Turkish banking conventions",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate a loan repayment schedule",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := loadInput(cmd, args[0])

		eng := engine.NewEngine(calendar.ForJurisdiction(input.Jurisdiction))
		result, err := eng.Run(&input.Loan, input.Style)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		var rendered []byte
		switch format {
		case "table":
			rendered = []byte((&output.TableFormatter{}).Format(result))
		case "csv":
			rendered, err = output.CSVFormatter{}.Format(result)
		case "json":
			rendered, err = output.JSONFormatter{Pretty: true}.Format(result)
		default:
			log.Fatalf("unknown format %q: must be table, csv or json", format)
		}
		if err != nil {
			log.Fatal(err)
		}

		writeOutput(cmd, rendered)
	},
}

var calendarCmd = &cobra.Command{
	Use:   "calendar [input-file]",
	Short: "Export the payment calendar for a loan",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := loadInput(cmd, args[0])

		eng := engine.NewEngine(calendar.ForJurisdiction(input.Jurisdiction))
		result, err := eng.Run(&input.Loan, input.Style)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		var rendered []byte
		switch format {
		case "table":
			rendered = []byte((&output.TableFormatter{}).FormatCalendar(result.Calendar))
		case "csv":
			rendered, err = output.CSVFormatter{}.FormatCalendar(result.Calendar)
		case "json":
			rendered, err = output.JSONFormatter{Pretty: true}.FormatCalendar(result.Calendar)
		default:
			log.Fatalf("unknown format %q: must be table, csv or json", format)
		}
		if err != nil {
			log.Fatal(err)
		}

		writeOutput(cmd, rendered)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate an input file without calculating",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := loadInput(cmd, args[0])
		fmt.Printf("Input is valid: %s loan, %d months at %s monthly, %s frequency\n",
			input.Style, input.Loan.TermMonths,
			input.Loan.MonthlyInterestRate.String(), input.Loan.PaymentFrequency)
	},
}

// loadInput parses the input file and applies the --style override.
func loadInput(cmd *cobra.Command, inputFile string) *config.Input {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile(inputFile)
	if err != nil {
		log.Fatal(err)
	}

	if style, _ := cmd.Flags().GetString("style"); style != "" {
		input.Style = domain.AmortizationStyle(style)
		if err := parser.Validate(input); err != nil {
			log.Fatal(err)
		}
	}
	return input
}

func writeOutput(cmd *cobra.Command, rendered []byte) {
	outFile, _ := cmd.Flags().GetString("output")
	if outFile == "" {
		fmt.Fprint(os.Stdout, string(rendered))
		return
	}
	if err := os.WriteFile(outFile, rendered, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %s\n", outFile)
}

func init() {
	for _, c := range []*cobra.Command{calculateCmd, calendarCmd} {
		c.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
		c.Flags().StringP("output", "o", "", "Write output to a file instead of stdout")
		c.Flags().String("style", "", "Override the amortization style (equal_principal, equal_installment)")
	}
	validateCmd.Flags().String("style", "", "Override the amortization style (equal_principal, equal_installment)")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
