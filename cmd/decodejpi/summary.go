// cmd/decodejpi/summary.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	summaryCmd := &cobra.Command{
		Use:   "summary <file.jpi>",
		Short: "Print a per-flight index/tach/position summary table",
		Args:  cobra.ExactArgs(1),
		RunE:  runSummary,
	}

	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	logger := ConfigureLogger(Verbose, JsonLogs)

	d, err := openDecoder(args[0], Strict)
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}

	summaries, err := d.SummarizeFlights()
	if err != nil {
		return fmt.Errorf("summarize flights: %w", err)
	}

	fmt.Printf("%-6s %-10s %-8s %-8s %8s %10s %10s %10s %10s\n",
		"ID", "DATE", "OFF", "IN", "SAMPLES", "TACHSTART", "TACHEND", "TACHDUR", "HOBBDUR")
	for _, s := range summaries {
		fmt.Printf("%-6d %-10s %-8s %-8s %8d %10.1f %10.1f %10.1f %10.1f\n",
			s.ID, s.Date, s.TimeOff, s.TimeIn, s.Samples, s.TachStart, s.TachEnd, s.TachDuration, s.HobbDuration)
	}

	logger.Debug("Summarized flights", "count", len(summaries))
	return nil
}
