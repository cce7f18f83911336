// cmd/decodejpi/list.go
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	listCmd := &cobra.Command{
		Use:   "list <file.jpi>",
		Short: "List flights recorded in a .JPI file",
		Args:  cobra.ExactArgs(1),
		RunE:  runList,
	}

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	logger := ConfigureLogger(Verbose, JsonLogs)

	d, err := openDecoder(args[0], Strict)
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}

	flights, err := d.ListFlights()
	if err != nil {
		return fmt.Errorf("list flights: %w", err)
	}

	if JsonLogs {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(flights)
	}

	profile := d.Profile()
	logger.Info("Device", "model", profile.Model, "firmware", profile.Firmware, "build", profile.Build)

	for _, f := range flights {
		fmt.Printf("%5d  %s %s  %d bytes  interval=%ds\n", f.ID, f.Date, f.Time, f.Size, f.Interval)
	}
	return nil
}
