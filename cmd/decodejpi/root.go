// cmd/decodejpi/root.go
package cmd

import (
	"github.com/spf13/cobra"
)

// Global flags
var (
	Verbose  bool
	JsonLogs bool
	Strict   bool
)

var rootCmd = &cobra.Command{
	Use:   "decodejpi",
	Short: "J.P. Instruments EDM flight-log decoder",
	Long: `decodejpi reads a J.P. Instruments EDM900/930 .JPI flight-log file
and decodes its flight directory into per-sample CSV output, matching the
device's own download utility column-for-column.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&JsonLogs, "json", false, "Log in JSON format")
	rootCmd.PersistentFlags().BoolVar(&Strict, "strict", false, "Fail a flight on checksum mismatch instead of decoding past it")

	rootCmd.Flags().BoolP("version", "V", false, "Print version information")
	rootCmd.SetVersionTemplate("decodejpi v{{.Version}}\n")
	rootCmd.Version = "0.1.0"
}
