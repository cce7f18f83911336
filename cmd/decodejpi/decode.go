// cmd/decodejpi/decode.go
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aijayadams/jpi/edm"
	"github.com/spf13/cobra"
)

func init() {
	decodeCmd := &cobra.Command{
		Use:   "decode <file.jpi> <id> [<id>...] [outPath]",
		Short: "Decode one or more flights to CSV",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runDecode,
	}

	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	logger := ConfigureLogger(Verbose, JsonLogs)

	path := args[0]
	d, err := openDecoder(path, Strict)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	ids, outArg, err := parseDecodeArgs(args[1:])
	if err != nil {
		return err
	}

	if len(ids) == 1 {
		out := os.Stdout
		if outArg != "" {
			f, err := os.Create(outArg)
			if err != nil {
				return fmt.Errorf("create %s: %w", outArg, err)
			}
			defer f.Close()
			out = f
		}
		if err := writeFlightCSV(d, ids[0], out); err != nil {
			return err
		}
		logStats(logger, d, ids[0])
		return nil
	}

	outDir := outArg
	if outDir == "" {
		outDir = "."
	}
	if stat, err := os.Stat(outDir); err != nil || !stat.IsDir() {
		outDir = "."
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	for _, id := range ids {
		name := filepath.Join(outDir, fmt.Sprintf("%s.flt%d.csv", base, id))
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}
		if err := writeFlightCSV(d, id, f); err != nil {
			f.Close()
			return err
		}
		f.Close()
		logger.Info("Wrote flight", "id", id, "file", name)
		logStats(logger, d, id)
	}
	return nil
}

func logStats(logger *slog.Logger, d *edm.Decoder, id uint16) {
	s := d.Stats()
	logger.Debug("Decode stats", "id", id, "records", s.TotalRecords, "repeats", s.RepeatRecords)
}

func parseDecodeArgs(rest []string) (ids []uint16, outPath string, err error) {
	for i, a := range rest {
		v, convErr := strconv.Atoi(a)
		if convErr != nil {
			if i != len(rest)-1 {
				return nil, "", fmt.Errorf("invalid flight id %q", a)
			}
			outPath = a
			continue
		}
		ids = append(ids, uint16(v))
	}
	if len(ids) == 0 {
		return nil, "", fmt.Errorf("at least one flight id is required")
	}
	return ids, outPath, nil
}

// writeFlightCSV decodes one flight and writes it as CSV with a leading
// INDEX column and a trailing tach summary line (spec.md §6).
func writeFlightCSV(d *edm.Decoder, id uint16, out *os.File) error {
	flight, err := d.DecodeFlight(id)
	if err != nil {
		return fmt.Errorf("decode flight %d: %w", id, err)
	}

	// Cells are joined as-is: a CSV writer would quote the leading-space
	// integer cells (" 245") and change the row text.
	writeLine := func(fields []string) error {
		_, err := fmt.Fprintln(out, strings.Join(fields, ","))
		return err
	}
	headers := append([]string{"INDEX"}, flight.Headers...)
	if err := writeLine(headers); err != nil {
		return err
	}

	for i, row := range flight.Rows {
		record := make([]string, 0, len(row)+1)
		record = append(record, strconv.Itoa(i+1))
		record = append(record, row...)
		if err := writeLine(record); err != nil {
			return err
		}
	}

	s := edm.SummarizeFlight(id, flight)
	_, err = fmt.Fprintf(out, "Engine - Tach Start = %.1f,Tach End = %.1f,Tach Duration = %.1f\n",
		s.TachStart, s.TachEnd, s.TachDuration)
	return err
}
