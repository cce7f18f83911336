// cmd/decodejpi/common.go
package cmd

import (
	"log/slog"
	"os"

	"github.com/aijayadams/jpi/edm"
)

// ConfigureLogger sets up a structured logger with appropriate options.
func ConfigureLogger(verbose bool, jsonFormat bool) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if verbose {
		opts.Level = slog.LevelDebug
	}

	if jsonFormat {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// openDecoder reads and parses a .JPI file's metadata, ready for listing,
// decoding, or summarizing.
func openDecoder(path string, strict bool) (*edm.Decoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	d := edm.NewDecoder().WithStrictMode(strict)
	if err := d.ParseFile(data); err != nil {
		return nil, err
	}
	return d, nil
}
