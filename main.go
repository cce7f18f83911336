package main

import (
	"fmt"
	"os"

	"github.com/aijayadams/jpi/cmd/decodejpi"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
