package main

import (
	"fmt"
	"os"

	"github.com/san-kum/pixie/internal/viz"
)

var (
	version = "dev"
	commit  = "none"
)

// main builds the root command and exits with status 1 on any error.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, viz.Error(err))
		os.Exit(1)
	}
}
