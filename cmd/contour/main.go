// Command contour is the batch driver for outline extraction: it scans a
// directory of span-list JSON (and HTML) files and writes one result JSON per
// input document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contour",
	Short: "Extract document outlines from font-annotated text spans",
	Long: `Contour classifies font-annotated text spans into a document title and a
flat list of leveled headings (H1-H3), writing one JSON result per document.

Usage:
  contour extract --input ./spans --output ./results`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
