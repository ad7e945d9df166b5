// extract command: scan the input directory, run the pipeline once per
// document, write results. Documents are independent, so they fan out across
// a fixed worker pool when --workers is above one.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/tsawler/contour"
	"github.com/tsawler/contour/internal/config"
	"github.com/tsawler/contour/outline"
)

// Flag variables.
var (
	flagConfig    string
	flagInput     string
	flagOutput    string
	flagWorkers   int
	flagLanguage  string
	flagCalibrate bool
	flagVerbose   bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract outlines for every document in a directory",
	Long: `Extract scans the input directory for span-list JSON files (*.spans.json)
and HTML files (*.html), classifies each into a title and outline, and writes
one <name>.json result per document to the output directory.

Examples:
  contour extract --input ./spans --output ./results
  contour extract --input ./spans --output ./results --workers 4 --calibrate
  contour extract --input ./docs --output ./results --language ja`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&flagConfig, "config", "", "Optional config file (YAML)")
	extractCmd.Flags().StringVar(&flagInput, "input", "", "Input directory")
	extractCmd.Flags().StringVar(&flagOutput, "output", "", "Output directory")
	extractCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Concurrent documents (default 1)")
	extractCmd.Flags().StringVar(&flagLanguage, "language", "", "Force a language code, skipping identification")
	extractCmd.Flags().BoolVar(&flagCalibrate, "calibrate", false, "Derive font levels from each document's size distribution")
	extractCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log the font-size survey for each document")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Flags override config file and environment.
	if cmd.Flags().Changed("input") {
		cfg.InputDir = flagInput
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = flagOutput
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = flagWorkers
	}
	if cmd.Flags().Changed("language") {
		cfg.Language = flagLanguage
	}
	if flagCalibrate {
		cfg.Calibrate = true
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}

	docs, err := discoverDocuments(cfg.InputDir)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		log.Printf("no documents found in %s", cfg.InputDir)
		return nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	log.Printf("processing %d document(s) with %d worker(s)", len(docs), cfg.Workers)

	jobs := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failures := 0

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if err := processDocument(path, cfg); err != nil {
					log.Printf("FAIL %s: %v", filepath.Base(path), err)
					mu.Lock()
					failures++
					mu.Unlock()
				}
			}
		}()
	}

	for _, path := range docs {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	if failures > 0 {
		return fmt.Errorf("%d of %d document(s) failed", failures, len(docs))
	}
	log.Printf("completed %d document(s)", len(docs))
	return nil
}

// discoverDocuments lists the span and HTML files in dir, sorted by name.
func discoverDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var docs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".spans.json") || strings.HasSuffix(name, ".html") {
			docs = append(docs, filepath.Join(dir, name))
		}
	}
	return docs, nil
}

// outputName maps an input filename to its result filename.
func outputName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".spans.json")
	base = strings.TrimSuffix(base, ".html")
	return base + ".json"
}

// processDocument runs the pipeline for one input file and writes its result.
func processDocument(path string, cfg *config.Config) error {
	ext := openExtractor(path)
	if cfg.Language != "" {
		ext = ext.Language(cfg.Language)
	}
	if cfg.Calibrate {
		ext = ext.Calibrate()
	}

	if cfg.Verbose {
		logSizeSurvey(ext, path)
	}

	result, warnings, err := ext.Result()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Printf("WARN %s: %s", filepath.Base(path), w)
	}
	if cfg.Verbose && len(result.Outline) > 0 {
		log.Printf("TOC  %s:\n%s", filepath.Base(path), result.MarkdownTOC())
	}

	out := filepath.Join(cfg.OutputDir, outputName(path))
	if err := writeResult(out, result); err != nil {
		return err
	}

	log.Printf("OK   %s: title=%q headings=%d language=%s",
		filepath.Base(path), result.Title, len(result.Outline), result.Language)
	return nil
}

// openExtractor picks the provider by file extension.
func openExtractor(path string) *contour.Extractor {
	if strings.HasSuffix(path, ".html") {
		return contour.OpenHTML(path)
	}
	return contour.OpenJSON(path)
}

// logSizeSurvey logs the document's font-size distribution.
func logSizeSurvey(ext *contour.Extractor, path string) {
	spanList, err := ext.Spans()
	if err != nil {
		return // the pipeline run will report the failure
	}
	for _, sample := range outline.SurveySizes(spanList) {
		log.Printf("SIZE %s: %.2fpt %q", filepath.Base(path), sample.Size, sample.Texts)
	}
}

// writeResult writes a result atomically: a temp file in the target
// directory, then a rename, so readers never observe a partial document.
func writeResult(path string, result any) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".contour-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing result: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing result: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("publishing result: %w", err)
	}
	return nil
}
