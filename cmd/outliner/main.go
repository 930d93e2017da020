// Command outliner batch-processes a directory of documents, writing one
// JSON summary (title, outline, metadata, entities) per input file.
//
// Usage:
//
//	outliner [-config outliner.yaml] [-in DIR] [-out DIR] [-workers N]
//
// Per-document failures are isolated: a document that cannot be processed
// produces an error summary in its output file and the batch continues.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/format"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/validate"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config file")
		inputDir   = flag.String("in", "", "input directory (overrides config)")
		outputDir  = flag.String("out", "", "output directory (overrides config)")
		workers    = flag.Int("workers", 0, "concurrent documents (overrides config)")
		verbose    = flag.Bool("v", false, "log outline validation warnings")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			logger.Error("config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *inputDir != "" {
		cfg.InputDir = *inputDir
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	if err := run(cfg, logger, *verbose); err != nil {
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *Config, logger *slog.Logger, verbose bool) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	files, images, err := scanInputs(cfg.InputDir)
	if err != nil {
		return err
	}
	if images > 0 {
		logger.Info("image files skipped; rebuild with -tags ocr and process them individually",
			"count", images)
	}
	if len(files) == 0 {
		logger.Info("no supported documents found", "dir", cfg.InputDir)
		return nil
	}
	logger.Info("processing documents", "count", len(files), "workers", cfg.Workers)

	jobs := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				ok := processOne(cfg, logger, verbose, path)
				if !ok {
					mu.Lock()
					failed++
					mu.Unlock()
				}
			}
		}()
	}
	for _, f := range files {
		jobs <- f
	}
	close(jobs)
	wg.Wait()

	logger.Info("batch complete", "processed", len(files)-failed, "failed", failed)
	return nil
}

// scanInputs lists supported documents in the input directory. Image
// files are counted but not queued; reading them requires the ocr build
// tag and a Tesseract installation.
func scanInputs(dir string) ([]string, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("read input dir: %w", err)
	}
	var files []string
	images := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch format.Detect(entry.Name()) {
		case format.Unknown:
			continue
		case format.Image:
			images++
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, images, nil
}

// processOne summarizes a single document and writes its JSON output.
// Returns false when the document degraded to an error summary.
func processOne(cfg *Config, logger *slog.Logger, verbose bool, path string) bool {
	name := filepath.Base(path)
	start := time.Now()

	summary := summarizeWithTimeout(cfg, path)

	if verbose && !summary.IsError() {
		for _, warning := range validate.Check(summary) {
			logger.Warn("outline check", "file", name, "warning", warning)
		}
	}

	outPath := filepath.Join(cfg.OutputDir, stem(name)+".json")
	if err := writeSummary(outPath, summary); err != nil {
		logger.Error("write output", "file", name, "error", err)
		return false
	}

	if summary.IsError() {
		logger.Warn("document degraded", "file", name, "title", summary.Title)
		return false
	}
	logger.Info("processed", "file", name,
		"title", summary.Title,
		"outline_items", len(summary.Outline),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return true
}

// summarizeWithTimeout runs one document under the configured wall-clock
// timeout. The pipeline itself has no suspension points, so the timeout is
// enforced around it: a document that exceeds it is reported as failed
// while its goroutine is abandoned to finish in the background.
func summarizeWithTimeout(cfg *Config, path string) *model.Summary {
	processor := outliner.Open(path).MaxPages(cfg.MaxPages)
	if cfg.SkipEntities {
		processor = processor.WithoutEntities()
	}

	if cfg.TimeoutSeconds == 0 {
		return processor.Summary()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.TimeoutSeconds)*time.Second)
	defer cancel()

	done := make(chan *model.Summary, 1)
	go func() {
		done <- processor.Summary()
	}()

	select {
	case summary := <-done:
		return summary
	case <-ctx.Done():
		return &model.Summary{
			Title:   fmt.Sprintf("Error processing %s", filepath.Base(path)),
			Outline: []model.OutlineEntry{},
		}
	}
}

// writeSummary serializes a summary as indented JSON.
func writeSummary(path string, summary *model.Summary) error {
	data, err := json.MarshalIndent(summary, "", "    ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// stem returns the filename without its extension.
func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
