package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	dossier "github.com/alnah/go-dossier"
	"github.com/alnah/go-dossier/internal/hints"
	"github.com/alnah/go-dossier/internal/pdfrender"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrCreateOutputDir = errors.New("failed to create output directory")
	ErrWriteDossier    = errors.New("failed to write dossier file")
	ErrWritePDF        = errors.New("failed to write PDF file")
)

// PDFRenderer abstracts PDF rendering to enable testing without a browser.
type PDFRenderer interface {
	Render(htmlContent string) ([]byte, error)
}

// Compile-time interface implementation check.
var _ PDFRenderer = (*pdfrender.Renderer)(nil)

// RecordResult holds the terminal state of one roster row. Exactly one of
// these holds per result: Rejected (validation), Err != nil (failure), or
// neither (written). PhotoErr is an additional non-fatal warning.
type RecordResult struct {
	Agent      string // display name, may be empty for rejected rows
	Row        int    // 1-based data row
	OutputPath string
	PDFPath    string
	Rejected   bool
	Reason     string // rejection reason, e.g. "missing Coffee"
	PhotoErr   error  // non-fatal photo miss
	Err        error
	Duration   time.Duration
}

// batchParams holds the per-run batch configuration.
type batchParams struct {
	outputDir string
	pdf       PDFRenderer // nil = HTML only
}

// runBatch processes every loaded row sequentially. Rejected rows and
// per-record failures are recorded and the batch continues; only output
// directory creation aborts the run. Results are ordered by source row.
func runBatch(ctx context.Context, svc *dossier.Service, loaded *dossier.LoadResult, params batchParams) ([]RecordResult, error) {
	if err := os.MkdirAll(params.outputDir, dirPermissions); err != nil {
		return nil, fmt.Errorf("%w: %v%s", ErrCreateOutputDir, err, hints.ForOutputDirectory())
	}

	results := make([]RecordResult, 0, len(loaded.Records)+len(loaded.Invalid))

	for _, inv := range loaded.Invalid {
		results = append(results, RecordResult{
			Agent:    inv.Name,
			Row:      inv.Row,
			Rejected: true,
			Reason:   inv.Reason(),
		})
	}

	for _, rec := range loaded.Records {
		results = append(results, processRecord(ctx, svc, rec, params))
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Row < results[j].Row })
	return results, nil
}

// processRecord runs one record through generate and write.
func processRecord(ctx context.Context, svc *dossier.Service, rec dossier.AgentRecord, params batchParams) RecordResult {
	start := time.Now()
	result := RecordResult{
		Agent:      rec.Name,
		Row:        rec.Row,
		OutputPath: filepath.Join(params.outputDir, dossier.Sanitize(rec.Name)+".html"),
	}

	gen, err := svc.Generate(ctx, rec)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.PhotoErr = gen.PhotoErr

	// #nosec G306 -- dossiers are meant to be readable
	if err := os.WriteFile(result.OutputPath, gen.HTML, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteDossier, err)
		result.Duration = time.Since(start)
		return result
	}

	if params.pdf != nil {
		pdfBytes, err := params.pdf.Render(string(gen.HTML))
		if err != nil {
			if errors.Is(err, pdfrender.ErrBrowserConnect) {
				err = fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
			}
			result.Err = err
			result.Duration = time.Since(start)
			return result
		}
		result.PDFPath = filepath.Join(params.outputDir, dossier.Sanitize(rec.Name)+".pdf")
		// #nosec G306 -- PDFs are meant to be readable
		if err := os.WriteFile(result.PDFPath, pdfBytes, filePermissions); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWritePDF, err)
			result.PDFPath = ""
			result.Duration = time.Since(start)
			return result
		}
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary tallies terminal states across the batch.
type ResultSummary struct {
	Processed int
	Succeeded int
	Skipped   int
	Failed    int
}

// countResults tallies the batch outcome.
func countResults(results []RecordResult) ResultSummary {
	summary := ResultSummary{Processed: len(results)}
	for _, r := range results {
		switch {
		case r.Rejected:
			summary.Skipped++
		case r.Err != nil:
			summary.Failed++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// printLoaderWarnings surfaces non-fatal loader diagnostics.
func printLoaderWarnings(warnings []string, quiet bool, env *Environment) {
	if quiet {
		return
	}
	for _, w := range warnings {
		fmt.Fprintf(env.Stderr, "WARNING %s\n", w)
	}
}

// printResults reports every terminal state and the final summary.
// Skips, failures, and photo warnings go to stderr; successes to stdout.
func printResults(results []RecordResult, quiet, verbose bool, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		agent := r.Agent
		if agent == "" {
			agent = fmt.Sprintf("row %d", r.Row)
		}

		switch {
		case r.Rejected:
			fmt.Fprintf(env.Stderr, "SKIPPED %s: %s\n", agent, r.Reason)
			continue
		case r.Err != nil:
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", agent, r.Err)
			continue
		}

		if r.PhotoErr != nil {
			fmt.Fprintf(env.Stderr, "WARNING %s: %v\n", agent, r.PhotoErr)
		}

		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", agent, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "\n%d records: %d succeeded, %d skipped, %d failed\n",
			summary.Processed, summary.Succeeded, summary.Skipped, summary.Failed)
	}

	return summary
}
