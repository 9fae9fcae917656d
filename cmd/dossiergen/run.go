package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	dossier "github.com/alnah/go-dossier"
	"github.com/alnah/go-dossier/internal/assets"
	"github.com/alnah/go-dossier/internal/config"
	"github.com/alnah/go-dossier/internal/hints"
	"github.com/alnah/go-dossier/internal/pdfrender"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input file specified")
	ErrInvalidTimeout   = errors.New("invalid timeout value")
	ErrNoRecords        = errors.New("input contains no data rows")
	ErrAllRecordsFailed = errors.New("no dossiers were created")
)

// Defaults for unset paths (spec'd directory names).
const (
	defaultPhotosDir = "photos"
	defaultOutputDir = "dossiers"
)

// runParams is the fully merged configuration for one run.
type runParams struct {
	inputPath  string
	outputDir  string
	photosDir  string
	template   string // name or path, resolved later
	markdown   bool
	pdfEnabled bool
	pdfTimeout time.Duration
	quiet      bool
	verbose    bool
}

// run parses arguments, resolves configuration, and drives the batch.
func run(argv []string, env *Environment) error {
	flags, args, err := parseFlags(argv[1:], env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.common.version {
		fmt.Fprintln(env.Stdout, "dossiergen "+Version)
		return nil
	}

	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.Load(flags.common.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("%w%s", err, hints.ForConfigNotFound(nil))
			}
			return err
		}
	}

	params, err := mergeParams(flags, args, cfg)
	if err != nil {
		return err
	}

	template, err := dossier.ResolveTemplate(params.template)
	if err != nil {
		if errors.Is(err, dossier.ErrTemplateNotFound) {
			available, _ := assets.Names()
			return fmt.Errorf("%w%s", err, hints.ForTemplateNotFound(available))
		}
		return err
	}

	loaded, err := dossier.LoadRecords(params.inputPath)
	if err != nil {
		return err
	}
	if len(loaded.Records) == 0 && len(loaded.Invalid) == 0 {
		return fmt.Errorf("%w: %s", ErrNoRecords, params.inputPath)
	}

	// Missing photo directory is not fatal: dossiers render with the
	// pending-photo placeholder.
	if _, statErr := os.Stat(params.photosDir); statErr != nil && !params.quiet {
		fmt.Fprintf(env.Stderr, "photo directory %q not found; dossiers will be created without photos%s\n",
			params.photosDir, hints.ForPhotosDir(params.photosDir))
	}

	opts := []dossier.Option{
		dossier.WithTemplate(template),
		dossier.WithPhotoDir(params.photosDir),
		dossier.WithNow(env.Now),
	}
	if params.markdown {
		opts = append(opts, dossier.WithMarkdownFields())
	}
	svc := dossier.New(opts...)

	var pdf PDFRenderer
	if params.pdfEnabled {
		pdf = pdfrender.New(params.pdfTimeout)
	}

	results, err := runBatch(context.Background(), svc, loaded, batchParams{
		outputDir: params.outputDir,
		pdf:       pdf,
	})
	if err != nil {
		return err
	}

	printLoaderWarnings(loaded.Warnings, params.quiet, env)
	summary := printResults(results, params.quiet, params.verbose, env)

	if summary.Succeeded == 0 {
		// Wrap the first per-record failure so exit-code mapping still sees
		// its cause (e.g. browser errors during PDF rendering).
		for _, r := range results {
			if r.Err != nil {
				return fmt.Errorf("%w: %d skipped, %d failed: %w", ErrAllRecordsFailed, summary.Skipped, summary.Failed, r.Err)
			}
		}
		return fmt.Errorf("%w: %d skipped, %d failed", ErrAllRecordsFailed, summary.Skipped, summary.Failed)
	}
	return nil
}

// mergeParams resolves flags over config over built-in defaults.
func mergeParams(flags *cliFlags, args []string, cfg *config.Config) (*runParams, error) {
	p := &runParams{
		inputPath:  cfg.Input.File,
		outputDir:  firstNonEmpty(flags.paths.output, cfg.Output.Dir, defaultOutputDir),
		photosDir:  firstNonEmpty(flags.paths.photos, cfg.Photos.Dir, defaultPhotosDir),
		template:   firstNonEmpty(flags.paths.template, cfg.Template.Name),
		markdown:   flags.render.markdown || cfg.Render.MarkdownFields,
		pdfEnabled: flags.pdf.enabled || cfg.PDF.Enabled,
		quiet:      flags.common.quiet,
		verbose:    flags.common.verbose,
	}

	if len(args) > 0 {
		p.inputPath = args[0]
	}
	if p.inputPath == "" {
		return nil, ErrNoInput
	}

	if timeout := firstNonEmpty(flags.pdf.timeout, cfg.PDF.Timeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, timeout)
		}
		p.pdfTimeout = d
	}

	return p, nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
