package main

import (
	"errors"
	"os"

	dossier "github.com/alnah/go-dossier"
	"github.com/alnah/go-dossier/internal/config"
	"github.com/alnah/go-dossier/internal/pdfrender"
)

// Exit codes for the dossiergen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // At least one dossier created
	ExitGeneral = 1 // General/unexpected error, or whole batch failed
	ExitUsage   = 2 // Invalid flags, config, or template selection
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors during PDF rendering
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, pdfrender.ErrBrowserConnect) ||
		errors.Is(err, pdfrender.ErrPageCreate) ||
		errors.Is(err, pdfrender.ErrPageLoad) ||
		errors.Is(err, pdfrender.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, dossier.ErrReadInput) ||
		errors.Is(err, dossier.ErrReadTemplate) ||
		errors.Is(err, ErrCreateOutputDir) ||
		errors.Is(err, ErrWriteDossier) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, dossier.ErrTemplateNotFound) ||
		errors.Is(err, dossier.ErrEmptyTemplate) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
