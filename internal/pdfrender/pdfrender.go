// Package pdfrender converts rendered dossier HTML to PDF using headless
// Chrome via go-rod. Rod automatically downloads Chromium on first run if
// no browser is found.
package pdfrender

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-dossier/internal/fileutil"
)

// Sentinel errors for PDF rendering failures.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)

// PDF page dimensions in inches (US Letter format).
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
	marginInches      = 0.5
)

// DefaultTimeout bounds page load during rendering.
const DefaultTimeout = 30 * time.Second

// Renderer renders HTML documents to PDF bytes.
type Renderer struct {
	timeout time.Duration
}

// New creates a Renderer. A non-positive timeout uses DefaultTimeout.
func New(timeout time.Duration) *Renderer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Renderer{timeout: timeout}
}

// Render writes the HTML to a temp file, opens it in headless Chrome, and
// returns the PDF bytes. Uses US Letter format with 0.5 inch margins.
func (r *Renderer) Render(htmlContent string) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	browser := rod.New()
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	if err := page.Timeout(r.timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
