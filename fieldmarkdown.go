package dossier

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// narrativeFields selects the free-text answers that benefit from Markdown
// rendering. Single-line fields (names, salary, contacts) stay untouched so
// they never gain paragraph wrapping.
func narrativeFields(r *AgentRecord) []*string {
	return []*string{
		&r.Looks,
		&r.PowerVisual,
		&r.Coffee,
		&r.Collaboration,
		&r.WorkExperience,
	}
}

// FieldMarkdown converts narrative field values from Markdown to HTML
// fragments before substitution.
type FieldMarkdown struct {
	md goldmark.Markdown
}

// NewFieldMarkdown creates a converter with GFM extensions and hard wraps,
// so multi-line spreadsheet answers keep their line structure. Raw HTML in
// field values is escaped, not passed through.
func NewFieldMarkdown() *FieldMarkdown {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // tables, strikethrough, autolinks
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // treat newlines as <br>
			html.WithXHTML(),
			// WithUnsafe() intentionally not used: roster answers must not
			// inject markup through the Markdown path.
		),
	)
	return &FieldMarkdown{md: md}
}

// Apply rewrites the record's narrative fields in place, converting each
// from Markdown to an HTML fragment. Blank fields are left alone so
// placeholder resolution still sees them as missing.
func (f *FieldMarkdown) Apply(ctx context.Context, rec *AgentRecord) error {
	for _, field := range narrativeFields(rec) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if *field == "" {
			continue
		}
		rendered, err := f.render(*field)
		if err != nil {
			return err
		}
		*field = rendered
	}
	return nil
}

func (f *FieldMarkdown) render(value string) (string, error) {
	var buf bytes.Buffer
	if err := f.md.Convert([]byte(value), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFieldMarkdown, err)
	}
	return buf.String(), nil
}
