package dossier

import (
	"context"
	"errors"
	"time"
)

// DefaultPhotoDir is where photos are looked up when no directory is
// configured.
const DefaultPhotoDir = "photos"

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	template       string
	photoDir       string
	markdownFields bool
	now            func() time.Time
}

// WithTemplate sets the dossier template text. Required before Generate.
func WithTemplate(template string) Option {
	return func(s *Service) {
		s.cfg.template = template
	}
}

// WithPhotoDir sets the directory searched for agent photos.
func WithPhotoDir(dir string) Option {
	return func(s *Service) {
		s.cfg.photoDir = dir
	}
}

// WithMarkdownFields enables Markdown rendering of narrative fields.
func WithMarkdownFields() Option {
	return func(s *Service) {
		s.cfg.markdownFields = true
	}
}

// WithNow sets the clock used for the generation timestamp.
// Panics if now is nil (programmer error).
func WithNow(now func() time.Time) Option {
	if now == nil {
		panic("dossier: WithNow clock must not be nil")
	}
	return func(s *Service) {
		s.cfg.now = now
	}
}

// Service generates dossier documents, one record at a time.
type Service struct {
	cfg      serviceConfig
	markdown *FieldMarkdown
}

// New creates a Service with default configuration.
// Use options to set the template, photo directory, and clock.
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			photoDir: DefaultPhotoDir,
			now:      time.Now,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cfg.markdownFields {
		s.markdown = NewFieldMarkdown()
	}

	return s
}

// GenerateResult holds the rendered document for one agent.
type GenerateResult struct {
	HTML       []byte
	PhotoFound bool  // false means the pending-photo placeholder was used
	PhotoErr   error // the non-fatal photo miss, nil when PhotoFound
}

// Generate runs the per-record pipeline: photo normalization, optional
// Markdown field rendering, and template substitution.
//
// A missing or undecodable photo is not an error; the document is rendered
// with placeholder markup and PhotoFound reports false. Validation failures
// return an error matching ErrMissingField.
func (s *Service) Generate(ctx context.Context, rec AgentRecord) (*GenerateResult, error) {
	if s.cfg.template == "" {
		return nil, ErrEmptyTemplate
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	photoURI, photoErr := LoadPhoto(s.cfg.photoDir, rec.Name)
	if photoErr != nil && !errors.Is(photoErr, ErrPhotoNotFound) && !errors.Is(photoErr, ErrPhotoDecode) {
		return nil, photoErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.markdown != nil {
		if err := s.markdown.Apply(ctx, &rec); err != nil {
			return nil, err
		}
	}

	html := Render(s.cfg.template, rec, photoURI, s.cfg.now())

	return &GenerateResult{
		HTML:       []byte(html),
		PhotoFound: photoErr == nil,
		PhotoErr:   photoErr,
	}, nil
}
