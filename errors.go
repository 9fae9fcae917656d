package dossier

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyTemplate = errors.New("template cannot be empty")
	ErrMissingField  = errors.New("record missing required field")

	// Photo errors.
	ErrPhotoNotFound = errors.New("photo file not found")
	ErrPhotoDecode   = errors.New("failed to decode photo")
	ErrPhotoEncode   = errors.New("failed to encode photo")

	// Template loading errors.
	ErrTemplateNotFound = errors.New("template not found")
	ErrReadTemplate     = errors.New("failed to read template file")

	// Record loading errors.
	ErrReadInput = errors.New("failed to read input file")

	// Markdown field rendering errors.
	ErrFieldMarkdown = errors.New("markdown field rendering failed")
)
