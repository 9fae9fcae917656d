// Package assets provides the built-in dossier templates embedded in the
// binary.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed templates/*
var templates embed.FS

// Sentinel errors for asset loading.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
)

// LoadTemplate loads an embedded HTML template by name.
// The name should not include the .html extension.
func LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// Names returns the available embedded template names, without extensions.
func Names() ([]string, error) {
	entries, err := templates.ReadDir("templates")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".html"))
	}
	return names, nil
}

// ValidateAssetName rejects names that could escape the embedded directory
// or that are empty.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
