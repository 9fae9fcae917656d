package dossier

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-dossier/internal/assets"
	"github.com/alnah/go-dossier/internal/fileutil"
)

// DefaultTemplate is the name of the built-in dossier template.
const DefaultTemplate = "default"

// ResolveTemplate loads a dossier template by name or file path.
//
// A value containing a path separator is read from the filesystem; anything
// else is looked up among the embedded templates (without the .html
// extension). Returns ErrTemplateNotFound when neither exists.
func ResolveTemplate(nameOrPath string) (string, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultTemplate
	}

	if fileutil.IsFilePath(nameOrPath) {
		content, err := os.ReadFile(nameOrPath) // #nosec G304 -- template path is user-provided
		if err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, nameOrPath)
			}
			return "", fmt.Errorf("%w: %v", ErrReadTemplate, err)
		}
		return string(content), nil
	}

	content, err := assets.LoadTemplate(nameOrPath)
	if err != nil {
		if errors.Is(err, assets.ErrTemplateNotFound) || errors.Is(err, assets.ErrInvalidAssetName) {
			return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, nameOrPath)
		}
		return "", err
	}
	return content, nil
}
