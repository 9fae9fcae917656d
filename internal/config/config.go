// Package config loads dossiergen configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-dossier/internal/fileutil"
	"github.com/alnah/go-dossier/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// configDirName is the subdirectory under the user config dir searched for
// named configs.
const configDirName = "dossiergen"

// Config holds all configuration for dossier generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Photos   PhotosConfig   `yaml:"photos"`
	Template TemplateConfig `yaml:"template"`
	Render   RenderConfig   `yaml:"render"`
	PDF      PDFConfig      `yaml:"pdf"`
}

// InputConfig defines input source options.
type InputConfig struct {
	File string `yaml:"file"` // Roster file path (empty = must specify on command line)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Output directory (empty = "dossiers")
}

// PhotosConfig defines photo lookup options.
type PhotosConfig struct {
	Dir string `yaml:"dir"` // Photo directory (empty = "photos")
}

// TemplateConfig defines template selection options.
type TemplateConfig struct {
	Name string `yaml:"name"` // Built-in template name or file path (empty = "default")
}

// RenderConfig defines rendering options.
type RenderConfig struct {
	MarkdownFields bool `yaml:"markdownFields"` // Render narrative fields as Markdown
}

// PDFConfig defines optional PDF output.
type PDFConfig struct {
	Enabled bool   `yaml:"enabled"`
	Timeout string `yaml:"timeout"` // Go duration, e.g. "30s" (empty = default)
}

// DefaultConfig returns a neutral configuration with all features disabled.
func DefaultConfig() *Config {
	return &Config{}
}

// Load loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolvePath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// resolvePath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/dossiergen/
func resolvePath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
