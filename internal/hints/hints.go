// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to
// error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-dossier/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/dossiergen/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/dossiergen") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForPhotosDir returns a hint for a missing photo directory.
func ForPhotosDir(dir string) string {
	return format("create " + dir + "/ with <Sanitized_Name>.jpg files, or pass --photos")
}

// ForTemplateNotFound returns hints for template not found errors.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForBrowserConnect returns hints for browser connection errors during PDF
// rendering. Detects CI/Docker environments and suggests relevant
// environment variables.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}

	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// format returns a single hint line.
func format(text string) string {
	if text == "" {
		return ""
	}
	return "\n  hint: " + text
}

// formatHints returns one line per hint.
func formatHints(hints []string) string {
	var b strings.Builder
	for _, h := range hints {
		b.WriteString(format(h))
	}
	return b.String()
}
