package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across invocation styles.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	version bool
}

// pathFlags holds input/output location flags.
type pathFlags struct {
	template string // built-in template name or file path
	photos   string // photo directory
	output   string // output directory
}

// renderFlags holds rendering behavior flags.
type renderFlags struct {
	markdown bool // render narrative fields as Markdown
}

// pdfFlags holds optional PDF output flags.
type pdfFlags struct {
	enabled bool
	timeout string // Go duration for page load, e.g. "30s"
}

// cliFlags holds all dossiergen flags.
type cliFlags struct {
	common commonFlags
	paths  pathFlags
	render renderFlags
	pdf    pdfFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-record timing")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
}

// addPathFlags adds location flags to a FlagSet.
func addPathFlags(fs *flag.FlagSet, f *pathFlags) {
	fs.StringVarP(&f.template, "template", "t", "", "template name or file path (default: built-in)")
	fs.StringVarP(&f.photos, "photos", "p", "", "photo directory (default: photos)")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: dossiers)")
}

// addRenderFlags adds rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.BoolVar(&f.markdown, "markdown", false, "render narrative fields as Markdown")
}

// addPDFFlags adds PDF output flags to a FlagSet.
func addPDFFlags(fs *flag.FlagSet, f *pdfFlags) {
	fs.BoolVar(&f.enabled, "pdf", false, "also render each dossier to PDF (requires Chrome)")
	fs.StringVar(&f.timeout, "timeout", "", "PDF page load timeout (e.g., 30s, 2m)")
}

// parseFlags parses command-line flags and returns the positional arguments.
func parseFlags(args []string, usageOut io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("dossiergen", flag.ContinueOnError)
	f := &cliFlags{}

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	addRenderFlags(fs, &f.render)
	addPDFFlags(fs, &f.pdf)

	fs.Usage = func() { printUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the command usage text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: dossiergen [flags] <roster file>

Renders one HTML dossier per agent from a CSV or XLSX roster.
Photos are looked up as <photos-dir>/<Sanitized_Name>.jpg and inlined.

Flags:
  -c, --config string     config file name or path
  -t, --template string   template name or file path (default: built-in)
  -p, --photos string     photo directory (default: photos)
  -o, --output string     output directory (default: dossiers)
      --markdown          render narrative fields as Markdown
      --pdf               also render each dossier to PDF (requires Chrome)
      --timeout string    PDF page load timeout (e.g., 30s, 2m)
  -q, --quiet             only show errors
  -v, --verbose           show per-record timing
      --version           print version and exit
`)
}
