package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/repolint/internal/ui/pretty"
	"github.com/yaklabco/repolint/pkg/config"
	"github.com/yaklabco/repolint/pkg/runner"
)

// TextReporter writes the human-readable report for a suite. Styling only
// adds terminal attributes; the text is identical with color on or off.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		result = &runner.Result{}
	}

	if result.Suite == config.SuiteStyle {
		r.reportStyle(result)
	} else {
		r.reportDocs(result)
	}

	return len(result.Errors), nil
}

func (r *TextReporter) reportDocs(result *runner.Result) {
	if result.RootMissing {
		r.println(r.styles.Warning.Render(fmt.Sprintf("Warning: %s/ directory does not exist yet", r.dirName())))
		return
	}

	if !result.HasErrors() {
		r.println(r.styles.Success.Render("Documentation validation passed."))
		return
	}

	r.println(r.styles.Failure.Render("Documentation validation failed:"))
	r.writeErrors(result)
}

func (r *TextReporter) reportStyle(result *runner.Result) {
	r.println(r.styles.Heading.Render(fmt.Sprintf("Validating code against %s...", r.opts.GuideName)))
	if r.opts.GuideURL != "" {
		r.println(r.styles.FormatLink("Style Guide: ", r.opts.GuideURL))
	}
	r.println("")

	if !result.RootMissing {
		r.println(r.styles.Info.Render(fmt.Sprintf("Checking %d TypeScript files...", result.Stats.FilesDiscovered)))
	}

	if !result.HasErrors() {
		r.println(r.styles.Success.Render("✅ Style guide validation passed."))
		return
	}

	r.println("")
	r.println(r.styles.Failure.Render("❌ Style guide validation failed:"))
	r.println("")
	r.writeErrors(result)

	if r.opts.GuideURL != "" {
		r.println("")
		r.println(r.styles.FormatLink("💡 See style guide: ", r.opts.GuideURL))
	}
}

// writeErrors lists the errors up to the configured cap, followed by an
// overflow line when some were left out.
func (r *TextReporter) writeErrors(result *runner.Result) {
	shown := result.Errors
	if r.opts.MaxErrors > 0 && len(shown) > r.opts.MaxErrors {
		shown = shown[:r.opts.MaxErrors]
	}

	for _, e := range shown {
		r.println(r.styles.FormatBullet(e.String()))
	}

	if hidden := len(result.Errors) - len(shown); hidden > 0 {
		r.println("")
		r.println(r.styles.FormatOverflow(hidden))
	}
}

func (r *TextReporter) dirName() string {
	if r.opts.DirName == "" {
		return "docs"
	}
	return r.opts.DirName
}

func (r *TextReporter) println(line string) {
	_, _ = fmt.Fprintln(r.bw, line)
}
