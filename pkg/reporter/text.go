package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/htmltomd/internal/ui/pretty"
	"github.com/yaklabco/htmltomd/pkg/runner"
)

// TextReporter formats results as styled terminal output.
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

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No files to convert."))
		}
		return 0, nil
	}

	for _, file := range result.Files {
		switch {
		case file.Error != nil:
			fmt.Fprintf(r.bw, "%s %s: %v\n",
				r.styles.Failure.Render("error"),
				r.styles.FilePath.Render(file.Path),
				file.Error,
			)
		case file.Skipped:
			fmt.Fprintf(r.bw, "%s %s %s\n",
				r.styles.Dim.Render("skip "),
				r.styles.FilePath.Render(file.Path),
				r.styles.Dim.Render("(up to date)"),
			)
		default:
			extra := ""
			if file.BackedUp {
				extra = r.styles.Dim.Render(" (backed up)")
			}
			fmt.Fprintf(r.bw, "%s %s %s %s%s\n",
				r.styles.Success.Render("ok   "),
				r.styles.FilePath.Render(file.Path),
				r.styles.Dim.Render("->"),
				r.styles.OutputPath.Render(file.OutputPath),
				extra,
			)
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return result.Stats.FilesErrored, nil
}
