package reporter

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/checkfiles/internal/ui/pretty"
	"github.com/yaklabco/checkfiles/pkg/check"
	"github.com/yaklabco/checkfiles/pkg/runner"
)

// Reporter renders a run result as text at the configured verbosity.
// Rendering is pure with respect to the result: inconsistent input (a
// file entry with no violations in normal mode) is a silent no-op, never
// an error.
type Reporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// New creates a Reporter for the specified options.
func New(opts Options) (*Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.Mode == "" {
		opts.Mode = ModeNormal
	}
	if !opts.Mode.IsValid() {
		return nil, fmt.Errorf("unsupported output mode: %s", opts.Mode)
	}

	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &Reporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}, nil
}

// Report writes the per-file output for the mode followed by the run
// summary line.
func (r *Reporter) Report(ctx context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("report cancelled: %w", ctx.Err())
	default:
	}

	switch r.opts.Mode {
	case ModeQuiet:
		// Counts only; never a path.
	case ModeDebug:
		r.reportDebug(result)
	default:
		r.reportNormal(result)
	}

	fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Summary))
	return nil
}

// reportNormal prints violating files only: the path once, then one line
// per violation with line number and kind.
func (r *Reporter) reportNormal(result *runner.Result) {
	for _, file := range result.Files {
		if file.Err != nil || file.Result == nil || !file.Result.HasViolations() {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(r.displayPath(file.Path), len(file.Result.Violations)))
		for _, v := range file.Result.Violations {
			fmt.Fprint(r.bw, r.styles.FormatViolation(v, false))
		}
	}
}

// reportDebug prints every file considered, including skipped binaries
// and unreadable files, with exact column offsets and caret indicators
// under the offending lines.
func (r *Reporter) reportDebug(result *runner.Result) {
	for _, file := range result.Files {
		path := r.displayPath(file.Path)

		if file.Err != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Err)),
			)
			continue
		}

		res := file.Result
		if res == nil {
			continue
		}

		if res.Binary {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Dim.Render("skipped (binary)"),
			)
			continue
		}

		status := "ok"
		if res.HasViolations() {
			status = fmt.Sprintf("%d problem(s)", len(res.Violations))
		}
		fmt.Fprintf(r.bw, "%s: %s%s\n",
			r.styles.FilePath.Render(path),
			status,
			r.styles.Dim.Render(fmt.Sprintf(", %d lines (tab size %d)", res.LineCount, result.TabSize)),
		)

		lines := r.sourceLines(file)
		shown := make(map[int]bool)
		for _, v := range res.Violations {
			fmt.Fprint(r.bw, r.styles.FormatViolation(v, true))
			if lines == nil || shown[v.Line] || v.Line > len(lines) {
				continue
			}
			shown[v.Line] = true
			fmt.Fprint(r.bw, r.styles.FormatLineIndicator(lines[v.Line-1], result.TabSize))
		}

		if file.Fix != nil {
			if file.Fix.WriteErr != nil {
				fmt.Fprintf(r.bw, "  %s\n", r.styles.Error.Render(fmt.Sprintf("fix failed: %v", file.Fix.WriteErr)))
			} else {
				fmt.Fprintf(r.bw, "  %s\n", r.styles.Success.Render(fmt.Sprintf("fixed %d problem(s)", file.Fix.ViolationsFixed)))
			}
		}
	}
}

// sourceLines re-reads a violating file so caret indicators can be drawn
// under the original lines. Once fixup has rewritten the file the raw
// lines are gone, so indicators are skipped; read failures are tolerated
// silently.
func (r *Reporter) sourceLines(file runner.FileOutcome) [][]byte {
	if !file.Result.HasViolations() {
		return nil
	}
	if file.Fix != nil && file.Fix.WriteErr == nil {
		return nil
	}
	content, err := os.ReadFile(file.Path)
	if err != nil {
		return nil
	}
	return check.SplitLines(content)
}

// displayPath makes a path relative to the working directory when one is
// configured.
func (r *Reporter) displayPath(path string) string {
	if r.opts.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(r.opts.WorkingDir, path)
	if err != nil {
		return path
	}
	return rel
}
