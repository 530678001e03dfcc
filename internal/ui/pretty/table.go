package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/htmltomd/pkg/runner"
)

const (
	tablePadding     = 2
	tableColumnCount = 4 // FILE, STATUS, OUTPUT, BYTES
	minFileWidth     = 24
	minStatusWidth   = 5
	minOutputWidth   = 24
	minBytesWidth    = 7
	heavySeparator   = "="
	defaultTermWidth = 100
)

// TableFormatter formats a runner.Result as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, colorEnabled: colorEnabled, termWidth: termWidth}
}

type columnWidths struct {
	file   int
	status int
	output int
	bytes  int
}

// FormatTable formats runner results as a styled table, one row per file.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(result.Files)

	var b strings.Builder
	b.WriteString(t.formatHeader(widths))
	b.WriteString("\n")
	b.WriteString(t.formatSeparator(widths, heavySeparator))
	b.WriteString("\n")

	for _, file := range result.Files {
		b.WriteString(t.formatRow(file, widths))
		b.WriteString("\n")
	}

	b.WriteString(t.formatSeparator(widths, heavySeparator))
	b.WriteString("\n")

	return b.String()
}

func (t *TableFormatter) calculateColumnWidths(files []runner.FileOutcome) columnWidths {
	w := columnWidths{file: minFileWidth, status: minStatusWidth, output: minOutputWidth, bytes: minBytesWidth}

	for _, f := range files {
		if len(f.Path) > w.file {
			w.file = len(f.Path)
		}
		if len(f.OutputPath) > w.output {
			w.output = len(f.OutputPath)
		}
	}

	total := t.calculateTotalWidth(w)
	if total > t.termWidth {
		excess := total - t.termWidth
		w.file = max(minFileWidth, w.file-excess)
	}

	return w
}

func (t *TableFormatter) calculateTotalWidth(w columnWidths) int {
	return w.file + w.status + w.output + w.bytes + tablePadding*tableColumnCount
}

func (t *TableFormatter) formatHeader(w columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %*s ",
		w.file, "FILE", w.status, "STATUS", w.output, "OUTPUT", w.bytes, "BYTES")
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatSeparator(w columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, t.calculateTotalWidth(w)))
}

func (t *TableFormatter) formatRow(f runner.FileOutcome, w columnWidths) string {
	status := "OK"
	style := t.styles.TableOKRow
	if f.Error != nil {
		status = "ERROR"
		style = t.styles.TableErrorRow
	}

	content := fmt.Sprintf(" %-*s  %-*s  %-*s  %*s ",
		w.file, truncateFilePath(f.Path, w.file),
		w.status, status,
		w.output, truncateFilePath(f.OutputPath, w.output),
		w.bytes, strconv.Itoa(f.BytesWritten),
	)
	return style.Render(content)
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats) string {
	parts := []string{fmt.Sprintf("%d files converted", stats.FilesConverted)}
	if stats.FilesErrored > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d errors", stats.FilesErrored)))
	}
	return " " + strings.Join(parts, " | ")
}

func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
