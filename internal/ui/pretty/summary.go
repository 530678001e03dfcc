package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/htmltomd/pkg/runner"
)

const summaryDividerWidth = 40

// FormatSummaryOneLine formats run statistics as a single line, e.g.
// "12 files converted, 3.4 KiB written, 1 error".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No files to convert") + "\n"
	}

	fileWord := "files"
	if stats.FilesConverted == 1 {
		fileWord = "file"
	}
	parts := []string{fmt.Sprintf("%d %s converted", stats.FilesConverted, fileWord)}

	if stats.BytesWritten > 0 {
		parts = append(parts, fmt.Sprintf("%s written", formatBytes(stats.BytesWritten)))
	}

	if stats.FilesErrored > 0 {
		errWord := "errors"
		if stats.FilesErrored == 1 {
			errWord = "error"
		}
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d %s", stats.FilesErrored, errWord)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a multi-line summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(s.SummaryTitle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", summaryDividerWidth))
	b.WriteString("\n")

	b.WriteString("  Files discovered: " + s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	b.WriteString("  Files converted:  " + s.SummaryValue.Render(strconv.Itoa(stats.FilesConverted)) + "\n")
	b.WriteString("  Bytes written:    " + s.SummaryValue.Render(formatBytes(stats.BytesWritten)) + "\n")

	if stats.FilesErrored > 0 {
		b.WriteString("  Files errored:    " + s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	b.WriteString("\n")
	if stats.FilesErrored > 0 {
		b.WriteString(s.Failure.Render("Conversion completed with errors"))
	} else {
		b.WriteString(s.Success.Render("Conversion succeeded"))
	}
	b.WriteString("\n")

	return b.String()
}

func formatBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := int64(n) / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
