package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bgricker/citrend/internal/report"
	"github.com/bgricker/citrend/internal/timing"
)

// Column widths are fixed; over-long messages extend the line rather than
// wrapping.
const (
	colRun      = 6
	colCommit   = 9
	colDate     = 12
	colDuration = 10
	colDelta    = 9
	colMessage  = 80

	maxMessage = 80

	ruleWidth = colRun + colCommit + colDate + colDuration + colDelta + colMessage + 5
)

// Table renders timing rows as a fixed-width table. Styling degrades to
// plain text when the writer is not a terminal.
type Table struct {
	out    io.Writer
	title  lipgloss.Style
	faster lipgloss.Style
	slower lipgloss.Style
}

// NewTable creates a table renderer writing to out.
func NewTable(out io.Writer) *Table {
	r := lipgloss.NewRenderer(out)
	return &Table{
		out:    out,
		title:  r.NewStyle().Bold(true),
		faster: r.NewStyle().Foreground(lipgloss.Color("2")),
		slower: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Render emits the title, summary, header, rule, and one line per row.
func (t *Table) Render(meta report.Meta, rows []report.Row) error {
	target := meta.Step
	if meta.Total {
		target = "Total time"
	}

	if _, err := fmt.Fprintln(t.out, t.title.Render(fmt.Sprintf("%s: %s", meta.Job, target))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(t.out, "PR #%d, %d runs\n\n", meta.PR, meta.RunCount); err != nil {
		return err
	}

	header := pad("Run", colRun) + " " + pad("Commit", colCommit) + " " + pad("Date", colDate) + " " +
		pad("Duration", colDuration) + " " + pad("Delta", colDelta) + " " + "Message"
	if _, err := fmt.Fprintln(t.out, header); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(t.out, strings.Repeat("-", ruleWidth)); err != nil {
		return err
	}

	for _, row := range rows {
		if _, err := fmt.Fprintln(t.out, t.formatRow(row)); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) formatRow(row report.Row) string {
	duration := "n/a"
	if row.HasDuration {
		duration = timing.FormatDuration(row.Duration)
	}

	delta := pad("-", colDelta)
	if row.HasDelta {
		delta = pad(timing.FormatDelta(row.Delta), colDelta)
		switch {
		case row.Delta > 0:
			delta = t.slower.Render(delta)
		case row.Delta < 0:
			delta = t.faster.Render(delta)
		}
	}

	return pad(fmt.Sprintf("#%d", row.RunNumber), colRun) + " " +
		pad(timing.ShortSHA(row.SHA), colCommit) + " " +
		pad(row.Date.UTC().Format("2006-01-02"), colDate) + " " +
		pad(duration, colDuration) + " " +
		delta + " " +
		truncate(firstLine(row.Message), maxMessage)
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		return s[:idx]
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
