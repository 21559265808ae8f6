package output

import (
	"encoding/json"
	"io"

	"github.com/bgricker/citrend/internal/report"
	"github.com/bgricker/citrend/internal/timing"
)

// JSONRenderer emits structured timing data.
type JSONRenderer struct {
	out io.Writer
}

// NewJSON creates a JSON renderer writing to out.
func NewJSON(out io.Writer) *JSONRenderer {
	return &JSONRenderer{out: out}
}

// Report captures the JSON output schema.
type Report struct {
	Repo     string    `json:"repo"`
	PR       int       `json:"pr"`
	Workflow string    `json:"workflow"`
	Job      string    `json:"job"`
	Step     string    `json:"step,omitempty"`
	Total    bool      `json:"total"`
	Rows     []RowJSON `json:"rows"`
}

// RowJSON is one run's timing entry. Seconds fields are null when the
// job/step did not run or lacked timestamps.
type RowJSON struct {
	RunNumber       int    `json:"run_number"`
	Commit          string `json:"commit"`
	Date            string `json:"date"`
	DurationSeconds *int64 `json:"duration_seconds"`
	Duration        string `json:"duration,omitempty"`
	DeltaSeconds    *int64 `json:"delta_seconds"`
	Delta           string `json:"delta,omitempty"`
	Message         string `json:"message"`
}

// Render encodes the rows as an indented JSON report.
func (j *JSONRenderer) Render(meta report.Meta, rows []report.Row) error {
	out := Report{
		Repo:     meta.Repo,
		PR:       meta.PR,
		Workflow: meta.Workflow,
		Job:      meta.Job,
		Step:     meta.Step,
		Total:    meta.Total,
		Rows:     make([]RowJSON, 0, len(rows)),
	}
	for _, row := range rows {
		entry := RowJSON{
			RunNumber: row.RunNumber,
			Commit:    timing.ShortSHA(row.SHA),
			Date:      row.Date.UTC().Format("2006-01-02"),
			Message:   firstLine(row.Message),
		}
		if row.HasDuration {
			secs := int64(row.Duration.Seconds())
			entry.DurationSeconds = &secs
			entry.Duration = timing.FormatDuration(row.Duration)
		}
		if row.HasDelta {
			secs := int64(row.Delta.Seconds())
			entry.DeltaSeconds = &secs
			entry.Delta = timing.FormatDelta(row.Delta)
		}
		out.Rows = append(out.Rows, entry)
	}

	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
