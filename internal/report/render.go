package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// maxErrorRecords bounds how many per-file failures the summary prints; the
// rest collapse into a count.
const maxErrorRecords = 10

var (
	savedAccent = color.New(color.FgGreen)
	grewAccent  = color.New(color.FgYellow)
	dimAccent   = color.New(color.FgHiBlack)
)

// Render writes the end-of-run summary tables to w.
func Render(w io.Writer, summary Summary) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows([]table.Row{
		{"Total files", humanize.Comma(int64(summary.Total))},
		{"Processed", humanize.Comma(int64(summary.Processed))},
		{"Skipped", humanize.Comma(int64(summary.Skipped))},
		{"Errors", humanize.Comma(int64(summary.Errored))},
		{"Original size", FormatBytes(summary.OriginalBytes)},
		{"WebP size", FormatBytes(summary.OptimizedBytes)},
		{"Space saved", savedCell(summary)},
		{"Elapsed", fmt.Sprintf("%.1fs", summary.ElapsedTime.Seconds())},
		{"Throughput", fmt.Sprintf("%.1f files/s", summary.Throughput)},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	tw.Render()

	renderErrors(w, summary)
	fmt.Fprintln(w, dimAccent.Sprintf("run %s", summary.RunID))
}

func savedCell(summary Summary) string {
	cell := fmt.Sprintf("%s (%.1f%%)", FormatBytes(summary.SavedBytes), summary.PercentSaved)
	if summary.SavedBytes < 0 {
		return grewAccent.Sprint(cell)
	}
	return savedAccent.Sprint(cell)
}

func renderErrors(w io.Writer, summary Summary) {
	if len(summary.Errors) == 0 {
		return
	}

	shown := summary.Errors
	if len(shown) > maxErrorRecords {
		shown = shown[:maxErrorRecords]
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Error"})
	for _, record := range shown {
		tw.AppendRow(table.Row{record.File, record.Message})
	}
	tw.Render()

	if remaining := len(summary.Errors) - len(shown); remaining > 0 {
		fmt.Fprintf(w, "... and %d more error", remaining)
		if remaining != 1 {
			fmt.Fprint(w, "s")
		}
		fmt.Fprintln(w)
	}
}
