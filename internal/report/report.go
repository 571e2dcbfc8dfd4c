package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"cutlog/internal/changelog"
	"cutlog/internal/edl"
	"cutlog/internal/grouping"
	"cutlog/internal/stats"
	"cutlog/internal/timecode"
)

// Format selects the rendering backend for a report.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// Events renders the event collection. Durations come from the record range
// at the given frame rate; unreadable timecodes render as the N/A sentinel.
func Events(events []edl.Event, fps float64, format Format) string {
	headers := []string{"#", "Record In", "Record Out", "Duration", "Clip Name", "Source File", "Reel", "Channels", "Transition", "Category", "Subtitles"}
	rows := make([][]string, 0, len(events))
	for _, event := range events {
		duration := edl.Unknown
		if frames, err := timecode.DurationFrames(fps, event.RecordIn, event.RecordOut); err == nil {
			duration = timecode.FromFrames(fps, frames).String()
		}
		number := fmt.Sprintf("%d", event.Number)
		if event.Duplicate {
			number += " *"
		}
		rows = append(rows, []string{
			number,
			event.RecordIn,
			event.RecordOut,
			duration,
			event.ClipName,
			event.SourceFile,
			event.Reel,
			event.AudioLabel(),
			event.Transition,
			event.CategoryLabel(),
			event.Subtitles,
		})
	}
	return render(headers, rows, []columnAlignment{alignRight}, format)
}

// Groups renders the temporal group summary.
func Groups(groups []grouping.Group, format Format) string {
	headers := []string{"Group", "Timecode In", "Timecode Out", "Duration", "Events", "Range", "Unique Clips", "Source Files", "Subtitles"}
	rows := make([][]string, 0, len(groups))
	for _, group := range groups {
		rows = append(rows, []string{
			fmt.Sprintf("%d", group.Number),
			group.TimecodeIn,
			group.TimecodeOut,
			group.Duration,
			fmt.Sprintf("%d", group.EventCount),
			fmt.Sprintf("#%d-#%d", group.FirstEvent, group.LastEvent),
			fmt.Sprintf("%d", group.UniqueClips),
			strings.Join(group.SourceFiles, ", "),
			group.Subtitles,
		})
	}
	return render(headers, rows, []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight}, format)
}

// Changes renders the full changelog: one row per added, removed, and
// modified event.
func Changes(cl changelog.Changelog, format Format) string {
	headers := []string{"Change", "Event", "Record In", "Record Out", "Clip Name", "Detail"}
	rows := make([][]string, 0, len(cl.Added)+len(cl.Removed)+len(cl.Modified))
	for _, event := range cl.Added {
		rows = append(rows, []string{changelog.KindAdded, fmt.Sprintf("%d", event.Number), event.RecordIn, event.RecordOut, event.ClipName, event.SourceFile})
	}
	for _, event := range cl.Removed {
		rows = append(rows, []string{changelog.KindRemoved, fmt.Sprintf("%d", event.Number), event.RecordIn, event.RecordOut, event.ClipName, event.SourceFile})
	}
	for _, change := range cl.Modified {
		detail := fmt.Sprintf("%s -> %s", change.OldSource, change.NewSource)
		rows = append(rows, []string{change.Kind, fmt.Sprintf("%d", change.EventNumber), change.RecordIn, change.RecordOut, change.NewClip, detail})
	}
	return render(headers, rows, []columnAlignment{alignLeft, alignRight}, format)
}

// Summary renders the changelog count block.
func Summary(cl changelog.Changelog) string {
	headers := []string{"Metric", "Count"}
	rows := [][]string{
		{"Original events", fmt.Sprintf("%d", len(cl.Original))},
		{"Revised events", fmt.Sprintf("%d", len(cl.Revised))},
		{"Added", fmt.Sprintf("%d", len(cl.Added))},
		{"Removed", fmt.Sprintf("%d", len(cl.Removed))},
		{"Modified", fmt.Sprintf("%d", len(cl.Modified))},
	}
	return render(headers, rows, []columnAlignment{alignLeft, alignRight}, FormatTable)
}

// Stats renders the statistics summary followed by the category, transition,
// and source-FPS distributions.
func Stats(s stats.Statistics, format Format) string {
	headers := []string{"Metric", "Value"}
	rows := [][]string{
		{"Total events", fmt.Sprintf("%d", s.TotalEvents)},
		{"Video events", fmt.Sprintf("%d", s.VideoEvents)},
		{"Audio-only events", fmt.Sprintf("%d", s.AudioOnlyEvents)},
		{"Duplicate events", fmt.Sprintf("%d", s.DuplicateEvents)},
		{"Unique clip names", fmt.Sprintf("%d", s.UniqueClipNames)},
		{"Unique source files", fmt.Sprintf("%d", s.UniqueSourceFiles)},
		{"Unique reels", fmt.Sprintf("%d", s.UniqueReels)},
	}
	if s.TimelineDuration != "" {
		rows = append(rows,
			[]string{"Timeline duration", s.TimelineDuration},
			[]string{"Average shot", s.AverageShot},
			[]string{"Shortest shot", s.ShortestShot},
			[]string{"Longest shot", s.LongestShot},
		)
	}
	rows = append(rows, distributionRows("Category", s.CategoryCounts)...)
	rows = append(rows, distributionRows("Transition", s.TransitionCounts)...)
	rows = append(rows, distributionRows("Source FPS", s.FPSCounts)...)
	return render(headers, rows, []columnAlignment{alignLeft, alignRight}, format)
}

func distributionRows(label string, counts map[string]int) [][]string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{fmt.Sprintf("%s: %s", label, name), fmt.Sprintf("%d", counts[name])})
	}
	return rows
}

func render(headers []string, rows [][]string, aligns []columnAlignment, format Format) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	if format == FormatCSV {
		return tw.RenderCSV()
	}
	return tw.Render()
}
