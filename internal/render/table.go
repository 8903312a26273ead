package render

import (
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"ITINERARY_BACK-END/internal/itinerary"
)

const (
	timeLayout     = "2006-01-02 15:04"
	maxColumnWidth = 48
)

var tableHeader = []string{"TYPE", "START", "END", "DESCRIPTION", "PARTICIPANTS"}

// WriteTable prints events as a column-aligned table. Times are shown in
// loc. Widths are measured in display cells so accented and wide names
// line up.
func WriteTable(w io.Writer, events []itinerary.Event, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}

	rows := [][]string{tableHeader}
	for _, e := range events {
		b := e.Common()
		rows = append(rows, []string{
			string(b.Type),
			formatTime(b.StartDate, loc),
			formatTime(b.EndDate, loc),
			runewidth.Truncate(b.Description, maxColumnWidth, "..."),
			runewidth.Truncate(strings.Join(b.Participants, ", "), maxColumnWidth, "..."),
		})
	}

	widths := make([]int, len(tableHeader))
	for _, row := range rows {
		for i, cell := range row {
			if width := runewidth.StringWidth(cell); width > widths[i] {
				widths[i] = width
			}
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			sb.WriteString(cell)
			if i == len(row)-1 {
				break
			}
			sb.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)+2))
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func formatTime(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "-"
	}
	return t.In(loc).Format(timeLayout)
}
