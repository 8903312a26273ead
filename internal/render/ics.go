// Package render turns normalized itinerary events into calendar files and
// terminal tables.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"ITINERARY_BACK-END/internal/itinerary"
)

const productID = "-//itinerary-backend//itinerary//EN"

// WriteICS encodes events as an iCalendar document. Events without a start
// date are skipped. Times are written in UTC. now stamps every VEVENT.
// With nothing to schedule it writes an empty VCALENDAR.
func WriteICS(w io.Writer, events []itinerary.Event, now time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for _, e := range events {
		b := e.Common()
		if b.StartDate == nil {
			continue
		}

		ev := ical.NewEvent()
		ev.Props.SetText(ical.PropUID, fmt.Sprintf("%s-%d@itinerary", b.Type, b.ID))
		ev.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
		ev.Props.SetDateTime(ical.PropDateTimeStart, b.StartDate.UTC())
		if b.EndDate != nil && b.EndDate.After(*b.StartDate) {
			ev.Props.SetDateTime(ical.PropDateTimeEnd, b.EndDate.UTC())
		}
		ev.Props.SetText(ical.PropSummary, b.Description)
		if b.Location != nil {
			ev.Props.SetText(ical.PropLocation, *b.Location)
		}
		if desc := eventDescription(b); desc != "" {
			ev.Props.SetText(ical.PropDescription, desc)
		}
		cal.Children = append(cal.Children, ev.Component)
	}

	// The encoder rejects a calendar without components.
	if len(cal.Children) == 0 {
		return writeEmptyCalendar(w)
	}
	return ical.NewEncoder(w).Encode(cal)
}

func writeEmptyCalendar(w io.Writer) error {
	_, err := io.WriteString(w, "BEGIN:VCALENDAR\r\n"+
		"VERSION:2.0\r\n"+
		"PRODID:"+productID+"\r\n"+
		"END:VCALENDAR\r\n")
	return err
}

func eventDescription(b *itinerary.Base) string {
	var lines []string
	if len(b.Participants) > 0 {
		lines = append(lines, "Participants: "+strings.Join(b.Participants, ", "))
	}
	if b.BookingReference != nil {
		lines = append(lines, "Booking reference: "+*b.BookingReference)
	}
	if b.Notes != nil {
		lines = append(lines, *b.Notes)
	}
	return strings.Join(lines, "\n")
}
