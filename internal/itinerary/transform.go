package itinerary

import (
	"regexp"
	"strings"

	"ITINERARY_BACK-END/internal/models"
)

// trailingParens matches a parenthesized suffix such as " (business class)".
var trailingParens = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// Transformer maps raw rows to events. It holds the date parser and the
// directory for one pipeline run.
type Transformer struct {
	dates *DateParser
	dir   *Directory
}

func NewTransformer(dates *DateParser, dir *Directory) *Transformer {
	if dir == nil {
		dir = NewDirectory()
	}
	return &Transformer{dates: dates, dir: dir}
}

// Directory returns the participant directory the transformer resolves against.
func (t *Transformer) Directory() *Directory {
	return t.dir
}

func (t *Transformer) Flight(raw models.Flight) *FlightEvent {
	leave := t.dates.Parse(raw.DepartureTimeLocal)
	arrive := t.dates.Parse(raw.ArrivalTimeLocal)

	return &FlightEvent{
		Base: Base{
			ID:               raw.ID,
			Type:             TypeFlight,
			Description:      firstNonEmpty("Flight", raw.FlightNumber),
			BookingReference: nonEmpty(raw.BookingReference),
			Participants:     t.dir.Resolve(raw.Passengers),
			Location:         nonEmpty(raw.ArrivalCity),
			StartDate:        leave,
			EndDate:          arrive,
		},
		Schedule: Schedule{
			LeaveTimeLocal:      leave,
			ArriveTimeLocal:     arrive,
			LeaveTimeUniversal:  t.dates.ParseUniversal(raw.DepartureTimeUTC),
			ArriveTimeUniversal: t.dates.ParseUniversal(raw.ArrivalTimeUTC),
		},
		Airline:        nonEmpty(raw.FlightNumber),
		LeaveLocation:  nonEmpty(raw.DepartureCity),
		ArriveLocation: nonEmpty(raw.ArrivalCity),
		PhotoURL:       nonEmpty(raw.FlightPhotoURL),
	}
}

// Ticket maps one transport ticket row. The passenger column holds initials.
func (t *Transformer) Ticket(raw models.TransportTicket) TicketDetail {
	name := "Unknown Passenger"
	if resolved := t.dir.Resolve(raw.Passenger); len(resolved) > 0 && resolved[0] != "" {
		name = resolved[0]
	} else if raw.Passenger != nil && *raw.Passenger != "" {
		name = *raw.Passenger
	}

	detail := TicketDetail{
		TicketType:       "Train",
		PassengerName:    name,
		BookingReference: nonEmpty(raw.BookingReference),
	}
	if raw.TicketNumber != nil {
		detail.TicketNumber = *raw.TicketNumber
	}
	if raw.Passenger != nil {
		detail.Passenger = *raw.Passenger
	}
	return detail
}

// Transfer maps one transfer row and attaches every ticket sharing its
// booking reference or its transfer name.
func (t *Transformer) Transfer(raw models.Transfer, tickets []models.TransportTicket) *TransferEvent {
	matched := []TicketDetail{}
	for _, ticket := range tickets {
		if ticketMatches(raw, ticket) {
			matched = append(matched, t.Ticket(ticket))
		}
	}

	description := firstNonEmpty("Transfer", raw.TransferName, raw.TransportMethod)
	description = strings.TrimSpace(trailingParens.ReplaceAllString(description, ""))

	leave := t.dates.Parse(raw.DepartureTimeLocal)
	arrive := t.dates.Parse(raw.ArrivalTimeLocal)

	return &TransferEvent{
		Base: Base{
			ID:               raw.ID,
			Type:             TypeTransfer,
			Description:      description,
			BookingReference: nonEmpty(raw.BookingReference),
			Participants:     t.dir.Resolve(raw.Participants),
			Location:         firstNonEmptyPtr(raw.ArrivalLocation, raw.DepartureLocation),
			StartDate:        leave,
			EndDate:          arrive,
		},
		Schedule: Schedule{
			LeaveTimeLocal:      leave,
			ArriveTimeLocal:     arrive,
			LeaveTimeUniversal:  t.dates.ParseUniversal(raw.DepartureTimeUTC),
			ArriveTimeUniversal: t.dates.ParseUniversal(raw.ArrivalTimeUTC),
		},
		LeaveLocation:          nonEmpty(raw.DepartureLocation),
		ArriveLocation:         nonEmpty(raw.ArrivalLocation),
		Company:                nonEmpty(raw.TransportMethod),
		AdditionalTransferInfo: nonEmpty(raw.Operator),
		PhotoURL:               nonEmpty(raw.TransferPhotoURL),
		TransportTickets:       matched,
	}
}

func ticketMatches(transfer models.Transfer, ticket models.TransportTicket) bool {
	if ref := nonEmpty(transfer.BookingReference); ref != nil {
		if ticket.BookingReference != nil && *ticket.BookingReference == *ref {
			return true
		}
	}
	if name := nonEmpty(transfer.TransferName); name != nil {
		if ticket.TransferName != nil && *ticket.TransferName == *name {
			return true
		}
	}
	return false
}

func (t *Transformer) Activity(raw models.Activity) *ActivityEvent {
	start := t.dates.Parse(raw.StartTimeLocal)
	end := t.dates.Parse(raw.EndTimeLocal)

	return &ActivityEvent{
		Base: Base{
			ID:               raw.ID,
			Type:             TypeActivity,
			Description:      firstNonEmpty("Activity", raw.ActivityName),
			BookingReference: nonEmpty(raw.BookingReference),
			Participants:     t.dir.Resolve(raw.Participants),
			Location:         firstNonEmptyPtr(raw.Location, raw.City),
			Notes:            nonEmpty(raw.AdditionalDetails),
			StartDate:        start,
			EndDate:          end,
		},
		Schedule: Schedule{
			LeaveTimeLocal:      start,
			ArriveTimeLocal:     end,
			LeaveTimeUniversal:  t.dates.ParseUniversal(raw.StartTimeUTC),
			ArriveTimeUniversal: t.dates.ParseUniversal(raw.EndTimeUTC),
		},
		ActivityName:  nonEmpty(raw.ActivityName),
		City:          nonEmpty(raw.City),
		PhotoURL:      nonEmpty(raw.ActivityPhotoURL),
		StartTimeText: nonEmpty(raw.StartTimeLocal),
		EndTimeText:   nonEmpty(raw.EndTimeLocal),
	}
}
