package itinerary

import (
	"sort"
	"time"
)

// EventType tags the variant of a normalized event.
type EventType string

const (
	TypeFlight        EventType = "flight"
	TypeTransfer      EventType = "transfer"
	TypeAccommodation EventType = "accommodation"
	TypeActivity      EventType = "activity"
	TypeCarHire       EventType = "car_hire"
	TypeUnknown       EventType = "unknown"
)

// Event is implemented by every normalized event variant.
type Event interface {
	EventID() int64
	EventType() EventType
	Common() *Base
}

// Base holds the fields every variant carries.
type Base struct {
	ID               int64      `json:"id"`
	Type             EventType  `json:"event_type"`
	Description      string     `json:"description"`
	BookingReference *string    `json:"booking_reference,omitempty"`
	Participants     []string   `json:"participants"`
	Location         *string    `json:"location,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
}

func (b *Base) EventID() int64       { return b.ID }
func (b *Base) EventType() EventType { return b.Type }
func (b *Base) Common() *Base        { return b }

// Schedule is the leave/arrive pair carried by movement-like events.
type Schedule struct {
	LeaveTimeLocal      *time.Time `json:"leave_time_local,omitempty"`
	ArriveTimeLocal     *time.Time `json:"arrive_time_local,omitempty"`
	LeaveTimeUniversal  *time.Time `json:"leave_time_universal,omitempty"`
	ArriveTimeUniversal *time.Time `json:"arrive_time_universal,omitempty"`
}

type FlightEvent struct {
	Base
	Schedule
	Airline        *string `json:"airline,omitempty"`
	LeaveLocation  *string `json:"leave_location,omitempty"`
	ArriveLocation *string `json:"arrive_location,omitempty"`
	PhotoURL       *string `json:"photo_url,omitempty"`
}

// TicketDetail is one passenger's ticket attached to a transfer.
type TicketDetail struct {
	TicketType       string  `json:"ticket_type"`
	TicketNumber     string  `json:"ticket_number"`
	Passenger        string  `json:"passenger"`
	PassengerName    string  `json:"passenger_name"`
	BookingReference *string `json:"booking_reference,omitempty"`
}

type TransferEvent struct {
	Base
	Schedule
	LeaveLocation          *string        `json:"leave_location,omitempty"`
	ArriveLocation         *string        `json:"arrive_location,omitempty"`
	Company                *string        `json:"company,omitempty"`
	AdditionalTransferInfo *string        `json:"additional_transfer_info,omitempty"`
	PhotoURL               *string        `json:"photo_url,omitempty"`
	TransportTickets       []TicketDetail `json:"transport_tickets"`
}

type ActivityEvent struct {
	Base
	Schedule
	ActivityName *string `json:"activity_name,omitempty"`
	City         *string `json:"city,omitempty"`
	PhotoURL     *string `json:"photo_url,omitempty"`
	// Raw strings as entered, kept for timeline labels.
	StartTimeText *string `json:"start_time_local,omitempty"`
	EndTimeText   *string `json:"end_time_local,omitempty"`
}

// RoomDetail is a room configuration attached to an accommodation.
type RoomDetail struct {
	ID               int64    `json:"id"`
	RoomType         *string  `json:"room_type"`
	Participants     []string `json:"participants"`
	BookingReference *string  `json:"booking_reference,omitempty"`
}

// Features are the amenity flags shown on accommodation cards.
type Features struct {
	Gym         bool `json:"gym"`
	Cafe        bool `json:"cafe"`
	Restaurant  bool `json:"restaurant"`
	Shopping    bool `json:"shopping"`
	FoodSavoury bool `json:"food_savoury"`
	FoodSweet   bool `json:"food_sweet"`
}

type AccommodationEvent struct {
	Base
	CheckInUniversal  *time.Time   `json:"leave_time_universal,omitempty"`
	CheckOutUniversal *time.Time   `json:"arrive_time_universal,omitempty"`
	HotelPhotoURL     *string      `json:"hotel_photo_url,omitempty"`
	BreakfastIncluded bool         `json:"breakfast_included"`
	Features          Features     `json:"features"`
	Rooms             []RoomDetail `json:"rooms"`
}

// CarDetail is one car inside a grouped car hire.
type CarDetail struct {
	ID               int64      `json:"id"`
	CarName          string     `json:"car_name"`
	Driver           *string    `json:"driver"`
	Passengers       []string   `json:"passengers"`
	BookingReference *string    `json:"booking_reference"`
	PickupLocation   *string    `json:"pickup_location"`
	DropoffLocation  *string    `json:"dropoff_location"`
	CityName         *string    `json:"city_name"`
	PickupTimeLocal  *time.Time `json:"pickup_time_local"`
	DropoffTimeLocal *time.Time `json:"dropoff_time_local"`
	CarPhotoURL      *string    `json:"car_photo_url"`
}

type CarHireEvent struct {
	Base
	Schedule
	City *string     `json:"city,omitempty"`
	Cars []CarDetail `json:"cars"`
}

// SortByStart orders events for timeline display: by start date, events
// without one last, ties broken by type then id. The slice is sorted in place.
func SortByStart(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i].Common(), events[j].Common()
		switch {
		case a.StartDate == nil && b.StartDate == nil:
		case a.StartDate == nil:
			return false
		case b.StartDate == nil:
			return true
		case !a.StartDate.Equal(*b.StartDate):
			return a.StartDate.Before(*b.StartDate)
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.ID < b.ID
	})
}

// CountByType tallies events per event_type.
func CountByType(events []Event) map[string]int {
	counts := map[string]int{
		string(TypeFlight):        0,
		string(TypeTransfer):      0,
		string(TypeAccommodation): 0,
		string(TypeActivity):      0,
		string(TypeCarHire):       0,
	}
	for _, e := range events {
		counts[string(e.EventType())]++
	}
	return counts
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func firstNonEmpty(fallback string, values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}
	return fallback
}

func firstNonEmptyPtr(values ...*string) *string {
	for _, v := range values {
		if v != nil && *v != "" {
			return v
		}
	}
	return nil
}
