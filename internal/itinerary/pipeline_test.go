package itinerary

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"ITINERARY_BACK-END/internal/metrics"
	"ITINERARY_BACK-END/internal/models"
)

// fakeSource serves fixed rows. A table listed in fail returns an error.
type fakeSource struct {
	participants []models.Participant
	flights      []models.Flight
	transfers    []models.Transfer
	tickets      []models.TransportTicket
	carHires     []models.CarHire
	accs         []models.Accommodation
	rooms        []models.RoomConfiguration
	activities   []models.Activity

	fail    map[string]bool
	panicOn string
}

var errTableUnavailable = errors.New("table unavailable")

func read[T any](s *fakeSource, table string, rows []T) ([]T, error) {
	if s.panicOn == table {
		panic("boom")
	}
	if s.fail[table] {
		return nil, errTableUnavailable
	}
	return rows, nil
}

func (s *fakeSource) Participants(context.Context) ([]models.Participant, error) {
	return read(s, "participants", s.participants)
}
func (s *fakeSource) Flights(context.Context) ([]models.Flight, error) {
	return read(s, "flights", s.flights)
}
func (s *fakeSource) Transfers(context.Context) ([]models.Transfer, error) {
	return read(s, "transfers", s.transfers)
}
func (s *fakeSource) TransportTickets(context.Context) ([]models.TransportTicket, error) {
	return read(s, "transport_tickets", s.tickets)
}
func (s *fakeSource) CarHires(context.Context) ([]models.CarHire, error) {
	return read(s, "car_hires", s.carHires)
}
func (s *fakeSource) Accommodations(context.Context) ([]models.Accommodation, error) {
	return read(s, "accomodation", s.accs)
}
func (s *fakeSource) RoomConfigurations(context.Context) ([]models.RoomConfiguration, error) {
	return read(s, "room_configuration", s.rooms)
}
func (s *fakeSource) Activities(context.Context) ([]models.Activity, error) {
	return read(s, "activities", s.activities)
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		participants: []models.Participant{
			{ID: 1, ParticipantName: strp("Sarah Jones"), ParticipantsInitials: strp("SJ")},
			{ID: 2, ParticipantName: strp("Liam Jones"), ParticipantsInitials: strp("LJ")},
		},
		flights: []models.Flight{
			{ID: 1, DepartureCity: strp("Paris"), ArrivalCity: strp("Rome"), DepartureTimeLocal: strp("2025-06-19 08:00"), Passengers: strp("SJ,LJ")},
		},
		transfers: []models.Transfer{
			{ID: 2, TransferName: strp("Eurostar (business class)"), BookingReference: strp("EU1"), DepartureTimeLocal: strp("18/06/2025 @ 13:20")},
		},
		tickets: []models.TransportTicket{
			{ID: 1, BookingReference: strp("EU1"), Passenger: strp("SJ"), TicketNumber: strp("T-1")},
		},
		carHires: []models.CarHire{
			{ID: 3, PickupLocation: strp("FCO"), DropoffLocation: strp("NAP"), Driver: strp("SJ")},
			{ID: 4, PickupLocation: strp("FCO"), DropoffLocation: strp("NAP"), Driver: strp("LJ")},
		},
		accs: []models.Accommodation{
			{ID: 5, AccommodationName: strp("Hotel Lux"), DateCheckInLocal: strp("2025-06-19 15:00")},
		},
		rooms: []models.RoomConfiguration{
			{ID: 1, AccommodationName: strp("hotel lux"), RoomType: strp("Double")},
		},
		activities: []models.Activity{
			{ID: 6, ActivityName: strp("Vatican tour"), StartTimeLocal: strp("2025-06-20 09:00")},
		},
		fail: map[string]bool{},
	}
}

type eventKey struct {
	Type EventType
	ID   int64
}

func keys(events []Event) []eventKey {
	out := make([]eventKey, 0, len(events))
	for _, e := range events {
		out = append(out, eventKey{e.EventType(), e.EventID()})
	}
	return out
}

func TestPipelineAllCategories(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	p := NewPipeline(newFakeSource(), time.UTC, nil, m)

	res := p.Fetch(context.Background(), CategoryAll)

	want := []eventKey{
		{TypeFlight, 1},
		{TypeTransfer, 2},
		{TypeCarHire, 3},
		{TypeAccommodation, 5},
		{TypeActivity, 6},
	}
	if got := keys(res.Events); !reflect.DeepEqual(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
	if res.Directory.Len() != 2 {
		t.Errorf("directory has %d profiles, want 2", res.Directory.Len())
	}

	if got := testutil.ToFloat64(m.Events.WithLabelValues("car_hire")); got != 1 {
		t.Errorf("car_hire gauge = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.PipelineDuration); got != 1 {
		t.Errorf("pipeline duration series = %d, want 1", got)
	}
}

func TestPipelineCategories(t *testing.T) {
	tests := []struct {
		category Category
		want     []eventKey
	}{
		{CategoryFlightsTransfers, []eventKey{{TypeFlight, 1}, {TypeTransfer, 2}, {TypeCarHire, 3}}},
		{CategoryAccommodation, []eventKey{{TypeAccommodation, 5}}},
		{CategoryActivities, []eventKey{{TypeActivity, 6}}},
		{CategoryParticipants, []eventKey{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			res := NewPipeline(newFakeSource(), nil, nil, nil).Fetch(context.Background(), tt.category)
			if got := keys(res.Events); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("events = %v, want %v", got, tt.want)
			}
			if res.Directory.Len() != 2 {
				t.Errorf("directory not built for %q", tt.category)
			}
		})
	}
}

func TestPipelineTicketFailureKeepsTransfers(t *testing.T) {
	src := newFakeSource()
	src.fail["transport_tickets"] = true
	m := metrics.New(prometheus.NewRegistry())

	res := NewPipeline(src, nil, nil, m).Fetch(context.Background(), CategoryFlightsTransfers)

	var transfer *TransferEvent
	for _, e := range res.Events {
		if tr, ok := e.(*TransferEvent); ok {
			transfer = tr
		}
	}
	if transfer == nil {
		t.Fatal("transfer missing after ticket fetch failure")
	}
	if transfer.TransportTickets == nil || len(transfer.TransportTickets) != 0 {
		t.Errorf("TransportTickets = %#v, want empty", transfer.TransportTickets)
	}
	if got := testutil.ToFloat64(m.FetchFailures.WithLabelValues("transport_tickets")); got != 1 {
		t.Errorf("fetch failures = %v, want 1", got)
	}
}

func TestPipelineRoomFailureKeepsAccommodation(t *testing.T) {
	src := newFakeSource()
	src.fail["room_configuration"] = true

	res := NewPipeline(src, nil, nil, nil).Fetch(context.Background(), CategoryAccommodation)
	if len(res.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(res.Events))
	}
	acc := res.Events[0].(*AccommodationEvent)
	if acc.Rooms == nil || len(acc.Rooms) != 0 {
		t.Errorf("Rooms = %#v, want empty non-nil", acc.Rooms)
	}
}

func TestPipelineSiblingFailuresAreIsolated(t *testing.T) {
	src := newFakeSource()
	src.fail["flights"] = true
	src.fail["accomodation"] = true

	res := NewPipeline(src, nil, nil, nil).Fetch(context.Background(), CategoryAll)
	want := []eventKey{{TypeTransfer, 2}, {TypeCarHire, 3}, {TypeActivity, 6}}
	if got := keys(res.Events); !reflect.DeepEqual(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestPipelineParticipantFailureReturnsEmpty(t *testing.T) {
	src := newFakeSource()
	src.fail["participants"] = true

	res := NewPipeline(src, nil, nil, nil).Fetch(context.Background(), CategoryAll)
	if res.Events == nil || len(res.Events) != 0 {
		t.Errorf("events = %v, want empty", res.Events)
	}
	if res.Directory == nil || res.Directory.Len() != 0 {
		t.Errorf("directory = %v, want empty", res.Directory)
	}
}

func TestPipelineRecoversFromPanic(t *testing.T) {
	src := newFakeSource()
	src.panicOn = "participants"

	res := NewPipeline(src, nil, nil, nil).Fetch(context.Background(), CategoryAll)
	if len(res.Events) != 0 || res.Directory.Len() != 0 {
		t.Errorf("got %d events and %d profiles, want empty result", len(res.Events), res.Directory.Len())
	}
}

func TestPipelinePanickingReadContributesNoRows(t *testing.T) {
	tests := []struct {
		table    string
		category Category
		want     []eventKey
	}{
		{"flights", CategoryFlightsTransfers, []eventKey{{TypeTransfer, 2}, {TypeCarHire, 3}}},
		{"car_hires", CategoryFlightsTransfers, []eventKey{{TypeFlight, 1}, {TypeTransfer, 2}}},
		{"accomodation", CategoryAccommodation, []eventKey{}},
		{"activities", CategoryActivities, []eventKey{}},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			src := newFakeSource()
			src.panicOn = tt.table
			m := metrics.New(prometheus.NewRegistry())

			res := NewPipeline(src, nil, nil, m).Fetch(context.Background(), tt.category)
			if got := keys(res.Events); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("events = %v, want %v", got, tt.want)
			}
			if res.Directory.Len() != 2 {
				t.Errorf("directory has %d profiles, want 2", res.Directory.Len())
			}
			if got := testutil.ToFloat64(m.FetchFailures.WithLabelValues(tt.table)); got != 1 {
				t.Errorf("fetch failures = %v, want 1", got)
			}
		})
	}
}

func TestPipelineEventGaugeOnlyForFullItinerary(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	p := NewPipeline(newFakeSource(), time.UTC, nil, m)

	p.Fetch(context.Background(), CategoryAll)
	p.Fetch(context.Background(), CategoryActivities)

	if got := testutil.ToFloat64(m.Events.WithLabelValues("flight")); got != 1 {
		t.Errorf("flight gauge = %v after an activities fetch, want 1", got)
	}
	if got := testutil.ToFloat64(m.Events.WithLabelValues("activity")); got != 1 {
		t.Errorf("activity gauge = %v, want 1", got)
	}
}

func TestPipelineIsIdempotent(t *testing.T) {
	p := NewPipeline(newFakeSource(), time.UTC, nil, nil)
	p.SetFetchLimit(1)

	first := p.Fetch(context.Background(), CategoryAll)
	second := p.Fetch(context.Background(), CategoryAll)

	if !reflect.DeepEqual(first.Events, second.Events) {
		t.Error("events differ between runs on unchanged data")
	}
	if !reflect.DeepEqual(first.Directory.Profiles(), second.Directory.Profiles()) {
		t.Error("directories differ between runs on unchanged data")
	}
}

func TestParseCategory(t *testing.T) {
	for _, s := range []string{"", "flights-transfers", "accommodation", "activities", "participants"} {
		if got, err := ParseCategory(s); err != nil || string(got) != s {
			t.Errorf("ParseCategory(%q) = %q, %v", s, got, err)
		}
	}

	if _, err := ParseCategory("hotels"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("ParseCategory(hotels) error = %v, want ErrUnknownCategory", err)
	}
}
