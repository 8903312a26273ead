package itinerary

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func at(hour int) *time.Time {
	t := time.Date(2025, 6, 19, hour, 0, 0, 0, time.UTC)
	return &t
}

func TestSortByStart(t *testing.T) {
	events := []Event{
		&ActivityEvent{Base: Base{ID: 1, Type: TypeActivity}},
		&FlightEvent{Base: Base{ID: 2, Type: TypeFlight, StartDate: at(10)}},
		&TransferEvent{Base: Base{ID: 3, Type: TypeTransfer, StartDate: at(8)}},
		&ActivityEvent{Base: Base{ID: 4, Type: TypeActivity, StartDate: at(10)}},
		&ActivityEvent{Base: Base{ID: 0, Type: TypeActivity, StartDate: at(10)}},
	}

	SortByStart(events)

	want := []eventKey{
		{TypeTransfer, 3},
		{TypeActivity, 0},
		{TypeActivity, 4},
		{TypeFlight, 2},
		{TypeActivity, 1},
	}
	if got := keys(events); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestCountByType(t *testing.T) {
	counts := CountByType([]Event{
		&FlightEvent{Base: Base{Type: TypeFlight}},
		&FlightEvent{Base: Base{Type: TypeFlight}},
		&CarHireEvent{Base: Base{Type: TypeCarHire}},
	})

	want := map[string]int{"flight": 2, "transfer": 0, "accommodation": 0, "activity": 0, "car_hire": 1}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("counts = %v, want %v", counts, want)
	}
}

func TestAccommodationEventJSON(t *testing.T) {
	b, err := json.Marshal(&AccommodationEvent{
		Base:  Base{ID: 1, Type: TypeAccommodation, Description: "Hotel Lux", Participants: []string{}},
		Rooms: []RoomDetail{},
	})
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if got["event_type"] != "accommodation" {
		t.Errorf("event_type = %v", got["event_type"])
	}
	if rooms, ok := got["rooms"].([]any); !ok || len(rooms) != 0 {
		t.Errorf("rooms = %v, want []", got["rooms"])
	}
	if _, ok := got["start_date"]; ok {
		t.Error("start_date should be omitted when unknown")
	}
}
