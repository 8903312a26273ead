package itinerary

import (
	"fmt"
	"strings"
	"time"

	"ITINERARY_BACK-END/internal/models"
)

// CarHireGroupKey derives the grouping key for a car-hire row:
// pickup_location|dropoff_location|pickup_time_local|dropoff_time_local,
// lowercased, with missing fields as empty strings. Fields are compared as
// written, untrimmed. Two unrelated bookings with identical locations and
// times share a key and are folded into one event.
func CarHireGroupKey(row models.CarHire) string {
	parts := []string{
		deref(row.PickupLocation),
		deref(row.DropoffLocation),
		deref(row.PickupTimeLocal),
		deref(row.DropoffTimeLocal),
	}
	return strings.ToLower(strings.Join(parts, "|"))
}

// carHireGroup accumulates one composite event.
type carHireGroup struct {
	event   *CarHireEvent
	members map[string]struct{}
}

// CarHires folds car-hire rows into one event per group key, in first-seen
// order. The first row of a group supplies the event id, booking reference
// and city. The event window is the earliest pickup and latest dropoff seen.
func (t *Transformer) CarHires(rows []models.CarHire) []*CarHireEvent {
	groups := make(map[string]*carHireGroup)
	var order []string

	for _, row := range rows {
		key := CarHireGroupKey(row)
		g, ok := groups[key]
		if !ok {
			g = &carHireGroup{
				event:   t.newCarHireEvent(row),
				members: make(map[string]struct{}),
			}
			groups[key] = g
			order = append(order, key)
		}
		t.addCar(g, row)
	}

	out := make([]*CarHireEvent, 0, len(order))
	for _, key := range order {
		out = append(out, groups[key].event)
	}
	return out
}

func (t *Transformer) newCarHireEvent(row models.CarHire) *CarHireEvent {
	city := "Multiple Cities"
	if row.CityName != nil && *row.CityName != "" {
		city = *row.CityName
	}
	return &CarHireEvent{
		Base: Base{
			ID:               row.ID,
			Type:             TypeCarHire,
			Description:      fmt.Sprintf("Car Hire in %s", city),
			BookingReference: nonEmpty(row.BookingReference),
			Participants:     []string{},
			Location:         nonEmpty(row.CityName),
		},
		City: nonEmpty(row.CityName),
		Cars: []CarDetail{},
	}
}

func (t *Transformer) addCar(g *carHireGroup, row models.CarHire) {
	event := g.event

	var driver *string
	if names := t.dir.Resolve(row.Driver); len(names) > 0 && names[0] != "" {
		driver = &names[0]
	}

	passengers := []string{}
	for _, p := range t.dir.Resolve(row.Passengers) {
		if driver != nil && p == *driver {
			continue
		}
		passengers = append(passengers, p)
	}

	pickup := t.dates.Parse(row.PickupTimeLocal)
	dropoff := t.dates.Parse(row.DropoffTimeLocal)

	event.Cars = append(event.Cars, CarDetail{
		ID:               row.ID,
		CarName:          fmt.Sprintf("Car %d", len(event.Cars)+1),
		Driver:           driver,
		Passengers:       passengers,
		BookingReference: nonEmpty(row.BookingReference),
		PickupLocation:   nonEmpty(row.PickupLocation),
		DropoffLocation:  nonEmpty(row.DropoffLocation),
		CityName:         nonEmpty(row.CityName),
		PickupTimeLocal:  pickup,
		DropoffTimeLocal: dropoff,
		CarPhotoURL:      nonEmpty(row.CarPhotoURL),
	})

	if driver != nil {
		g.addParticipant(*driver)
	}
	for _, p := range passengers {
		g.addParticipant(p)
	}

	if earlier(pickup, event.StartDate) {
		event.StartDate = pickup
		event.LeaveTimeLocal = pickup
	}
	if later(dropoff, event.EndDate) {
		event.EndDate = dropoff
		event.ArriveTimeLocal = dropoff
	}
	if u := t.dates.ParseUniversal(row.PickupTimeUTC); earlier(u, event.LeaveTimeUniversal) {
		event.LeaveTimeUniversal = u
	}
	if u := t.dates.ParseUniversal(row.DropoffTimeUTC); later(u, event.ArriveTimeUniversal) {
		event.ArriveTimeUniversal = u
	}
}

func (g *carHireGroup) addParticipant(name string) {
	if _, ok := g.members[name]; ok {
		return
	}
	g.members[name] = struct{}{}
	g.event.Participants = append(g.event.Participants, name)
}

// earlier reports whether candidate should replace the current minimum.
func earlier(candidate, current *time.Time) bool {
	return candidate != nil && (current == nil || candidate.Before(*current))
}

// later reports whether candidate should replace the current maximum.
func later(candidate, current *time.Time) bool {
	return candidate != nil && (current == nil || candidate.After(*current))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
