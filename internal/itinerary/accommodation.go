package itinerary

import (
	"fmt"
	"strings"

	"ITINERARY_BACK-END/internal/models"
)

const unnamedRoom = "Unnamed Room"

// AccommodationNameKey is the only join key between an accommodation and its
// room configurations: the name lowercased and trimmed. booking_reference is
// not consulted even though both tables carry it. An empty key never matches
// anything.
func AccommodationNameKey(name *string) string {
	if name == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*name))
}

// Accommodations produces one event per accommodation row, each carrying the
// room configurations whose name key matches. Rooms is never nil.
func (t *Transformer) Accommodations(accs []models.Accommodation, rooms []models.RoomConfiguration) []*AccommodationEvent {
	byName := make(map[string][]models.RoomConfiguration)
	for _, rc := range rooms {
		key := AccommodationNameKey(rc.AccommodationName)
		if key == "" {
			continue
		}
		byName[key] = append(byName[key], rc)
	}

	out := make([]*AccommodationEvent, 0, len(accs))
	for _, acc := range accs {
		event := t.accommodation(acc)
		if key := AccommodationNameKey(acc.AccommodationName); key != "" {
			for _, rc := range byName[key] {
				event.Rooms = append(event.Rooms, RoomDetail{
					ID:               rc.ID,
					RoomType:         rc.RoomType,
					Participants:     t.dir.Resolve(rc.Participants),
					BookingReference: rc.BookingReference,
				})
			}
		}
		numberDuplicateRooms(event.Rooms)
		out = append(out, event)
	}
	return out
}

func (t *Transformer) accommodation(acc models.Accommodation) *AccommodationEvent {
	return &AccommodationEvent{
		Base: Base{
			ID:               acc.ID,
			Type:             TypeAccommodation,
			Description:      firstNonEmpty("Accommodation", acc.AccommodationName, acc.HotelName),
			BookingReference: nonEmpty(acc.BookingReference),
			Participants:     t.dir.Resolve(acc.Participants),
			Location:         nonEmpty(acc.HotelCity),
			Notes:            nonEmpty(acc.HotelAddress),
			StartDate:        t.dates.Parse(acc.DateCheckInLocal),
			EndDate:          t.dates.Parse(acc.DateCheckOut),
		},
		CheckInUniversal:  t.dates.ParseUniversal(acc.DateCheckInUTC),
		CheckOutUniversal: t.dates.ParseUniversal(acc.DateCheckOutUTC),
		HotelPhotoURL:     nonEmpty(acc.HotelPhotoURL),
		BreakfastIncluded: acc.BreakfastIncluded != nil && strings.EqualFold(strings.TrimSpace(*acc.BreakfastIncluded), "Y"),
		Features: Features{
			Gym:         flag(acc.AdditionalFeaturesGym),
			Cafe:        flag(acc.AdditionalFeaturesCafe),
			Restaurant:  flag(acc.AdditionalFeaturesRestaurant),
			Shopping:    flag(acc.AdditionalFeaturesShopping),
			FoodSavoury: flag(acc.AdditionalFeaturesSavoury),
			FoodSweet:   flag(acc.AdditionalFeaturesSweet),
		},
		Rooms: []RoomDetail{},
	}
}

// numberDuplicateRooms suffixes every room whose label occurs more than once
// with its 1-based occurrence index, in slice order. A missing label counts
// as "Unnamed Room".
func numberDuplicateRooms(rooms []RoomDetail) {
	if len(rooms) < 2 {
		return
	}

	counts := make(map[string]int)
	for _, r := range rooms {
		counts[roomLabel(r.RoomType)]++
	}

	seen := make(map[string]int)
	for i := range rooms {
		label := roomLabel(rooms[i].RoomType)
		if counts[label] < 2 {
			continue
		}
		seen[label]++
		numbered := fmt.Sprintf("%s %d", label, seen[label])
		rooms[i].RoomType = &numbered
	}
}

func roomLabel(roomType *string) string {
	if roomType == nil || *roomType == "" {
		return unnamedRoom
	}
	return *roomType
}

func flag(b *bool) bool {
	return b != nil && *b
}
