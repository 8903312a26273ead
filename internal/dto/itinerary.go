package dto

import "ITINERARY_BACK-END/internal/itinerary"

// ItineraryResponse is returned by GET /api/itinerary. Events are in
// category order: flights, transfers, car hires, accommodation, activities.
type ItineraryResponse struct {
	Events       []itinerary.Event   `json:"events" swaggertype:"array,object"`
	Participants []itinerary.Profile `json:"participants"`
}

// ParticipantsResponse is returned by GET /api/participants
type ParticipantsResponse struct {
	Participants []itinerary.Profile `json:"participants"`
}
