package dto

import (
	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
)

// SuggestedActivityRequest is the body used to create or edit a suggestion
type SuggestedActivityRequest struct {
	ActivityName  string  `json:"activity_name" validate:"required,max=200"`
	Location      *string `json:"location,omitempty"`
	SuggestedDate *string `json:"suggested_date,omitempty"`
	Duration      *string `json:"duration,omitempty"`
	Cost          *string `json:"cost,omitempty"`
	ImageURL      *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// SuggestedActivityItem is one suggestion with its vote tally
type SuggestedActivityItem struct {
	models.SuggestedActivity
	Votes     itinerary.VoteTally `json:"votes"`
	UpCount   int                 `json:"up_count"`
	DownCount int                 `json:"down_count"`
}

// SuggestedActivitiesResponse is returned by GET /api/suggested-activities
type SuggestedActivitiesResponse struct {
	SuggestedActivities []SuggestedActivityItem `json:"suggested_activities"`
}

// VoteRequest is the body of POST /api/suggested-activities/{id}/vote
type VoteRequest struct {
	ParticipantInitials string `json:"participant_initials" validate:"required,max=10"`
	VoteType            string `json:"vote_type" validate:"required,oneof=up down"`
}

// VoteResponse reports what a vote did
type VoteResponse struct {
	Result   string              `json:"result"`
	VoteType *string             `json:"vote_type"`
	Votes    itinerary.VoteTally `json:"votes"`
}
