package models

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a row of public.participants
type Participant struct {
	ID                   int64   `json:"id" db:"id" yaml:"id" validate:"gt=0"`
	ParticipantsInitials *string `json:"participants_initials" db:"participants_initials" yaml:"participants_initials"`
	ParticipantName      *string `json:"participant_name" db:"participant_name" yaml:"participant_name"`
	ParticipantPhotoURL  *string `json:"participant_photo_url" db:"participant_photo_url" yaml:"participant_photo_url"`
}

// SuggestedActivity is a row of public.suggested_activities
type SuggestedActivity struct {
	ID            uuid.UUID `json:"id" db:"id"`
	ActivityName  string    `json:"activity_name" db:"activity_name"`
	Location      *string   `json:"location" db:"location"`
	SuggestedDate *string   `json:"suggested_date" db:"suggested_date"`
	Duration      *string   `json:"duration" db:"duration"`
	Cost          *string   `json:"cost" db:"cost"`
	ImageURL      *string   `json:"image_url" db:"image_url"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// VoteType is the direction of a vote on a suggested activity
type VoteType string

const (
	VoteUp   VoteType = "up"
	VoteDown VoteType = "down"
)

// Vote is a row of public.suggested_activity_votes, unique on
// (suggested_activity_id, participant_initials).
type Vote struct {
	SuggestedActivityID uuid.UUID `json:"suggested_activity_id" db:"suggested_activity_id"`
	ParticipantInitials string    `json:"participant_initials" db:"participant_initials"`
	VoteType            VoteType  `json:"vote_type" db:"vote_type"`
}

// Role values stored in public.user_roles
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)
