package dto

// ActivityRequest is the body of POST /api/activities and PUT /api/activities/{id}.
// Start and end are wall-clock times at the destination, "2006-01-02T15:04".
type ActivityRequest struct {
	ActivityName      string   `json:"activity_name" validate:"required,max=200"`
	Location          *string  `json:"location,omitempty"`
	City              *string  `json:"city,omitempty"`
	StartTime         string   `json:"start_time" validate:"required"`
	EndTime           *string  `json:"end_time,omitempty"`
	Participants      []string `json:"participants" validate:"dive,required"`
	AdditionalDetails *string  `json:"additional_details,omitempty"`
	BookingReference  *string  `json:"booking_reference,omitempty"`
	ActivityPhotoURL  *string  `json:"activity_photo_url,omitempty" validate:"omitempty,url"`
}

// ActivityResponse is returned after an activity is created or updated
type ActivityResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
