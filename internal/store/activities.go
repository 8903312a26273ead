package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"ITINERARY_BACK-END/internal/models"
)

// CreateActivity inserts an activity and returns its id. a.ID is ignored.
func (s *Postgres) CreateActivity(ctx context.Context, a models.Activity) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var id int64
	err := s.db.QueryRow(ctx,
		`INSERT INTO activities (activity_name, activity_photo_url, additional_details, booking_reference, city,
		                         start_time_local, start_time_utc, end_time_local, end_time_utc,
		                         participants, participant_count, location)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id`,
		a.ActivityName, a.ActivityPhotoURL, a.AdditionalDetails, a.BookingReference, a.City,
		a.StartTimeLocal, a.StartTimeUTC, a.EndTimeLocal, a.EndTimeUTC,
		a.Participants, a.ParticipantCount, a.Location,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert activity: %w", err)
	}
	return id, nil
}

// UpdateActivity overwrites every editable column of activity a.ID.
func (s *Postgres) UpdateActivity(ctx context.Context, a models.Activity) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tag, err := s.db.Exec(ctx,
		`UPDATE activities
		    SET activity_name = $2, activity_photo_url = $3, additional_details = $4, booking_reference = $5,
		        city = $6, start_time_local = $7, start_time_utc = $8, end_time_local = $9, end_time_utc = $10,
		        participants = $11, participant_count = $12, location = $13
		  WHERE id = $1`,
		a.ID, a.ActivityName, a.ActivityPhotoURL, a.AdditionalDetails, a.BookingReference,
		a.City, a.StartTimeLocal, a.StartTimeUTC, a.EndTimeLocal, a.EndTimeUTC,
		a.Participants, a.ParticipantCount, a.Location,
	)
	if err != nil {
		return fmt.Errorf("update activity %d: %w", a.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) DeleteActivity(ctx context.Context, id int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tag, err := s.db.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete activity %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Activity reads one activity by id.
func (s *Postgres) Activity(ctx context.Context, id int64) (models.Activity, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", joinColumns(activityColumns), TableActivities)
	rows, err := s.db.Query(ctx, query, id)
	if err != nil {
		return models.Activity{}, fmt.Errorf("query activity %d: %w", id, err)
	}
	a, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Activity])
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Activity{}, ErrNotFound
	}
	if err != nil {
		return models.Activity{}, fmt.Errorf("scan activity %d: %w", id, err)
	}
	return a, nil
}
