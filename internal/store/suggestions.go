package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"ITINERARY_BACK-END/internal/models"
)

var suggestionColumns = []string{
	"id", "activity_name", "location", "suggested_date", "duration", "cost", "image_url", "created_at",
}

// SuggestedActivities lists suggestions, newest first.
func (s *Postgres) SuggestedActivities(ctx context.Context) ([]models.SuggestedActivity, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY created_at DESC", joinColumns(suggestionColumns), TableSuggestedActivities)
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query suggested activities: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SuggestedActivity])
	if err != nil {
		return nil, fmt.Errorf("scan suggested activities: %w", err)
	}
	return items, nil
}

// CreateSuggestedActivity stores a new suggestion with a fresh id.
func (s *Postgres) CreateSuggestedActivity(ctx context.Context, a models.SuggestedActivity) (models.SuggestedActivity, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a.ID = uuid.New()
	a.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(ctx,
		`INSERT INTO suggested_activities (id, activity_name, location, suggested_date, duration, cost, image_url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.ActivityName, a.Location, a.SuggestedDate, a.Duration, a.Cost, a.ImageURL, a.CreatedAt,
	)
	if err != nil {
		return models.SuggestedActivity{}, fmt.Errorf("insert suggested activity: %w", err)
	}
	return a, nil
}

func (s *Postgres) UpdateSuggestedActivity(ctx context.Context, a models.SuggestedActivity) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tag, err := s.db.Exec(ctx,
		`UPDATE suggested_activities
		    SET activity_name = $2, location = $3, suggested_date = $4, duration = $5, cost = $6, image_url = $7
		  WHERE id = $1`,
		a.ID, a.ActivityName, a.Location, a.SuggestedDate, a.Duration, a.Cost, a.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("update suggested activity %s: %w", a.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSuggestedActivity removes a suggestion and its votes.
func (s *Postgres) DeleteSuggestedActivity(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.db.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE suggested_activity_id = $1", TableVotes), id); err != nil {
		return fmt.Errorf("delete votes for %s: %w", id, err)
	}
	tag, err := s.db.Exec(ctx, `DELETE FROM suggested_activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete suggested activity %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Votes lists every vote on every suggestion.
func (s *Postgres) Votes(ctx context.Context) ([]models.Vote, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf("SELECT suggested_activity_id, participant_initials, vote_type FROM %s", TableVotes)
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query votes: %w", err)
	}
	votes, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Vote])
	if err != nil {
		return nil, fmt.Errorf("scan votes: %w", err)
	}
	return votes, nil
}

// FindVote returns the participant's current vote on a suggestion, or nil.
func (s *Postgres) FindVote(ctx context.Context, suggestionID uuid.UUID, initials string) (*models.VoteType, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var vt models.VoteType
	query := fmt.Sprintf("SELECT vote_type FROM %s WHERE suggested_activity_id = $1 AND participant_initials = $2", TableVotes)
	err := s.db.QueryRow(ctx, query, suggestionID, initials).Scan(&vt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find vote: %w", err)
	}
	return &vt, nil
}

// UpsertVote writes a vote, replacing any previous vote by the same participant.
func (s *Postgres) UpsertVote(ctx context.Context, v models.Vote) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.db.Exec(ctx, fmt.Sprintf(
		`INSERT INTO %s (suggested_activity_id, participant_initials, vote_type)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (suggested_activity_id, participant_initials) DO UPDATE SET vote_type = EXCLUDED.vote_type`, TableVotes),
		v.SuggestedActivityID, v.ParticipantInitials, string(v.VoteType),
	)
	if err != nil {
		return fmt.Errorf("upsert vote: %w", err)
	}
	return nil
}

func (s *Postgres) DeleteVote(ctx context.Context, suggestionID uuid.UUID, initials string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf("DELETE FROM %s WHERE suggested_activity_id = $1 AND participant_initials = $2", TableVotes)
	_, err := s.db.Exec(ctx, query, suggestionID, initials)
	if err != nil {
		return fmt.Errorf("delete vote: %w", err)
	}
	return nil
}
