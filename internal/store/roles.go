package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"ITINERARY_BACK-END/internal/models"
)

// RoleForEmail returns the role granted to email. Users without a row are
// viewers.
func (s *Postgres) RoleForEmail(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return models.RoleViewer, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var role string
	query := fmt.Sprintf("SELECT role FROM %s WHERE lower(trim(email)) = $1 LIMIT 1", TableUserRoles)
	err := s.db.QueryRow(ctx, query, email).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.RoleViewer, nil
	}
	if err != nil {
		return "", fmt.Errorf("lookup role: %w", err)
	}
	if role == "" {
		return models.RoleViewer, nil
	}
	return role, nil
}
