// Package store reads and writes the trip tables. Postgres is the hosted
// database; FileSource serves a YAML snapshot of the same tables.
package store

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"ITINERARY_BACK-END/internal/logger"
)

// ErrNotFound is returned when a write targets a row that does not exist.
var ErrNotFound = errors.New("not found")

// Table names as provisioned. "accomodation" is spelled that way in the
// database.
const (
	TableParticipants        = "participants"
	TableFlights             = "flights"
	TableTransfers           = "transfers"
	TableTransportTickets    = "transport_tickets"
	TableCarHires            = "car_hires"
	TableAccommodation       = "accomodation"
	TableRoomConfiguration   = "room_configuration"
	TableActivities          = "activities"
	TableSuggestedActivities = "suggested_activities"
	TableVotes               = "suggested_activity_votes"
	TableUserRoles           = "user_roles"
)

var rowValidator = validator.New()

// keepValid drops rows that fail their struct validation. A bad row is
// logged and skipped so one broken record never hides a whole table.
func keepValid[T any](log *logger.Logger, table string, rows []T) []T {
	out := make([]T, 0, len(rows))
	for i := range rows {
		if err := rowValidator.Struct(rows[i]); err != nil {
			log.Warn("dropping invalid row", "entity", table, "index", i, "err", err)
			continue
		}
		out = append(out, rows[i])
	}
	return out
}
