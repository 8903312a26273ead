package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"ITINERARY_BACK-END/internal/logger"
	"ITINERARY_BACK-END/internal/models"
)

// Querier is the subset of *pgxpool.Pool used by Postgres.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

// Postgres reads and writes the trip tables through a connection pool.
type Postgres struct {
	db      Querier
	timeout time.Duration
	log     *logger.Logger
}

// NewPostgres wraps a pool. timeout bounds every single statement; zero
// leaves the caller's context untouched.
func NewPostgres(db Querier, timeout time.Duration, log *logger.Logger) *Postgres {
	if log == nil {
		log = logger.Discard()
	}
	return &Postgres{db: db, timeout: timeout, log: log}
}

func (s *Postgres) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Ping checks database connectivity.
func (s *Postgres) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

var (
	participantColumns = []string{
		"id", "participants_initials", "participant_name", "participant_photo_url",
	}
	flightColumns = []string{
		"id", "departure_city", "arrival_city", "flight_photo_url",
		"departure_time_local", "departure_time_utc", "arrival_time_local", "arrival_time_utc",
		"flight_number", "passengers", "passenger_count", "booking_reference",
	}
	transferColumns = []string{
		"id", "transfer_name", "transfer_photo_url", "transport_method",
		"departure_location", "arrival_location",
		"departure_time_local", "arrival_time_local", "departure_time_utc", "arrival_time_utc",
		"participants", "participant_count", "booking_reference", "operator",
	}
	ticketColumns = []string{
		"id", "booking_reference", "passenger", "ticket_number", "transfer_name",
	}
	carHireColumns = []string{
		"id", "car_photo_url", "pickup_location", "dropoff_location", "city_name",
		"pickup_time_local", "pickup_time_utc", "dropoff_time_local", "dropoff_time_utc",
		"driver", "passengers", "booking_reference",
	}
	accommodationColumns = []string{
		"id", "accommodation_name", "hotel_city", "hotel_name", "hotel_photo_url", "hotel_address",
		"date_check_in_local", "date_check_in_utc", "date_check_out", "date_check_out_utc",
		"participants", "participant_count", "booking_reference", "breakfast_included",
		"additional_features_gym", "additional_features_cafe", "additional_features_restaurant",
		"additional_features_shopping", "additional_features_food_savoury", "additional_features_food_sweet",
	}
	roomColumns = []string{
		"id", "accommodation_name", "room_type", "participants", "participant_count", "booking_reference",
	}
	activityColumns = []string{
		"id", "activity_name", "activity_photo_url", "additional_details", "booking_reference", "city",
		"start_time_local", "start_time_utc", "end_time_local", "end_time_utc",
		"participants", "participant_count", "location",
	}
)

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// selectAll reads every row of table in id order. Text columns are read as
// the database renders them; the pool runs in simple protocol so timestamp
// columns arrive as text too.
func selectAll[T any](ctx context.Context, s *Postgres, table string, columns []string) ([]T, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", joinColumns(columns), table)
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", table, err)
	}
	return keepValid(s.log, table, items), nil
}

func (s *Postgres) Participants(ctx context.Context) ([]models.Participant, error) {
	return selectAll[models.Participant](ctx, s, TableParticipants, participantColumns)
}

func (s *Postgres) Flights(ctx context.Context) ([]models.Flight, error) {
	return selectAll[models.Flight](ctx, s, TableFlights, flightColumns)
}

func (s *Postgres) Transfers(ctx context.Context) ([]models.Transfer, error) {
	return selectAll[models.Transfer](ctx, s, TableTransfers, transferColumns)
}

func (s *Postgres) TransportTickets(ctx context.Context) ([]models.TransportTicket, error) {
	return selectAll[models.TransportTicket](ctx, s, TableTransportTickets, ticketColumns)
}

func (s *Postgres) CarHires(ctx context.Context) ([]models.CarHire, error) {
	return selectAll[models.CarHire](ctx, s, TableCarHires, carHireColumns)
}

func (s *Postgres) Accommodations(ctx context.Context) ([]models.Accommodation, error) {
	return selectAll[models.Accommodation](ctx, s, TableAccommodation, accommodationColumns)
}

func (s *Postgres) RoomConfigurations(ctx context.Context) ([]models.RoomConfiguration, error) {
	return selectAll[models.RoomConfiguration](ctx, s, TableRoomConfiguration, roomColumns)
}

func (s *Postgres) Activities(ctx context.Context) ([]models.Activity, error) {
	return selectAll[models.Activity](ctx, s, TableActivities, activityColumns)
}
