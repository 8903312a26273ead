package store

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ITINERARY_BACK-END/internal/logger"
	"ITINERARY_BACK-END/internal/models"
)

// Snapshot is a dump of the itinerary tables keyed by table name.
type Snapshot struct {
	Participants       []models.Participant       `yaml:"participants"`
	Flights            []models.Flight            `yaml:"flights"`
	Transfers          []models.Transfer          `yaml:"transfers"`
	TransportTickets   []models.TransportTicket   `yaml:"transport_tickets"`
	CarHires           []models.CarHire           `yaml:"car_hires"`
	Accommodations     []models.Accommodation     `yaml:"accomodation"`
	RoomConfigurations []models.RoomConfiguration `yaml:"room_configuration"`
	Activities         []models.Activity          `yaml:"activities"`
}

// FileSource serves the itinerary tables from a YAML snapshot. The file is
// read on every call so edits show up on the next fetch.
type FileSource struct {
	path string
	log  *logger.Logger
}

func NewFileSource(path string, log *logger.Logger) *FileSource {
	if log == nil {
		log = logger.Discard()
	}
	return &FileSource{path: path, log: log}
}

// Ping checks that the snapshot can be read and parsed.
func (f *FileSource) Ping(ctx context.Context) error {
	_, err := f.load(ctx)
	return err
}

func (f *FileSource) load(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", f.path, err)
	}
	return &snap, nil
}

func readTable[T any](ctx context.Context, f *FileSource, table string, pick func(*Snapshot) []T) ([]T, error) {
	snap, err := f.load(ctx)
	if err != nil {
		return nil, err
	}
	return keepValid(f.log, table, pick(snap)), nil
}

func (f *FileSource) Participants(ctx context.Context) ([]models.Participant, error) {
	return readTable(ctx, f, TableParticipants, func(s *Snapshot) []models.Participant { return s.Participants })
}

func (f *FileSource) Flights(ctx context.Context) ([]models.Flight, error) {
	return readTable(ctx, f, TableFlights, func(s *Snapshot) []models.Flight { return s.Flights })
}

func (f *FileSource) Transfers(ctx context.Context) ([]models.Transfer, error) {
	return readTable(ctx, f, TableTransfers, func(s *Snapshot) []models.Transfer { return s.Transfers })
}

func (f *FileSource) TransportTickets(ctx context.Context) ([]models.TransportTicket, error) {
	return readTable(ctx, f, TableTransportTickets, func(s *Snapshot) []models.TransportTicket { return s.TransportTickets })
}

func (f *FileSource) CarHires(ctx context.Context) ([]models.CarHire, error) {
	return readTable(ctx, f, TableCarHires, func(s *Snapshot) []models.CarHire { return s.CarHires })
}

func (f *FileSource) Accommodations(ctx context.Context) ([]models.Accommodation, error) {
	return readTable(ctx, f, TableAccommodation, func(s *Snapshot) []models.Accommodation { return s.Accommodations })
}

func (f *FileSource) RoomConfigurations(ctx context.Context) ([]models.RoomConfiguration, error) {
	return readTable(ctx, f, TableRoomConfiguration, func(s *Snapshot) []models.RoomConfiguration { return s.RoomConfigurations })
}

func (f *FileSource) Activities(ctx context.Context) ([]models.Activity, error) {
	return readTable(ctx, f, TableActivities, func(s *Snapshot) []models.Activity { return s.Activities })
}
