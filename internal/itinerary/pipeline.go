package itinerary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"ITINERARY_BACK-END/internal/logger"
	"ITINERARY_BACK-END/internal/metrics"
	"ITINERARY_BACK-END/internal/models"
)

// Category selects which part of the itinerary to build.
type Category string

const (
	CategoryAll              Category = ""
	CategoryFlightsTransfers Category = "flights-transfers"
	CategoryAccommodation    Category = "accommodation"
	CategoryActivities       Category = "activities"
	CategoryParticipants     Category = "participants"
)

var ErrUnknownCategory = errors.New("unknown category")

// ParseCategory validates a category name. The empty string selects all.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryAll, CategoryFlightsTransfers, CategoryAccommodation, CategoryActivities, CategoryParticipants:
		return c, nil
	}
	return CategoryAll, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func (c Category) includes(other Category) bool {
	return c == CategoryAll || c == other
}

// Source is the storage collaborator. Every read returns all rows of one
// table.
type Source interface {
	Participants(ctx context.Context) ([]models.Participant, error)
	Flights(ctx context.Context) ([]models.Flight, error)
	Transfers(ctx context.Context) ([]models.Transfer, error)
	TransportTickets(ctx context.Context) ([]models.TransportTicket, error)
	CarHires(ctx context.Context) ([]models.CarHire, error)
	Accommodations(ctx context.Context) ([]models.Accommodation, error)
	RoomConfigurations(ctx context.Context) ([]models.RoomConfiguration, error)
	Activities(ctx context.Context) ([]models.Activity, error)
}

// Result is the output of one pipeline run.
type Result struct {
	Events    []Event
	Directory *Directory
}

func emptyResult() Result {
	return Result{Events: []Event{}, Directory: NewDirectory()}
}

// Pipeline fetches raw rows and turns them into events. It keeps no state
// between runs; every Fetch builds its directory and events from scratch.
type Pipeline struct {
	source     Source
	loc        *time.Location
	log        *logger.Logger
	metrics    *metrics.Metrics
	fetchLimit int
}

func NewPipeline(source Source, loc *time.Location, log *logger.Logger, m *metrics.Metrics) *Pipeline {
	if log == nil {
		log = logger.Discard()
	}
	return &Pipeline{source: source, loc: loc, log: log, metrics: m}
}

// SetFetchLimit caps how many table reads run at once within a category.
// Zero or less means no limit.
func (p *Pipeline) SetFetchLimit(n int) {
	p.fetchLimit = n
}

// Fetch builds the itinerary for category. It never fails: a table that
// cannot be read, or whose read panics, contributes no rows. A failure to
// read participants or any other panic yields an empty result.
func (p *Pipeline) Fetch(ctx context.Context, category Category) (res Result) {
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("unexpected failure while building itinerary", "category", string(category), "panic", r)
			res = emptyResult()
		}
		p.metrics.ObservePipeline(string(category), started)
	}()

	participants, err := p.source.Participants(ctx)
	if err != nil {
		p.log.Error("failed to fetch participants", "entity", "participants", "err", err)
		p.metrics.FetchFailed("participants")
		return emptyResult()
	}

	dir := BuildDirectory(participants)
	t := NewTransformer(NewDateParser(p.loc, p.log, p.metrics), dir)
	events := []Event{}

	if category.includes(CategoryFlightsTransfers) {
		events = append(events, p.flightsAndTransfers(ctx, t)...)
	}
	if category.includes(CategoryAccommodation) {
		events = append(events, p.accommodation(ctx, t)...)
	}
	if category.includes(CategoryActivities) {
		events = append(events, p.activities(ctx, t)...)
	}

	// The per-type gauge describes the whole itinerary only.
	if category == CategoryAll {
		p.metrics.SetEventCounts(CountByType(events))
	}
	p.log.Debug("built itinerary", "category", string(category), "events", len(events), "participants", dir.Len())

	return Result{Events: events, Directory: dir}
}

// Directory fetches participants only.
func (p *Pipeline) Directory(ctx context.Context) *Directory {
	return p.Fetch(ctx, CategoryParticipants).Directory
}

func (p *Pipeline) group(ctx context.Context) (*errgroup.Group, context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	if p.fetchLimit > 0 {
		g.SetLimit(p.fetchLimit)
	}
	return g, gctx
}

func (p *Pipeline) flightsAndTransfers(ctx context.Context, t *Transformer) []Event {
	var (
		flights   []models.Flight
		transfers []models.Transfer
		tickets   []models.TransportTicket
		carHires  []models.CarHire
	)

	g, gctx := p.group(ctx)
	g.Go(func() error {
		flights = fetchTable(gctx, p, "flights", p.source.Flights)
		return nil
	})
	g.Go(func() error {
		tickets = fetchTable(gctx, p, "transport_tickets", p.source.TransportTickets)
		return nil
	})
	g.Go(func() error {
		transfers = fetchTable(gctx, p, "transfers", p.source.Transfers)
		return nil
	})
	g.Go(func() error {
		carHires = fetchTable(gctx, p, "car_hires", p.source.CarHires)
		return nil
	})
	_ = g.Wait()

	events := make([]Event, 0, len(flights)+len(transfers)+len(carHires))
	for _, f := range flights {
		events = append(events, t.Flight(f))
	}
	for _, tr := range transfers {
		events = append(events, t.Transfer(tr, tickets))
	}
	for _, c := range t.CarHires(carHires) {
		events = append(events, c)
	}
	return events
}

func (p *Pipeline) accommodation(ctx context.Context, t *Transformer) []Event {
	var (
		accs  []models.Accommodation
		rooms []models.RoomConfiguration
	)

	g, gctx := p.group(ctx)
	g.Go(func() error {
		accs = fetchTable(gctx, p, "accomodation", p.source.Accommodations)
		return nil
	})
	g.Go(func() error {
		rooms = fetchTable(gctx, p, "room_configuration", p.source.RoomConfigurations)
		return nil
	})
	_ = g.Wait()

	events := make([]Event, 0, len(accs))
	for _, a := range t.Accommodations(accs, rooms) {
		events = append(events, a)
	}
	return events
}

func (p *Pipeline) activities(ctx context.Context, t *Transformer) []Event {
	rows := fetchTable(ctx, p, "activities", p.source.Activities)

	events := make([]Event, 0, len(rows))
	for _, a := range rows {
		events = append(events, t.Activity(a))
	}
	return events
}

// fetchTable runs one read. A read that fails or panics is logged and
// counted and contributes no rows. Reads run on errgroup goroutines, where
// the recover in Fetch cannot reach.
func fetchTable[T any](ctx context.Context, p *Pipeline, entity string, read func(context.Context) ([]T, error)) (rows []T) {
	log := p.log.With("entity", entity)
	defer func() {
		if r := recover(); r != nil {
			log.Error("table read panicked, continuing without it", "panic", r)
			p.metrics.FetchFailed(entity)
			rows = nil
		}
	}()

	rows, err := read(ctx)
	if err != nil {
		log.Error("failed to fetch table, continuing without it", "err", err)
		p.metrics.FetchFailed(entity)
		return nil
	}
	return rows
}
