// Package main prints the trip itinerary as a terminal table.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"ITINERARY_BACK-END/internal/config"
	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/logger"
	"ITINERARY_BACK-END/internal/render"
	"ITINERARY_BACK-END/internal/store"
)

func main() {
	category := flag.String("category", "", "flights-transfers, accommodation, activities or participants (default: all)")
	file := flag.String("file", "", "Read a YAML snapshot instead of the database")
	timezone := flag.String("tz", "", "Time zone for zoneless booking times (default: ITINERARY_TIMEZONE)")
	sorted := flag.Bool("sort", false, "Order events by start time instead of by category")
	verbose := flag.Bool("v", false, "Log debug output to stderr")
	flag.Parse()

	cat, err := itinerary.ParseCategory(*category)
	if err != nil {
		log.Fatalf("%v", err)
	}

	// .env is optional here; the snapshot mode needs no database settings.
	_ = godotenv.Load(".env")
	cfg := config.FromEnv()
	if *timezone != "" {
		cfg.Itinerary.TimeZone = *timezone
	}
	if *file != "" {
		cfg.Itinerary.SnapshotFile = *file
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("%v", err)
	}

	appLog := logger.NewLogger("warn")
	if *verbose {
		appLog.SetLevel("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var source itinerary.Source
	if cfg.UseSnapshot() {
		source = store.NewFileSource(cfg.Itinerary.SnapshotFile, appLog)
	} else {
		pool, err := store.Connect(ctx, cfg, "itinerary-cli")
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer pool.Close()
		source = store.NewPostgres(pool, cfg.Database.QueryTimeout, appLog)
	}

	pipeline := itinerary.NewPipeline(source, loc, appLog, nil)
	pipeline.SetFetchLimit(cfg.Itinerary.FetchConcurrency)
	res := pipeline.Fetch(ctx, cat)

	if cat == itinerary.CategoryParticipants {
		for _, p := range res.Directory.Profiles() {
			initials := "-"
			if p.Initials != nil {
				initials = *p.Initials
			}
			fmt.Printf("%-6s %s\n", initials, p.Name)
		}
		return
	}

	events := res.Events
	if *sorted {
		itinerary.SortByStart(events)
	}
	if err := render.WriteTable(os.Stdout, events, loc); err != nil {
		log.Fatalf("write table: %v", err)
	}
	fmt.Fprintf(os.Stderr, "%d events, %d participants\n", len(events), res.Directory.Len())
}
