package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"stravaride/internal/config"
	"stravaride/internal/store"
	"stravaride/internal/strava"
	"stravaride/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	showStats := flag.Bool("stats", false, "print ride stats for the trailing window and exit")
	export := flag.Bool("export", false, "export the trailing window of rides to the local logbook and exit")
	days := flag.Int("days", 7, "size of the trailing window in days (0 means all rides)")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("\nPlease edit the config file at:\n  %s/config.json\n\n", configDir)
		fmt.Println("You need to set athlete.id - the number in your profile URL.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// Create the API client and the athlete entry point
	var opts []strava.Option
	if cfg.Strava.BaseURL != "" {
		opts = append(opts, strava.WithBaseURL(cfg.Strava.BaseURL))
	}
	client := strava.NewClient(opts...)
	athlete := strava.NewAthlete(client, cfg.Athlete.ID)

	switch {
	case *showStats:
		return printStats(ctx, athlete, *days)
	case *export:
		return exportLogbook(ctx, athlete, *days)
	}

	// Launch TUI
	app := tui.NewApp(athlete, cfg.Display)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// printStats prints aggregate ride totals, one listing request plus one
// detail request per ride.
func printStats(ctx context.Context, athlete *strava.Athlete, days int) error {
	stats, err := athlete.Stats(ctx, days)
	if err != nil {
		return fmt.Errorf("computing stats: %w", err)
	}

	fmt.Printf("Ridden %.0f rides in the last %d days\n", stats.Rides, days)
	fmt.Printf("Total moving time: %.1f minutes\n", stats.MovingTime/60)
	fmt.Printf("Total distance: %.1f km\n", stats.Distance/1000)
	return nil
}

// exportLogbook writes the trailing window of rides, with their details and
// segment efforts, into the local sqlite logbook.
func exportLogbook(ctx context.Context, athlete *strava.Athlete, days int) error {
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening logbook: %w", err)
	}
	defer db.Close()

	var rides []*strava.Ride
	if days > 0 {
		rides, err = athlete.RidesSince(ctx, time.Now().AddDate(0, 0, -days))
	} else {
		rides, err = athlete.Rides(ctx)
	}
	if err != nil {
		return fmt.Errorf("listing rides: %w", err)
	}

	exportedAt := time.Now()
	for _, ride := range rides {
		detail, err := ride.Detail(ctx)
		if err != nil {
			return fmt.Errorf("fetching ride %d: %w", ride.ID(), err)
		}

		if err := db.UpsertRide(&store.Ride{
			ID:          ride.ID(),
			AthleteID:   detail.AthleteID(),
			AthleteName: detail.Athlete(),
			Name:        ride.Name(),
			Bike:        detail.Bike(),
			Location:    detail.Location(),
			Distance:    detail.Distance(),
			MovingTime:  detail.MovingTime(),
			ExportedAt:  exportedAt,
		}); err != nil {
			return fmt.Errorf("storing ride %d: %w", ride.ID(), err)
		}

		segments, err := ride.Segments(ctx)
		if err != nil {
			return fmt.Errorf("fetching efforts for ride %d: %w", ride.ID(), err)
		}
		for _, seg := range segments {
			if err := db.UpsertEffort(&store.Effort{
				ID:          seg.ID(),
				RideID:      ride.ID(),
				SegmentID:   seg.SegmentID(),
				SegmentName: seg.Name(),
				ElapsedTime: seg.Time(),
			}); err != nil {
				return fmt.Errorf("storing effort %d: %w", seg.ID(), err)
			}
		}

		fmt.Printf("Exported %q (%d segment efforts)\n", ride.Name(), len(segments))
	}

	count, err := db.RideCount()
	if err != nil {
		return fmt.Errorf("counting rides: %w", err)
	}
	fmt.Printf("Logbook now holds %d rides\n", count)
	return nil
}
