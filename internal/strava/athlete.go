package strava

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// Athlete is the entry point into the resource graph. It holds only an id;
// nothing is fetched until rides are requested.
type Athlete struct {
	client *Client
	id     int64
}

// NewAthlete creates an Athlete for the given id.
func NewAthlete(c *Client, id int64) *Athlete {
	return &Athlete{client: c, id: id}
}

// ID returns the athlete's id.
func (a *Athlete) ID() int64 {
	return a.id
}

// rideEntry is one element of the /rides listing.
type rideEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Rides lists all of the athlete's rides in service order. The listing is
// never cached; each call issues a fresh request.
func (a *Athlete) Rides(ctx context.Context) ([]*Ride, error) {
	return a.RidesSince(ctx, time.Time{})
}

// RidesSince lists the athlete's rides starting on or after the given date.
// A zero start lists everything the service returns.
func (a *Athlete) RidesSince(ctx context.Context, start time.Time) ([]*Ride, error) {
	params := url.Values{}
	params.Set("athleteId", strconv.FormatInt(a.id, 10))
	if !start.IsZero() {
		params.Set("startDate", start.Format("2006-01-02"))
	}

	var entries []rideEntry
	if err := a.client.loadInto(ctx, "/rides?"+params.Encode(), "rides", &entries); err != nil {
		return nil, err
	}

	rides := make([]*Ride, 0, len(entries))
	for _, e := range entries {
		rides = append(rides, NewRide(a.client, e.ID, e.Name))
	}
	return rides, nil
}

// RideStats aggregates ride totals over a trailing window.
// Fields are float64 accumulators; a detail payload missing a metric simply
// contributes zero.
type RideStats struct {
	Rides      float64
	MovingTime float64 // seconds
	Distance   float64 // meters
}

// Stats computes ride totals for the last `days` days. It fetches the
// listing once and then the detail of every returned ride, one request per
// ride.
func (a *Athlete) Stats(ctx context.Context, days int) (RideStats, error) {
	start := time.Now().AddDate(0, 0, -days)
	return a.statsSince(ctx, start)
}

// WeeklyStats computes ride totals for the last seven days.
func (a *Athlete) WeeklyStats(ctx context.Context) (RideStats, error) {
	return a.Stats(ctx, 7)
}

func (a *Athlete) statsSince(ctx context.Context, start time.Time) (RideStats, error) {
	rides, err := a.RidesSince(ctx, start)
	if err != nil {
		return RideStats{}, err
	}

	var stats RideStats
	for _, ride := range rides {
		detail, err := ride.Detail(ctx)
		if err != nil {
			return RideStats{}, err
		}
		stats.Rides++
		stats.MovingTime += detail.MovingTime()
		stats.Distance += detail.Distance()
	}
	return stats, nil
}
