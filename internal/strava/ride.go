package strava

import (
	"context"
	"fmt"
	"sync"
)

// Ride is one recorded activity. Its id and name come from the parent
// listing; the full detail record and the segment list are fetched lazily on
// first access and cached for the lifetime of the instance.
type Ride struct {
	client *Client
	id     int64
	name   string

	mu       sync.Mutex
	detail   *RideDetail
	segments []*Segment
}

// NewRide creates a Ride from an already-known id and name. No fetch occurs
// until Detail or Segments is called.
func NewRide(c *Client, id int64, name string) *Ride {
	return &Ride{client: c, id: id, name: name}
}

// ID returns the ride's id.
func (r *Ride) ID() int64 {
	return r.id
}

// Name returns the ride's name. Never triggers a fetch.
func (r *Ride) Name() string {
	return r.name
}

// Detail returns the ride's full metric record, fetching it on first call.
// Subsequent calls return the same instance without touching the network.
// A failed fetch leaves the cache empty, so a later call retries.
func (r *Ride) Detail(ctx context.Context) (*RideDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.detail != nil {
		return r.detail, nil
	}
	detail, err := newRideDetail(ctx, r.client, r.id)
	if err != nil {
		return nil, err
	}
	r.detail = detail
	return detail, nil
}

// Segments returns the ride's segment efforts in service order, fetching the
// efforts listing on first call and caching the result. Once populated the
// slice is fixed; callers must not mutate it.
func (r *Ride) Segments(ctx context.Context) ([]*Segment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.segments) > 0 {
		return r.segments, nil
	}

	var entries []effortEntry
	path := fmt.Sprintf("/rides/%d/efforts", r.id)
	if err := r.client.loadInto(ctx, path, "efforts", &entries); err != nil {
		return nil, err
	}

	segments := make([]*Segment, 0, len(entries))
	for _, e := range entries {
		segments = append(segments, newSegment(r.client, e))
	}
	r.segments = segments
	return segments, nil
}

// rideAttr is the decoded /rides/{id} record.
type rideAttr struct {
	Athlete struct {
		Name string `json:"name"`
		ID   int64  `json:"id"`
	} `json:"athlete"`
	Bike struct {
		Name string `json:"name"`
		ID   int64  `json:"id"`
	} `json:"bike"`
	Location   string  `json:"location"`
	Distance   float64 `json:"distance"`   // meters
	MovingTime float64 `json:"movingTime"` // seconds
}

// RideDetail is the full metric record for one ride. It is fetched eagerly
// at construction; either every field is populated or no instance exists.
// All accessors are pure reads.
type RideDetail struct {
	id   int64
	attr rideAttr
}

func newRideDetail(ctx context.Context, c *Client, id int64) (*RideDetail, error) {
	var attr rideAttr
	if err := c.loadInto(ctx, fmt.Sprintf("/rides/%d", id), "ride", &attr); err != nil {
		return nil, err
	}
	return &RideDetail{id: id, attr: attr}, nil
}

// ID returns the ride's id.
func (d *RideDetail) ID() int64 { return d.id }

// Athlete returns the riding athlete's display name.
func (d *RideDetail) Athlete() string { return d.attr.Athlete.Name }

// AthleteID returns the riding athlete's id.
func (d *RideDetail) AthleteID() int64 { return d.attr.Athlete.ID }

// Bike returns the bike's display name.
func (d *RideDetail) Bike() string { return d.attr.Bike.Name }

// BikeID returns the bike's id.
func (d *RideDetail) BikeID() int64 { return d.attr.Bike.ID }

// Location returns where the ride took place.
func (d *RideDetail) Location() string { return d.attr.Location }

// Distance returns the ride distance in meters.
func (d *RideDetail) Distance() float64 { return d.attr.Distance }

// MovingTime returns the moving time in seconds.
func (d *RideDetail) MovingTime() float64 { return d.attr.MovingTime }
