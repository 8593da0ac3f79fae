package store

import "time"

// Ride is one exported ride record
type Ride struct {
	ID          int64     `db:"id"`
	AthleteID   int64     `db:"athlete_id"`
	AthleteName string    `db:"athlete_name"`
	Name        string    `db:"name"`
	Bike        string    `db:"bike"`
	Location    string    `db:"location"`
	Distance    float64   `db:"distance"`    // meters
	MovingTime  float64   `db:"moving_time"` // seconds
	ExportedAt  time.Time `db:"exported_at"`
}

// Effort is one exported segment traversal belonging to a ride
type Effort struct {
	ID          int64   `db:"id"` // effort id
	RideID      int64   `db:"ride_id"`
	SegmentID   int64   `db:"segment_id"`
	SegmentName string  `db:"segment_name"`
	ElapsedTime float64 `db:"elapsed_time"` // seconds
}
