package store

import (
	"database/sql"
	"errors"
	"time"
)

// Store is the ride logbook. It is written by the export command and read
// back for offline listing; the API client itself never consults it.
type Store struct {
	db *sql.DB
}

// newStore creates a Store from a database connection.
func newStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// UpsertRide inserts or updates a ride record.
func (s *Store) UpsertRide(r *Ride) error {
	_, err := s.db.Exec(`
		INSERT INTO rides (
			id, athlete_id, athlete_name, name, bike, location,
			distance, moving_time, exported_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			athlete_id = excluded.athlete_id,
			athlete_name = excluded.athlete_name,
			name = excluded.name,
			bike = excluded.bike,
			location = excluded.location,
			distance = excluded.distance,
			moving_time = excluded.moving_time,
			exported_at = excluded.exported_at,
			updated_at = CURRENT_TIMESTAMP
	`, r.ID, r.AthleteID, r.AthleteName, r.Name, r.Bike, r.Location,
		r.Distance, r.MovingTime, r.ExportedAt.Format(time.RFC3339))
	return err
}

// UpsertEffort inserts or updates one of a ride's efforts.
func (s *Store) UpsertEffort(e *Effort) error {
	_, err := s.db.Exec(`
		INSERT INTO efforts (id, ride_id, segment_id, segment_name, elapsed_time)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			ride_id = excluded.ride_id,
			segment_id = excluded.segment_id,
			segment_name = excluded.segment_name,
			elapsed_time = excluded.elapsed_time
	`, e.ID, e.RideID, e.SegmentID, e.SegmentName, e.ElapsedTime)
	return err
}

// GetRide retrieves one ride by id.
func (s *Store) GetRide(id int64) (*Ride, error) {
	row := s.db.QueryRow(`
		SELECT id, athlete_id, athlete_name, name, bike, location,
			distance, moving_time, exported_at
		FROM rides WHERE id = ?
	`, id)

	var r Ride
	var exportedAt string
	err := row.Scan(&r.ID, &r.AthleteID, &r.AthleteName, &r.Name, &r.Bike,
		&r.Location, &r.Distance, &r.MovingTime, &exportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRideNotFound
	}
	if err != nil {
		return nil, err
	}
	r.ExportedAt, _ = time.Parse(time.RFC3339, exportedAt)
	return &r, nil
}

// ListRides returns rides ordered by export time, newest first.
func (s *Store) ListRides(limit int) ([]Ride, error) {
	rows, err := s.db.Query(`
		SELECT id, athlete_id, athlete_name, name, bike, location,
			distance, moving_time, exported_at
		FROM rides ORDER BY exported_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []Ride
	for rows.Next() {
		var r Ride
		var exportedAt string
		if err := rows.Scan(&r.ID, &r.AthleteID, &r.AthleteName, &r.Name,
			&r.Bike, &r.Location, &r.Distance, &r.MovingTime, &exportedAt); err != nil {
			return nil, err
		}
		r.ExportedAt, _ = time.Parse(time.RFC3339, exportedAt)
		rides = append(rides, r)
	}
	return rides, rows.Err()
}

// ListEfforts returns a ride's efforts in insertion order.
func (s *Store) ListEfforts(rideID int64) ([]Effort, error) {
	rows, err := s.db.Query(`
		SELECT id, ride_id, segment_id, segment_name, elapsed_time
		FROM efforts WHERE ride_id = ? ORDER BY rowid
	`, rideID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var efforts []Effort
	for rows.Next() {
		var e Effort
		if err := rows.Scan(&e.ID, &e.RideID, &e.SegmentID, &e.SegmentName, &e.ElapsedTime); err != nil {
			return nil, err
		}
		efforts = append(efforts, e)
	}
	return efforts, rows.Err()
}

// RideCount returns the number of rides in the logbook.
func (s *Store) RideCount() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM rides`).Scan(&n)
	return n, err
}
