package strava

import (
	"context"
	"fmt"
	"sync"
)

// effortEntry is one element of the /rides/{id}/efforts listing. The effort
// carries its own id and elapsed time plus an embedded segment summary.
type effortEntry struct {
	ID          int64   `json:"id"`
	ElapsedTime float64 `json:"elapsed_time"`
	Segment     struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"segment"`
}

// Segment is one traversal of a named segment during a ride. Name, segment
// id, and elapsed time come from the parent ride's efforts listing; the
// merged effort+segment detail is fetched lazily on first access.
type Segment struct {
	client    *Client
	effortID  int64
	segmentID int64
	name      string
	elapsed   float64

	mu     sync.Mutex
	detail *SegmentDetail
}

func newSegment(c *Client, e effortEntry) *Segment {
	return &Segment{
		client:    c,
		effortID:  e.ID,
		segmentID: e.Segment.ID,
		name:      e.Segment.Name,
		elapsed:   e.ElapsedTime,
	}
}

// ID returns the effort's id, the identity of this traversal.
func (s *Segment) ID() int64 {
	return s.effortID
}

// SegmentID returns the id of the underlying segment.
func (s *Segment) SegmentID() int64 {
	return s.segmentID
}

// Name returns the segment's display name. Never triggers a fetch.
func (s *Segment) Name() string {
	return s.name
}

// Time returns this traversal's elapsed time in seconds. Never triggers a
// fetch.
func (s *Segment) Time() float64 {
	return s.elapsed
}

// Detail returns the merged effort and segment metrics, fetching both
// records on first call and caching the result. A failed fetch leaves the
// cache empty, so a later call retries.
func (s *Segment) Detail(ctx context.Context) (*SegmentDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.detail != nil {
		return s.detail, nil
	}
	detail, err := newSegmentDetail(ctx, s.client, s.segmentID, s.effortID)
	if err != nil {
		return nil, err
	}
	s.detail = detail
	return detail, nil
}

// effortAttr is the decoded /efforts/{id} record.
type effortAttr struct {
	ElapsedTime  float64 `json:"elapsedTime"`  // seconds
	MovingTime   float64 `json:"movingTime"`   // seconds
	AverageSpeed float64 `json:"averageSpeed"` // m/s
	MaximumSpeed float64 `json:"maximumSpeed"` // m/s
	AverageWatts float64 `json:"averageWatts"`
}

// segmentAttr is the decoded /segments/{id} record.
type segmentAttr struct {
	Distance      float64 `json:"distance"` // meters
	AverageGrade  float64 `json:"averageGrade"`
	ClimbCategory string  `json:"climbCategory"`
	ElevationLow  float64 `json:"elevationLow"`
	ElevationHigh float64 `json:"elevationHigh"`
	ElevationGain float64 `json:"elevationGain"`
}

// SegmentDetail merges the per-effort metrics with the segment's static
// metrics. Both records are fetched eagerly at construction and both must
// succeed; a failure of either yields no instance. All accessors are pure
// reads.
type SegmentDetail struct {
	id      int64
	effort  effortAttr
	segment segmentAttr
}

func newSegmentDetail(ctx context.Context, c *Client, segmentID, effortID int64) (*SegmentDetail, error) {
	d := &SegmentDetail{id: segmentID}
	if err := c.loadInto(ctx, fmt.Sprintf("/efforts/%d", effortID), "effort", &d.effort); err != nil {
		return nil, err
	}
	if err := c.loadInto(ctx, fmt.Sprintf("/segments/%d", segmentID), "segment", &d.segment); err != nil {
		return nil, err
	}
	return d, nil
}

// ID returns the segment's id.
func (d *SegmentDetail) ID() int64 { return d.id }

// ElapsedTime returns the effort's elapsed time in seconds.
func (d *SegmentDetail) ElapsedTime() float64 { return d.effort.ElapsedTime }

// MovingTime returns the effort's moving time in seconds.
func (d *SegmentDetail) MovingTime() float64 { return d.effort.MovingTime }

// AverageSpeed returns the effort's average speed in m/s.
func (d *SegmentDetail) AverageSpeed() float64 { return d.effort.AverageSpeed }

// MaximumSpeed returns the effort's maximum speed in m/s.
func (d *SegmentDetail) MaximumSpeed() float64 { return d.effort.MaximumSpeed }

// AverageWatts returns the effort's average power.
func (d *SegmentDetail) AverageWatts() float64 { return d.effort.AverageWatts }

// Distance returns the segment's length in meters.
func (d *SegmentDetail) Distance() float64 { return d.segment.Distance }

// AverageGrade returns the segment's average grade in percent.
func (d *SegmentDetail) AverageGrade() float64 { return d.segment.AverageGrade }

// ClimbCategory returns the segment's climb category.
func (d *SegmentDetail) ClimbCategory() string { return d.segment.ClimbCategory }

// Elevations returns the segment's low point, high point, and total gain,
// all in meters.
func (d *SegmentDetail) Elevations() (low, high, gain float64) {
	return d.segment.ElevationLow, d.segment.ElevationHigh, d.segment.ElevationGain
}
