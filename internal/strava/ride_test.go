package strava

import (
	"context"
	"net/http"
	"testing"
)

const rideDetailBody = `{"ride":{
	"athlete":{"name":"Craig Peters","id":103227},
	"bike":{"name":"Road Bike","id":42},
	"location":"San Francisco, CA",
	"distance":27493.9,
	"movingTime":5489
}}`

func TestRideDetailFields(t *testing.T) {
	stub := newAPIStub()
	stub.setBody("/rides/77", rideDetailBody)
	ride := NewRide(testClient(t, stub), 77, "Lunch Ride")

	detail, err := ride.Detail(context.Background())
	if err != nil {
		t.Fatalf("Detail() error = %v", err)
	}

	if detail.Athlete() != "Craig Peters" {
		t.Errorf("Athlete() = %q, want %q", detail.Athlete(), "Craig Peters")
	}
	if detail.AthleteID() != 103227 {
		t.Errorf("AthleteID() = %d, want 103227", detail.AthleteID())
	}
	if detail.Bike() != "Road Bike" {
		t.Errorf("Bike() = %q, want %q", detail.Bike(), "Road Bike")
	}
	if detail.BikeID() != 42 {
		t.Errorf("BikeID() = %d, want 42", detail.BikeID())
	}
	if detail.Location() != "San Francisco, CA" {
		t.Errorf("Location() = %q, want %q", detail.Location(), "San Francisco, CA")
	}
	if detail.Distance() != 27493.9 {
		t.Errorf("Distance() = %v, want 27493.9", detail.Distance())
	}
	if detail.MovingTime() != 5489 {
		t.Errorf("MovingTime() = %v, want 5489", detail.MovingTime())
	}
}

func TestRideDetailCachedOnce(t *testing.T) {
	stub := newAPIStub()
	stub.setBody("/rides/77", rideDetailBody)
	ride := NewRide(testClient(t, stub), 77, "Lunch Ride")
	ctx := context.Background()

	first, err := ride.Detail(ctx)
	if err != nil {
		t.Fatalf("first Detail() error = %v", err)
	}
	second, err := ride.Detail(ctx)
	if err != nil {
		t.Fatalf("second Detail() error = %v", err)
	}

	if first != second {
		t.Error("Detail() returned different instances across calls")
	}
	if got := stub.count("/rides/77"); got != 1 {
		t.Errorf("detail fetched %d times, want 1", got)
	}
}

func TestRideDetailFailureLeavesNoInstance(t *testing.T) {
	stub := newAPIStub()
	stub.setStatus("/rides/42", http.StatusInternalServerError)
	ride := NewRide(testClient(t, stub), 42, "Broken Ride")
	ctx := context.Background()

	_, err := ride.Detail(ctx)
	assertAPIError(t, err, "/rides/42", "request failed")

	// The cache stays empty after a failure; once the service recovers the
	// next access fetches again.
	stub.clearStatus("/rides/42")
	stub.setBody("/rides/42", rideDetailBody)

	detail, err := ride.Detail(ctx)
	if err != nil {
		t.Fatalf("Detail() after recovery error = %v", err)
	}
	if detail.Athlete() != "Craig Peters" {
		t.Errorf("Athlete() = %q, want %q", detail.Athlete(), "Craig Peters")
	}
	if got := stub.count("/rides/42"); got != 2 {
		t.Errorf("detail fetched %d times, want 2", got)
	}
}

const effortsBody = `{"efforts":[
	{"id":5,"elapsed_time":42,"segment":{"id":9,"name":"Hill"}},
	{"id":6,"elapsed_time":301,"segment":{"id":10,"name":"Flat Sprint"}}
]}`

func TestRideSegmentsOrderAndFields(t *testing.T) {
	stub := newAPIStub()
	stub.setBody("/rides/77/efforts", effortsBody)
	ride := NewRide(testClient(t, stub), 77, "Lunch Ride")

	segments, err := ride.Segments(context.Background())
	if err != nil {
		t.Fatalf("Segments() error = %v", err)
	}

	if len(segments) != 2 {
		t.Fatalf("len(segments) = %d, want 2", len(segments))
	}
	if segments[0].Name() != "Hill" || segments[0].Time() != 42 {
		t.Errorf("segments[0] = (%q, %v), want (%q, 42)", segments[0].Name(), segments[0].Time(), "Hill")
	}
	if segments[1].Name() != "Flat Sprint" || segments[1].Time() != 301 {
		t.Errorf("segments[1] = (%q, %v), want (%q, 301)", segments[1].Name(), segments[1].Time(), "Flat Sprint")
	}
}

func TestRideSegmentsCachedOnce(t *testing.T) {
	stub := newAPIStub()
	stub.setBody("/rides/77/efforts", effortsBody)
	ride := NewRide(testClient(t, stub), 77, "Lunch Ride")
	ctx := context.Background()

	first, err := ride.Segments(ctx)
	if err != nil {
		t.Fatalf("first Segments() error = %v", err)
	}
	second, err := ride.Segments(ctx)
	if err != nil {
		t.Fatalf("second Segments() error = %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("cached sequence changed length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("segments[%d] differs across calls", i)
		}
	}
	if got := stub.count("/rides/77/efforts"); got != 1 {
		t.Errorf("efforts fetched %d times, want 1", got)
	}
}
