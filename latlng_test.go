package projections

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/s2"
)

func TestProjectLatLng(t *testing.T) {
	p, err := NewLambertConformalConic().
		RefLonLat(2.0, 0.0).
		StandardParallels(30.0, 60.0).
		Initialize()
	if err != nil {
		t.Fatal(err)
	}

	got, err := ProjectLatLng(p, s2.LatLngFromDegrees(45.8326, 6.8651))
	if err != nil {
		t.Fatal(err)
	}
	wantX, wantY, err := p.Project(6.8651, 45.8326)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != wantX || got[1] != wantY {
		t.Errorf("got %v, want (%v, %v)", got, wantX, wantY)
	}
}

func TestInverseProjectLatLng(t *testing.T) {
	p, err := NewLambertConformalConic().
		RefLonLat(2.0, 0.0).
		StandardParallels(30.0, 60.0).
		Initialize()
	if err != nil {
		t.Fatal(err)
	}

	x, y, err := p.Project(6.8651, 45.8326)
	if err != nil {
		t.Fatal(err)
	}
	ll, err := InverseProjectLatLng(p, x, y)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ll.Lng.Degrees()-6.8651) > 1e-9 {
		t.Errorf("lng = %v, want 6.8651", ll.Lng.Degrees())
	}
	if math.Abs(ll.Lat.Degrees()-45.8326) > 1e-9 {
		t.Errorf("lat = %v, want 45.8326", ll.Lat.Degrees())
	}
}

func TestProjectLatLngError(t *testing.T) {
	var p LongitudeLatitude
	_, err := InverseProjectLatLng(p, math.NaN(), 0)
	var impossible *InverseProjectionImpossibleError
	if !errors.As(err, &impossible) {
		t.Fatalf("expected InverseProjectionImpossibleError, got %v", err)
	}
}
