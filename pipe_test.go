package projections

import (
	"errors"
	"math"
	"testing"
)

func TestConversionPipe(t *testing.T) {
	lcc, err := NewLambertConformalConic().
		RefLonLat(2.0, 0.0).
		StandardParallels(30.0, 60.0).
		Initialize()
	if err != nil {
		t.Fatal(err)
	}
	aeqd, err := NewAzimuthalEquidistant().RefLonLat(2.0, 45.0).Initialize()
	if err != nil {
		t.Fatal(err)
	}

	// Going through the pipe must agree with inverting on one side and
	// projecting on the other by hand.
	x, y, err := lcc.Project(6.8651, 45.8326)
	if err != nil {
		t.Fatal(err)
	}
	gotX, gotY, err := lcc.PipeTo(aeqd).Convert(x, y)
	if err != nil {
		t.Fatal(err)
	}
	wantX, wantY, err := aeqd.Project(6.8651, 45.8326)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(gotX-wantX) > 1e-3 || math.Abs(gotY-wantY) > 1e-3 {
		t.Errorf("Convert = (%v, %v), want (%v, %v)", gotX, gotY, wantX, wantY)
	}
}

func TestConversionPipeChain(t *testing.T) {
	lcc, err := NewLambertConformalConic().
		RefLonLat(2.0, 0.0).
		StandardParallels(30.0, 60.0).
		Initialize()
	if err != nil {
		t.Fatal(err)
	}
	aeqd, err := NewAzimuthalEquidistant().RefLonLat(2.0, 45.0).Initialize()
	if err != nil {
		t.Fatal(err)
	}

	// Geographic -> LCC -> AEQD -> geographic recovers the input.
	var ll LongitudeLatitude
	x, y, err := ll.PipeTo(lcc).Convert(6.8651, 45.8326)
	if err != nil {
		t.Fatal(err)
	}
	x, y, err = lcc.PipeTo(aeqd).Convert(x, y)
	if err != nil {
		t.Fatal(err)
	}
	lon, lat, err := aeqd.PipeTo(ll).Convert(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(lon-6.8651) > 1e-5 || math.Abs(lat-45.8326) > 1e-5 {
		t.Errorf("chain gave (%v, %v)", lon, lat)
	}
}

func TestConversionPipeInvert(t *testing.T) {
	lcc, err := NewLambertConformalConic().
		RefLonLat(2.0, 0.0).
		StandardParallels(30.0, 60.0).
		Initialize()
	if err != nil {
		t.Fatal(err)
	}

	var ll LongitudeLatitude
	pipe := ll.PipeTo(lcc)

	x, y, err := pipe.Convert(6.8651, 45.8326)
	if err != nil {
		t.Fatal(err)
	}
	lon, lat, err := pipe.Invert().Convert(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(lon-6.8651) > 1e-9 || math.Abs(lat-45.8326) > 1e-9 {
		t.Errorf("inverted pipe gave (%v, %v)", lon, lat)
	}
}

func TestConversionPipeSourceErrorWins(t *testing.T) {
	lcc, err := NewLambertConformalConic().
		RefLonLat(2.0, 0.0).
		StandardParallels(30.0, 60.0).
		Initialize()
	if err != nil {
		t.Fatal(err)
	}

	var ll LongitudeLatitude
	_, _, err = ll.PipeTo(lcc).Convert(math.NaN(), math.NaN())

	// Both stages would fail on NaN; the source inverse is reported.
	var invImpossible *InverseProjectionImpossibleError
	if !errors.As(err, &invImpossible) {
		t.Fatalf("expected InverseProjectionImpossibleError, got %v", err)
	}
}

func TestConversionPipeUnchecked(t *testing.T) {
	var ll LongitudeLatitude
	lcc, err := NewLambertConformalConic().
		RefLonLat(2.0, 0.0).
		StandardParallels(30.0, 60.0).
		Initialize()
	if err != nil {
		t.Fatal(err)
	}

	x, y := ll.PipeTo(lcc).ConvertUnchecked(math.NaN(), 45.0)
	if !math.IsNaN(x) || !math.IsNaN(y) {
		t.Errorf("NaN should propagate, got (%v, %v)", x, y)
	}
}
