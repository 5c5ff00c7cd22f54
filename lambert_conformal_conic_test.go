package projections

import (
	"errors"
	"math"
	"testing"
)

func newTestLCC(t *testing.T) LambertConformalConic {
	t.Helper()
	p, err := NewLambertConformalConic().
		RefLonLat(2.0, 0.0).
		StandardParallels(30.0, 60.0).
		Initialize()
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLambertConformalConicProject(t *testing.T) {
	p := newTestLCC(t)

	// Mount Blanc summit.
	x, y, err := p.Project(6.8651, 45.8326)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(x-364836.4407791961) > 1e-3 {
		t.Errorf("x = %v, want 364836.4407791961", x)
	}
	if math.Abs(y-5421073.726336001) > 1e-3 {
		t.Errorf("y = %v, want 5421073.726336001", y)
	}
}

func TestLambertConformalConicRoundTrip(t *testing.T) {
	p := newTestLCC(t)

	tests := []struct {
		name     string
		lon, lat float64
	}{
		{"mount blanc", 6.8651, 45.8326},
		{"reference point", 2.0, 0.0},
		{"west of reference", -15.5, 52.1},
		{"southern hemisphere", 10.0, -35.0},
		{"near pole", 2.0, 89.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, err := p.Project(tt.lon, tt.lat)
			if err != nil {
				t.Fatal(err)
			}
			lon, lat, err := p.InverseProject(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(lon-tt.lon) > 1e-9 || math.Abs(lat-tt.lat) > 1e-9 {
				t.Errorf("round trip (%v, %v) -> (%v, %v)", tt.lon, tt.lat, lon, lat)
			}
		})
	}
}

func TestLambertConformalConicSouthernCone(t *testing.T) {
	p, err := NewLambertConformalConic().
		RefLonLat(-60.0, -30.0).
		StandardParallels(-20.0, -40.0).
		Initialize()
	if err != nil {
		t.Fatal(err)
	}
	if p.n >= 0 {
		t.Fatalf("southern cone constant should be negative, got %v", p.n)
	}

	x, y, err := p.Project(-58.4, -34.6)
	if err != nil {
		t.Fatal(err)
	}
	lon, lat, err := p.InverseProject(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(lon+58.4) > 1e-9 || math.Abs(lat+34.6) > 1e-9 {
		t.Errorf("round trip gave (%v, %v)", lon, lat)
	}
}

func TestLambertConformalConicTangent(t *testing.T) {
	p, err := NewLambertConformalConic().
		RefLonLat(0.0, 40.0).
		StandardParallels(40.0, 40.0).
		Initialize()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p.n-0.6427876096865393) > 1e-15 {
		t.Errorf("tangent cone constant = %v, want sin(40 deg)", p.n)
	}

	x, y, err := p.Project(3.0, 42.0)
	if err != nil {
		t.Fatal(err)
	}
	lon, lat, err := p.InverseProject(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(lon-3.0) > 1e-9 || math.Abs(lat-42.0) > 1e-9 {
		t.Errorf("round trip gave (%v, %v)", lon, lat)
	}
}

func TestLambertConformalConicSymmetricParallels(t *testing.T) {
	_, err := NewLambertConformalConic().
		RefLonLat(0.0, 0.0).
		StandardParallels(30.0, -30.0).
		Initialize()
	var incorrect *IncorrectParamsError
	if !errors.As(err, &incorrect) {
		t.Fatalf("expected IncorrectParamsError, got %v", err)
	}
}

func TestLambertConformalConicBuilderValidation(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (LambertConformalConic, error)
		wantErr any
	}{
		{
			"missing reference",
			func() (LambertConformalConic, error) {
				return NewLambertConformalConic().StandardParallels(30, 60).Initialize()
			},
			&ParamRequiredError{},
		},
		{
			"missing parallels",
			func() (LambertConformalConic, error) {
				return NewLambertConformalConic().RefLonLat(2, 0).Initialize()
			},
			&ParamRequiredError{},
		},
		{
			"lon at positive bound",
			func() (LambertConformalConic, error) {
				return NewLambertConformalConic().RefLonLat(180, 0).StandardParallels(30, 60).Initialize()
			},
			&ParamOutOfRangeError{},
		},
		{
			"lat at positive bound",
			func() (LambertConformalConic, error) {
				return NewLambertConformalConic().RefLonLat(0, 90).StandardParallels(30, 60).Initialize()
			},
			&ParamOutOfRangeError{},
		},
		{
			"NaN parallel",
			func() (LambertConformalConic, error) {
				return NewLambertConformalConic().RefLonLat(2, 0).StandardParallels(math.NaN(), 60).Initialize()
			},
			&ParamNotFiniteError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			if err == nil {
				t.Fatal("expected an error")
			}
			switch want := tt.wantErr.(type) {
			case *ParamRequiredError:
				if !errors.As(err, &want) {
					t.Errorf("want ParamRequiredError, got %v", err)
				}
			case *ParamOutOfRangeError:
				if !errors.As(err, &want) {
					t.Errorf("want ParamOutOfRangeError, got %v", err)
				}
			case *ParamNotFiniteError:
				if !errors.As(err, &want) {
					t.Errorf("want ParamNotFiniteError, got %v", err)
				}
			}
		})
	}
}

func TestLambertConformalConicNegativeBoundsAccepted(t *testing.T) {
	_, err := NewLambertConformalConic().
		RefLonLat(-180.0, 0.0).
		StandardParallels(30.0, 60.0).
		Initialize()
	if err != nil {
		t.Fatalf("lon -180 should be accepted: %v", err)
	}
}

func TestLambertConformalConicCustomEllipsoid(t *testing.T) {
	p, err := NewLambertConformalConic().
		RefLonLat(2.0, 0.0).
		StandardParallels(30.0, 60.0).
		Ellipsoid(Clarke1866).
		Initialize()
	if err != nil {
		t.Fatal(err)
	}
	wgs := newTestLCC(t)

	x1, y1 := p.ProjectUnchecked(6.8651, 45.8326)
	x2, y2 := wgs.ProjectUnchecked(6.8651, 45.8326)
	if x1 == x2 && y1 == y2 {
		t.Error("Clarke 1866 output identical to WGS84 output")
	}

	lon, lat, err := p.InverseProject(x1, y1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(lon-6.8651) > 1e-9 || math.Abs(lat-45.8326) > 1e-9 {
		t.Errorf("round trip gave (%v, %v)", lon, lat)
	}
}
