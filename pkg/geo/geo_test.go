package geo

import (
	"math"
	"testing"
)

func TestDistanceKmCoincidentPointsIsZero(t *testing.T) {
	p := Coords{Latitude: 37.7749, Longitude: -122.4194}
	if d := DistanceKm(p, p); d != 0 {
		t.Fatalf("expected 0 for coincident points, got %v", d)
	}
}

func TestDistanceKmSanFranciscoToBoulder(t *testing.T) {
	sf := Coords{Latitude: 37.7749, Longitude: -122.4194}
	boulder := Coords{Latitude: 40.01499, Longitude: -105.27055}

	d := DistanceKm(sf, boulder)
	// Roughly 1500 km; generous tolerance to avoid pinning the constant.
	if d < 1400 || d > 1600 {
		t.Fatalf("expected ~1500 km, got %v", d)
	}
	if rev := DistanceKm(boulder, sf); math.Abs(rev-d) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", d, rev)
	}
}

func TestDistanceKmIsFiniteAndNonNegative(t *testing.T) {
	a := Coords{Latitude: 89.9, Longitude: 179.9}
	b := Coords{Latitude: -89.9, Longitude: -179.9}
	d := DistanceKm(a, b)
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		t.Fatalf("expected finite non-negative distance, got %v", d)
	}
}

func TestFormatDistanceMeters(t *testing.T) {
	if got := FormatDistance(0.0005); got != "1 m away" {
		t.Fatalf("expected \"1 m away\", got %q", got)
	}
	if got := FormatDistance(0.5); got != "500 m away" {
		t.Fatalf("expected \"500 m away\", got %q", got)
	}
}

func TestFormatDistanceRoundsUpToWholeKilometer(t *testing.T) {
	if got := FormatDistance(0.9995); got != "1 km away" {
		t.Fatalf("expected \"1 km away\", got %q", got)
	}
}

func TestFormatDistanceOneDecimalUnderTen(t *testing.T) {
	if got := FormatDistance(5.25); got != "5.3 km away" {
		t.Fatalf("expected \"5.3 km away\", got %q", got)
	}
	if got := FormatDistance(5.0); got != "5 km away" {
		t.Fatalf("expected \"5 km away\", got %q", got)
	}
}

func TestFormatDistanceWholeKilometersFromTen(t *testing.T) {
	if got := FormatDistance(12.0); got != "12 km away" {
		t.Fatalf("expected \"12 km away\", got %q", got)
	}
	if got := FormatDistance(12.6); got != "13 km away" {
		t.Fatalf("expected \"13 km away\", got %q", got)
	}
}
