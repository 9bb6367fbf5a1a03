package geo

import (
	"math"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestDistanceKmMissingCoordinates(t *testing.T) {
	if d := DistanceKm(nil, f(116.4), f(39.9), f(116.4)); d != nil {
		t.Fatalf("expected nil for missing latitude, got %v", *d)
	}
	if d := DistanceKm(f(39.9), f(116.4), f(39.9), nil); d != nil {
		t.Fatalf("expected nil for missing longitude, got %v", *d)
	}
	if d := DistanceKm(f(math.NaN()), f(116.4), f(39.9), f(116.4)); d != nil {
		t.Fatalf("expected nil for NaN latitude, got %v", *d)
	}
	if d := DistanceKm(f(math.Inf(1)), f(116.4), f(39.9), f(116.4)); d != nil {
		t.Fatalf("expected nil for Inf latitude, got %v", *d)
	}
}

func TestDistanceKmSamePoint(t *testing.T) {
	d := DistanceKm(f(39.9042), f(116.4074), f(39.9042), f(116.4074))
	if d == nil {
		t.Fatal("expected non-nil distance")
	}
	if *d != 0 {
		t.Fatalf("expected 0 for identical points, got %v", *d)
	}
}

func TestDistanceKmKnownPairs(t *testing.T) {
	// 北京 -> 上海，约1067公里
	d := DistanceKm(f(39.9042), f(116.4074), f(31.2304), f(121.4737))
	if d == nil {
		t.Fatal("expected non-nil distance")
	}
	if *d < 1050 || *d > 1090 {
		t.Fatalf("Beijing-Shanghai distance out of range: %v", *d)
	}

	// 赤道上经度相差1度，约111.19公里
	d = DistanceKm(f(0), f(0), f(0), f(1))
	if d == nil {
		t.Fatal("expected non-nil distance")
	}
	if math.Abs(*d-111.19) > 0.5 {
		t.Fatalf("equator 1-degree distance out of range: %v", *d)
	}
}
