package service

import (
	"testing"
	"time"
)

func TestWindowStart(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		window   string
		windowed bool
		want     time.Time
	}{
		{"all", false, time.Time{}},
		{"weekly", true, time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)},
		{"monthly", true, time.Date(2025, 5, 15, 12, 0, 0, 0, time.UTC)},
		{"yearly", true, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		start, windowed, err := windowStart(tc.window, now)
		if err != nil {
			t.Fatalf("windowStart(%s): unexpected error %v", tc.window, err)
		}
		if windowed != tc.windowed {
			t.Fatalf("windowStart(%s): expected windowed=%v, got %v", tc.window, tc.windowed, windowed)
		}
		if windowed && !start.Equal(tc.want) {
			t.Fatalf("windowStart(%s): expected %v, got %v", tc.window, tc.want, start)
		}
	}
}

func TestWindowStartInvalid(t *testing.T) {
	if _, _, err := windowStart("daily", time.Now()); err == nil {
		t.Fatal("expected error for unknown window")
	}
}

func TestNormalizeLeaderboardLimit(t *testing.T) {
	// 未加载配置文件时走内置默认值
	if got := normalizeLeaderboardLimit(0); got != defaultLeaderboardLimit {
		t.Fatalf("expected default %d, got %d", defaultLeaderboardLimit, got)
	}
	if got := normalizeLeaderboardLimit(500); got != maxLeaderboardLimit {
		t.Fatalf("expected cap %d, got %d", maxLeaderboardLimit, got)
	}
	if got := normalizeLeaderboardLimit(25); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
}
