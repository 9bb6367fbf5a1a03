package model

import "testing"

func TestLevelForPointsBoundaries(t *testing.T) {
	cases := []struct {
		points int64
		want   string
	}{
		{0, LevelBronce},
		{999, LevelBronce},
		{1000, LevelPlata},
		{2499, LevelPlata},
		{2500, LevelOro},
		{4999, LevelOro},
		{5000, LevelPlatino},
		{100000, LevelPlatino},
	}
	for _, tc := range cases {
		if got := LevelForPoints(tc.points); got != tc.want {
			t.Fatalf("LevelForPoints(%d): expected %s, got %s", tc.points, tc.want, got)
		}
	}
}

func TestNextReputation(t *testing.T) {
	// round(70*0.8 + 5*4) = 76
	if got := NextReputation(70, 5); got != 76 {
		t.Fatalf("expected 76, got %v", got)
	}
	// round(50*0.8 + 1*4) = 44
	if got := NextReputation(50, 1); got != 44 {
		t.Fatalf("expected 44, got %v", got)
	}
	// 封顶100：round(100*0.8 + 5*4) = 100
	if got := NextReputation(100, 5); got != 100 {
		t.Fatalf("expected cap at 100, got %v", got)
	}
	// round(98*0.8 + 5*4) = round(98.4) = 98
	if got := NextReputation(98, 5); got != 98 {
		t.Fatalf("expected 98, got %v", got)
	}
}
