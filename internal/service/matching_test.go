package service

import (
	"testing"

	"volunteer-platform/internal/model"
)

func TestRankByScore(t *testing.T) {
	task := &model.Task{
		ID:             1,
		SkillsRequired: model.EncodeSkills([]string{"first-aid"}),
	}
	candidates := []model.Volunteer{
		{ID: 101, Skills: `["cooking"]`},
		{ID: 102, Skills: `["first-aid"]`, Reputation: 100, TotalPoints: 1000},
		{ID: 103, Skills: `["cooking"]`},
	}
	workloads := map[int64]int{101: 3, 103: 3}

	ranked := rankByScore(task, candidates, workloads)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked candidates, got %d", len(ranked))
	}
	if ranked[0].VolunteerID != 102 {
		t.Fatalf("expected volunteer 102 first, got %d", ranked[0].VolunteerID)
	}
	// 同分时保持输入顺序
	if ranked[1].VolunteerID != 101 || ranked[2].VolunteerID != 103 {
		t.Fatalf("expected stable order 101 before 103, got %d then %d",
			ranked[1].VolunteerID, ranked[2].VolunteerID)
	}
	if ranked[1].Score != ranked[2].Score {
		t.Fatalf("expected equal scores for identical candidates, got %d and %d",
			ranked[1].Score, ranked[2].Score)
	}
	if ranked[0].Score <= ranked[1].Score {
		t.Fatalf("expected descending scores, got %d then %d", ranked[0].Score, ranked[1].Score)
	}
	if ranked[1].Breakdown.Workload != 3 {
		t.Fatalf("expected workload 3 in breakdown, got %d", ranked[1].Breakdown.Workload)
	}
}

func TestAssignableSlots(t *testing.T) {
	cases := []struct {
		needed      int32
		active      int64
		rankedCount int
		want        int
	}{
		{3, 1, 10, 2},
		{3, 3, 10, 0},
		{3, 5, 10, 0}, // 活跃数超出需求时不产生负名额
		{5, 0, 2, 2},  // 排名不足时按排名截断
		{0, 0, 5, 0},
	}
	for _, tc := range cases {
		if got := assignableSlots(tc.needed, tc.active, tc.rankedCount); got != tc.want {
			t.Fatalf("assignableSlots(%d, %d, %d): expected %d, got %d",
				tc.needed, tc.active, tc.rankedCount, tc.want, got)
		}
	}
}

func TestNormalizeMatchLimit(t *testing.T) {
	// 未加载配置文件时走内置默认值
	if got := normalizeMatchLimit(0); got != defaultMatchLimit {
		t.Fatalf("expected default %d, got %d", defaultMatchLimit, got)
	}
	if got := normalizeMatchLimit(500); got != maxMatchLimit {
		t.Fatalf("expected cap %d, got %d", maxMatchLimit, got)
	}
	if got := normalizeMatchLimit(25); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
}
