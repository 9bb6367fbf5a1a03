package match

import (
	"math"
	"testing"
)

func f(v float64) *float64 { return &v }

func baseCandidate() Candidate {
	return Candidate{
		VolunteerID: 1,
		Skills:      []string{"first-aid", "driving"},
		Reputation:  50,
		TotalPoints: 500,
		Workload:    0,
	}
}

func TestSkillScoreFraction(t *testing.T) {
	task := TaskInput{RequiredSkills: []string{"first-aid", "driving", "cooking", "teaching"}}
	cand := baseCandidate()

	_, bd := Score(task, cand)
	if bd.SkillScore != 0.5 {
		t.Fatalf("expected skill score 0.5 (2/4), got %v", bd.SkillScore)
	}

	// 无关技能不加分
	cand.Skills = append(cand.Skills, "photography", "translation", "logistics")
	_, bd = Score(task, cand)
	if bd.SkillScore != 0.5 {
		t.Fatalf("extra unrelated skills must not change skill score, got %v", bd.SkillScore)
	}
}

func TestSkillScoreNoRequirements(t *testing.T) {
	_, bd := Score(TaskInput{}, baseCandidate())
	if bd.SkillScore != 0.6 {
		t.Fatalf("expected flat 0.6 when task lists no skills, got %v", bd.SkillScore)
	}
}

func TestDistanceScoreUnknownLocation(t *testing.T) {
	task := TaskInput{Latitude: f(39.9), Longitude: f(116.4)}
	cand := baseCandidate() // 无位置

	_, bd := Score(task, cand)
	if bd.DistanceKm != nil {
		t.Fatalf("expected nil distance, got %v", *bd.DistanceKm)
	}
	if bd.DistanceScore != 0.5 {
		t.Fatalf("expected neutral 0.5 for unknown distance, got %v", bd.DistanceScore)
	}
}

func TestDistanceScoreBuckets(t *testing.T) {
	cases := []struct {
		km   float64
		want float64
	}{
		{0, 1.0},
		{4.99, 1.0},
		{5, 0.8}, // 边界归入下一档（< 5 而非 <= 5）
		{19.99, 0.8},
		{20, 0.6},
		{49.99, 0.6},
		{50, 0.4},
		{99.99, 0.4},
		{100, 0.2},
		{500, 0.2},
	}
	for _, tc := range cases {
		got := calcDistanceScore(&tc.km)
		if got != tc.want {
			t.Fatalf("distance %vkm: expected %v, got %v", tc.km, tc.want, got)
		}
	}
	if got := calcDistanceScore(nil); got != 0.5 {
		t.Fatalf("nil distance: expected 0.5, got %v", got)
	}
}

func TestWorkloadScore(t *testing.T) {
	cases := []struct {
		workload int
		want     float64
	}{
		{0, 1.0},
		{1, 1.0},
		{2, 0.5},
		{3, 0.2},
		{10, 0.2},
	}
	for _, tc := range cases {
		if got := calcWorkloadScore(tc.workload); got != tc.want {
			t.Fatalf("workload %d: expected %v, got %v", tc.workload, tc.want, got)
		}
	}
}

func TestScorePerfectCandidate(t *testing.T) {
	task := TaskInput{
		RequiredSkills: []string{"first-aid"},
		Latitude:       f(39.9042),
		Longitude:      f(116.4074),
	}
	cand := Candidate{
		VolunteerID: 7,
		Skills:      []string{"first-aid"},
		Latitude:    f(39.9042),
		Longitude:   f(116.4074),
		Reputation:  100,
		TotalPoints: 1000,
		Workload:    0,
	}

	score, bd := Score(task, cand)
	if score != 100 {
		t.Fatalf("expected 100 for perfect candidate, got %d (breakdown %+v)", score, bd)
	}
}

func TestScoreBoundsAndDeterminism(t *testing.T) {
	task := TaskInput{
		RequiredSkills: []string{"a", "b", "c"},
		Latitude:       f(10),
		Longitude:      f(10),
	}
	cands := []Candidate{
		{VolunteerID: 1},
		{VolunteerID: 2, Skills: []string{"a"}, Reputation: 130, TotalPoints: 99999, Workload: 5},
		{VolunteerID: 3, Latitude: f(-80), Longitude: f(170), Reputation: 60, TotalPoints: 250, Workload: 2},
	}

	for _, cand := range cands {
		first, _ := Score(task, cand)
		if first < 0 || first > 100 {
			t.Fatalf("score out of [0,100]: %d for candidate %d", first, cand.VolunteerID)
		}
		second, _ := Score(task, cand)
		if first != second {
			t.Fatalf("score must be deterministic: %d vs %d", first, second)
		}
	}
}

func TestScoreWeightedExample(t *testing.T) {
	// skill 1/2=0.5, distance未知=0.5, workload 1=1.0, reputation 70/100, points 400/1000
	task := TaskInput{RequiredSkills: []string{"first-aid", "cooking"}}
	cand := Candidate{
		VolunteerID: 9,
		Skills:      []string{"first-aid"},
		Reputation:  70,
		TotalPoints: 400,
		Workload:    1,
	}

	score, bd := Score(task, cand)
	want := int(math.Round(0.5*40 + 0.5*20 + 1.0*15 + 0.7*15 + 0.4*10))
	if score != want {
		t.Fatalf("expected %d, got %d (breakdown %+v)", want, score, bd)
	}
	if bd.ReputationScore != 0.7 || bd.PointsScore != 0.4 {
		t.Fatalf("unexpected breakdown: %+v", bd)
	}
}
