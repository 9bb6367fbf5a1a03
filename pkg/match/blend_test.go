package match

import "testing"

func ranked(volunteerID int64, score int) Ranked {
	return Ranked{VolunteerID: volunteerID, Score: score}
}

func TestBlendNilAIResponse(t *testing.T) {
	heuristic := []Ranked{ranked(1, 90), ranked(2, 80)}

	out := Blend(heuristic, nil)
	if len(out) != 2 || out[0].Score != 90 || out[1].Score != 80 {
		t.Fatalf("nil AI response must return heuristic list unchanged, got %+v", out)
	}

	out = Blend(heuristic, &AIResponse{})
	if len(out) != 2 || out[0].Score != 90 || out[1].Score != 80 {
		t.Fatalf("empty AI response must return heuristic list unchanged, got %+v", out)
	}
}

func TestBlendCombinedScore(t *testing.T) {
	heuristic := []Ranked{ranked(1, 80)}
	ai := &AIResponse{Recommendations: []AIRecommendation{
		{VolunteerID: 1, Score: 50, Justification: "经验匹配", Priority: 2},
	}}

	out := Blend(heuristic, ai)
	// round(80*0.6 + 50*0.4) = 68
	if out[0].Score != 68 {
		t.Fatalf("expected combined score 68, got %d", out[0].Score)
	}
	if out[0].AIScore == nil || *out[0].AIScore != 50 {
		t.Fatalf("expected AI score 50 attached, got %+v", out[0].AIScore)
	}
	if out[0].AIJustification != "经验匹配" {
		t.Fatalf("expected AI justification attached, got %q", out[0].AIJustification)
	}
	if out[0].AIPriority == nil || *out[0].AIPriority != 2 {
		t.Fatalf("expected AI priority 2 attached, got %+v", out[0].AIPriority)
	}
}

func TestBlendUnmatchedEntriesKeepScore(t *testing.T) {
	heuristic := []Ranked{ranked(1, 80), ranked(2, 70)}
	ai := &AIResponse{Recommendations: []AIRecommendation{
		{VolunteerID: 1, Score: 50},
	}}

	out := Blend(heuristic, ai)
	for _, item := range out {
		if item.VolunteerID == 2 {
			if item.Score != 70 || item.AIScore != nil {
				t.Fatalf("unmatched entry must keep heuristic score, got %+v", item)
			}
		}
	}
}

func TestBlendResortsDescending(t *testing.T) {
	heuristic := []Ranked{ranked(1, 80), ranked(2, 75)}
	// AI大幅抬升第二名：round(75*0.6+100*0.4)=85 > round(80*0.6+40*0.4)=64
	ai := &AIResponse{Recommendations: []AIRecommendation{
		{VolunteerID: 1, Score: 40},
		{VolunteerID: 2, Score: 100},
	}}

	out := Blend(heuristic, ai)
	if out[0].VolunteerID != 2 || out[0].Score != 85 {
		t.Fatalf("expected volunteer 2 promoted to rank 1 with score 85, got %+v", out[0])
	}
	if out[1].VolunteerID != 1 || out[1].Score != 64 {
		t.Fatalf("expected volunteer 1 demoted with score 64, got %+v", out[1])
	}
}

func TestBlendStableOnTies(t *testing.T) {
	heuristic := []Ranked{ranked(1, 70), ranked(2, 70), ranked(3, 70)}
	ai := &AIResponse{Recommendations: []AIRecommendation{
		{VolunteerID: 1, Score: 70},
		{VolunteerID: 2, Score: 70},
		{VolunteerID: 3, Score: 70},
	}}

	out := Blend(heuristic, ai)
	if out[0].VolunteerID != 1 || out[1].VolunteerID != 2 || out[2].VolunteerID != 3 {
		t.Fatalf("ties must keep original relative order, got %+v", out)
	}
}

func TestBlendDoesNotMutateInput(t *testing.T) {
	heuristic := []Ranked{ranked(1, 80)}
	ai := &AIResponse{Recommendations: []AIRecommendation{{VolunteerID: 1, Score: 50}}}

	_ = Blend(heuristic, ai)
	if heuristic[0].Score != 80 || heuristic[0].AIScore != nil {
		t.Fatalf("Blend must not mutate the heuristic slice, got %+v", heuristic[0])
	}
}
