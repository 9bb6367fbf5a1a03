package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testTask() TaskSummary {
	return TaskSummary{TaskID: 1, Title: "物资搬运", Urgency: 3, RequiredSkills: []string{"driving"}}
}

func testCandidates() []CandidateSummary {
	return []CandidateSummary{{VolunteerID: 5, Skills: []string{"driving"}, HeuristicScore: 80}}
}

func TestRequestRecommendationsDisabled(t *testing.T) {
	client := NewClient(Config{Enabled: false})
	if _, err := client.RequestRecommendations(context.Background(), testTask(), testCandidates()); err == nil {
		t.Fatal("expected error when AI is disabled")
	}
}

func TestRequestRecommendationsParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"` +
			"```json\\n" +
			`{\"recommendations\":[{\"volunteer_id\":5,\"score\":72,\"justification\":\"ok\",\"priority\":1}]}` +
			"\\n```" +
			`"}]}}]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{Enabled: true, BaseURL: srv.URL, APIKey: "test", Model: "test-model"})
	resp, err := client.RequestRecommendations(context.Background(), testTask(), testCandidates())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(resp.Recommendations))
	}
	rec := resp.Recommendations[0]
	if rec.VolunteerID != 5 || rec.Score != 72 || rec.Justification != "ok" || rec.Priority != 1 {
		t.Fatalf("unexpected recommendation: %+v", rec)
	}
}

func TestRequestRecommendationsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(Config{Enabled: true, BaseURL: srv.URL, APIKey: "test", Model: "test-model"})
	if _, err := client.RequestRecommendations(context.Background(), testTask(), testCandidates()); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestParseRecommendationsInvalidJSON(t *testing.T) {
	if _, err := parseRecommendations("这不是JSON"); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := parseRecommendations(`{"recommendations":[]}`); err == nil {
		t.Fatal("expected error for empty recommendations")
	}
}
