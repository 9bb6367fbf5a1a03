package model

import (
	"reflect"
	"testing"
)

func TestParseSkills(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"  ", nil},
		{`["first-aid","cooking"]`, []string{"first-aid", "cooking"}},
		{`["First-Aid","driving","first-aid",""]`, []string{"first-aid", "driving"}},
		{`["First-Aid"," cooking "]`, []string{"first-aid", "cooking"}},
		{`["cooking","cooking"]`, []string{"cooking"}},
		// 非JSON时退回逗号分隔
		{"first-aid, cooking", []string{"first-aid", "cooking"}},
	}
	for _, tc := range cases {
		if got := ParseSkills(tc.raw); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParseSkills(%q): expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestEncodeSkillsRoundTrip(t *testing.T) {
	encoded := EncodeSkills([]string{" First-Aid ", "cooking", "COOKING"})
	if got := ParseSkills(encoded); !reflect.DeepEqual(got, []string{"first-aid", "cooking"}) {
		t.Fatalf("unexpected round trip result: %v", got)
	}
	if EncodeSkills(nil) != "" {
		t.Fatal("expected empty string for empty skill list")
	}
}

func TestCanTaskTransition(t *testing.T) {
	valid := [][2]int32{
		{TaskStatusPending, TaskStatusAssigned},
		{TaskStatusPending, TaskStatusCancelled},
		{TaskStatusAssigned, TaskStatusInProgress},
		{TaskStatusInProgress, TaskStatusCompleted},
		{TaskStatusCompleted, TaskStatusVerified},
	}
	for _, tc := range valid {
		if !CanTaskTransition(tc[0], tc[1]) {
			t.Fatalf("expected transition %d -> %d to be valid", tc[0], tc[1])
		}
	}

	invalid := [][2]int32{
		{TaskStatusVerified, TaskStatusPending},
		{TaskStatusCancelled, TaskStatusAssigned},
		{TaskStatusCompleted, TaskStatusCancelled},
		{TaskStatusPending, TaskStatusCompleted},
	}
	for _, tc := range invalid {
		if CanTaskTransition(tc[0], tc[1]) {
			t.Fatalf("expected transition %d -> %d to be rejected", tc[0], tc[1])
		}
	}
}

func TestIsTaskMatchable(t *testing.T) {
	for _, status := range []int32{TaskStatusPending, TaskStatusAssigned, TaskStatusInProgress} {
		if !IsTaskMatchable(status) {
			t.Fatalf("expected status %d to be matchable", status)
		}
	}
	for _, status := range []int32{TaskStatusCompleted, TaskStatusVerified, TaskStatusCancelled} {
		if IsTaskMatchable(status) {
			t.Fatalf("expected status %d to be unmatchable", status)
		}
	}
}
