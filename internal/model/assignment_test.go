package model

import "testing"

func TestAssignmentTransitions(t *testing.T) {
	allowed := []struct{ from, to int32 }{
		{AssignmentStatusPending, AssignmentStatusAccepted},
		{AssignmentStatusPending, AssignmentStatusRejected},
		{AssignmentStatusPending, AssignmentStatusVerified},
		{AssignmentStatusAccepted, AssignmentStatusInProgress},
		{AssignmentStatusAccepted, AssignmentStatusVerified},
		{AssignmentStatusInProgress, AssignmentStatusCompleted},
		{AssignmentStatusInProgress, AssignmentStatusVerified},
		{AssignmentStatusCompleted, AssignmentStatusVerified},
	}
	for _, tc := range allowed {
		if !CanAssignmentTransition(tc.from, tc.to) {
			t.Fatalf("transition %d -> %d should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to int32 }{
		{AssignmentStatusRejected, AssignmentStatusAccepted},
		{AssignmentStatusRejected, AssignmentStatusVerified},
		{AssignmentStatusVerified, AssignmentStatusPending},
		{AssignmentStatusVerified, AssignmentStatusVerified},
		{AssignmentStatusAccepted, AssignmentStatusRejected},
		{AssignmentStatusCompleted, AssignmentStatusInProgress},
		{AssignmentStatusPending, AssignmentStatusCompleted},
	}
	for _, tc := range denied {
		if CanAssignmentTransition(tc.from, tc.to) {
			t.Fatalf("transition %d -> %d should be denied", tc.from, tc.to)
		}
	}
}

func TestIsAssignmentFinal(t *testing.T) {
	if !IsAssignmentFinal(AssignmentStatusRejected) || !IsAssignmentFinal(AssignmentStatusVerified) {
		t.Fatal("REJECTED and VERIFIED must be final")
	}
	for _, st := range []int32{AssignmentStatusPending, AssignmentStatusAccepted, AssignmentStatusInProgress, AssignmentStatusCompleted} {
		if IsAssignmentFinal(st) {
			t.Fatalf("status %d must not be final", st)
		}
	}
}
