package service

import (
	"testing"

	"volunteer-platform/internal/model"
)

func TestNewEarnTransaction(t *testing.T) {
	tx := newEarnTransaction(7, 42, 3, 120, 880, "comp-42-abc")

	if tx.TxType != model.PointTxEarn {
		t.Fatalf("expected tx type %d, got %d", model.PointTxEarn, tx.TxType)
	}
	if tx.VolunteerID != 7 || tx.AssignmentID != 42 || tx.OperatorID != 3 {
		t.Fatalf("unexpected parties: volunteer=%d, assignment=%d, operator=%d",
			tx.VolunteerID, tx.AssignmentID, tx.OperatorID)
	}
	// 流水不变式：变动后余额 = 变动前余额 + 金额
	if tx.AfterPoints != tx.BeforePoints+tx.Amount {
		t.Fatalf("expected after=before+amount, got before=%d, amount=%d, after=%d",
			tx.BeforePoints, tx.Amount, tx.AfterPoints)
	}
	if tx.AfterPoints != 1000 {
		t.Fatalf("expected after points 1000, got %d", tx.AfterPoints)
	}
	if tx.IdempotencyKey != "comp-42-abc" {
		t.Fatalf("expected idempotency key carried, got %q", tx.IdempotencyKey)
	}
	if tx.Reason == "" {
		t.Fatal("expected non-empty reason")
	}
}

func TestNewEarnTransactionZeroAmount(t *testing.T) {
	// 核验可给0分，流水仍需落库保持总积分与流水一致
	tx := newEarnTransaction(7, 42, 3, 0, 880, "comp-42-zero")
	if tx.Amount != 0 || tx.AfterPoints != 880 {
		t.Fatalf("expected unchanged balance, got amount=%d, after=%d", tx.Amount, tx.AfterPoints)
	}
}
