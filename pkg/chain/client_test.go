package chain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMintDisabled(t *testing.T) {
	client := NewClient(Config{Enabled: false})
	if _, err := client.Mint(context.Background(), MintRequest{BadgeCode: "B1"}); err == nil {
		t.Fatal("expected error when chain service is disabled")
	}
}

func TestMintSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req MintRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.BadgeCode != "FIRST_TASK" || req.Recipient != "volunteer:7" {
			t.Fatalf("unexpected request: %+v", req)
		}
		json.NewEncoder(w).Encode(MintResult{TokenID: "tok-123", TxHash: "0xabc"})
	}))
	defer srv.Close()

	client := NewClient(Config{Enabled: true, BaseURL: srv.URL})
	result, err := client.Mint(context.Background(), MintRequest{
		RequestID: "req-1",
		BadgeCode: "FIRST_TASK",
		Recipient: "volunteer:7",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TokenID != "tok-123" || result.TxHash != "0xabc" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestMintServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(Config{Enabled: true, BaseURL: srv.URL})
	if _, err := client.Mint(context.Background(), MintRequest{BadgeCode: "B1"}); err == nil {
		t.Fatal("expected error on 502 response")
	}
}

func TestMintMissingTokenID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(Config{Enabled: true, BaseURL: srv.URL})
	if _, err := client.Mint(context.Background(), MintRequest{BadgeCode: "B1"}); err == nil {
		t.Fatal("expected error when token_id missing")
	}
}
