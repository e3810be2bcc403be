package models

import (
	"testing"
	"time"
)

func TestNewTenantValidation(t *testing.T) {
	now := time.Now()
	conn := Connection{BaseURL: "https://fhir.example.com"}

	if _, err := NewTenant("", VendorEpic, conn, now); err == nil {
		t.Fatalf("expected error for empty mnemonic")
	}
	if _, err := NewTenant("Epic-West", VendorEpic, conn, now); err == nil {
		t.Fatalf("expected error for mnemonic containing separator characters")
	}
	if _, err := NewTenant("epic", VendorType("allscripts"), conn, now); err == nil {
		t.Fatalf("expected error for unsupported vendor")
	}

	tenant, err := NewTenant("epicwest2", VendorEpic, conn, now)
	if err != nil {
		t.Fatalf("expected valid tenant: %v", err)
	}
	if tenant.Mnemonic != "epicwest2" {
		t.Fatalf("unexpected mnemonic %q", tenant.Mnemonic)
	}
}

func TestBatchWindow(t *testing.T) {
	mustTime := func(s string) time.Time {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			t.Fatalf("bad test time %q: %v", s, err)
		}
		return parsed
	}

	t.Run("nil window always open", func(t *testing.T) {
		var w *BatchWindow
		if !w.InWindow(time.Now()) {
			t.Fatalf("nil window should be open")
		}
	})

	t.Run("same-day window", func(t *testing.T) {
		w := &BatchWindow{Start: "22:00", End: "23:30", Timezone: "UTC"}
		if !w.InWindow(mustTime("2024-06-01T22:30:00Z")) {
			t.Fatalf("expected 22:30 inside 22:00-23:30")
		}
		if w.InWindow(mustTime("2024-06-01T12:00:00Z")) {
			t.Fatalf("expected noon outside 22:00-23:30")
		}
	})

	t.Run("window wrapping midnight", func(t *testing.T) {
		w := &BatchWindow{Start: "23:00", End: "04:00", Timezone: "UTC"}
		if !w.InWindow(mustTime("2024-06-01T23:30:00Z")) {
			t.Fatalf("expected 23:30 inside wrap window")
		}
		if !w.InWindow(mustTime("2024-06-01T02:00:00Z")) {
			t.Fatalf("expected 02:00 inside wrap window")
		}
		if w.InWindow(mustTime("2024-06-01T12:00:00Z")) {
			t.Fatalf("expected noon outside wrap window")
		}
	})
}
