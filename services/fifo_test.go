package services

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestSortFIFO_ComponentThenExpiry(t *testing.T) {
	lines := []ComponentLine{
		{Component: "B", BatchNr: "B1", Expiry: date(2026, 1, 10)},
		{Component: "A", BatchNr: "A2", Expiry: date(2026, 5, 1)},
		{Component: "A", BatchNr: "A1", Expiry: date(2026, 2, 1)},
		{Component: "B", BatchNr: "B2", Expiry: date(2025, 12, 1)},
	}

	sorted := SortFIFO(lines)

	wantBatches := []string{"A1", "A2", "B2", "B1"}
	for i, want := range wantBatches {
		if sorted[i].BatchNr != want {
			t.Errorf("position %d: batch = %q, want %q", i, sorted[i].BatchNr, want)
		}
	}
}

func TestSortFIFO_NilExpirySortsLastWithinComponent(t *testing.T) {
	lines := []ComponentLine{
		{Component: "A", BatchNr: "unknown", Expiry: nil},
		{Component: "A", BatchNr: "dated", Expiry: date(2030, 1, 1)},
		{Component: "B", BatchNr: "other", Expiry: nil},
	}

	sorted := SortFIFO(lines)

	if sorted[0].BatchNr != "dated" {
		t.Errorf("first A batch = %q, want the dated one", sorted[0].BatchNr)
	}
	if sorted[1].BatchNr != "unknown" {
		t.Errorf("second A batch = %q, want the undated one", sorted[1].BatchNr)
	}
	if sorted[2].Component != "B" {
		t.Errorf("third entry component = %q, want B", sorted[2].Component)
	}
}

func TestSortFIFO_StableOnTies(t *testing.T) {
	same := date(2026, 3, 15)
	lines := []ComponentLine{
		{Component: "A", BatchNr: "first", Expiry: same},
		{Component: "A", BatchNr: "second", Expiry: same},
		{Component: "A", BatchNr: "null-first", Expiry: nil},
		{Component: "A", BatchNr: "null-second", Expiry: nil},
	}

	sorted := SortFIFO(lines)

	wantBatches := []string{"first", "second", "null-first", "null-second"}
	for i, want := range wantBatches {
		if sorted[i].BatchNr != want {
			t.Errorf("position %d: batch = %q, want %q (original order must hold on ties)", i, sorted[i].BatchNr, want)
		}
	}
}

func TestSortFIFO_InputUntouched(t *testing.T) {
	lines := []ComponentLine{
		{Component: "B", BatchNr: "B1"},
		{Component: "A", BatchNr: "A1"},
	}

	_ = SortFIFO(lines)

	if lines[0].Component != "B" || lines[1].Component != "A" {
		t.Error("SortFIFO mutated its input")
	}
}

func TestSortFIFO_Empty(t *testing.T) {
	if got := SortFIFO(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %d entries", len(got))
	}
}
