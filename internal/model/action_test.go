package model_test

import (
	"testing"
	"time"

	"repo-activity-feed/internal/model"
)

func TestCanonicalTime(t *testing.T) {
	ict := time.FixedZone("ICT", 7*3600)
	in := time.Date(2024, 1, 1, 7, 0, 0, 123456789, ict)

	got := model.CanonicalTime(in)

	want := time.Date(2024, 1, 1, 0, 0, 0, 123456000, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got.Location() != time.UTC {
		t.Errorf("expected UTC, got %v", got.Location())
	}
	if !model.CanonicalTime(got).Equal(got) {
		t.Errorf("expected CanonicalTime to be idempotent")
	}
}
