package controllers

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)

	// 01:30 IST is the previous UTC day; midnight must stay on the local day
	at := time.Date(2026, 6, 15, 1, 30, 0, 0, ist)
	got := startOfDay(at)

	want := time.Date(2026, 6, 15, 0, 0, 0, 0, ist)
	if !got.Equal(want) {
		t.Errorf("startOfDay = %v, want %v", got, want)
	}
	if got.Location() != ist {
		t.Errorf("startOfDay changed location to %v", got.Location())
	}
}
