package services

import (
	"bytes"
	"testing"
	"time"

	"school-outreach-api/models"
)

func TestTierForScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, TierExcellence},
		{92, TierExcellence},
		{80, TierExcellence},
		{79, TierMerit},
		{70, TierMerit},
		{60, TierMerit},
		{59, TierParticipation},
		{30, TierParticipation},
		{0, TierParticipation},
	}

	for _, tt := range tests {
		if got := TierForScore(tt.score); got != tt.want {
			t.Errorf("TierForScore(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestBuildCertificatePDF(t *testing.T) {
	cert := models.Certificate{
		CertificateNumber: "CERT-2026-0001",
		Tier:              TierExcellence,
		Score:             92,
		SchoolName:        "St. Xavier's High School",
		KCNumber:          "KC-2025-0042",
		EventTitle:        "Tree Plantation Drive",
		IssuedAt:          time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	}

	data, err := BuildCertificatePDF(cert)
	if err != nil {
		t.Fatalf("BuildCertificatePDF returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("BuildCertificatePDF returned empty document")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("document does not start with PDF header: %q", data[:8])
	}
}

func TestBuildCertificatePDFUnknownTier(t *testing.T) {
	cert := models.Certificate{Tier: "Platinum"}
	if _, err := BuildCertificatePDF(cert); err == nil {
		t.Fatal("expected error for unknown tier, got nil")
	}
}
