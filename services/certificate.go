package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"school-outreach-api/models"
)

// Certificate tiers.
const (
	TierExcellence    = "Excellence"
	TierMerit         = "Merit"
	TierParticipation = "Participation"
)

// Tier score thresholds.
const (
	excellenceThreshold = 80
	meritThreshold      = 60
)

// TierForScore maps a submission score to its certificate tier.
func TierForScore(score int) string {
	switch {
	case score >= excellenceThreshold:
		return TierExcellence
	case score >= meritThreshold:
		return TierMerit
	default:
		return TierParticipation
	}
}

type tierStyle struct {
	borderR, borderG, borderB int
	fillR, fillG, fillB       int
}

// Border and badge colors per tier: gold for Excellence, silver for Merit,
// bronze for Participation.
var tierStyles = map[string]tierStyle{
	TierExcellence:    {borderR: 212, borderG: 175, borderB: 55, fillR: 255, fillG: 250, fillB: 230},
	TierMerit:         {borderR: 160, borderG: 160, borderB: 170, fillR: 245, fillG: 245, fillB: 248},
	TierParticipation: {borderR: 176, borderG: 121, borderB: 80, fillR: 250, fillG: 240, fillB: 232},
}

// BuildCertificatePDF renders a single-page A4 landscape certificate for an
// issued certificate record and returns the PDF bytes.
func BuildCertificatePDF(cert models.Certificate) ([]byte, error) {
	style, ok := tierStyles[cert.Tier]
	if !ok {
		return nil, fmt.Errorf("unknown certificate tier: %s", cert.Tier)
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()

	// Background and double border in the tier color
	pdf.SetFillColor(style.fillR, style.fillG, style.fillB)
	pdf.Rect(0, 0, pageW, pageH, "F")
	pdf.SetDrawColor(style.borderR, style.borderG, style.borderB)
	pdf.SetLineWidth(1.6)
	pdf.Rect(8, 8, pageW-16, pageH-16, "D")
	pdf.SetLineWidth(0.4)
	pdf.Rect(11, 11, pageW-22, pageH-22, "D")

	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Helvetica", "B", 30)
	pdf.SetXY(0, 28)
	pdf.CellFormat(pageW, 14, "Certificate of "+cert.Tier, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 13)
	pdf.CellFormat(pageW, 10, "This certificate is proudly presented to", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(pageW, 14, cert.SchoolName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(pageW, 8, "KC No. "+cert.KCNumber, "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 13)
	pdf.CellFormat(pageW, 9, "for outstanding participation in", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 17)
	pdf.CellFormat(pageW, 11, cert.EventTitle, "", 1, "C", false, 0, "")

	// Score badge
	pdf.SetFont("Helvetica", "B", 15)
	pdf.SetDrawColor(style.borderR, style.borderG, style.borderB)
	badgeW := 60.0
	pdf.SetXY((pageW-badgeW)/2, pdf.GetY()+6)
	pdf.CellFormat(badgeW, 12, fmt.Sprintf("Score: %d / 100", cert.Score), "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetXY(0, pageH-30)
	pdf.CellFormat(pageW, 6, "Certificate No. "+cert.CertificateNumber, "", 1, "C", false, 0, "")
	pdf.CellFormat(pageW, 6, "Issued on "+cert.IssuedAt.Format("2 January 2006"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
