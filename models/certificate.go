package models

import "time"

// Certificate is an issued award document for an approved, scored
// submission. One certificate per submission.
type Certificate struct {
	CertificateID     int       `gorm:"primaryKey;column:certificate_id" json:"certificate_id"`
	SubmissionID      int       `gorm:"column:submission_id;unique" json:"submission_id"`
	CertificateNumber string    `gorm:"column:certificate_number;unique" json:"certificate_number"`
	Tier              string    `gorm:"column:tier" json:"tier"`
	Score             int       `gorm:"column:score" json:"score"`
	SchoolName        string    `gorm:"column:school_name" json:"school_name"`
	KCNumber          string    `gorm:"column:kc_number" json:"kc_number"`
	EventTitle        string    `gorm:"column:event_title" json:"event_title"`
	PdfURL            string    `gorm:"column:pdf_url" json:"pdf_url"`
	IssuedBy          int       `gorm:"column:issued_by" json:"issued_by"`
	IssuedAt          time.Time `gorm:"column:issued_at" json:"issued_at"`
}

func (Certificate) TableName() string {
	return "certificates"
}
