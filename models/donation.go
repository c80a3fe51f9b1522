package models

import "time"

// Donation statuses.
const (
	DonationStatusPending   = "pending"
	DonationStatusCompleted = "completed"
	DonationStatusFailed    = "failed"
)

type Donor struct {
	DonorID   int        `gorm:"primaryKey;column:donor_id" json:"donor_id"`
	Name      string     `gorm:"column:name" json:"name"`
	Email     *string    `gorm:"column:email" json:"email,omitempty"`
	Phone     *string    `gorm:"column:phone" json:"phone,omitempty"`
	DonorType string     `gorm:"column:donor_type" json:"donor_type"`
	CreateAt  *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt  *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

type Donation struct {
	DonationID    int        `gorm:"primaryKey;column:donation_id" json:"donation_id"`
	DonorID       int        `gorm:"column:donor_id" json:"donor_id"`
	Amount        float64    `gorm:"column:amount" json:"amount"`
	DonationType  string     `gorm:"column:donation_type" json:"donation_type"`
	PaymentMethod string     `gorm:"column:payment_method" json:"payment_method"`
	Status        string     `gorm:"column:status" json:"status"`
	Recurring     bool       `gorm:"column:recurring" json:"recurring"`
	ReceivedAt    *time.Time `gorm:"column:received_at" json:"received_at,omitempty"`
	Notes         *string    `gorm:"column:notes" json:"notes,omitempty"`
	RecordedBy    int        `gorm:"column:recorded_by" json:"recorded_by"`
	CreateAt      *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt      *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt      *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Donor Donor `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
}

// TableName overrides
func (Donor) TableName() string {
	return "donors"
}

func (Donation) TableName() string {
	return "donations"
}
