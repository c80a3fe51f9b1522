package models

import "time"

// School lifecycle statuses. Transitions are made only by admin actions.
const (
	SchoolStatusPending  = "pending"
	SchoolStatusApproved = "approved"
	SchoolStatusRejected = "rejected"
)

type School struct {
	SchoolID        int        `gorm:"primaryKey;column:school_id" json:"school_id"`
	KCNumber        string     `gorm:"column:kc_number;unique" json:"kc_number"`
	Name            string     `gorm:"column:name" json:"name"`
	PrincipalName   string     `gorm:"column:principal_name" json:"principal_name"`
	ContactPhone    string     `gorm:"column:contact_phone" json:"contact_phone"`
	Email           string     `gorm:"column:email" json:"email"`
	ChapterID       int        `gorm:"column:chapter_id" json:"chapter_id"`
	Status          string     `gorm:"column:status" json:"status"`
	RejectionReason *string    `gorm:"column:rejection_reason" json:"rejection_reason,omitempty"`
	ApprovedAt      *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
	CreateAt        *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt        *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt        *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Chapter Chapter `gorm:"foreignKey:ChapterID" json:"chapter,omitempty"`
}

func (School) TableName() string {
	return "schools"
}
