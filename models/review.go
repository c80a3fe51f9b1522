package models

import "time"

// ReviewRecord is an audit row written for every review action taken on a
// submission, regardless of outcome.
type ReviewRecord struct {
	ReviewID     int       `gorm:"primaryKey;column:review_id" json:"review_id"`
	SubmissionID int       `gorm:"column:submission_id" json:"submission_id"`
	ReviewerID   int       `gorm:"column:reviewer_id" json:"reviewer_id"`
	Action       string    `gorm:"column:action" json:"action"`
	Score        *int      `gorm:"column:score" json:"score,omitempty"`
	Comments     string    `gorm:"column:comments" json:"comments"`
	ReviewedAt   time.Time `gorm:"column:reviewed_at" json:"reviewed_at"`

	Reviewer *User `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}

// StatusHistory tracks status transitions for schools and submissions.
type StatusHistory struct {
	HistoryID  int       `gorm:"primaryKey;column:history_id" json:"history_id"`
	EntityType string    `gorm:"column:entity_type" json:"entity_type"`
	EntityID   int       `gorm:"column:entity_id" json:"entity_id"`
	FromStatus string    `gorm:"column:from_status" json:"from_status"`
	ToStatus   string    `gorm:"column:to_status" json:"to_status"`
	ChangedBy  int       `gorm:"column:changed_by" json:"changed_by"`
	ChangedAt  time.Time `gorm:"column:changed_at" json:"changed_at"`
}

// TableName overrides
func (ReviewRecord) TableName() string {
	return "review_records"
}

func (StatusHistory) TableName() string {
	return "status_histories"
}
