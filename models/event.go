package models

import "time"

// Event statuses.
const (
	EventStatusActive    = "active"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// Event is an outreach activity created by an administrator and assigned
// to schools or whole chapters.
type Event struct {
	EventID     int        `gorm:"primaryKey;column:event_id" json:"event_id"`
	Title       string     `gorm:"column:title" json:"title"`
	Description string     `gorm:"column:description" json:"description"`
	Location    string     `gorm:"column:location" json:"location"`
	StartDate   *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate     *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	ProgramType *string    `gorm:"column:program_type" json:"program_type,omitempty"`
	Status      string     `gorm:"column:status" json:"status"`
	CreatedBy   int        `gorm:"column:created_by" json:"created_by"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt    *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Creator User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

// EventAssignment links an event to a specific school or to an entire
// chapter. Exactly one of SchoolID / ChapterID is set.
type EventAssignment struct {
	AssignmentID int        `gorm:"primaryKey;column:assignment_id" json:"assignment_id"`
	EventID      int        `gorm:"column:event_id" json:"event_id"`
	SchoolID     *int       `gorm:"column:school_id" json:"school_id,omitempty"`
	ChapterID    *int       `gorm:"column:chapter_id" json:"chapter_id,omitempty"`
	Deadline     *time.Time `gorm:"column:deadline" json:"deadline,omitempty"`
	AssignedBy   int        `gorm:"column:assigned_by" json:"assigned_by"`
	AssignedAt   time.Time  `gorm:"column:assigned_at" json:"assigned_at"`

	// Relations
	Event   Event    `gorm:"foreignKey:EventID" json:"event,omitempty"`
	School  *School  `gorm:"foreignKey:SchoolID" json:"school,omitempty"`
	Chapter *Chapter `gorm:"foreignKey:ChapterID" json:"chapter,omitempty"`
}

// TableName overrides
func (Event) TableName() string {
	return "events"
}

func (EventAssignment) TableName() string {
	return "event_assignments"
}
