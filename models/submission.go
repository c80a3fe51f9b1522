package models

import "time"

// Submission lifecycle statuses. pending is the only state a review action
// can start from; the three outcomes are terminal.
const (
	SubmissionStatusPending           = "pending"
	SubmissionStatusApproved          = "approved"
	SubmissionStatusRejected          = "rejected"
	SubmissionStatusRevisionRequested = "revision_requested"
)

// EventSubmission is a school's report of a completed activity, pending
// evaluator/admin review. One submission per (event, school).
type EventSubmission struct {
	SubmissionID int        `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	EventID      int        `gorm:"column:event_id;uniqueIndex:idx_event_school" json:"event_id"`
	SchoolID     int        `gorm:"column:school_id;uniqueIndex:idx_event_school" json:"school_id"`
	TeacherName  *string    `gorm:"column:teacher_name" json:"teacher_name,omitempty"`
	Description  string     `gorm:"column:description" json:"description"`
	DocumentURL  *string    `gorm:"column:document_url" json:"document_url,omitempty"`
	Status       string     `gorm:"column:status" json:"status"`
	Score        *int       `gorm:"column:score" json:"score,omitempty"`
	AdminComment *string    `gorm:"column:admin_comments" json:"admin_comments,omitempty"`
	SubmittedAt  *time.Time `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	ReviewedAt   *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	ReviewedBy   *int       `gorm:"column:reviewed_by" json:"reviewed_by,omitempty"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Event        Event         `gorm:"foreignKey:EventID" json:"event,omitempty"`
	School       School        `gorm:"foreignKey:SchoolID" json:"school,omitempty"`
	Reviewer     *User         `gorm:"foreignKey:ReviewedBy" json:"reviewer,omitempty"`
	MediaFiles   []MediaFile   `gorm:"foreignKey:SubmissionID" json:"media_files,omitempty"`
	Publications []Publication `gorm:"foreignKey:SubmissionID" json:"publications,omitempty"`
}

// MediaFile is uploaded evidence attached to a submission. Append-only.
type MediaFile struct {
	MediaFileID  int       `gorm:"primaryKey;column:media_file_id" json:"media_file_id"`
	SubmissionID int       `gorm:"column:submission_id" json:"submission_id"`
	FileType     string    `gorm:"column:file_type" json:"file_type"`
	OriginalName string    `gorm:"column:original_name" json:"original_name"`
	StoredURL    string    `gorm:"column:stored_url" json:"stored_url"`
	FileSize     int64     `gorm:"column:file_size" json:"file_size"`
	MimeType     string    `gorm:"column:mime_type" json:"mime_type"`
	UploadedBy   int       `gorm:"column:uploaded_by" json:"uploaded_by"`
	UploadedAt   time.Time `gorm:"column:uploaded_at" json:"uploaded_at"`
}

// Publication records external media coverage of a submission. Append-only.
type Publication struct {
	PublicationID int        `gorm:"primaryKey;column:publication_id" json:"publication_id"`
	SubmissionID  int        `gorm:"column:submission_id" json:"submission_id"`
	OutletName    string     `gorm:"column:outlet_name" json:"outlet_name"`
	PublishedOn   *time.Time `gorm:"column:published_on" json:"published_on,omitempty"`
	ArticleURL    *string    `gorm:"column:article_url" json:"article_url,omitempty"`
	Citation      *string    `gorm:"column:citation" json:"citation,omitempty"`
	CreateAt      *time.Time `gorm:"column:create_at" json:"create_at"`
}

// Helper methods for media validation
func (m *MediaFile) IsValidImageType() bool {
	validTypes := []string{"image/jpeg", "image/jpg", "image/png", "image/gif"}
	for _, validType := range validTypes {
		if m.MimeType == validType {
			return true
		}
	}
	return false
}

func (m *MediaFile) IsValidVideoType() bool {
	validTypes := []string{"video/mp4", "video/mpeg", "video/quicktime", "video/webm"}
	for _, validType := range validTypes {
		if m.MimeType == validType {
			return true
		}
	}
	return false
}

func (m *MediaFile) GetFileSizeInMB() float64 {
	return float64(m.FileSize) / (1024 * 1024)
}

// TableName overrides
func (EventSubmission) TableName() string {
	return "event_submissions"
}

func (MediaFile) TableName() string {
	return "media_files"
}

func (Publication) TableName() string {
	return "publications"
}
