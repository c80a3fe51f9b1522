package models

import "time"

// Chapter is a regional grouping of schools (a "kendra").
type Chapter struct {
	ChapterID int        `gorm:"primaryKey;column:chapter_id" json:"chapter_id"`
	Name      string     `gorm:"column:name;unique" json:"name"`
	Location  string     `gorm:"column:location" json:"location"`
	State     string     `gorm:"column:state" json:"state"`
	CreateAt  *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt  *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (Chapter) TableName() string {
	return "chapters"
}
