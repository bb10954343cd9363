package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Media is an uploaded image or video stored on the local filesystem.
// Records are created on upload and deleted by id, never updated.
type Media struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Filename  string    `gorm:"column:filename" json:"filename"` // original client filename
	URL       string    `gorm:"column:url" json:"url"`           // public served path
	Type      string    `gorm:"column:type" json:"type"`         // image | video, derived from the extension
	Size      int64     `gorm:"column:size" json:"size"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Media) TableName() string { return "media" }

func (m *Media) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
