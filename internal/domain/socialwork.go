package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialWork is a titled activity record referencing zero or more Media
// items. References are stored as ids and resolved against the media table
// at read time; a dangling id is dropped silently, never an error. Deleting
// a social work never cascades to its media.
type SocialWork struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	MediaIDs    []string  `gorm:"column:media_ids;serializer:json" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`

	// Resolved at read time, not persisted.
	Media []Media `gorm:"-" json:"media"`
}

func (SocialWork) TableName() string { return "social_works" }

func (w *SocialWork) BeforeCreate(*gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
