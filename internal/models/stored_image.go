package models

import (
	"time"

	"github.com/google/uuid"
)

// StoredImage holds the original upload, re-encoded as PNG and stored as
// base64 text. It shares its ID with the OCRResult created by the same
// upload and is never mutated; edits always produce a fresh response
// stream, not a new row.
type StoredImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Filename  string    `gorm:"type:varchar(255);not null" json:"filename"`
	ImageData string    `gorm:"type:text;not null" json:"image_data"`
	Timestamp time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"timestamp"`
}

// TableName specifies the table name
func (StoredImage) TableName() string {
	return "images"
}
