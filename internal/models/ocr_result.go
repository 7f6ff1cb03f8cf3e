package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OCRResult represents the text extracted from one uploaded image.
// Rows are written once at upload time and never updated or deleted.
type OCRResult struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename      string         `gorm:"type:varchar(255);not null" json:"filename"`
	ExtractedText string         `gorm:"type:text;not null;default:''" json:"extracted_text"`
	Confidence    *float64       `gorm:"type:float" json:"confidence,omitempty"` // Mean token confidence (0-100)
	Words         datatypes.JSON `gorm:"type:jsonb" json:"words,omitempty"`      // Per-token text/confidence/bounds as JSONB
	Timestamp     time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"timestamp"`
}

// TableName specifies the table name
func (OCRResult) TableName() string {
	return "ocr_results"
}

// BeforeCreate sets UUID before creating
func (r *OCRResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
