package repositories

import (
	"github.com/MuhamadAgungGumelar/ocr-converter-be/internal/models"
	"gorm.io/gorm"
)

// MaxListResults caps how many OCR results a single listing returns.
const MaxListResults = 100

// OCRResultRepo interface defines OCR result operations
type OCRResultRepo interface {
	Create(result *models.OCRResult) error
	List(limit int) ([]models.OCRResult, error)
}

type ocrResultRepo struct {
	db *gorm.DB
}

// NewOCRResultRepo creates a new OCR result repository
func NewOCRResultRepo(db *gorm.DB) OCRResultRepo {
	return &ocrResultRepo{db: db}
}

// Create inserts a new OCR result
func (r *ocrResultRepo) Create(result *models.OCRResult) error {
	return r.db.Create(result).Error
}

// List retrieves up to limit OCR results in the store's natural scan order.
// The slice is never nil so an empty store serializes as a JSON array.
func (r *ocrResultRepo) List(limit int) ([]models.OCRResult, error) {
	if limit <= 0 || limit > MaxListResults {
		limit = MaxListResults
	}

	results := make([]models.OCRResult, 0, limit)
	if err := r.db.Limit(limit).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
