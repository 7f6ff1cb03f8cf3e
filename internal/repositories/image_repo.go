package repositories

import (
	"errors"

	"github.com/MuhamadAgungGumelar/ocr-converter-be/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrImageNotFound is returned when no stored image matches the given ID.
var ErrImageNotFound = errors.New("image not found")

// ImageRepo interface defines stored image operations
type ImageRepo interface {
	Create(image *models.StoredImage) error
	GetByID(id string) (*models.StoredImage, error)
}

type imageRepo struct {
	db *gorm.DB
}

// NewImageRepo creates a new stored image repository
func NewImageRepo(db *gorm.DB) ImageRepo {
	return &imageRepo{db: db}
}

// Create inserts a new stored image
func (r *imageRepo) Create(image *models.StoredImage) error {
	return r.db.Create(image).Error
}

// GetByID retrieves a stored image by ID. A malformed id cannot match any
// row, so it is reported as not found rather than sent to the uuid column.
func (r *imageRepo) GetByID(id string) (*models.StoredImage, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrImageNotFound
	}

	var image models.StoredImage
	err := r.db.Where("id = ?", id).First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	return &image, nil
}
