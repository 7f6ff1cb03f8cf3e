package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/MuhamadAgungGumelar/ocr-converter-be/internal/core/ocr"
	"github.com/MuhamadAgungGumelar/ocr-converter-be/internal/models"
	"github.com/MuhamadAgungGumelar/ocr-converter-be/internal/repositories"
)

// OCRHandler handles image upload and OCR result requests
type OCRHandler struct {
	ocrService *ocr.Service
	resultRepo repositories.OCRResultRepo
	imageRepo  repositories.ImageRepo
}

// NewOCRHandler creates a new OCR handler
func NewOCRHandler(ocrService *ocr.Service, resultRepo repositories.OCRResultRepo, imageRepo repositories.ImageRepo) *OCRHandler {
	return &OCRHandler{
		ocrService: ocrService,
		resultRepo: resultRepo,
		imageRepo:  imageRepo,
	}
}

// UploadOCR godoc
// @Summary Upload image and extract text
// @Description Upload an image, run OCR on it, and persist the extracted text together with the original image
// @Tags OCR
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} models.OCRResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/upload-ocr [post]
func (h *OCRHandler) UploadOCR(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "image file is required",
		})
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "only image files are supported",
		})
	}

	fileHandle, err := file.Open()
	if err != nil {
		log.Printf("❌ Failed to open file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read image file",
		})
	}
	defer fileHandle.Close()

	imageData, err := io.ReadAll(fileHandle)
	if err != nil {
		log.Printf("❌ Failed to read file data: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read image file",
		})
	}

	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		log.Printf("❌ Failed to decode image %s: %v", file.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to process image",
		})
	}

	log.Printf("📸 Processing upload %s (size: %.2f KB) with %s", file.Filename, float64(file.Size)/1024, h.ocrService.GetProviderName())

	extraction := h.ocrService.ExtractText(c.Context(), img)

	confidence := extraction.Confidence
	result := &models.OCRResult{
		ID:            uuid.New(),
		Filename:      file.Filename,
		ExtractedText: extraction.Text,
		Confidence:    &confidence,
		Timestamp:     time.Now().UTC(),
	}
	if len(extraction.Words) > 0 {
		wordsJSON, err := json.Marshal(extraction.Words)
		if err != nil {
			log.Printf("❌ Failed to marshal words: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to process image",
			})
		}
		result.Words = datatypes.JSON(wordsJSON)
	}

	if err := h.resultRepo.Create(result); err != nil {
		log.Printf("❌ Failed to save OCR result: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save OCR result",
		})
	}

	// Keep the original around as PNG for later editing and retrieval.
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		log.Printf("❌ Failed to encode image %s: %v", file.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to process image",
		})
	}

	stored := &models.StoredImage{
		ID:        result.ID,
		Filename:  file.Filename,
		ImageData: base64.StdEncoding.EncodeToString(pngBuf.Bytes()),
		Timestamp: time.Now().UTC(),
	}
	if err := h.imageRepo.Create(stored); err != nil {
		log.Printf("❌ Failed to save image: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save image",
		})
	}

	log.Printf("✅ OCR result saved: %s (confidence: %.2f%%)", result.ID.String(), extraction.Confidence)

	return c.JSON(result)
}

// GetOCRResults godoc
// @Summary List OCR results
// @Description Returns up to 100 stored OCR results
// @Tags OCR
// @Produce json
// @Success 200 {array} models.OCRResult
// @Failure 500 {object} map[string]string
// @Router /api/ocr-results [get]
func (h *OCRHandler) GetOCRResults(c *fiber.Ctx) error {
	results, err := h.resultRepo.List(repositories.MaxListResults)
	if err != nil {
		log.Printf("❌ Failed to get OCR results: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to retrieve OCR results",
		})
	}

	return c.JSON(results)
}
