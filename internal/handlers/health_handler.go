package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/ocr-converter-be/internal/core/ocr"
)

type HealthHandler struct {
	ocrService *ocr.Service
}

func NewHealthHandler(ocrService *ocr.Service) *HealthHandler {
	return &HealthHandler{ocrService: ocrService}
}

// GetRoot godoc
// @Summary API root
// @Description Returns the API welcome message
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/ [get]
func (h *HealthHandler) GetRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "OCR Converter API",
	})
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "ocr-converter-api",
		"provider": h.ocrService.GetProviderName(),
	})
}
