package handlers

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/ocr-converter-be/internal/core/overlay"
	"github.com/MuhamadAgungGumelar/ocr-converter-be/internal/repositories"
)

// ImageHandler handles stored image retrieval and editing
type ImageHandler struct {
	imageRepo repositories.ImageRepo
}

// NewImageHandler creates a new image handler
func NewImageHandler(imageRepo repositories.ImageRepo) *ImageHandler {
	return &ImageHandler{imageRepo: imageRepo}
}

// EditRequest represents the request body for editing an image
type EditRequest struct {
	FileID string             `json:"file_id"`
	Edits  []overlay.TextEdit `json:"edits"`
}

// EditImage godoc
// @Summary Overlay text onto a stored image
// @Description Fetches a stored image, draws the given text edits onto a copy, and streams the result back as a PNG attachment
// @Tags Images
// @Accept json
// @Produce png
// @Param request body EditRequest true "File ID and text edits"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/edit-image [post]
func (h *ImageHandler) EditImage(c *fiber.Ctx) error {
	var req EditRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	stored, err := h.imageRepo.GetByID(req.FileID)
	if err != nil {
		if errors.Is(err, repositories.ErrImageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "image not found",
			})
		}
		log.Printf("❌ Failed to fetch image %s: %v", req.FileID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to retrieve image",
		})
	}

	img, err := h.decodeStored(stored.ImageData)
	if err != nil {
		log.Printf("❌ Failed to decode stored image %s: %v", req.FileID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to edit image",
		})
	}

	edited := overlay.Render(img, req.Edits)

	var buf bytes.Buffer
	if err := png.Encode(&buf, edited); err != nil {
		log.Printf("❌ Failed to encode edited image %s: %v", req.FileID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to edit image",
		})
	}

	log.Printf("🖋️ Rendered %d edit(s) onto image %s", len(req.Edits), req.FileID)

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=edited_%s", stored.Filename))
	return c.Send(buf.Bytes())
}

// GetImage godoc
// @Summary Get a stored image
// @Description Streams back the original stored image as PNG
// @Tags Images
// @Produce png
// @Param id path string true "Image ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/image/{id} [get]
func (h *ImageHandler) GetImage(c *fiber.Ctx) error {
	id := c.Params("id")

	stored, err := h.imageRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrImageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "image not found",
			})
		}
		log.Printf("❌ Failed to fetch image %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to retrieve image",
		})
	}

	imgData, err := base64.StdEncoding.DecodeString(stored.ImageData)
	if err != nil {
		log.Printf("❌ Failed to decode stored image %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to retrieve image",
		})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(imgData)
}

func (h *ImageHandler) decodeStored(imageData string) (image.Image, error) {
	raw, err := base64.StdEncoding.DecodeString(imageData)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return img, nil
}
