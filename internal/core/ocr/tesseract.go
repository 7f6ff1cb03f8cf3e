package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// TesseractProvider implements OCR using the Tesseract engine via gosseract
type TesseractProvider struct {
	language string
}

// NewTesseractProvider creates a new Tesseract OCR provider.
// language can be "eng", "ind" (Indonesian), or "eng+ind" for both.
func NewTesseractProvider(language string) *TesseractProvider {
	if language == "" {
		language = "eng" // Default to English
	}

	return &TesseractProvider{language: language}
}

// Recognize extracts word tokens from an encoded image. The page is
// treated as a single uniform block of text.
func (p *TesseractProvider) Recognize(ctx context.Context, imageData []byte) ([]Word, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(p.language); err != nil {
		return nil, fmt.Errorf("set language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return nil, fmt.Errorf("set page segmentation mode: %w", err)
	}
	if err := client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("recognize words: %w", err)
	}

	words := make([]Word, 0, len(boxes))
	for _, b := range boxes {
		words = append(words, Word{
			Text:       b.Word,
			Confidence: b.Confidence,
			X:          b.Box.Min.X,
			Y:          b.Box.Min.Y,
			Width:      b.Box.Dx(),
			Height:     b.Box.Dy(),
		})
	}
	return words, nil
}

// GetProviderName returns the name of the provider
func (p *TesseractProvider) GetProviderName() string {
	return "Tesseract OCR"
}
