package ocr

import "context"

// Word is a single recognized token with the engine's self-reported
// confidence (0-100) and its bounding box in pixel coordinates.
type Word struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	X          int     `json:"x"`
	Y          int     `json:"y"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
}

// Provider interface for OCR engines
type Provider interface {
	// Recognize runs OCR on an encoded image and returns the raw tokens.
	Recognize(ctx context.Context, imageData []byte) ([]Word, error)

	// GetProviderName returns the provider name
	GetProviderName() string
}
