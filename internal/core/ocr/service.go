package ocr

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"

	imgproc "github.com/MuhamadAgungGumelar/ocr-converter-be/internal/core/imaging"
	"github.com/MuhamadAgungGumelar/ocr-converter-be/internal/shared/utils"
)

// minTokenConfidence filters out tokens the engine is unsure about.
const minTokenConfidence = 30

// Result contains the extracted text and metadata for one image.
type Result struct {
	Text       string  `json:"text"`       // Surviving tokens joined with single spaces
	Confidence float64 `json:"confidence"` // Mean confidence of surviving tokens (0-100)
	Words      []Word  `json:"words"`      // Surviving tokens with positions
}

// Service wraps an OCR provider with the preprocessing and
// confidence-filtering pipeline.
type Service struct {
	provider Provider
}

// NewService creates a new OCR service with the given provider
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// ExtractText binarizes the image, runs the provider on it and keeps only
// tokens with confidence above the cutoff. Engine failures are not
// propagated: the caller always gets a result, degraded to empty text and
// zero confidence when recognition fails.
func (s *Service) ExtractText(ctx context.Context, img image.Image) *Result {
	processed := imgproc.Binarize(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, processed); err != nil {
		utils.LogError("OCR preprocessing encode failed", err, nil)
		return &Result{}
	}

	words, err := s.provider.Recognize(ctx, buf.Bytes())
	if err != nil {
		utils.LogError("OCR extraction failed", err, map[string]interface{}{
			"provider": s.provider.GetProviderName(),
		})
		return &Result{}
	}

	texts := make([]string, 0, len(words))
	kept := make([]Word, 0, len(words))
	var confidenceSum float64
	for _, w := range words {
		if w.Confidence <= minTokenConfidence {
			continue
		}
		text := strings.TrimSpace(w.Text)
		if text == "" {
			continue
		}
		w.Text = text
		texts = append(texts, text)
		kept = append(kept, w)
		confidenceSum += w.Confidence
	}

	result := &Result{
		Text:  strings.Join(texts, " "),
		Words: kept,
	}
	if len(kept) > 0 {
		result.Confidence = confidenceSum / float64(len(kept))
	}
	return result
}

// GetProviderName returns the name of the current provider
func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}
