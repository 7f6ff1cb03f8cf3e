package overlay

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/MuhamadAgungGumelar/ocr-converter-be/internal/shared/utils"
)

// defaultFontPath is the system font used for overlays. When it cannot be
// loaded the built-in bitmap face is used instead, at its fixed size.
const defaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"

// DefaultFontSize is used when an edit does not specify a size.
const DefaultFontSize = 24

// TextEdit places one text string on an image. Edits only live for the
// duration of a single request.
type TextEdit struct {
	Text      string `json:"text"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	FontSize  int    `json:"font_size"`
	FontColor string `json:"font_color"`
}

// Render draws each edit onto a copy of img, in order. An edit that fails
// to render is skipped; the remaining edits are still applied. The input
// image is never modified.
func Render(img image.Image, edits []TextEdit) image.Image {
	canvas := imaging.Clone(img)

	for _, edit := range edits {
		if err := drawEdit(canvas, edit); err != nil {
			utils.LogWarn("Skipping text edit", map[string]interface{}{
				"text":  edit.Text,
				"error": err.Error(),
			})
		}
	}

	return canvas
}

func drawEdit(canvas *image.NRGBA, edit TextEdit) error {
	size := edit.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}

	fontColor := edit.FontColor
	if fontColor == "" {
		fontColor = "#000000"
	}
	rgba, err := ParseHexColor(fontColor)
	if err != nil {
		return err
	}

	face := loadFace(size)
	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(rgba),
		Face: face,
		// The edit position is the top-left corner of the text, the
		// drawer wants the baseline.
		Dot: fixed.P(edit.X, edit.Y+face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(edit.Text)
	return nil
}

// loadFace resolves the overlay font at the requested size, falling back
// to the built-in face when the system font is unavailable.
func loadFace(size int) font.Face {
	data, err := os.ReadFile(defaultFontPath)
	if err != nil {
		return basicfont.Face7x13
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// ParseHexColor parses a 6-hex-digit color string with an optional "#"
// prefix into an opaque RGBA color.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want 6 hex digits", s)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		channels[i] = uint8(v)
	}

	return color.RGBA{R: channels[0], G: channels[1], B: channels[2], A: 255}, nil
}
