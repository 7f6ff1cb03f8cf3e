package ocr

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"os/exec"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ensureTesseractAvailable checks that the tesseract binary is reachable.
func ensureTesseractAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("tesseract"); err != nil {
		t.Skip("tesseract not installed in PATH")
	}
}

func TestTesseractExtraction(t *testing.T) {
	ensureTesseractAvailable(t)

	img := image.NewRGBA(image.Rect(0, 0, 240, 80))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(20, 45),
	}
	d.DrawString("Testing 123")

	svc := NewService(NewTesseractProvider("eng"))
	got := svc.ExtractText(context.Background(), img)

	if !strings.Contains(got.Text, "Testing") {
		t.Fatalf("unexpected OCR output: %q", got.Text)
	}
	if got.Confidence < 0 || got.Confidence > 100 {
		t.Fatalf("confidence out of range: %v", got.Confidence)
	}
}

func TestTesseractProviderName(t *testing.T) {
	p := NewTesseractProvider("")
	if p.GetProviderName() != "Tesseract OCR" {
		t.Fatalf("unexpected provider name: %s", p.GetProviderName())
	}
	if p.language != "eng" {
		t.Fatalf("expected default language eng, got %s", p.language)
	}
}
