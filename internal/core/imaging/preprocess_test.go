package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestBinarizeKeepsDimensionsAndPurity(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: 128, A: 255})
		}
	}

	got := Binarize(img)

	if got.Bounds().Dx() != 64 || got.Bounds().Dy() != 48 {
		t.Fatalf("unexpected dimensions: %v", got.Bounds())
	}
	for i, v := range got.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("pixel %d is %d, want 0 or 255", i, v)
		}
	}
}

func TestBinarizeSeparatesInkFromPaper(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 60, 60))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(10, 10, 50, 50), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)

	got := Binarize(img)

	if got.GrayAt(30, 40).Y != 0 {
		t.Fatalf("ink pixel not black: %d", got.GrayAt(30, 40).Y)
	}
	if got.GrayAt(2, 2).Y != 255 {
		t.Fatalf("paper pixel not white: %d", got.GrayAt(2, 2).Y)
	}
}

func TestBinarizeRemovesSpeckle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 60, 60))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(10, 10, 50, 50), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)
	// Single bright pixel inside the ink region.
	img.Set(30, 30, color.White)

	got := Binarize(img)

	if got.GrayAt(30, 30).Y != 0 {
		t.Fatalf("speckle at (30,30) survived opening: %d", got.GrayAt(30, 30).Y)
	}
	if got.GrayAt(55, 55).Y != 255 {
		t.Fatalf("paper pixel not white: %d", got.GrayAt(55, 55).Y)
	}
}
