package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Binarize prepares an image for OCR: grayscale conversion, automatic
// global thresholding (Otsu) and a small morphological opening to drop
// speckle noise. The output has the same dimensions as the input and
// contains only pure black and pure white pixels.
func Binarize(img image.Image) *image.Gray {
	gray := toGray(img)
	threshold := otsuThreshold(gray)

	bounds := gray.Bounds()
	binary := image.NewGray(bounds)
	for i, v := range gray.Pix {
		if v > threshold {
			binary.Pix[i] = 255
		} else {
			binary.Pix[i] = 0
		}
	}

	return open3x3(binary)
}

// toGray converts any image to an 8-bit grayscale plane.
func toGray(img image.Image) *image.Gray {
	nrgba := imaging.Grayscale(img)
	bounds := nrgba.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			// Channels are equal after Grayscale, red is enough.
			gray.Pix[y*gray.Stride+x] = nrgba.Pix[y*nrgba.Stride+x*4]
		}
	}
	return gray
}

// otsuThreshold picks the threshold that maximizes the between-class
// variance of the grayscale histogram.
func otsuThreshold(gray *image.Gray) uint8 {
	var hist [256]int
	for _, v := range gray.Pix {
		hist[v]++
	}

	total := len(gray.Pix)
	if total == 0 {
		return 0
	}

	var sum float64
	for i, c := range hist {
		sum += float64(i) * float64(c)
	}

	var sumB, wB float64
	var maxVariance float64
	var threshold uint8
	for i := 0; i < 256; i++ {
		wB += float64(hist[i])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(i) * float64(hist[i])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		variance := wB * wF * (mB - mF) * (mB - mF)
		if variance > maxVariance {
			maxVariance = variance
			threshold = uint8(i)
		}
	}
	return threshold
}

// open3x3 applies one erosion followed by one dilation with a 3x3 kernel.
// On a binary image this removes isolated white specks without shifting
// the remaining strokes.
func open3x3(binary *image.Gray) *image.Gray {
	return dilate3x3(erode3x3(binary))
}

func erode3x3(src *image.Gray) *image.Gray {
	return morph3x3(src, func(acc, v uint8) uint8 {
		if v < acc {
			return v
		}
		return acc
	}, 255)
}

func dilate3x3(src *image.Gray) *image.Gray {
	return morph3x3(src, func(acc, v uint8) uint8 {
		if v > acc {
			return v
		}
		return acc
	}, 0)
}

func morph3x3(src *image.Gray, pick func(acc, v uint8) uint8, seed uint8) *image.Gray {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(bounds)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			acc := seed
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					acc = pick(acc, src.Pix[ny*src.Stride+nx])
				}
			}
			dst.Pix[y*dst.Stride+x] = acc
		}
	}
	return dst
}
