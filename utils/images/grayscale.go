package images

import (
	"image"
	"image/color"
)

// IsGrayscale reports whether img is grayscale (all pixels have R==G==B).
// Profile pictures which arrive monochrome are kept that way through the
// preparation pipeline. Pixel by pixel scan, profile pictures are small.
func IsGrayscale(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return true
	}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.R != c.G || c.G != c.B {
				return false
			}
		}
	}
	return true
}
