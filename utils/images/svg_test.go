package images

import "testing"

func TestRasterizeSVGToImage(t *testing.T) {
	// profile picture placeholder, 3:2 aspect
	avatar := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 90 60"><circle cx="45" cy="30" r="25" fill="#336699"/></svg>`)

	t.Run("intrinsic", func(t *testing.T) {
		img, err := RasterizeSVGToImage(avatar, 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img.Bounds().Dx() != 90 || img.Bounds().Dy() != 60 {
			t.Fatalf("unexpected bounds: %v", img.Bounds())
		}
	})

	t.Run("scale_by_width", func(t *testing.T) {
		img, err := RasterizeSVGToImage(avatar, 180, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img.Bounds().Dx() != 180 || img.Bounds().Dy() != 120 {
			t.Fatalf("unexpected bounds: %v", img.Bounds())
		}
	})

	t.Run("scale_by_height", func(t *testing.T) {
		img, err := RasterizeSVGToImage(avatar, 0, 120)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img.Bounds().Dx() != 180 || img.Bounds().Dy() != 120 {
			t.Fatalf("unexpected bounds: %v", img.Bounds())
		}
	})

	t.Run("fit_box", func(t *testing.T) {
		img, err := RasterizeSVGToImage(avatar, 120, 120)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img.Bounds().Dx() != 120 || img.Bounds().Dy() != 80 {
			t.Fatalf("unexpected bounds: %v", img.Bounds())
		}
	})
}

func TestRasterizeSVGToImageClamped(t *testing.T) {
	old := maxRasterDim
	maxRasterDim = 64
	defer func() { maxRasterDim = old }()

	huge := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100000 50000"><rect width="100000" height="50000"/></svg>`)

	img, err := RasterizeSVGToImage(huge, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 32 {
		t.Fatalf("unexpected clamped bounds: %v", img.Bounds())
	}
}
