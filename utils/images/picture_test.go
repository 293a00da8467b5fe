package images

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func TestPrepareProfilePicture(t *testing.T) {
	data, err := PrepareProfilePicture(encodePNG(t, 300, 200, color.RGBA{200, 100, 50, 255}), 128, 85)
	if err != nil {
		t.Fatalf("PrepareProfilePicture() error = %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("result is not a jpeg: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 128 {
		t.Errorf("result size = %dx%d, want 128x128", b.Dx(), b.Dy())
	}
}

func TestPrepareProfilePictureSVG(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><rect width="100" height="100" fill="#336699"/></svg>`)

	data, err := PrepareProfilePicture(svg, 64, 85)
	if err != nil {
		t.Fatalf("PrepareProfilePicture() error = %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("result is not a jpeg: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("result size = %dx%d, want 64x64", b.Dx(), b.Dy())
	}
}

func TestPrepareProfilePictureRejectsJunk(t *testing.T) {
	if _, err := PrepareProfilePicture([]byte("not an image at all"), 128, 85); err == nil {
		t.Error("expected error for undetectable input")
	}
}
