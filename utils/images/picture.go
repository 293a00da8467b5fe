package images

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
)

// PrepareProfilePicture normalizes an input picture for the circular profile
// frame: raster formats are decoded with orientation applied, SVG input is
// rasterized first. The result is a centered square crop of the requested
// size re-encoded as JPEG.
func PrepareProfilePicture(data []byte, size, quality int) ([]byte, error) {
	img, err := decodePicture(data, size)
	if err != nil {
		return nil, err
	}

	img = imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)
	if IsGrayscale(img) {
		img = imaging.Grayscale(img)
	}

	return EncodeJPEGWithDPI(img, quality, DpiPxPerInch, 300, 300)
}

func decodePicture(data []byte, size int) (image.Image, error) {
	if isSVG(data) {
		return RasterizeSVGToImage(data, size, size)
	}

	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("unable to detect picture type: %w", err)
	}
	switch kind.Extension {
	case "jpg", "png", "gif", "bmp", "tif":
	default:
		return nil, fmt.Errorf("unsupported picture type %q", kind.Extension)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("unable to decode picture: %w", err)
	}
	return img, nil
}

func isSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(head, []byte("<svg"))
}
