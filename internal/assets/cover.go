package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/tupyy/parcm/internal/models"
)

// DecodeCover decodes a PNG, JPEG or GIF cover from path.
func DecodeCover(path string) (*models.Cover, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cover %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cover %s: %w", path, err)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("cover %s (%s) is empty", path, format)
	}

	return &models.Cover{
		Path:   path,
		Image:  img,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// Placeholder returns a solid cover shown when no cover can be decoded.
func Placeholder(width, height int) *models.Cover {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}}, image.Point{}, draw.Src)
	return &models.Cover{
		Image:       img,
		Width:       width,
		Height:      height,
		Placeholder: true,
	}
}
