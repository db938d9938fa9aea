package ioutils

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// DefaultCoverSize is the longest edge, in pixels, of embedded cover art.
const DefaultCoverSize = 1000

// ImageService prepares cover art for embedding next to lyrics in an MP3.
//
// Example usage:
//
//	svc := NewImageService()
//	cover, err := svc.PrepareCover(ctx, pngBytes, DefaultCoverSize)
type ImageService struct {
	quality int
}

// NewImageService creates a new ImageService encoding at JPEG quality 90.
func NewImageService() *ImageService {
	return &ImageService{quality: 90}
}

// PrepareCover decodes a JPEG or PNG image, scales it down so that neither
// edge exceeds maxSize (keeping the aspect ratio) and re-encodes it as
// JPEG. Images that already fit are only re-encoded. A maxSize of zero or
// less disables scaling.
func (s *ImageService) PrepareCover(ctx context.Context, data []byte, maxSize int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode cover: %w", err)
	}

	bounds := img.Bounds()
	width, height := fitWithin(bounds.Dx(), bounds.Dy(), maxSize)

	out := img
	if width != bounds.Dx() || height != bounds.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: s.quality}); err != nil {
		return nil, fmt.Errorf("encode cover: %w", err)
	}
	return buf.Bytes(), nil
}

// fitWithin returns width and height scaled down so the longer edge is at
// most maxSize.
func fitWithin(width, height, maxSize int) (int, int) {
	if maxSize <= 0 || (width <= maxSize && height <= maxSize) {
		return width, height
	}
	if width >= height {
		h := height * maxSize / width
		if h < 1 {
			h = 1
		}
		return maxSize, h
	}
	w := width * maxSize / height
	if w < 1 {
		w = 1
	}
	return w, maxSize
}
