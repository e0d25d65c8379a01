// Package upload prepares photos of paper work for submission. Images
// are decoded, scaled down to a bounded edge length and re-encoded as
// JPEG under a byte budget, so uploads stay small on school networks.
package upload

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Config bounds the processed image.
type Config struct {
	// MaxEdge is the longest allowed edge in pixels.
	MaxEdge int

	// MaxBytes is the encoded size budget.
	MaxBytes int

	// StartQuality and MinQuality bound the JPEG quality search.
	StartQuality int
	MinQuality   int

	// QualityStep is subtracted each attempt.
	QualityStep int
}

// DefaultConfig returns the standard processing bounds.
func DefaultConfig() Config {
	return Config{
		MaxEdge:      1600,
		MaxBytes:     512 * 1024,
		StartQuality: 85,
		MinQuality:   40,
		QualityStep:  10,
	}
}

// ErrUnsupportedFormat indicates the input was not a decodable image.
type ErrUnsupportedFormat struct {
	Err error
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported image format: %v", e.Err)
}

func (e *ErrUnsupportedFormat) Unwrap() error { return e.Err }

// ErrTooLarge indicates the image could not be brought under the byte
// budget even at minimum quality.
type ErrTooLarge struct {
	Bytes  int
	Budget int
}

func (e *ErrTooLarge) Error() string {
	return fmt.Sprintf("image is %d bytes after compression, budget is %d", e.Bytes, e.Budget)
}

// Processed is the prepared upload.
type Processed struct {
	Data    []byte
	Width   int
	Height  int
	Quality int
}

// Process decodes PNG or JPEG input, scales it down to fit the edge
// bound and re-encodes as JPEG, stepping quality down until the result
// fits the byte budget. The last step clamps to MinQuality so it is
// always attempted, even when the step size skips past it.
func Process(data []byte, cfg Config) (*Processed, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &ErrUnsupportedFormat{Err: err}
	}

	img := scaleDown(src, cfg.MaxEdge)
	bounds := img.Bounds()

	quality := cfg.StartQuality
	if quality < cfg.MinQuality {
		quality = cfg.MinQuality
	}
	for {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode jpeg: %w", err)
		}
		if buf.Len() <= cfg.MaxBytes {
			return &Processed{
				Data:    buf.Bytes(),
				Width:   bounds.Dx(),
				Height:  bounds.Dy(),
				Quality: quality,
			}, nil
		}
		if quality <= cfg.MinQuality {
			return nil, &ErrTooLarge{Bytes: buf.Len(), Budget: cfg.MaxBytes}
		}
		quality -= cfg.QualityStep
		if quality < cfg.MinQuality {
			quality = cfg.MinQuality
		}
	}
}

// scaleDown returns src scaled so its longest edge is at most maxEdge.
// Images already within bounds are returned as-is.
func scaleDown(src image.Image, maxEdge int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	longest := w
	if h > longest {
		longest = h
	}
	if maxEdge <= 0 || longest <= maxEdge {
		return src
	}

	scale := float64(maxEdge) / float64(longest)
	dw := int(float64(w)*scale + 0.5)
	dh := int(float64(h)*scale + 0.5)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
