package upload

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// testPNG encodes a solid-color image of the given size.
func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestProcess_SmallImageKeepsDimensions(t *testing.T) {
	data := testPNG(t, 200, 100)

	got, err := Process(data, DefaultConfig())
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if got.Width != 200 || got.Height != 100 {
		t.Errorf("dimensions = %dx%d, want 200x100", got.Width, got.Height)
	}
}

func TestProcess_ScalesLongEdge(t *testing.T) {
	data := testPNG(t, 800, 400)

	cfg := DefaultConfig()
	cfg.MaxEdge = 400

	got, err := Process(data, cfg)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if got.Width != 400 {
		t.Errorf("width = %d, want 400", got.Width)
	}
	if got.Height != 200 {
		t.Errorf("height = %d, want 200 (aspect preserved)", got.Height)
	}
}

func TestProcess_PortraitOrientation(t *testing.T) {
	data := testPNG(t, 300, 900)

	cfg := DefaultConfig()
	cfg.MaxEdge = 300

	got, err := Process(data, cfg)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if got.Height != 300 {
		t.Errorf("height = %d, want 300", got.Height)
	}
	if got.Width != 100 {
		t.Errorf("width = %d, want 100", got.Width)
	}
}

func TestProcess_UnderByteBudget(t *testing.T) {
	data := testPNG(t, 640, 480)

	got, err := Process(data, DefaultConfig())
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(got.Data) > DefaultConfig().MaxBytes {
		t.Errorf("output is %d bytes, budget %d", len(got.Data), DefaultConfig().MaxBytes)
	}
	if got.Quality < DefaultConfig().MinQuality || got.Quality > DefaultConfig().StartQuality {
		t.Errorf("quality = %d, outside configured range", got.Quality)
	}
}

func TestProcess_MinQualityAttempted(t *testing.T) {
	data := testPNG(t, 640, 480)

	// Learn the encoded size at quality 80.
	ref := DefaultConfig()
	ref.StartQuality = 80
	ref.MinQuality = 80
	at80, err := Process(data, ref)
	if err != nil {
		t.Fatalf("reference encode: %v", err)
	}

	// A budget only the quality-80 encode meets, with a step that
	// would jump from 85 straight past 80.
	cfg := DefaultConfig()
	cfg.StartQuality = 85
	cfg.MinQuality = 80
	cfg.QualityStep = 10
	cfg.MaxBytes = len(at80.Data)

	got, err := Process(data, cfg)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if got.Quality != cfg.MinQuality {
		t.Errorf("quality = %d, want %d", got.Quality, cfg.MinQuality)
	}
	if len(got.Data) > cfg.MaxBytes {
		t.Errorf("output is %d bytes, budget %d", len(got.Data), cfg.MaxBytes)
	}
}

func TestProcess_RejectsNonImage(t *testing.T) {
	_, err := Process([]byte("this is not an image"), DefaultConfig())
	if err == nil {
		t.Fatal("expected error")
	}
	var unsupported *ErrUnsupportedFormat
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected ErrUnsupportedFormat, got: %T", err)
	}
}

func TestProcess_ImpossibleBudget(t *testing.T) {
	data := testPNG(t, 640, 480)

	cfg := DefaultConfig()
	cfg.MaxBytes = 10 // Nothing fits in 10 bytes.

	_, err := Process(data, cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	var tooLarge *ErrTooLarge
	if !errors.As(err, &tooLarge) {
		t.Fatalf("expected ErrTooLarge, got: %T", err)
	}
	if tooLarge.Budget != 10 {
		t.Errorf("budget = %d, want 10", tooLarge.Budget)
	}
}
