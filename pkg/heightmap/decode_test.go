package heightmap

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "heightmap.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create png: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return path
}

func TestDecodeGrayPNG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.SetGray(0, 0, color.Gray{Y: 0})
	img.SetGray(1, 0, color.Gray{Y: 51})
	img.SetGray(2, 0, color.Gray{Y: 255})
	img.SetGray(0, 1, color.Gray{Y: 102})

	grid, err := Decode(writePNG(t, img))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if grid.Width != 3 || grid.Height != 2 {
		t.Fatalf("expected 3x2 grid, got %dx%d", grid.Width, grid.Height)
	}

	expected := []float64{0, 51.0 / 255.0, 1, 102.0 / 255.0, 0, 0}
	for i, want := range expected {
		if grid.Samples[i] != want {
			t.Errorf("sample %d: expected %v, got %v", i, want, grid.Samples[i])
		}
	}
}

func TestDecodeColorPNGUsesLuma(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, A: 255})

	grid, err := Decode(writePNG(t, img))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if grid.Samples[0] != 1 {
		t.Errorf("white pixel should normalize to 1, got %v", grid.Samples[0])
	}

	red := color.GrayModel.Convert(color.RGBA{R: 255, A: 255}).(color.Gray)
	if want := float64(red.Y) / 255.0; grid.Samples[1] != want {
		t.Errorf("red pixel: expected %v, got %v", want, grid.Samples[1])
	}
}

func TestFromImageIgnoresAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 128})
	img.SetNRGBA(2, 0, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	img.SetNRGBA(3, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 0})

	expected := []float64{1, 1, 200.0 / 255.0, 0}

	// straight from memory and after a PNG round trip (gray+alpha and
	// RGBA PNGs both decode to NRGBA)
	decoded, err := Decode(writePNG(t, img))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	for _, grid := range []*Grid{FromImage(img), decoded} {
		for i, want := range expected {
			if grid.Samples[i] != want {
				t.Errorf("sample %d: expected %v, got %v", i, want, grid.Samples[i])
			}
		}
	}
}

func TestFromImageHonorsBoundsOrigin(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	img.SetGray(2, 3, color.Gray{Y: 255})

	sub := img.SubImage(image.Rect(2, 2, 4, 4))
	grid := FromImage(sub)

	if grid.Width != 2 || grid.Height != 2 {
		t.Fatalf("expected 2x2 grid, got %dx%d", grid.Width, grid.Height)
	}
	if grid.At(0, 1) != 1 {
		t.Errorf("expected the white pixel at (0,1), got grid %v", grid.Samples)
	}
}

func TestDecodeMissingFile(t *testing.T) {
	if _, err := Decode(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestDecodeCorruptData(t *testing.T) {
	if _, err := DecodeReader(bytes.NewReader([]byte("definitely not an image"))); err == nil {
		t.Error("expected an error for corrupt data")
	}
}
