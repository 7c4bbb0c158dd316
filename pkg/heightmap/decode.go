package heightmap

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// SupportedExtensions lists the file extensions the decoder understands
var SupportedExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// Decode opens an image file and converts it to a grid
func Decode(path string) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	return DecodeReader(file)
}

// DecodeReader decodes any registered image format from r
func DecodeReader(r io.Reader) (*Grid, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	grid := FromImage(img)
	if grid.Len() == 0 {
		return nil, fmt.Errorf("%s image has no pixels", format)
	}
	return grid, nil
}

// FromImage converts img to 8-bit grayscale and normalizes every pixel
// as p/255. Colors are reduced to ITU-R 601 luma computed from the
// straight (non-premultiplied) RGB values; alpha is ignored, so a fully
// transparent white pixel still reads as 1.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	samples := make([]float64, width*height)

	if gray, ok := img.(*image.Gray); ok {
		for row := 0; row < height; row++ {
			offset := gray.PixOffset(bounds.Min.X, bounds.Min.Y+row)
			for col := 0; col < width; col++ {
				samples[row*width+col] = float64(gray.Pix[offset+col]) / 255.0
			}
		}
	} else {
		for row := 0; row < height; row++ {
			for col := 0; col < width; col++ {
				samples[row*width+col] = float64(luma(img.At(bounds.Min.X+col, bounds.Min.Y+row))) / 255.0
			}
		}
	}

	return &Grid{Width: width, Height: height, Samples: samples}
}

// luma returns the 8-bit gray level of c with its alpha dropped
func luma(c color.Color) uint8 {
	straight := color.NRGBAModel.Convert(c).(color.NRGBA)
	straight.A = 0xff
	return color.GrayModel.Convert(straight).(color.Gray).Y
}
