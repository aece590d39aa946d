package pixveil

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/bmp"
)

// Format is a supported container format.
type Format int

const (
	FormatUnknown Format = iota
	FormatPNG
	FormatBMP
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatBMP:
		return "BMP"
	default:
		return "<unknown>"
	}
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatPNG:
		return ".png"
	case FormatBMP:
		return ".bmp"
	default:
		return ""
	}
}

// Primary methods

// LoadImage reads a BMP or PNG container into a PixelBuffer, normalizing
// the pixel mode to 3 channels (grayscale and paletted sources) or 4
// channels (sources with an alpha channel). Anything that cannot be
// normalized to 8-bit channels fails with UnsupportedColorModeError.
func LoadImage(path string) (pixels *PixelBuffer, format Format, err error) {
	imgFile, err := os.Open(path)
	if err != nil {
		return nil, FormatUnknown, err
	}

	defer func() {
		if cerr := imgFile.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	img, formatName, err := image.Decode(imgFile)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, FormatUnknown, &UnsupportedFormatError{}
		}
		return nil, FormatUnknown, err
	}

	switch formatName {
	case "png":
		format = FormatPNG
	case "bmp":
		format = FormatBMP
	default:
		return nil, FormatUnknown, &UnsupportedFormatError{Format: formatName}
	}

	pixels, err = readPixels(img)
	if err != nil {
		return nil, FormatUnknown, err
	}
	return pixels, format, nil
}

// SaveImage writes the buffer to disk in the given container format. Both
// encoders are lossless and pixel-exact; PNG is written uncompressed, so
// no channel value is ever requantized after embedding.
func SaveImage(path string, pixels *PixelBuffer, format Format) (err error) {
	img, err := bufferToImage(pixels)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	switch format {
	case FormatPNG:
		encoder := png.Encoder{CompressionLevel: png.NoCompression}
		return encoder.Encode(f, img)
	case FormatBMP:
		return bmp.Encode(f, img)
	default:
		return &UnsupportedFormatError{Format: format.String()}
	}
}

// Helper functions

// readPixels normalizes a decoded image. Each supported mode is handled
// individually; everything else is rejected rather than approximated.
func readPixels(img image.Image) (*PixelBuffer, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.NRGBA:
		buf := NewPixelBuffer(w, h, 4)
		for y := 0; y < h; y++ {
			copy(buf.Pix[y*w*4:(y+1)*w*4], src.Pix[y*src.Stride:])
		}
		return buf, nil
	case *image.RGBA:
		buf := NewPixelBuffer(w, h, 4)
		for y := 0; y < h; y++ {
			copy(buf.Pix[y*w*4:(y+1)*w*4], src.Pix[y*src.Stride:])
		}
		return buf, nil
	case *image.Gray:
		buf := NewPixelBuffer(w, h, 3)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := src.Pix[y*src.Stride+x]
				i := (y*w + x) * 3
				buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2] = v, v, v
			}
		}
		return buf, nil
	case *image.Paletted:
		buf := NewPixelBuffer(w, h, 3)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				i := (y*w + x) * 3
				buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2] = uint8(r>>8), uint8(g>>8), uint8(b>>8)
			}
		}
		return buf, nil
	default:
		return nil, &UnsupportedColorModeError{Mode: modeName(img)}
	}
}

// bufferToImage wraps a 3- or 4-channel buffer as an image for encoding.
// 3-channel buffers gain an opaque alpha channel, which both encoders fold
// back into an alphaless representation on disk.
func bufferToImage(pixels *PixelBuffer) (image.Image, error) {
	img := image.NewNRGBA(image.Rect(0, 0, pixels.W, pixels.H))
	switch pixels.Channels {
	case 4:
		copy(img.Pix, pixels.Pix)
	case 3:
		for i := 0; i < pixels.W*pixels.H; i++ {
			img.Pix[i*4] = pixels.Pix[i*3]
			img.Pix[i*4+1] = pixels.Pix[i*3+1]
			img.Pix[i*4+2] = pixels.Pix[i*3+2]
			img.Pix[i*4+3] = 0xFF
		}
	default:
		return nil, &UnsupportedColorModeError{Mode: fmt.Sprintf("%d-channel buffer", pixels.Channels)}
	}
	return img, nil
}

func modeName(img image.Image) string {
	switch img.(type) {
	case *image.Alpha:
		return "Alpha"
	case *image.Alpha16:
		return "Alpha16"
	case *image.CMYK:
		return "CMYK"
	case *image.Gray16:
		return "Gray16"
	case *image.NRGBA64:
		return "NRGBA64"
	case *image.RGBA64:
		return "RGBA64"
	case *image.NYCbCrA:
		return "NYCbCrA"
	case *image.YCbCr:
		return "YCbCr"
	default:
		return fmt.Sprintf("%T", img)
	}
}
