// Package images provides the decoding, encoding and pixel operations backing
// the library's operation table. All decoded images are normalized to
// premultiplied RGBA so downstream kernels can work on raw bytes without
// color-model branching.
package images

import (
	"bytes"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
)

// jpegQuality is the encoder quality used for saved JPEGs.
const jpegQuality = 90

// ErrUnsupportedFormat reports an encode request for a format the library
// recognizes but does not implement.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Decode decodes data into RGBA pixels. The format is sniffed from the
// content, not from any file name: PNG, JPEG, GIF and WebP are supported.
func Decode(data []byte) (*image.RGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}
	return ToRGBA(img), nil
}

// Encode encodes img into the given format, returning the encoded bytes.
func Encode(img image.Image, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, errors.Wrap(err, "encode jpeg")
		}
	case FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, errors.Wrap(err, "encode png")
		}
	case FormatGIF:
		if err := gif.Encode(&buf, img, nil); err != nil {
			return nil, errors.Wrap(err, "encode gif")
		}
	case FormatWebP:
		if err := webp.Encode(&buf, img, &webp.Options{Lossless: true}); err != nil {
			return nil, errors.Wrap(err, "encode webp")
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	return buf.Bytes(), nil
}

// ToRGBA returns img as *image.RGBA. If it already is one, it is returned
// directly; otherwise it is drawn into a fresh RGBA buffer, letting
// image/draw handle all source color models correctly.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}

// Clone returns an independent RGBA copy of img. Rows are copied one at a
// time so sub-images with a wider underlying stride clone correctly.
func Clone(img *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(img.Rect)
	w := img.Rect.Dx() * 4
	for y := 0; y < img.Rect.Dy(); y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+w], img.Pix[y*img.Stride:y*img.Stride+w])
	}
	return dst
}
