// Package imaging implements the thumbnail codec pipeline: decode an
// uploaded image, downscale it to fit a bounding box, re-encode it at a
// target quality, and report the encoded payload size against a ceiling.
package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"image/png"
	"math"

	// Decoder registrations. The pipeline accepts any common raster format
	// the runtime can decode; x/image extends the stdlib set.
	_ "image/gif"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/eventdesk/eventdesk/internal/domain/model"
	apperrors "github.com/eventdesk/eventdesk/internal/errors"
)

// Format is the re-encode target of the pipeline.
type Format string

const (
	// FormatJPEG encodes thumbnails as JPEG. This is the default target:
	// it honors the quality knob and every browser renders it.
	FormatJPEG Format = "jpeg"
	// FormatPNG encodes thumbnails as PNG. Lossless; the quality knob is
	// ignored.
	FormatPNG Format = "png"
)

// MIME returns the MIME type for the format.
func (f Format) MIME() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/jpeg"
}

// Default pipeline configuration, mirroring the call site that enforces a
// ceiling: 1200x1200 bounding box, quality 0.8, 1 MiB encoded ceiling.
const (
	DefaultMaxWidth         = 1200
	DefaultMaxHeight        = 1200
	DefaultQuality          = 0.8
	DefaultSizeCeilingBytes = 1 << 20
)

// Options configures a single Encode call. Zero values fall back to the
// defaults above.
type Options struct {
	MaxWidth  int
	MaxHeight int
	// Quality is in (0, 1]. It maps onto the encoder's native quality scale.
	Quality      float64
	TargetFormat Format
	// SizeCeilingBytes bounds the encoded payload. Encode still returns the
	// image when the ceiling is exceeded so the caller can decide whether to
	// reject or proceed; the pipeline only reports.
	SizeCeilingBytes int
}

func (o Options) withDefaults() Options {
	if o.MaxWidth <= 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	if o.MaxHeight <= 0 {
		o.MaxHeight = DefaultMaxHeight
	}
	if o.Quality <= 0 || o.Quality > 1 {
		o.Quality = DefaultQuality
	}
	if o.TargetFormat == "" {
		o.TargetFormat = FormatJPEG
	}
	if o.SizeCeilingBytes <= 0 {
		o.SizeCeilingBytes = DefaultSizeCeilingBytes
	}
	return o
}

// Encode runs the full pipeline over raw image bytes.
//
// It fails with a decode_failed error when the bytes cannot be interpreted as
// an image, and with a size_exceeded error when the encoded result is still
// over the ceiling after resize and re-encode. In the size_exceeded case the
// encoded image is returned alongside the error.
func Encode(src []byte, opts Options) (model.EncodedImage, error) {
	opts = opts.withDefaults()

	if len(src) == 0 {
		return model.EncodedImage{}, apperrors.DecodeFailed("empty image payload")
	}

	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return model.EncodedImage{}, apperrors.Wrap(err, apperrors.ErrCodeDecodeFailed, "decode image")
	}

	scaled := fitWithin(img, opts.MaxWidth, opts.MaxHeight)

	var buf bytes.Buffer
	switch opts.TargetFormat {
	case FormatPNG:
		err = png.Encode(&buf, scaled)
	default:
		err = jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: jpegQuality(opts.Quality)})
	}
	if err != nil {
		return model.EncodedImage{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode image")
	}

	mime := opts.TargetFormat.MIME()
	dataURL := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	bounds := scaled.Bounds()
	encoded := model.EncodedImage{
		DataURL:      dataURL,
		MIME:         mime,
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		PayloadBytes: Base64SizeInBytes(dataURL),
	}

	if encoded.PayloadBytes > opts.SizeCeilingBytes {
		return encoded, apperrors.SizeExceededf(
			"encoded thumbnail is %d bytes, ceiling is %d", encoded.PayloadBytes, opts.SizeCeilingBytes)
	}

	return encoded, nil
}

// fitWithin downscales img so both dimensions fit the bounding box. Images
// already within bounds are returned unchanged: the ratio is clamped to 1 and
// the pipeline never upscales.
func fitWithin(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return img
	}

	r := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	if r >= 1 {
		return img
	}

	dstW := int(math.Round(float64(w) * r))
	dstH := int(math.Round(float64(h) * r))
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// jpegQuality maps the pipeline's 0..1 quality onto JPEG's 1..100 scale.
func jpegQuality(q float64) int {
	quality := int(math.Round(q * 100))
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	return quality
}
