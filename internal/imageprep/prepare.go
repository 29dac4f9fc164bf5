// Package imageprep shrinks artwork images before they reach object
// storage. Compression is an optimization, never a correctness
// requirement: any failure hands the original bytes back untouched.
package imageprep

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png"
	"strings"

	"golang.org/x/image/draw"
)

const (
	// Uploads above this size get recompressed; the output aims to
	// stay under it as well.
	targetBytes = 200 * 1024

	// Longest edge after downscaling.
	maxDimension = 1920

	startQuality = 85
	minQuality   = 40
	qualityStep  = 10
)

// Prepared is the result of a preparation pass. Name carries a .jpg
// extension whenever the bytes were re-encoded.
type Prepared struct {
	Data []byte
	Name string
}

// Prepare resizes and re-encodes the image to fit the byte budget,
// normalizing the output to JPEG. Unsupported or corrupt input passes
// through unchanged.
func Prepare(data []byte, name string) Prepared {
	original := Prepared{Data: data, Name: name}

	if len(data) <= targetBytes {
		return original
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return original
	}

	img := downscale(src)

	out, ok := encodeUnderBudget(img)
	if !ok {
		return original
	}

	return Prepared{Data: out, Name: jpegName(name)}
}

func downscale(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDimension && h <= maxDimension {
		return src
	}

	if w >= h {
		h = h * maxDimension / w
		w = maxDimension
	} else {
		w = w * maxDimension / h
		h = maxDimension
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// encodeUnderBudget steps JPEG quality down until the output fits the
// budget or the quality floor is reached; the floor result is still
// returned since a downscaled floor-quality image beats the original.
func encodeUnderBudget(img image.Image) ([]byte, bool) {
	var buf bytes.Buffer
	for q := startQuality; q >= minQuality; q -= qualityStep {
		buf.Reset()
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: q}); err != nil {
			return nil, false
		}
		if buf.Len() <= targetBytes {
			break
		}
	}
	return buf.Bytes(), true
}

func jpegName(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return name + ".jpg"
}
