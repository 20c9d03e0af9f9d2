// Package imaging normalizes uploaded sketches before they are sent to a
// generation backend: decode whatever the browser uploaded, clamp oversized
// images, re-encode as PNG.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxEdge is the longest side allowed before a sketch is downscaled. Vendor
// image endpoints reject or silently resize larger payloads.
const MaxEdge = 2048

// Normalize decodes PNG, JPEG, GIF, or WebP data, downscales anything with an
// edge over MaxEdge, and re-encodes the result as PNG.
func Normalize(data []byte) ([]byte, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode upload: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("imaging: empty %s image", format)
	}

	if w > MaxEdge || h > MaxEdge {
		src = downscale(src, MaxEdge)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		return nil, fmt.Errorf("imaging: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// downscale resizes img so its longest edge equals maxEdge, preserving aspect
// ratio.
func downscale(img image.Image, maxEdge int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var nw, nh int
	if w >= h {
		nw = maxEdge
		nh = h * maxEdge / w
	} else {
		nh = maxEdge
		nw = w * maxEdge / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}
