package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// testSketch renders a crude house drawing in memory so the benchmark does
// not depend on files on disk.
func testSketch() []byte {
	const size = 512
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{20, 20, 20, 255}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, white)
		}
	}

	// house body
	drawRect(img, 150, 250, 360, 450, black)
	// door
	drawRect(img, 230, 340, 280, 450, black)
	// roof
	for i := 0; i <= 110; i++ {
		img.Set(150+i, 250-i, black)
		img.Set(360-i, 250-i, black)
	}
	// sun
	drawRect(img, 420, 60, 470, 110, black)

	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func drawRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.Set(x, y0, c)
		img.Set(x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		img.Set(x0, y, c)
		img.Set(x1, y, c)
	}
}
