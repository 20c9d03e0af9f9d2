package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// A4 at 150 DPI. Enough for a home printer without bloating the file.
const (
	A4Width  = 1240 // 210mm
	A4Height = 1754 // 297mm

	printMargin = 60
	labelHeight = 50
	printGap    = 40
)

// PrintLayout composes a labeled A4 sheet from the original sketch and the
// generated image, stacked vertically: "Original:" over the sketch on the top
// half, "Generated:" over the result on the bottom half. Each image is scaled
// to fit its half, centered horizontally. The result is PNG data suitable for
// download and printing.
func PrintLayout(original, generated []byte) ([]byte, error) {
	orig, _, err := image.Decode(bytes.NewReader(original))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode original: %w", err)
	}
	gen, _, err := image.Decode(bytes.NewReader(generated))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode generated: %w", err)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, A4Width, A4Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	availWidth := A4Width - 2*printMargin
	availHeight := (A4Height - 2*printMargin - 2*labelHeight - printGap) / 2

	drawLabel(canvas, printMargin, printMargin, "Original:")
	placeFitted(canvas, orig, printMargin, printMargin+labelHeight, availWidth, availHeight)

	bottomLabelY := printMargin + labelHeight + availHeight + printGap
	drawLabel(canvas, printMargin, bottomLabelY, "Generated:")
	placeFitted(canvas, gen, printMargin, bottomLabelY+labelHeight, availWidth, availHeight)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("imaging: encode layout: %w", err)
	}
	return buf.Bytes(), nil
}

// placeFitted scales img to fit within maxW x maxH preserving aspect ratio and
// draws it centered horizontally in that box.
func placeFitted(canvas *image.RGBA, img image.Image, x, y, maxW, maxH int) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return
	}

	nw, nh := w, h
	if w*maxH >= h*maxW {
		nw = maxW
		nh = h * maxW / w
	} else {
		nh = maxH
		nw = w * maxH / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	offsetX := x + (maxW-nw)/2
	rect := image.Rect(offsetX, y, offsetX+nw, y+nh)
	xdraw.CatmullRom.Scale(canvas, rect, img, bounds, xdraw.Over, nil)
}

// drawLabel renders text near the top of its label band with the bundled
// bitmap face. No font asset ships with the binary, so the fixed face plays
// the role of a system-font fallback.
func drawLabel(canvas *image.RGBA, x, y int, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}
