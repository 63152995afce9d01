package ansipixels

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func TestDecodeScaleDraw(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			src.Set(x, y, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	img, err := DecodeImage(&buf)
	if err != nil {
		t.Fatalf("DecodeImage error: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Fatalf("Decoded bounds %v", img.Bounds())
	}
	scaled := Scale(img, 6, 8)
	if scaled.Bounds().Dx() != 6 || scaled.Bounds().Dy() != 8 {
		t.Fatalf("Scaled bounds %v", scaled.Bounds())
	}
	ap, sb := newTestAP(20, 10)
	ap.DrawTrueColorImage(2, 1, scaled)
	ap.Out.Flush()
	out := sb.String()
	if !strings.Contains(out, "\033[48;2;") || !strings.Contains(out, "\033[38;2;") {
		t.Errorf("missing true color sequences: %q", out)
	}
	if n := strings.Count(out, string(BottomHalfPixel)); n != 6*4 {
		t.Errorf("Expected %d half blocks, got %d", 6*4, n)
	}
	if !strings.Contains(out, "\033[5;3H") { // 4th line of the 8 pixel high image
		t.Errorf("missing last line cursor move: %q", out)
	}
}

func TestDecodeImageError(t *testing.T) {
	if _, err := DecodeImage(strings.NewReader("not an image")); err == nil {
		t.Errorf("Expected error decoding garbage")
	}
	if _, err := ReadImage("/does/not/exist.png"); err == nil {
		t.Errorf("Expected error reading missing file")
	}
}
