package ansipixels

import (
	"image"
	_ "image/gif"  // Import GIF decoder
	_ "image/jpeg" // Import JPEG decoder
	_ "image/png"  // Import PNG decoder
	"io"
	"os"

	"fortio.org/blackjack/ansipixels/tcolor"
	"fortio.org/log"
	"golang.org/x/image/draw"
)

// DecodeImage decodes a png, jpeg or gif (first frame) into RGBA.
func DecodeImage(inp io.Reader) (*image.RGBA, error) {
	img, format, err := image.Decode(inp)
	if err != nil {
		return nil, err
	}
	log.Debugf("Image format: %s %v", format, img.Bounds())
	return convertToRGBA(img), nil
}

// ReadImage opens and decodes the image at path.
func ReadImage(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return DecodeImage(file)
}

func convertToRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	return dst
}

// Scale resizes img to exactly w x h pixels.
func Scale(img *image.RGBA, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// DrawTrueColorImage draws img at column sx, line sy using half height
// blocks: each terminal cell is 2 vertical pixels (top as background,
// bottom as foreground). So the image takes Dx columns and Dy/2 lines.
func (ap *AnsiPixels) DrawTrueColorImage(sx, sy int, img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		ap.MoveCursor(sx, sy+(y-b.Min.Y)/2)
		var prevTop, prevBottom tcolor.RGBColor
		first := true
		for x := b.Min.X; x < b.Max.X; x++ {
			top := toRGB(img, x, y)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = toRGB(img, x, y+1)
			}
			if first || top != prevTop {
				ap.WriteString(top.Background())
			}
			if first || bottom != prevBottom {
				ap.WriteString(bottom.Foreground())
			}
			first = false
			prevTop, prevBottom = top, bottom
			ap.WriteRune(BottomHalfPixel)
		}
		ap.WriteString(Reset)
	}
}

func toRGB(img *image.RGBA, x, y int) tcolor.RGBColor {
	c := img.RGBAAt(x, y)
	return tcolor.RGBColor{R: c.R, G: c.G, B: c.B}
}
