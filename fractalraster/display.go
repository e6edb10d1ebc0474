package fractalraster

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"tinygo.org/x/drivers"
)

// Blit scales `img` to the size of the display, copies it
// pixel by pixel into the display buffer, and sends the buffer.
func Blit(d drivers.Displayer, img image.Image) error {
	w, h := d.Size()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid display size %dx%d", w, h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	if img.Bounds().Size() == dst.Bounds().Size() {
		draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	}

	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			d.SetPixel(x, y, dst.RGBAAt(int(x), int(y)))
		}
	}
	if err := d.Display(); err != nil {
		return fmt.Errorf("can't refresh display: %s", err)
	}
	return nil
}

// MemoryDisplay is an in-memory display, used when no
// hardware is attached.
type MemoryDisplay struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*MemoryDisplay)(nil)

func NewMemoryDisplay(width, height int16) *MemoryDisplay {
	return &MemoryDisplay{img: image.NewRGBA(image.Rect(0, 0, int(width), int(height)))}
}

func (m *MemoryDisplay) Size() (x, y int16) {
	b := m.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (m *MemoryDisplay) SetPixel(x, y int16, c color.RGBA) { m.img.SetRGBA(int(x), int(y), c) }

func (m *MemoryDisplay) Display() error { return nil }

// Image returns the content of the display buffer.
func (m *MemoryDisplay) Image() *image.RGBA { return m.img }
