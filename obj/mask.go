package obj

import (
	"fmt"
	"image"
	"image/color"

	"github.com/milk9111/relicrun/assets"
	"github.com/milk9111/relicrun/common"
	"golang.org/x/image/draw"
)

// Pixel is the collision class of one mask pixel.
type Pixel uint8

const (
	Empty Pixel = iota
	Solid
	Hazard
)

func (p Pixel) String() string {
	switch p {
	case Solid:
		return "solid"
	case Hazard:
		return "hazard"
	}
	return "empty"
}

// Sentinel colours. Level art depends on these exact values.
var (
	SolidColor  = color.RGBA{R: 255, G: 0, B: 222, A: 255}
	HazardColor = color.RGBA{R: 0, G: 255, B: 12, A: 255}
)

// FootingBand is how many rows above and below the box bottom are sampled.
const FootingBand = 5

// CollisionMask is a read-only per-level classification of world pixels.
type CollisionMask struct {
	width  int
	height int
	cells  []Pixel
}

// Footing is the result of a footing query under an actor box.
type Footing struct {
	ShouldFall bool
	HazardHit  bool
	SnapY      int
	HasSnap    bool
}

// NewCollisionMask classifies every pixel of img by its RGB value.
func NewCollisionMask(img image.Image) *CollisionMask {
	if img == nil || img.Bounds().Empty() {
		return &CollisionMask{}
	}

	b := img.Bounds()
	src, ok := img.(*image.NRGBA)
	if !ok {
		// RGBA sources with opaque pixels keep their exact RGB; anything else
		// is normalised through a straight-alpha copy.
		if rgba, isRGBA := img.(*image.RGBA); isRGBA {
			return classifyPix(rgba.Pix, rgba.Stride, b)
		}
		src = image.NewNRGBA(b)
		draw.Draw(src, b, img, b.Min, draw.Src)
	}
	return classifyPix(src.Pix, src.Stride, b)
}

func classifyPix(pix []uint8, stride int, b image.Rectangle) *CollisionMask {
	m := &CollisionMask{
		width:  b.Dx(),
		height: b.Dy(),
		cells:  make([]Pixel, b.Dx()*b.Dy()),
	}
	for y := 0; y < m.height; y++ {
		row := pix[y*stride:]
		for x := 0; x < m.width; x++ {
			r, g, bl := row[x*4], row[x*4+1], row[x*4+2]
			m.cells[y*m.width+x] = classify(r, g, bl)
		}
	}
	return m
}

func classify(r, g, b uint8) Pixel {
	switch {
	case r == SolidColor.R && g == SolidColor.G && b == SolidColor.B:
		return Solid
	case r == HazardColor.R && g == HazardColor.G && b == HazardColor.B:
		return Hazard
	}
	return Empty
}

// LoadCollisionMask decodes the named asset into a mask.
func LoadCollisionMask(name string) (*CollisionMask, error) {
	img, err := assets.LoadImage(name)
	if err != nil {
		return nil, fmt.Errorf("obj: load mask %s: %w", name, err)
	}
	return NewCollisionMask(img), nil
}

func (m *CollisionMask) Width() int {
	if m == nil {
		return 0
	}
	return m.width
}

func (m *CollisionMask) Height() int {
	if m == nil {
		return 0
	}
	return m.height
}

func (m *CollisionMask) Empty() bool {
	return m == nil || m.width == 0 || m.height == 0
}

// At returns the class at (x, y). Coordinates outside the mask are Empty.
func (m *CollisionMask) At(x, y int) Pixel {
	if m.Empty() || x < 0 || y < 0 || x >= m.width || y >= m.height {
		return Empty
	}
	return m.cells[y*m.width+x]
}

// Contains reports whether box lies fully inside the mask.
func (m *CollisionMask) Contains(box common.Rect) bool {
	if m.Empty() {
		return false
	}
	bounds := common.Rect{Width: float64(m.width), Height: float64(m.height)}
	return bounds.Contains(box)
}

// QueryFooting samples three columns under box (quarter, half and three
// quarters of its width) across rows bottom-1-FootingBand..bottom-1+FootingBand.
// Rows are scanned top-down, samples left to right, and the scan stops at
// the first solid pixel, which is the snap row. Hazard pixels seen before
// that point count unless the actor is airborne and rising, so hazard under
// a platform is not reached. A box outside the mask or an empty mask always
// falls.
func (m *CollisionMask) QueryFooting(box common.Rect, vy float64, status MotionStatus) Footing {
	if m.Empty() || !m.Contains(box) {
		return Footing{ShouldFall: true}
	}

	x := int(box.X)
	w := int(box.Width)
	base := int(box.Y) + int(box.Height) - 1
	samples := [3]int{x + w/4, x + w/2, x + 3*w/4}
	hazardImmune := status == Airborne && vy < 0

	var out Footing
scan:
	for dy := -FootingBand; dy <= FootingBand; dy++ {
		y := base + dy
		for _, sx := range samples {
			switch m.At(sx, y) {
			case Solid:
				out.HasSnap = true
				out.SnapY = y
				break scan
			case Hazard:
				if !hazardImmune {
					out.HazardHit = true
				}
			}
		}
	}
	out.ShouldFall = !out.HasSnap
	return out
}

// Paint renders the mask with one colour per class. Empty pixels stay
// transparent.
func (m *CollisionMask) Paint(solid, hazard color.Color) *image.NRGBA {
	if m.Empty() {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}
	img := image.NewNRGBA(image.Rect(0, 0, m.width, m.height))
	for y := 0; y < m.height; y++ {
		row := m.cells[y*m.width : (y+1)*m.width]
		for x, p := range row {
			switch p {
			case Solid:
				img.Set(x, y, solid)
			case Hazard:
				img.Set(x, y, hazard)
			}
		}
	}
	return img
}
