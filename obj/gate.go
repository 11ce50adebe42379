package obj

import (
	"time"

	"github.com/milk9111/relicrun/common"
)

// Gate is the entry door of a level. Players appear once its opening
// animation reaches the last frame.
type Gate struct {
	X, Y      float64
	W, H      float64
	Frames    int
	FrameTime time.Duration
	Frame     int

	opening common.Cooldown
}

func NewGate(x, y float64, frames int, frameTime time.Duration) *Gate {
	if frames <= 0 {
		frames = 1
	}
	return &Gate{X: x, Y: y, W: 120, H: 200, Frames: frames, FrameTime: frameTime}
}

// Start begins the opening animation at now.
func (g *Gate) Start(now time.Duration) {
	if g == nil {
		return
	}
	g.Frame = 0
	g.opening.Start(now)
}

// Update advances the animation and reports whether the gate is open.
func (g *Gate) Update(now time.Duration) bool {
	if g == nil {
		return true
	}
	elapsed, ok := g.opening.Elapsed(now)
	if !ok {
		return false
	}
	if g.FrameTime <= 0 {
		g.Frame = g.Frames - 1
	} else {
		g.Frame = min(int(elapsed/g.FrameTime), g.Frames-1)
	}
	return g.Open()
}

func (g *Gate) Open() bool {
	return g == nil || g.Frame >= g.Frames-1
}

func (g *Gate) Rect() common.Rect {
	if g == nil {
		return common.Rect{}
	}
	return common.Rect{X: g.X, Y: g.Y, Width: g.W, Height: g.H}
}
