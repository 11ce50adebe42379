package obj

import (
	"github.com/milk9111/relicrun/common"
)

// Camera maps world coordinates to the screen. Its position is recomputed
// from scratch every frame; there is no smoothing.
type Camera struct {
	// PlatformLine is the world y the view is vertically centred on.
	PlatformLine float64

	view common.Rect
}

func NewCamera(platformLine float64) *Camera {
	return &Camera{PlatformLine: platformLine}
}

// Update centres the view horizontally on trackedX and vertically on the
// platform line, then clamps it inside the world. A world smaller than the
// viewport pins the view to 0 on that axis.
func (c *Camera) Update(trackedX float64, viewport, world common.Size) common.Rect {
	if c == nil {
		return common.Rect{Width: viewport.W, Height: viewport.H}
	}
	x := trackedX - viewport.W/2
	y := c.PlatformLine - viewport.H/2
	c.view = common.Rect{
		X:      common.Clamp(x, 0, world.W-viewport.W),
		Y:      common.Clamp(y, 0, world.H-viewport.H),
		Width:  viewport.W,
		Height: viewport.H,
	}
	return c.view
}

// View returns the rect computed by the last Update.
func (c *Camera) View() common.Rect {
	if c == nil {
		return common.Rect{}
	}
	return c.view
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	if c == nil {
		return 0, 0
	}
	return c.view.X, c.view.Y
}

func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	vx, vy := c.ViewTopLeft()
	return x - vx, y - vy
}

func (c *Camera) ScreenToWorld(x, y float64) (float64, float64) {
	vx, vy := c.ViewTopLeft()
	return x + vx, y + vy
}
