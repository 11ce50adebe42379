package obj

import (
	"testing"

	"github.com/milk9111/relicrun/common"
	"github.com/stretchr/testify/assert"
)

func TestCameraClampsHorizontally(t *testing.T) {
	cam := NewCamera(682)
	viewport := common.Size{W: 1280, H: 754}
	world := common.Size{W: 2560, H: 754}

	for x := -1000.0; x <= 4000; x += 37 {
		view := cam.Update(x, viewport, world)
		assert.GreaterOrEqual(t, view.X, 0.0, "tracked %v", x)
		assert.LessOrEqual(t, view.X, world.W-viewport.W, "tracked %v", x)
		assert.Equal(t, viewport.W, view.Width)
	}
}

func TestCameraCentresOnTracked(t *testing.T) {
	cam := NewCamera(682)
	viewport := common.Size{W: 1280, H: 754}
	world := common.Size{W: 2560, H: 754}

	cases := []struct {
		name    string
		tracked float64
		wantX   float64
	}{
		{"left_edge", 100, 0},
		{"centred", 1280, 640},
		{"right_edge", 2500, 1280},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			view := cam.Update(c.tracked, viewport, world)
			assert.Equal(t, c.wantX, view.X)
			assert.Equal(t, view, cam.View())
		})
	}
}

func TestCameraVerticalFollowsPlatformLine(t *testing.T) {
	cam := NewCamera(682)
	viewport := common.Size{W: 640, H: 400}

	view := cam.Update(0, viewport, common.Size{W: 2560, H: 2000})
	assert.Equal(t, 482.0, view.Y)

	view = cam.Update(0, viewport, common.Size{W: 2560, H: 754})
	assert.Equal(t, 354.0, view.Y, "clamped against world height")

	view = cam.Update(0, common.Size{W: 1280, H: 754}, common.Size{W: 2560, H: 754})
	assert.Equal(t, 0.0, view.Y)
}

func TestCameraNarrowWorld(t *testing.T) {
	cam := NewCamera(0)
	view := cam.Update(400, common.Size{W: 1280, H: 720}, common.Size{W: 800, H: 600})
	assert.Equal(t, 0.0, view.X)
	assert.Equal(t, 0.0, view.Y)
}

func TestCameraCoordinateRoundTrip(t *testing.T) {
	cam := NewCamera(682)
	cam.Update(1500, common.Size{W: 1280, H: 754}, common.Size{W: 2560, H: 754})

	sx, sy := cam.WorldToScreen(1500, 600)
	assert.Equal(t, 640.0, sx)
	assert.Equal(t, 600.0, sy)

	wx, wy := cam.ScreenToWorld(sx, sy)
	assert.Equal(t, 1500.0, wx)
	assert.Equal(t, 600.0, wy)
}
