package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"touch_right_edge", Rect{X: 10, Y: 0, Width: 5, Height: 10}, false},
		{"touch_bottom_edge", Rect{X: 0, Y: 10, Width: 10, Height: 5}, false},
		{"touch_left_edge", Rect{X: -5, Y: 0, Width: 5, Height: 10}, false},
		{"apart", Rect{X: 20, Y: 20, Width: 1, Height: 1}, false},
		{"one_pixel_overlap", Rect{X: 9, Y: 9, Width: 5, Height: 5}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, base.Intersects(c.other))
			assert.Equal(t, c.want, c.other.Intersects(base), "intersection must be symmetric")
		})
	}
}

func TestClampCollapsedRange(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(50, 0, -10))
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
	assert.Equal(t, 10.0, Clamp(15, 0, 10))
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
}

func TestCooldown(t *testing.T) {
	var cd Cooldown

	elapsed, ok := cd.Elapsed(5 * time.Second)
	assert.False(t, ok)
	assert.Zero(t, elapsed)
	assert.True(t, cd.Expired(5*time.Second, time.Second), "unstarted cooldown reads as expired")
	assert.False(t, cd.Active(5*time.Second, time.Second), "unstarted cooldown is never active")

	cd.Start(10 * time.Second)
	elapsed, ok = cd.Elapsed(9 * time.Second)
	assert.True(t, ok)
	assert.Zero(t, elapsed, "clock before start must not go negative")

	assert.False(t, cd.Expired(10*time.Second+500*time.Millisecond, time.Second))
	assert.True(t, cd.Active(10*time.Second+500*time.Millisecond, time.Second))
	assert.True(t, cd.Expired(11*time.Second, time.Second))

	cd.Reset()
	assert.False(t, cd.Started())

	var nilCD *Cooldown
	assert.True(t, nilCD.Expired(0, time.Second))
	nilCD.Start(0)
}
