package obj

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 16 * time.Millisecond

func flatWorld(fills ...fill) (*Kinematics, *CollisionMask) {
	if len(fills) == 0 {
		fills = []fill{{image.Rect(0, 300, 1000, 400), SolidColor}}
	}
	return NewKinematics(DefaultTuning(), 1000, 400), testMask(1000, 400, fills...)
}

func TestStepIdleActorStaysPut(t *testing.T) {
	k, m := flatWorld()
	a := NewActor(0, 0, 250, 50, 50, 100)

	for i := 0; i < 120; i++ {
		res := k.Step(a, m, time.Duration(i)*tick, tick)
		require.False(t, res.StartedFalling)
	}
	assert.Equal(t, 0.0, a.X)
	assert.Equal(t, 250, a.Y)
	assert.Equal(t, Grounded, a.Status)
}

func TestStepAccelerationClampsThenLinear(t *testing.T) {
	k, m := flatWorld()
	a := NewActor(0, 0, 250, 50, 50, 100)
	k.SetMove(a, 1, false)

	prev := a.X
	deltas := make([]float64, 0, 60)
	for i := 0; i < 60; i++ {
		k.Step(a, m, time.Duration(i)*tick, tick)
		require.Greater(t, a.X, prev, "tick %d", i)
		deltas = append(deltas, a.X-prev)
		prev = a.X
	}

	assert.Equal(t, 200.0, a.Vel.X)
	for i := 1; i < 30; i++ {
		assert.Greater(t, deltas[i], deltas[i-1], "still accelerating at tick %d", i)
	}
	for _, d := range deltas[40:] {
		assert.InDelta(t, 200*tick.Seconds(), d, 1e-9)
	}
	assert.Equal(t, 250, a.Y)
}

func TestStepSprintRaisesLimit(t *testing.T) {
	k, m := flatWorld()
	a := NewActor(0, 0, 250, 50, 50, 100)
	a.Sprint = true
	k.SetMove(a, 1, true)
	for i := 0; i < 60; i++ {
		k.Step(a, m, 0, tick)
	}
	assert.Equal(t, 400.0, a.Vel.X)
	assert.Equal(t, 800.0, a.Accel)
}

func TestStepClampsToWorld(t *testing.T) {
	k, m := flatWorld()
	a := NewActor(0, 0, 250, 50, 50, 100)
	k.SetMove(a, -1, false)
	for i := 0; i < 10; i++ {
		k.Step(a, m, 0, tick)
	}
	assert.Equal(t, 0.0, a.X)
	assert.Equal(t, FacingLeft, a.Facing)

	a.X = 940
	k.StopMove(a)
	k.SetMove(a, 1, false)
	for i := 0; i < 60; i++ {
		k.Step(a, m, 0, tick)
	}
	assert.Equal(t, 950.0, a.X)
}

func TestStopMoveZeroesSpeed(t *testing.T) {
	k, _ := flatWorld()
	a := NewActor(0, 0, 250, 50, 50, 100)
	k.SetMove(a, 1, false)
	a.Vel.X = 150
	k.StopMove(a)
	assert.Zero(t, a.Accel)
	assert.Zero(t, a.Vel.X)
}

func TestStepWalkOffLedgeResetsOnce(t *testing.T) {
	k, m := flatWorld(fill{image.Rect(0, 300, 200, 400), SolidColor})
	a := NewActor(0, 0, 250, 50, 50, 100)
	a.X = 300

	first := k.Step(a, m, 0, tick)
	require.True(t, first.StartedFalling)
	require.True(t, a.Falling)
	require.Equal(t, Airborne, a.Status)
	require.Zero(t, a.Vel.Y)

	resets := 0
	for i := 1; i < 300; i++ {
		if k.Step(a, m, time.Duration(i)*tick, tick).FellOffWorld {
			resets++
		}
	}
	assert.Equal(t, 1, resets)
	assert.Equal(t, 99, a.Health)
	assert.Equal(t, 0.0, a.X)
	assert.Equal(t, 250, a.Y)
	assert.Equal(t, Grounded, a.Status)
	assert.False(t, a.Falling)
}

func TestStepLandsAndSnaps(t *testing.T) {
	k, m := flatWorld()
	a := NewActor(0, 400, 150, 50, 50, 100)
	a.Status = Airborne

	landed := false
	for i := 0; i < 200 && !landed; i++ {
		landed = k.Step(a, m, 0, tick).Landed
	}
	require.True(t, landed)
	assert.Equal(t, 250, a.Y, "bottom edge rests on row 300")
	assert.Equal(t, Grounded, a.Status)
	assert.Zero(t, a.Vel.Y)
	assert.False(t, a.Falling)
	assert.Zero(t, a.JumpFrame)
}

func TestJumpArcReturnsToGround(t *testing.T) {
	k, m := flatWorld()
	a := NewActor(0, 400, 250, 50, 50, 100)

	require.True(t, k.Jump(a))
	assert.Equal(t, -440.0, a.Vel.Y)
	assert.Equal(t, Airborne, a.Status)
	assert.False(t, k.Jump(a), "no double jump")

	res := k.Step(a, m, 0, tick)
	assert.False(t, res.Landed, "jump must survive its first tick")
	assert.Less(t, a.Y, 250)

	minY := a.Y
	landed := false
	for i := 0; i < 300 && !landed; i++ {
		landed = k.Step(a, m, 0, tick).Landed
		minY = min(minY, a.Y)
	}
	require.True(t, landed)
	assert.Equal(t, 250, a.Y)
	assert.Less(t, minY, 100)
}

func TestAttackIsTimeBoxed(t *testing.T) {
	k, m := flatWorld()
	a := NewActor(0, 400, 250, 50, 50, 100)

	require.True(t, k.StartAttack(a, 0))
	assert.Equal(t, Attacking, a.Status)

	k.SetMove(a, 1, false)
	assert.Zero(t, a.Accel, "attacking ignores movement input")
	assert.False(t, k.Jump(a))
	assert.False(t, k.StartAttack(a, 10*time.Millisecond))

	k.Step(a, m, 350*time.Millisecond, tick)
	assert.Equal(t, Attacking, a.Status)
	assert.Equal(t, 3, a.AttackFrame)

	k.Step(a, m, 600*time.Millisecond, tick)
	assert.Equal(t, Grounded, a.Status)
	assert.Equal(t, 400.0, a.X)
}

func TestAttackRejectedWhileAirborne(t *testing.T) {
	k, _ := flatWorld()
	a := NewActor(0, 0, 100, 50, 50, 100)
	a.Status = Airborne
	assert.False(t, k.StartAttack(a, 0))
	assert.Equal(t, Airborne, a.Status)

	a.Status = Grounded
	a.Falling = true
	assert.False(t, k.StartAttack(a, 0))
}

func TestStepReportsHazardWithoutApplying(t *testing.T) {
	k, m := flatWorld(
		fill{image.Rect(0, 300, 1000, 400), SolidColor},
		fill{image.Rect(5, 300, 15, 400), HazardColor},
	)
	a := NewActor(0, 0, 250, 50, 50, 100)

	res := k.Step(a, m, 0, tick)
	assert.True(t, res.HazardHit)
	assert.Equal(t, 100, a.Health)
	assert.Equal(t, Grounded, a.Status)
}

func TestDeathResetUsesLifeUnit(t *testing.T) {
	k, _ := flatWorld()
	k.Tuning.LifeUnit = 3
	a := NewActor(0, 10, 20, 50, 50, 100)
	a.X, a.Y = 500, 100
	a.Vel.X, a.Vel.Y = 120, 80
	a.Status = Airborne

	k.DeathReset(a)
	assert.Equal(t, 97, a.Health)
	assert.Equal(t, 10.0, a.X)
	assert.Equal(t, 20, a.Y)
	assert.Zero(t, a.Vel.X)
	assert.Zero(t, a.Vel.Y)
	assert.Equal(t, Grounded, a.Status)
}
