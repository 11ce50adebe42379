package obj

import (
	"math"
	"time"

	"github.com/milk9111/relicrun/common"
)

// Tuning holds the movement constants for player actors. Speeds are in
// pixels per second, accelerations in pixels per second squared.
type Tuning struct {
	MaxSpeed        float64
	SprintSpeed     float64
	Accel           float64
	SprintAccel     float64
	Gravity         float64
	MaxFall         float64
	JumpSpeed       float64
	AttackFrames    int
	AttackFrameTime time.Duration
	LifeUnit        int
}

// DefaultTuning matches the shipped player.yaml.
func DefaultTuning() Tuning {
	return Tuning{
		MaxSpeed:        200,
		SprintSpeed:     400,
		Accel:           400,
		SprintAccel:     800,
		Gravity:         500,
		MaxFall:         300,
		JumpSpeed:       -440,
		AttackFrames:    6,
		AttackFrameTime: 100 * time.Millisecond,
		LifeUnit:        1,
	}
}

// Kinematics integrates actors against one level's collision mask.
type Kinematics struct {
	Tuning     Tuning
	WorldWidth float64
	// KillY is the lowest y an actor may reach before it counts as fallen
	// off the world.
	KillY int
}

// StepResult reports what happened to an actor during one Step.
type StepResult struct {
	HazardHit      bool
	FellOffWorld   bool
	Landed         bool
	StartedFalling bool
}

func NewKinematics(t Tuning, worldWidth float64, killY int) *Kinematics {
	return &Kinematics{Tuning: t, WorldWidth: worldWidth, KillY: killY}
}

// Step advances a by dt. now is the level clock and only drives the attack
// timer. Hazard contact is reported but not applied; the caller owns the
// re-trigger cooldown for it.
func (k *Kinematics) Step(a *Actor, mask *CollisionMask, now, dt time.Duration) StepResult {
	var res StepResult
	if k == nil || a == nil {
		return res
	}
	secs := dt.Seconds()

	limit := k.Tuning.MaxSpeed
	if a.Sprint {
		limit = k.Tuning.SprintSpeed
	}
	a.Vel.X = common.Clamp(a.Vel.X+a.Accel*secs, -limit, limit)
	a.X = common.Clamp(a.X+a.Vel.X*secs, 0, k.WorldWidth-float64(a.W))

	if a.Status == Airborne || a.Falling {
		a.Vel.Y = math.Min(a.Vel.Y+k.Tuning.Gravity*secs, k.Tuning.MaxFall)
		a.Y = int(math.Round(float64(a.Y) + a.Vel.Y*secs))

		f := mask.QueryFooting(a.Box(), a.Vel.Y, a.Status)
		res.HazardHit = f.HazardHit
		if !f.ShouldFall && a.Vel.Y >= 0 {
			a.Vel.Y = 0
			a.Status = Grounded
			a.Falling = false
			a.JumpFrame = 0
			if f.HasSnap {
				a.Y = f.SnapY - a.H
			}
			res.Landed = true
		}

		if a.Y > k.KillY {
			k.DeathReset(a)
			res.FellOffWorld = true
			return res
		}
	}

	if a.Status == Grounded && !a.Falling {
		f := mask.QueryFooting(a.Box(), a.Vel.Y, a.Status)
		res.HazardHit = res.HazardHit || f.HazardHit
		if f.ShouldFall {
			a.Falling = true
			a.Status = Airborne
			a.Vel.Y = 0
			res.StartedFalling = true
		}
	}

	if a.Status == Attacking {
		k.advanceAttack(a, now)
	}
	return res
}

func (k *Kinematics) advanceAttack(a *Actor, now time.Duration) {
	frameTime := k.Tuning.AttackFrameTime
	if frameTime <= 0 {
		frameTime = 100 * time.Millisecond
	}
	elapsed, ok := a.attack.Elapsed(now)
	if !ok {
		a.Status = Grounded
		return
	}
	a.AttackFrame = int(elapsed / frameTime)
	if a.AttackFrame >= k.Tuning.AttackFrames {
		a.AttackFrame = 0
		a.Status = Grounded
		a.attack.Reset()
	}
}

// DeathReset costs one life unit and returns the actor to its spawn point.
func (k *Kinematics) DeathReset(a *Actor) {
	if k == nil || a == nil {
		return
	}
	unit := k.Tuning.LifeUnit
	if unit <= 0 {
		unit = 1
	}
	a.ApplyHealth(-unit)
	a.Respawn()
}

// SetMove starts horizontal acceleration in dir (-1 or +1).
func (k *Kinematics) SetMove(a *Actor, dir int, sprint bool) {
	if k == nil || a == nil || a.Status == Attacking || dir == 0 {
		return
	}
	accel := k.Tuning.Accel
	if sprint {
		accel = k.Tuning.SprintAccel
	}
	a.Accel = float64(dir) * accel
	if dir < 0 {
		a.Facing = FacingLeft
	} else {
		a.Facing = FacingRight
	}
}

// StopMove is the key-up handler: acceleration and speed both drop to zero.
func (k *Kinematics) StopMove(a *Actor) {
	if a == nil {
		return
	}
	a.Accel = 0
	a.Vel.X = 0
}

// Jump launches a grounded actor. Any other state ignores the request.
func (k *Kinematics) Jump(a *Actor) bool {
	if k == nil || a == nil || a.Status != Grounded || a.Falling {
		return false
	}
	a.Vel.Y = k.Tuning.JumpSpeed
	a.Status = Airborne
	a.JumpFrame = 0
	return true
}

// StartAttack begins the time-boxed attack. Only grounded actors can attack.
func (k *Kinematics) StartAttack(a *Actor, now time.Duration) bool {
	if k == nil || a == nil || a.Status != Grounded || a.Falling {
		return false
	}
	a.Status = Attacking
	a.Accel = 0
	a.Vel.X = 0
	a.AttackFrame = 0
	a.attack.Start(now)
	return true
}
