package obj

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/relicrun/common"
)

// MotionStatus is the movement mode of an actor.
type MotionStatus int

const (
	Grounded MotionStatus = iota
	Airborne
	Attacking
)

func (s MotionStatus) String() string {
	switch s {
	case Airborne:
		return "airborne"
	case Attacking:
		return "attacking"
	}
	return "grounded"
}

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Actor is a player character. Position is the world-space top-left of its
// box; X keeps sub-pixel precision while Y is whole pixels.
type Actor struct {
	Index int

	X    float64
	Y    int
	W, H int

	// Vel.X is the horizontal speed and Vel.Y the vertical velocity, both in
	// pixels per second.
	Vel    cp.Vector
	Accel  float64
	Sprint bool

	Status    MotionStatus
	Falling   bool
	JumpFrame int
	Facing    Facing

	Health    int
	MaxHealth int
	Score     int

	GuideVisible bool

	SpawnX float64
	SpawnY int

	attack      common.Cooldown
	AttackFrame int
	shield      common.Cooldown
	hazard      common.Cooldown
	damage      common.Cooldown
}

// NewActor creates an actor at its spawn point.
func NewActor(index int, spawnX float64, spawnY, w, h, health int) *Actor {
	return &Actor{
		Index:     index,
		X:         spawnX,
		Y:         spawnY,
		W:         w,
		H:         h,
		Health:    health,
		MaxHealth: health,
		SpawnX:    spawnX,
		SpawnY:    spawnY,
	}
}

func (a *Actor) Box() common.Rect {
	if a == nil {
		return common.Rect{}
	}
	return common.Rect{X: a.X, Y: float64(a.Y), Width: float64(a.W), Height: float64(a.H)}
}

func (a *Actor) Alive() bool {
	return a != nil && a.Health > 0
}

// ApplyHealth adds delta to health, clamped to [0, MaxHealth].
func (a *Actor) ApplyHealth(delta int) {
	if a == nil {
		return
	}
	a.Health = common.ClampInt(a.Health+delta, 0, a.MaxHealth)
}

// Teleport moves the actor to (x, y) at rest on the ground.
func (a *Actor) Teleport(x float64, y int) {
	if a == nil {
		return
	}
	a.X = x
	a.Y = y
	a.Vel = cp.Vector{}
	a.Accel = 0
	a.Status = Grounded
	a.Falling = false
	a.JumpFrame = 0
	a.AttackFrame = 0
}

// Respawn returns the actor to its spawn point.
func (a *Actor) Respawn() {
	if a == nil {
		return
	}
	a.Teleport(a.SpawnX, a.SpawnY)
}

// ToggleGuide flips the on-screen controls guide.
func (a *Actor) ToggleGuide() {
	if a == nil {
		return
	}
	a.GuideVisible = !a.GuideVisible
}

func (a *Actor) ActivateShield(now time.Duration) {
	if a == nil {
		return
	}
	a.shield.Start(now)
}

func (a *Actor) Shielded(now, d time.Duration) bool {
	return a != nil && a.shield.Active(now, d)
}

// ShieldRemaining reports how long the shield still holds.
func (a *Actor) ShieldRemaining(now, d time.Duration) time.Duration {
	if !a.Shielded(now, d) {
		return 0
	}
	elapsed, _ := a.shield.Elapsed(now)
	return d - elapsed
}

// HazardReady reports whether a new hazard contact may hurt the actor.
func (a *Actor) HazardReady(now, d time.Duration) bool {
	return a != nil && a.hazard.Expired(now, d)
}

func (a *Actor) MarkHazard(now time.Duration) {
	if a == nil {
		return
	}
	a.hazard.Start(now)
}

// TakeTimedDamage subtracts amount at most once per interval. It reports
// whether damage was applied.
func (a *Actor) TakeTimedDamage(amount int, now, interval time.Duration) bool {
	if !a.Alive() || !a.damage.Expired(now, interval) {
		return false
	}
	a.damage.Start(now)
	a.ApplyHealth(-amount)
	return true
}

// CenterX is the horizontal centre of the actor's box.
func (a *Actor) CenterX() float64 {
	if a == nil {
		return 0
	}
	return a.X + float64(a.W)/2
}
