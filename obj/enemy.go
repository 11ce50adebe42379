package obj

import (
	"time"

	"github.com/milk9111/relicrun/common"
)

// EnemyState is the behaviour state of an enemy.
type EnemyState int

const (
	EnemyWaiting EnemyState = iota
	EnemyFollowing
	EnemyAttacking
)

func (s EnemyState) String() string {
	switch s {
	case EnemyFollowing:
		return "following"
	case EnemyAttacking:
		return "attacking"
	}
	return "waiting"
}

// Zones are the level-specific x thresholds that drive an enemy. Disengage
// is expected to be greater than Aggro.
type Zones struct {
	Aggro     float64
	Disengage float64
	PatrolMin float64
	PatrolMax float64
}

// Next returns the state that follows s for a tracked actor at trackedX. It
// is defined for every input: past Disengage the enemy always waits, and
// otherwise collision and the aggro line decide.
func Next(s EnemyState, trackedX float64, colliding bool, z Zones) EnemyState {
	if trackedX >= z.Disengage {
		return EnemyWaiting
	}
	past := trackedX >= z.Aggro
	switch s {
	case EnemyFollowing:
		if colliding {
			return EnemyAttacking
		}
		if !past {
			return EnemyWaiting
		}
		return EnemyFollowing
	case EnemyAttacking:
		if colliding {
			return EnemyAttacking
		}
		if past {
			return EnemyFollowing
		}
		return EnemyWaiting
	default:
		if past {
			return EnemyFollowing
		}
		return EnemyWaiting
	}
}

// EnemyTuning holds per-type enemy constants.
type EnemyTuning struct {
	W, H    int
	Speed   float64
	Health  int
	Columns int
}

func DefaultEnemyTuning() EnemyTuning {
	return EnemyTuning{W: 155, H: 145, Speed: 5, Health: 100, Columns: 6}
}

// Animation rows on the enemy sheet.
const (
	EnemyRowWalkRight = iota
	EnemyRowWalkLeft
	EnemyRowAttackRight
	EnemyRowAttackLeft
)

// Enemy is a level enemy. Once dead it is frozen for the rest of the level.
type Enemy struct {
	X float64
	Y int
	W int
	H int

	State  EnemyState
	Facing Facing
	Row    int
	Column int

	Health int
	Zones  Zones

	// OnTransition, when set, is called for every state change.
	OnTransition func(from, to EnemyState)

	tuning EnemyTuning
	alive  bool
	hurt   common.Cooldown
	struck common.Cooldown
}

func NewEnemy(x float64, y int, z Zones, t EnemyTuning) *Enemy {
	if t.Columns <= 0 {
		t.Columns = 1
	}
	return &Enemy{
		X:      x,
		Y:      y,
		W:      t.W,
		H:      t.H,
		State:  EnemyWaiting,
		Facing: FacingRight,
		Health: t.Health,
		Zones:  z,
		tuning: t,
		alive:  t.Health > 0,
	}
}

func (e *Enemy) Alive() bool {
	return e != nil && e.alive
}

func (e *Enemy) Box() common.Rect {
	if e == nil {
		return common.Rect{}
	}
	return common.Rect{X: e.X, Y: float64(e.Y), Width: float64(e.W), Height: float64(e.H)}
}

// Colliding reports whether a living enemy overlaps a living actor.
func (e *Enemy) Colliding(a *Actor) bool {
	if !e.Alive() || !a.Alive() {
		return false
	}
	return e.Box().Intersects(a.Box())
}

// Update runs one tick of behaviour against the tracked actor and reports
// whether the two are in contact. A nil tracked actor leaves the enemy
// patrolling.
func (e *Enemy) Update(tracked *Actor) bool {
	if !e.Alive() {
		return false
	}

	colliding := e.Colliding(tracked)
	if tracked != nil {
		e.setState(Next(e.State, tracked.X, colliding, e.Zones))
	} else {
		e.setState(EnemyWaiting)
	}

	switch e.State {
	case EnemyWaiting:
		e.patrol()
	case EnemyFollowing:
		e.follow(tracked)
	case EnemyAttacking:
		if e.Facing == FacingLeft {
			e.Row = EnemyRowAttackLeft
		} else {
			e.Row = EnemyRowAttackRight
		}
	}
	e.Column = (e.Column + 1) % e.tuning.Columns
	return colliding
}

func (e *Enemy) setState(next EnemyState) {
	if next == e.State {
		return
	}
	prev := e.State
	e.State = next
	if e.OnTransition != nil {
		e.OnTransition(prev, next)
	}
}

func (e *Enemy) patrol() {
	if e.Facing == FacingRight {
		e.X += e.tuning.Speed
		if e.X >= e.Zones.PatrolMax {
			e.X = e.Zones.PatrolMax
			e.Facing = FacingLeft
		}
	} else {
		e.X -= e.tuning.Speed
		if e.X <= e.Zones.PatrolMin {
			e.X = e.Zones.PatrolMin
			e.Facing = FacingRight
		}
	}
	e.Row = EnemyRowWalkRight
	if e.Facing == FacingLeft {
		e.Row = EnemyRowWalkLeft
	}
}

func (e *Enemy) follow(tracked *Actor) {
	if tracked == nil {
		return
	}
	switch {
	case tracked.X > e.X:
		e.X += e.tuning.Speed
		e.Facing = FacingRight
		e.Row = EnemyRowWalkRight
	case tracked.X < e.X:
		e.X -= e.tuning.Speed
		e.Facing = FacingLeft
		e.Row = EnemyRowWalkLeft
	}
}

// TakeTimedDamage applies amount at most once per interval and kills the
// enemy when its health runs out.
func (e *Enemy) TakeTimedDamage(amount int, now, interval time.Duration) bool {
	if !e.Alive() || !e.hurt.Expired(now, interval) {
		return false
	}
	e.hurt.Start(now)
	e.ApplyHealth(-amount)
	return true
}

// TakeStrike is damage from a player's attack. It runs on its own timer so
// it stacks with contact damage.
func (e *Enemy) TakeStrike(amount int, now, interval time.Duration) bool {
	if !e.Alive() || !e.struck.Expired(now, interval) {
		return false
	}
	e.struck.Start(now)
	e.ApplyHealth(-amount)
	return true
}

// SetTuning swaps the per-type constants. Position, state and health are
// kept, except that health is capped at the new maximum.
func (e *Enemy) SetTuning(t EnemyTuning) {
	if e == nil {
		return
	}
	if t.Columns <= 0 {
		t.Columns = 1
	}
	e.tuning = t
	e.W, e.H = t.W, t.H
	e.Column %= t.Columns
	if e.Health > t.Health {
		e.Health = t.Health
	}
}

func (e *Enemy) ApplyHealth(delta int) {
	if !e.Alive() {
		return
	}
	e.Health += delta
	if e.Health > e.tuning.Health {
		e.Health = e.tuning.Health
	}
	if e.Health <= 0 {
		e.Health = 0
		e.alive = false
	}
}

func (e *Enemy) Kill() {
	if e == nil {
		return
	}
	e.Health = 0
	e.alive = false
}
