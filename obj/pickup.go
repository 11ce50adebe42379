package obj

import (
	"time"

	"github.com/milk9111/relicrun/common"
)

// PickupKind describes what collecting a pickup does.
type PickupKind struct {
	Name   string
	Health int
	Score  int
	W, H   float64

	// AppearAfter keeps the pickup hidden until that much level time passed.
	AppearAfter time.Duration
	// RespawnAfter brings a collected pickup back. Zero means never.
	RespawnAfter time.Duration
	// CollectCooldown is the minimum time between two collections.
	CollectCooldown time.Duration
	// Persistent pickups stay visible after being collected.
	Persistent bool
	// Relic pickups count toward the level's win rule.
	Relic bool
}

// Pickup is one placed instance of a kind.
type Pickup struct {
	ID      int
	Kind    *PickupKind
	Rect    common.Rect
	Visible bool

	collected common.Cooldown
	appeared  bool
}

func NewPickup(id int, kind *PickupKind, x, y float64) *Pickup {
	p := &Pickup{ID: id, Kind: kind}
	if kind != nil {
		p.Rect = common.Rect{X: x, Y: y, Width: kind.W, Height: kind.H}
		p.Visible = kind.AppearAfter <= 0
		p.appeared = p.Visible
	}
	return p
}

// CollectedAt returns the level time of the last collection.
func (p *Pickup) CollectedAt() (time.Duration, bool) {
	if p == nil {
		return 0, false
	}
	return p.collected.At()
}

// Update handles delayed appearance and respawn. now is level time.
func (p *Pickup) Update(now time.Duration) {
	if p == nil || p.Kind == nil {
		return
	}
	if !p.appeared {
		if now >= p.Kind.AppearAfter {
			p.appeared = true
			p.Visible = true
		}
		return
	}
	if !p.Visible && p.Kind.RespawnAfter > 0 && p.collected.Expired(now, p.Kind.RespawnAfter) {
		p.Visible = true
	}
}

// TryCollect applies the pickup to a when they overlap and the collect
// cooldown allows it. It reports whether the pickup was collected.
func (p *Pickup) TryCollect(a *Actor, now time.Duration) bool {
	if p == nil || p.Kind == nil || !p.Visible || !a.Alive() {
		return false
	}
	if !p.Rect.Intersects(a.Box()) {
		return false
	}
	if p.Kind.CollectCooldown > 0 && !p.collected.Expired(now, p.Kind.CollectCooldown) {
		return false
	}
	p.collected.Start(now)
	a.ApplyHealth(p.Kind.Health)
	a.Score += p.Kind.Score
	if !p.Kind.Persistent {
		p.Visible = false
	}
	return true
}
