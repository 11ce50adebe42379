package system

import (
	"time"

	"github.com/milk9111/relicrun/common"
	"github.com/milk9111/relicrun/obj"
)

type ActorView struct {
	Index        int
	Box          common.Rect
	Status       obj.MotionStatus
	Facing       obj.Facing
	AttackFrame  int
	Health       int
	MaxHealth    int
	Score        int
	Alive        bool
	ShieldLeft   time.Duration
	GuideVisible bool
}

type EnemyView struct {
	Box    common.Rect
	State  obj.EnemyState
	Facing obj.Facing
	Row    int
	Column int
	Health int
	Alive  bool
}

type PickupView struct {
	ID      int
	Kind    string
	Rect    common.Rect
	Visible bool
}

// Snapshot is a copy of everything the renderer and HUD need for one frame.
type Snapshot struct {
	Level     string
	LevelName string
	Mode      Mode
	Camera    common.Rect
	World     common.Size
	// Mask is shared with the live level and must not be modified.
	Mask *obj.CollisionMask

	Players []ActorView
	Enemy   *EnemyView
	Pickups []PickupView

	Gate      common.Rect
	GateFrame int
	GateOpen  bool

	Score    int
	Relics   int
	Triggers Triggers
	Fade     float64
	Outcome  Outcome
}

func (w *World) Snapshot() Snapshot {
	if w == nil || w.Level == nil {
		return Snapshot{}
	}
	lvl := w.Level
	lt := w.levelTime()
	shield := w.cfg.shieldDuration()

	s := Snapshot{
		Level:     lvl.Spec.ID,
		LevelName: lvl.Spec.Name,
		Mode:      w.mode,
		Camera:    lvl.Camera.View(),
		World:     common.Size{W: float64(lvl.Spec.Width), H: float64(lvl.Spec.Height)},
		Mask:      lvl.Mask,
		Gate:      lvl.Gate.Rect(),
		GateFrame: lvl.Gate.Frame,
		GateOpen:  lvl.Gate.Open(),
		Score:     w.Score(),
		Relics:    w.relics,
		Triggers:  lvl.Triggers,
		Fade:      w.transition.Alpha(),
		Outcome:   w.outcome,
	}

	for _, p := range lvl.Players {
		s.Players = append(s.Players, ActorView{
			Index:        p.Index,
			Box:          p.Box(),
			Status:       p.Status,
			Facing:       p.Facing,
			AttackFrame:  p.AttackFrame,
			Health:       p.Health,
			MaxHealth:    p.MaxHealth,
			Score:        p.Score,
			Alive:        p.Alive(),
			ShieldLeft:   p.ShieldRemaining(lt, shield),
			GuideVisible: p.GuideVisible,
		})
	}

	if e := lvl.Enemy; e != nil {
		s.Enemy = &EnemyView{
			Box:    e.Box(),
			State:  e.State,
			Facing: e.Facing,
			Row:    e.Row,
			Column: e.Column,
			Health: e.Health,
			Alive:  e.Alive(),
		}
	}

	for _, pk := range lvl.Pickups {
		name := ""
		if pk.Kind != nil {
			name = pk.Kind.Name
		}
		s.Pickups = append(s.Pickups, PickupView{ID: pk.ID, Kind: name, Rect: pk.Rect, Visible: pk.Visible})
	}
	return s
}
