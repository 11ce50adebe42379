package system

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/relicrun/common"
	"github.com/milk9111/relicrun/obj"
	"github.com/milk9111/relicrun/prefabs"
	"golang.org/x/image/colornames"
)

const guideText = `Arrows / WASD  move and jump
Shift          sprint
Mouse          attack
P              shield
G              toggle this guide
Tab            pause
Esc            quit`

// Renderer draws a Snapshot with flat coloured shapes.
type Renderer struct {
	Debug bool

	background color.Color
	solid      color.Color
	hazard     color.Color
	enemy      color.Color
	player     *prefabs.PlayerSpec
	pickups    map[string]color.Color

	terrain     *ebiten.Image
	terrainMask *obj.CollisionMask
}

func NewRenderer(cfg Config) *Renderer {
	r := &Renderer{
		background: colornames.Midnightblue,
		solid:      colornames.Dimgray,
		hazard:     colornames.Limegreen,
		enemy:      colornames.Crimson,
		player:     cfg.Player,
		pickups:    map[string]color.Color{},
	}
	if ws := cfg.World; ws != nil {
		r.background = prefabs.ColorOr(ws.Background, r.background)
		r.solid = prefabs.ColorOr(ws.SolidColor, r.solid)
		r.hazard = prefabs.ColorOr(ws.HazardColor, r.hazard)
	}
	if cfg.Enemy != nil {
		r.enemy = prefabs.ColorOr(cfg.Enemy.Color, r.enemy)
	}
	if cfg.Pickups != nil {
		for name, k := range cfg.Pickups.Kinds {
			r.pickups[name] = prefabs.ColorOr(k.Color, colornames.Gold)
		}
	}
	return r
}

func (r *Renderer) Draw(screen *ebiten.Image, s Snapshot) {
	if r == nil || screen == nil {
		return
	}
	screen.Fill(r.background)
	cam := s.Camera

	r.drawTerrain(screen, s.Mask, cam)

	gateCol := colornames.Saddlebrown
	if s.GateOpen {
		gateCol = colornames.Peru
	}
	r.fillRect(screen, s.Gate, cam, gateCol)

	for _, pk := range s.Pickups {
		if !pk.Visible {
			continue
		}
		col, ok := r.pickups[pk.Kind]
		if !ok {
			col = colornames.Gold
		}
		r.fillRect(screen, pk.Rect, cam, col)
	}

	if e := s.Enemy; e != nil && e.Alive {
		col := r.enemy
		if e.State == obj.EnemyAttacking {
			col = colornames.Orangered
		}
		r.fillRect(screen, e.Box, cam, col)
	}

	if s.Triggers.GameStarted {
		for _, p := range s.Players {
			if !p.Alive {
				continue
			}
			r.fillRect(screen, p.Box, cam, r.player.Color(p.Index))
			if p.ShieldLeft > 0 {
				r.strokeRect(screen, p.Box, cam, colornames.Aqua)
			}
			if p.Status == obj.Attacking {
				r.strokeRect(screen, p.Box, cam, colornames.White)
			}
		}
	}

	r.drawHUD(screen, s)

	if s.Fade > 0 {
		a := uint8(common.Clamp(s.Fade, 0, 1) * 255)
		vector.FillRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()), color.NRGBA{A: a}, false)
	}
}

// drawTerrain paints the mask once per level and blits the visible part.
func (r *Renderer) drawTerrain(screen *ebiten.Image, mask *obj.CollisionMask, cam common.Rect) {
	if mask.Empty() {
		return
	}
	if r.terrainMask != mask {
		if r.terrain != nil {
			r.terrain.Deallocate()
		}
		r.terrain = ebiten.NewImageFromImage(mask.Paint(r.solid, r.hazard))
		r.terrainMask = mask
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-cam.X, -cam.Y)
	screen.DrawImage(r.terrain, op)
}

func (r *Renderer) fillRect(screen *ebiten.Image, rect, cam common.Rect, col color.Color) {
	if !rect.Intersects(cam) {
		return
	}
	vector.FillRect(screen, float32(rect.X-cam.X), float32(rect.Y-cam.Y), float32(rect.Width), float32(rect.Height), col, false)
}

func (r *Renderer) strokeRect(screen *ebiten.Image, rect, cam common.Rect, col color.Color) {
	if !rect.Intersects(cam) {
		return
	}
	vector.StrokeRect(screen, float32(rect.X-cam.X), float32(rect.Y-cam.Y), float32(rect.Width), float32(rect.Height), 3, col, false)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, s Snapshot) {
	var b strings.Builder
	fmt.Fprintf(&b, "Level %s  Score %d  Relics %d", s.LevelName, s.Score, s.Relics)
	for _, p := range s.Players {
		fmt.Fprintf(&b, "\nP%d  HP %d/%d", p.Index+1, p.Health, p.MaxHealth)
		if p.ShieldLeft > 0 {
			fmt.Fprintf(&b, "  shield %.0fs", p.ShieldLeft.Seconds())
		}
	}
	if e := s.Enemy; e != nil && e.Alive {
		fmt.Fprintf(&b, "\nBoss HP %d", e.Health)
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 10, 10)

	for _, p := range s.Players {
		if p.GuideVisible {
			ebitenutil.DebugPrintAt(screen, guideText, 10, screen.Bounds().Dy()-120)
			break
		}
	}

	if r.Debug {
		var d strings.Builder
		for _, p := range s.Players {
			fmt.Fprintf(&d, "P%d x=%.1f y=%.0f %s %s\n", p.Index+1, p.Box.X, p.Box.Y, p.Status, p.Facing)
		}
		if e := s.Enemy; e != nil {
			fmt.Fprintf(&d, "enemy x=%.0f %s row=%d col=%d\n", e.Box.X, e.State, e.Row, e.Column)
		}
		fmt.Fprintf(&d, "cam x=%.0f y=%.0f gate=%d", s.Camera.X, s.Camera.Y, s.GateFrame)
		ebitenutil.DebugPrintAt(screen, d.String(), screen.Bounds().Dx()-360, 10)
	}
}
