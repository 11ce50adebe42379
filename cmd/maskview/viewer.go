package main

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/relicrun/common"
	"github.com/milk9111/relicrun/levels"
	"github.com/milk9111/relicrun/obj"
	"github.com/milk9111/relicrun/prefabs"
)

const (
	scrollSpeed     = 12.0
	fastScrollSpeed = 36.0
)

type viewer struct {
	lvl    *levels.Level
	mask   *obj.CollisionMask
	player *prefabs.PlayerSpec
	enemy  obj.EnemyTuning
	door   *obj.Gate

	cam     *obj.Camera
	focusX  float64
	terrain *ebiten.Image

	cursorX, cursorY float64
	footing          obj.Footing
	footprint        common.Rect

	copy   func(string)
	logger *log.Logger
	status string
}

func newViewer(lvl *levels.Level, mask *obj.CollisionMask, player *prefabs.PlayerSpec) *viewer {
	return &viewer{
		lvl:     lvl,
		mask:    mask,
		player:  player,
		enemy:   obj.DefaultEnemyTuning(),
		door:    obj.NewGate(lvl.Door.X, lvl.Door.Y, 1, 0),
		cam:     obj.NewCamera(lvl.PlatformLine),
		focusX:  lvl.Spawn(0).X,
		terrain: ebiten.NewImageFromImage(mask.Paint(colornames.Dimgray, colornames.Limegreen)),
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	speed := scrollSpeed
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		speed = fastScrollSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		v.focusX -= speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		v.focusX += speed
	}
	v.focusX = common.Clamp(v.focusX, 0, float64(v.lvl.Width))

	viewport := common.Size{W: common.BaseWidth, H: common.BaseHeight}
	world := common.Size{W: float64(v.lvl.Width), H: float64(v.lvl.Height)}
	v.cam.Update(v.focusX, viewport, world)

	mx, my := ebiten.CursorPosition()
	v.cursorX, v.cursorY = v.cam.ScreenToWorld(float64(mx), float64(my))

	// Test a player-sized box standing on the cursor.
	w, h := float64(v.player.Width), float64(v.player.Height)
	v.footprint = common.Rect{X: v.cursorX - w/2, Y: v.cursorY - h, Width: w, Height: h}
	v.footing = v.mask.QueryFooting(v.footprint, 0, obj.Grounded)

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		pos := fmt.Sprintf("{x: %.0f, y: %.0f}", v.cursorX, v.cursorY)
		if v.copy != nil {
			v.copy(pos)
			v.status = "copied " + pos
		} else {
			v.status = "clipboard unavailable"
		}
		v.logger.Info("position", "x", v.cursorX, "y", v.cursorY)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	cam := v.cam.View()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-cam.X, -cam.Y)
	screen.DrawImage(v.terrain, op)

	v.hline(screen, v.lvl.PlatformLine, colornames.Khaki)
	v.hline(screen, float64(v.lvl.KillY)-1, colornames.Red)

	for _, sp := range v.lvl.Spawns {
		v.stroke(screen, common.Rect{X: sp.X, Y: sp.Y, Width: float64(v.player.Width), Height: float64(v.player.Height)}, colornames.Deepskyblue)
	}
	v.stroke(screen, v.door.Rect(), colornames.Peru)

	if e := v.lvl.Enemy; e != nil {
		v.stroke(screen, common.Rect{X: e.Spawn.X, Y: e.Spawn.Y, Width: float64(v.enemy.W), Height: float64(v.enemy.H)}, colornames.Crimson)
		v.vline(screen, e.PatrolMin, colornames.Salmon)
		v.vline(screen, e.PatrolMax, colornames.Salmon)
		v.vline(screen, e.Aggro, colornames.Orange)
		v.vline(screen, e.Disengage, colornames.Purple)
	}
	if v.lvl.BossX > 0 {
		v.vline(screen, v.lvl.BossX, colornames.Gold)
	}
	for _, pk := range v.lvl.Pickups {
		v.stroke(screen, common.Rect{X: pk.X, Y: pk.Y, Width: 60, Height: 100}, colornames.Yellow)
	}

	boxCol := color.Color(colornames.Lime)
	switch {
	case v.footing.HazardHit:
		boxCol = colornames.Magenta
	case v.footing.ShouldFall:
		boxCol = colornames.Red
	}
	v.stroke(screen, v.footprint, boxCol)

	snap := "none"
	if v.footing.HasSnap {
		snap = fmt.Sprintf("%d (y=%d)", v.footing.SnapY, v.footing.SnapY-v.player.Height)
	}
	info := fmt.Sprintf("level %s  world (%.0f, %.0f)  pixel %s\nfall %v  hazard %v  snap %s\n%s",
		v.lvl.ID, v.cursorX, v.cursorY, v.mask.At(int(v.cursorX), int(v.cursorY)),
		v.footing.ShouldFall, v.footing.HazardHit, snap, v.status)
	ebitenutil.DebugPrintAt(screen, info, 10, 10)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (v *viewer) stroke(screen *ebiten.Image, r common.Rect, col color.Color) {
	x, y := v.cam.WorldToScreen(r.X, r.Y)
	vector.StrokeRect(screen, float32(x), float32(y), float32(r.Width), float32(r.Height), 2, col, false)
}

func (v *viewer) vline(screen *ebiten.Image, worldX float64, col color.Color) {
	x, _ := v.cam.WorldToScreen(worldX, 0)
	vector.StrokeLine(screen, float32(x), 0, float32(x), common.BaseHeight, 1, col, false)
}

func (v *viewer) hline(screen *ebiten.Image, worldY float64, col color.Color) {
	_, y := v.cam.WorldToScreen(0, worldY)
	vector.StrokeLine(screen, 0, float32(y), common.BaseWidth, float32(y), 1, col, false)
}
