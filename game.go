package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/relicrun/common"
	"github.com/milk9111/relicrun/obj"
	"github.com/milk9111/relicrun/prefabs"
	"github.com/milk9111/relicrun/system"
)

type Game struct {
	world    *system.World
	renderer *system.Renderer
	input    *obj.Input
	watcher  *prefabs.Watcher
	logger   *log.Logger

	now   time.Duration
	debug bool

	paused   bool
	quit     bool
	pauseUI  *ebitenui.UI
	quizUI   *ebitenui.UI
	autoQuiz *bool
}

func NewGame(world *system.World, renderer *system.Renderer, mode system.Mode, logger *log.Logger) *Game {
	g := &Game{
		world:    world,
		renderer: renderer,
		input:    obj.NewInput(mode == system.ModeDuo),
		logger:   logger.WithPrefix("game"),
	}
	g.pauseUI = NewPauseUI(g)
	g.quizUI = NewQuizUI(g)
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.reload()

	events := g.input.Poll()
	for _, ev := range events {
		if ev.Action == obj.ActionPause && ev.Down {
			g.paused = !g.paused
		}
	}

	if g.paused {
		g.pauseUI.Update()
		g.world.TrackKeys(events)
		events = quitOnly(events)
		if len(events) == 0 {
			return nil
		}
	}

	if g.world.Level.Triggers.QuizPending {
		if g.autoQuiz != nil {
			g.world.ResolveQuiz(*g.autoQuiz)
		} else {
			g.quizUI.Update()
		}
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	g.now += dt
	out := g.world.Step(g.now, dt, events)
	if !out.Running {
		return ebiten.Termination
	}
	return nil
}

// reload applies file changes reported by the watcher since the last tick.
func (g *Game) reload() {
	changes := g.watcher.Drain()
	if len(changes) == 0 {
		return
	}
	for _, c := range changes {
		g.logger.Debug("file changed", "path", c.Path, "kind", c.Kind)
	}
	// Errors are logged by the world, which keeps the previous config.
	_ = g.world.Reload()
}

func quitOnly(events []obj.Event) []obj.Event {
	var out []obj.Event
	for _, ev := range events {
		if ev.Action == obj.ActionQuit {
			out = append(out, ev)
		}
	}
	return out
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Debug = g.debug
	g.renderer.Draw(screen, g.world.Snapshot())

	if g.world.Level.Triggers.QuizPending && g.autoQuiz == nil {
		g.quizUI.Draw(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
