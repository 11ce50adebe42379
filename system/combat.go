package system

import (
	"math"
	"time"

	"github.com/milk9111/relicrun/obj"
)

// trackedActor is the living player the enemy reacts to: player 0 in solo
// mode, the nearest by centre x in duo mode.
func (w *World) trackedActor() *obj.Actor {
	lvl := w.Level
	e := lvl.Enemy
	if e == nil {
		return nil
	}
	ex := e.Box().CenterX()
	var best *obj.Actor
	bestDist := math.Inf(1)
	for _, p := range lvl.Players {
		if !p.Alive() {
			continue
		}
		if d := math.Abs(p.CenterX() - ex); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// updateEnemy runs the enemy behaviour and resolves contact damage in both
// directions.
func (w *World) updateEnemy(lt time.Duration) {
	lvl := w.Level
	e := lvl.Enemy
	if !e.Alive() {
		return
	}

	tracked := w.trackedActor()
	colliding := e.Update(tracked)

	taken := w.cfg.Enemy.Taken
	dealt := w.cfg.Enemy.Dealt
	if e.State == obj.EnemyAttacking && colliding {
		e.TakeTimedDamage(taken.Amount, lt, taken.Interval)
		if tracked.Shielded(lt, w.cfg.shieldDuration()) {
			w.logger.Debug("hit blocked", "player", tracked.Index)
		} else if tracked.TakeTimedDamage(dealt.Amount, lt, dealt.Interval) {
			w.logger.Info("player hit", "player", tracked.Index, "health", tracked.Health)
		}
	}

	for _, p := range lvl.Players {
		if p.Status == obj.Attacking && e.Colliding(p) {
			e.TakeStrike(taken.Amount, lt, taken.Interval)
		}
	}

	if !e.Alive() {
		w.logger.Info("enemy defeated", "level", lvl.Spec.ID)
	}
}

// checkBoss fires the boss quiz once per level when a player passes boss_x
// after the enemy died.
func (w *World) checkBoss() {
	lvl := w.Level
	t := &lvl.Triggers
	if lvl.Spec.BossX <= 0 || t.BossTriggered || lvl.Enemy.Alive() {
		return
	}
	for _, p := range lvl.Players {
		if p.Alive() && p.X >= lvl.Spec.BossX {
			t.BossTriggered = true
			t.QuizPending = true
			w.logger.Info("boss reached", "level", lvl.Spec.ID, "player", p.Index)
			return
		}
	}
}
