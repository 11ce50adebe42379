package system

import (
	"time"
)

// collectPickups applies every pickup touched by a living player this tick.
func (w *World) collectPickups(lt time.Duration) {
	lvl := w.Level
	for _, pk := range lvl.Pickups {
		pk.Update(lt)
		for _, p := range lvl.Players {
			if !pk.TryCollect(p, lt) {
				continue
			}
			if pk.Kind.Relic {
				lvl.Triggers.RelicsCollected++
				w.relics++
			}
			w.logger.Debug("pickup", "kind", pk.Kind.Name, "player", p.Index, "health", p.Health, "score", p.Score)
			if !pk.Visible {
				break
			}
		}
	}
}
