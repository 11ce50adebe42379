package system

import "github.com/milk9111/relicrun/obj"

// heldDirs counts the keys currently held for each direction. In solo mode
// the arrows and WASD both drive player 0, so one direction can be held by
// two keys at once.
type heldDirs struct {
	left, right int
	last        int
}

func (h *heldDirs) press(dir int) {
	if dir < 0 {
		h.left++
	} else {
		h.right++
	}
	h.last = dir
}

func (h *heldDirs) release(dir int) {
	if dir < 0 {
		h.left = max(h.left-1, 0)
	} else {
		h.right = max(h.right-1, 0)
	}
}

// dir is the direction to move in. The most recently pressed direction wins
// while both are held.
func (h *heldDirs) dir() int {
	switch {
	case h.last < 0 && h.left > 0:
		return -1
	case h.last > 0 && h.right > 0:
		return 1
	case h.left > 0:
		return -1
	case h.right > 0:
		return 1
	}
	return 0
}

func (h *heldDirs) clear() {
	*h = heldDirs{}
}

// TrackKeys records move and sprint key edges. Step calls it before any of
// its early returns, so a key released while the level is held (door gate,
// quiz, transition, pause) still stops the actor.
func (w *World) TrackKeys(events []obj.Event) {
	if w == nil || w.Level == nil {
		return
	}
	lvl := w.Level
	for _, ev := range events {
		for i, p := range lvl.Players {
			if !ev.Applies(i) {
				continue
			}
			switch ev.Action {
			case obj.ActionMoveLeft, obj.ActionMoveRight:
				dir := -1
				if ev.Action == obj.ActionMoveRight {
					dir = 1
				}
				h := &lvl.held[i]
				if ev.Down {
					h.press(dir)
				} else {
					h.release(dir)
					if h.dir() == 0 {
						lvl.Kin.StopMove(p)
					}
				}
			case obj.ActionSprint:
				p.Sprint = ev.Down
			}
		}
	}
}
