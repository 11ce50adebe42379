package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is an abstract input command.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionSprint
	ActionShield
	ActionGuide
	ActionQuit
	ActionPause
)

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionJump:
		return "jump"
	case ActionAttack:
		return "attack"
	case ActionSprint:
		return "sprint"
	case ActionShield:
		return "shield"
	case ActionGuide:
		return "guide"
	case ActionQuit:
		return "quit"
	case ActionPause:
		return "pause"
	}
	return "unknown"
}

// AllPlayers addresses an event to every player.
const AllPlayers = -1

// Event is a key-down or key-up edge for one action.
type Event struct {
	Action Action
	Down   bool
	Player int
}

// Down and Up are shorthands for building events.
func Down(a Action, player int) Event { return Event{Action: a, Down: true, Player: player} }
func Up(a Action, player int) Event   { return Event{Action: a, Down: false, Player: player} }

// Applies reports whether e targets player.
func (e Event) Applies(player int) bool {
	return e.Player == AllPlayers || e.Player == player
}

// KeyBinding maps a keyboard key to an action for a player.
type KeyBinding struct {
	Key    ebiten.Key
	Action Action
	Player int
}

// Input polls ebiten once per tick and turns key edges into events.
type Input struct {
	Bindings []KeyBinding

	events []Event
}

// DefaultBindings returns the keyboard layout. In solo mode both the arrow
// keys and WASD drive player 0; in duo mode WASD drives player 1.
func DefaultBindings(duo bool) []KeyBinding {
	second := 0
	if duo {
		second = 1
	}
	return []KeyBinding{
		{ebiten.KeyArrowLeft, ActionMoveLeft, 0},
		{ebiten.KeyArrowRight, ActionMoveRight, 0},
		{ebiten.KeyArrowUp, ActionJump, 0},
		{ebiten.KeyA, ActionMoveLeft, second},
		{ebiten.KeyD, ActionMoveRight, second},
		{ebiten.KeyW, ActionJump, second},
		{ebiten.KeyShiftLeft, ActionSprint, AllPlayers},
		{ebiten.KeyShiftRight, ActionSprint, AllPlayers},
		{ebiten.KeyP, ActionShield, AllPlayers},
		{ebiten.KeyG, ActionGuide, AllPlayers},
		{ebiten.KeyEscape, ActionQuit, AllPlayers},
		{ebiten.KeyTab, ActionPause, AllPlayers},
	}
}

func NewInput(duo bool) *Input {
	return &Input{Bindings: DefaultBindings(duo)}
}

// Poll collects the edges seen since the previous tick. The returned slice
// is reused on the next call.
func (i *Input) Poll() []Event {
	if i == nil {
		return nil
	}
	i.events = i.events[:0]

	for _, b := range i.Bindings {
		if inpututil.IsKeyJustPressed(b.Key) {
			i.events = append(i.events, Down(b.Action, b.Player))
		}
		if inpututil.IsKeyJustReleased(b.Key) {
			i.events = append(i.events, Up(b.Action, b.Player))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		i.events = append(i.events, Down(ActionAttack, AllPlayers))
	}

	// First gamepad drives player 0.
	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		pad := []struct {
			button ebiten.StandardGamepadButton
			action Action
		}{
			{ebiten.StandardGamepadButtonLeftLeft, ActionMoveLeft},
			{ebiten.StandardGamepadButtonLeftRight, ActionMoveRight},
			{ebiten.StandardGamepadButtonRightBottom, ActionJump},
			{ebiten.StandardGamepadButtonRightLeft, ActionAttack},
			{ebiten.StandardGamepadButtonFrontBottomRight, ActionSprint},
			{ebiten.StandardGamepadButtonCenterRight, ActionPause},
		}
		for _, p := range pad {
			if inpututil.IsStandardGamepadButtonJustPressed(gid, p.button) {
				i.events = append(i.events, Down(p.action, 0))
			}
			if inpututil.IsStandardGamepadButtonJustReleased(gid, p.button) {
				i.events = append(i.events, Up(p.action, 0))
			}
		}
	}

	return i.events
}
