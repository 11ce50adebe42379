package obj

// Transition is a fade-to-black, level load, fade-from-black sequence
// measured in ticks.
type Transition struct {
	Active   bool
	Phase    int // 1: fade-in, 2: loading, 3: fade-out
	Frames   int
	Duration int
	Target   string
	// OnStart is called once the screen is fully black and the target level
	// should be loaded.
	OnStart func(target string)
}

func NewTransition(duration int) *Transition {
	if duration <= 0 {
		duration = 20
	}
	return &Transition{Duration: duration}
}

// Enter starts a transition to target. A running transition is not restarted.
func (t *Transition) Enter(target string) {
	if t == nil || t.Active {
		return
	}
	t.Active = true
	t.Phase = 1
	t.Frames = 0
	t.Target = target
}

// Update advances the transition by one tick. It returns true while the
// caller should hold the simulation.
func (t *Transition) Update() bool {
	if t == nil || !t.Active {
		return false
	}
	t.Frames++
	switch t.Phase {
	case 1:
		if t.Frames >= t.Duration {
			t.Phase = 2
			t.Frames = 0
		}
	case 2:
		if t.OnStart != nil {
			t.OnStart(t.Target)
		}
		t.Phase = 3
		t.Frames = 0
	case 3:
		if t.Frames >= t.Duration {
			t.Active = false
			t.Phase = 0
			t.Frames = 0
			t.Target = ""
		}
	}
	return true
}

// Alpha is the opacity of the black overlay in [0, 1].
func (t *Transition) Alpha() float64 {
	if t == nil || !t.Active {
		return 0
	}
	switch t.Phase {
	case 1:
		return min(float64(t.Frames)/float64(t.Duration), 1)
	case 2:
		return 1
	case 3:
		return max(1-float64(t.Frames)/float64(t.Duration), 0)
	}
	return 0
}
