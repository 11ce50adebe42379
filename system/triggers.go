package system

// Triggers are the per-level flags of a run. They are owned by World and
// start from zero on every level entry.
type Triggers struct {
	GameStarted   bool
	BossTriggered bool
	QuizPending   bool
	QuizResolved  bool
	QuizPassed    bool

	RelicsCollected int

	LevelComplete bool
	Won           bool
	Lost          bool
}

// Finished reports whether the run ended on this level.
func (t *Triggers) Finished() bool {
	return t != nil && (t.Won || t.Lost)
}
