package system

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/relicrun/levels"
)

// ruleBudget bounds a single rule evaluation.
const ruleBudget = 50 * time.Millisecond

// RuleVars are the values a rule expression can read.
type RuleVars struct {
	Level       string
	Score       int
	EnemyAlive  bool
	PlayerX     float64
	WorldWidth  float64
	PlayerWidth float64
	Relics      int
	QuizPassed  bool
}

func (v RuleVars) values() map[string]any {
	return map[string]any{
		"level":        v.Level,
		"score":        v.Score,
		"enemy_alive":  v.EnemyAlive,
		"player_x":     v.PlayerX,
		"world_width":  v.WorldWidth,
		"player_width": v.PlayerWidth,
		"relics":       v.Relics,
		"quiz_passed":  v.QuizPassed,
	}
}

// Rules holds the compiled advance and win expressions of one level.
type Rules struct {
	advance *tengo.Compiled
	win     *tengo.Compiled
}

// CompileRules compiles lvl's rule expressions on top of prelude. An empty
// expression never fires.
func CompileRules(prelude string, lvl *levels.Level) (*Rules, error) {
	if lvl == nil {
		return &Rules{}, nil
	}
	advance, err := compileRule(prelude, lvl.AdvanceWhen)
	if err != nil {
		return nil, fmt.Errorf("system: compile advance_when for level %s: %w", lvl.ID, err)
	}
	win, err := compileRule(prelude, lvl.WinWhen)
	if err != nil {
		return nil, fmt.Errorf("system: compile win_when for level %s: %w", lvl.ID, err)
	}
	return &Rules{advance: advance, win: win}, nil
}

func compileRule(prelude, expr string) (*tengo.Compiled, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}
	src := prelude + "\n__result := (" + expr + ")\n"
	script := tengo.NewScript([]byte(src))
	for name, v := range (RuleVars{}).values() {
		if err := script.Add(name, v); err != nil {
			return nil, err
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return script.Compile()
}

// Evaluate runs both expressions against v.
func (r *Rules) Evaluate(v RuleVars) (advance, win bool, err error) {
	if r == nil {
		return false, false, nil
	}
	if advance, err = runRule(r.advance, v); err != nil {
		return false, false, fmt.Errorf("system: advance_when: %w", err)
	}
	if win, err = runRule(r.win, v); err != nil {
		return advance, false, fmt.Errorf("system: win_when: %w", err)
	}
	return advance, win, nil
}

func runRule(c *tengo.Compiled, v RuleVars) (bool, error) {
	if c == nil {
		return false, nil
	}
	for name, val := range v.values() {
		if err := c.Set(name, val); err != nil {
			return false, err
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), ruleBudget)
	defer cancel()
	if err := c.RunContext(ctx); err != nil {
		return false, err
	}
	return c.Get("__result").Bool(), nil
}
