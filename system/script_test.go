package system

import (
	"testing"

	"github.com/milk9111/relicrun/levels"
	"github.com/milk9111/relicrun/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prelude(t *testing.T) string {
	t.Helper()
	src, err := prefabs.LoadScript(prefabs.RulesScript)
	require.NoError(t, err)
	return string(src)
}

func TestRulesEvaluate(t *testing.T) {
	lvl := &levels.Level{
		ID:          "1",
		AdvanceWhen: "!enemy_alive && score >= 200 && at_exit()",
		WinWhen:     "relics >= 2",
	}
	rules, err := CompileRules(prelude(t), lvl)
	require.NoError(t, err)

	base := RuleVars{Score: 250, WorldWidth: 2560, PlayerWidth: 170, PlayerX: 2390}
	cases := []struct {
		name    string
		mutate  func(v *RuleVars)
		advance bool
		win     bool
	}{
		{"all_met", func(v *RuleVars) {}, true, false},
		{"enemy_alive", func(v *RuleVars) { v.EnemyAlive = true }, false, false},
		{"low_score", func(v *RuleVars) { v.Score = 199 }, false, false},
		{"short_of_exit", func(v *RuleVars) { v.PlayerX = 2389.5 }, false, false},
		{"relics", func(v *RuleVars) { v.Relics = 2; v.Score = 0 }, false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := base
			c.mutate(&v)
			advance, win, err := rules.Evaluate(v)
			require.NoError(t, err)
			assert.Equal(t, c.advance, advance)
			assert.Equal(t, c.win, win)
		})
	}
}

func TestRulesEmptyNeverFire(t *testing.T) {
	rules, err := CompileRules("", &levels.Level{ID: "x"})
	require.NoError(t, err)
	advance, win, err := rules.Evaluate(RuleVars{Score: 1 << 20})
	require.NoError(t, err)
	assert.False(t, advance)
	assert.False(t, win)

	var none *Rules
	advance, win, err = none.Evaluate(RuleVars{})
	assert.NoError(t, err)
	assert.False(t, advance || win)
}

func TestRulesCompileError(t *testing.T) {
	_, err := CompileRules("", &levels.Level{ID: "bad", WinWhen: "relics >="})
	assert.ErrorContains(t, err, "win_when for level bad")
}

func TestRulesRuntimeError(t *testing.T) {
	rules, err := CompileRules("", &levels.Level{ID: "x", AdvanceWhen: "score / (relics - relics) > 0"})
	require.NoError(t, err)
	_, _, err = rules.Evaluate(RuleVars{Score: 1})
	assert.ErrorContains(t, err, "advance_when")
}

func TestRulesSeeQuizAndLevel(t *testing.T) {
	rules, err := CompileRules("", &levels.Level{ID: "2", WinWhen: `quiz_passed && level == "2"`})
	require.NoError(t, err)

	_, win, err := rules.Evaluate(RuleVars{Level: "2", QuizPassed: true})
	require.NoError(t, err)
	assert.True(t, win)

	_, win, err = rules.Evaluate(RuleVars{Level: "1", QuizPassed: true})
	require.NoError(t, err)
	assert.False(t, win)
}
