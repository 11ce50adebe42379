package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriggersFinished(t *testing.T) {
	cases := []struct {
		name string
		t    *Triggers
		want bool
	}{
		{"nil", nil, false},
		{"fresh", &Triggers{}, false},
		{"level_complete", &Triggers{GameStarted: true, LevelComplete: true}, false},
		{"quiz_pending", &Triggers{BossTriggered: true, QuizPending: true}, false},
		{"won", &Triggers{Won: true}, true},
		{"lost", &Triggers{Lost: true}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.t.Finished())
		})
	}
}
