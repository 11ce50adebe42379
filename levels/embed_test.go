package levels

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

func TestLoadEmbeddedTable(t *testing.T) {
	tbl, err := LoadTable()
	require.NoError(t, err)
	assert.Equal(t, "1", tbl.Start)
	assert.Equal(t, []string{"1", "2"}, tbl.IDs())

	cases := []struct {
		id        string
		spawn     Point
		aggro     float64
		disengage float64
		patrol    [2]float64
	}{
		{"1", Point{X: 0, Y: 382}, 1000, 1200, [2]float64{1100, 1300}},
		{"2", Point{X: 70, Y: 382}, 1200, 1800, [2]float64{1200, 1500}},
	}
	for _, c := range cases {
		t.Run(c.id, func(t *testing.T) {
			l, err := tbl.Level(c.id)
			require.NoError(t, err)
			assert.Equal(t, c.id, l.ID)
			assert.Equal(t, 2560, l.Width)
			assert.Equal(t, 754, l.KillY)
			assert.Equal(t, 682.0, l.PlatformLine)
			assert.Equal(t, c.spawn, l.Spawn(0))
			require.NotNil(t, l.Enemy)
			assert.Equal(t, c.aggro, l.Enemy.Aggro)
			assert.Equal(t, c.disengage, l.Enemy.Disengage)
			assert.Equal(t, c.patrol, [2]float64{l.Enemy.PatrolMin, l.Enemy.PatrolMax})
		})
	}
}

func TestUnknownLevel(t *testing.T) {
	tbl, err := LoadTable()
	require.NoError(t, err)
	_, err = tbl.Level("9")
	require.True(t, errors.Is(err, ErrUnknownLevel))
}

func TestSpawnFallsBackToFirst(t *testing.T) {
	l := &Level{Spawns: []Point{{X: 1, Y: 2}}}
	assert.Equal(t, Point{X: 1, Y: 2}, l.Spawn(3))
	var nilLevel *Level
	assert.Equal(t, Point{}, nilLevel.Spawn(0))
}

// TestParseTableRejects runs every table in testdata/invalid.txtar. Each
// file starts with a "# want: <substring>" line naming the expected error.
func TestParseTableRejects(t *testing.T) {
	ar, err := txtar.ParseFile(filepath.Join("testdata", "invalid.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, ar.Files)

	for _, f := range ar.Files {
		t.Run(strings.TrimSuffix(f.Name, ".yaml"), func(t *testing.T) {
			first, _, _ := strings.Cut(string(f.Data), "\n")
			want, ok := strings.CutPrefix(first, "# want: ")
			require.True(t, ok, "missing want line")

			_, err := ParseTable(f.Data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), want)
		})
	}
}

func TestParseTableUnknownNextIsSentinel(t *testing.T) {
	_, err := ParseTable([]byte(`levels: {"1": {mask: a.png, width: 10, height: 10, spawns: [{x: 0, y: 0}], next: "7"}}`))
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestParseTableDefaults(t *testing.T) {
	tbl, err := ParseTable([]byte(`levels: {"b": {mask: a.png, width: 10, height: 20, spawns: [{x: 0, y: 0}]}, "a": {mask: a.png, width: 10, height: 10, spawns: [{x: 0, y: 0}]}}`))
	require.NoError(t, err)
	assert.Equal(t, "a", tbl.Start)
	l, err := tbl.Level("b")
	require.NoError(t, err)
	assert.Equal(t, 20, l.KillY)
}
