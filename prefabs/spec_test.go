package prefabs

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	require.NoError(t, err)

	assert.Equal(t, 170, spec.Width)
	assert.Equal(t, 170, spec.Height)
	assert.Equal(t, 100, spec.Health)
	assert.Equal(t, 100*time.Millisecond, spec.AttackFrameTime)
	assert.Equal(t, 15*time.Second, spec.ShieldDuration)
	assert.Equal(t, time.Second, spec.HazardCooldown)
	assert.Equal(t, -440.0, spec.JumpSpeed)
}

func TestPlayerColorCycles(t *testing.T) {
	spec, err := LoadPlayerSpec()
	require.NoError(t, err)
	require.Len(t, spec.Colors, 2)

	assert.Equal(t, spec.Color(0), spec.Color(2))
	assert.NotEqual(t, spec.Color(0), spec.Color(1))

	var empty *PlayerSpec
	assert.Equal(t, color.White, empty.Color(0))
}

func TestLoadEnemySpec(t *testing.T) {
	spec, err := LoadEnemySpec()
	require.NoError(t, err)

	assert.Equal(t, 155, spec.Width)
	assert.Equal(t, 145, spec.Height)
	assert.Equal(t, DamageSpec{Amount: 2, Interval: 200 * time.Millisecond}, spec.Taken)
	assert.Equal(t, DamageSpec{Amount: 33, Interval: 5 * time.Second}, spec.Dealt)
}

func TestLoadPickupsSpec(t *testing.T) {
	spec, err := LoadPickupsSpec()
	require.NoError(t, err)

	assert.Equal(t, []string{"points", "poison", "potion", "relic", "trap", "treasure"}, spec.Names())

	poison := spec.Kinds["poison"]
	assert.Equal(t, -10, poison.Health)
	assert.True(t, poison.Persistent)
	assert.Equal(t, time.Second, poison.CollectCooldown)

	potion := spec.Kinds["potion"]
	assert.Equal(t, 15*time.Second, potion.AppearAfter)
	assert.Equal(t, 15*time.Second, potion.RespawnAfter)

	assert.True(t, spec.Kinds["relic"].Relic)
}

func TestLoadWorldSpec(t *testing.T) {
	spec, err := LoadWorldSpec()
	require.NoError(t, err)

	assert.Equal(t, 6, spec.DoorFrames)
	assert.Equal(t, 150*time.Millisecond, spec.DoorFrameTime)
	assert.Equal(t, QuizSpec{PassScore: 100, PassEnemyDamage: 50, FailDamage: 20}, spec.Quiz)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x00, B: 0xde, A: 0xff}, spec.SolidColor.Color)
}

func TestLoadSpecMissingFile(t *testing.T) {
	_, err := LoadSpec[WorldSpec]("nope.yaml")
	assert.ErrorContains(t, err, "prefabs: load nope.yaml")
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.Color
		wantErr bool
	}{
		{"rgb", `"#102030"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, false},
		{"rgba", `"10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"short", `"#123"`, nil, true},
		{"not_hex", `"#zz0000"`, nil, true},
		{"sequence", `[1, 2]`, nil, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got.Color)
		})
	}
}

func TestColorOr(t *testing.T) {
	assert.Equal(t, color.Black, ColorOr(nil, color.Black))
	assert.Equal(t, color.Black, ColorOr(&YAMLColor{}, color.Black))
	c := &YAMLColor{Color: color.White}
	assert.Equal(t, color.White, ColorOr(c, color.Black))
}

func TestPrefabPaths(t *testing.T) {
	cases := []struct {
		in      string
		prefab  string
		script  string
		wantErr bool
	}{
		{in: "player.yaml", prefab: "player.yaml", script: "scripts/player.yaml"},
		{in: "prefabs/player.yaml", prefab: "player.yaml", script: "scripts/player.yaml"},
		{in: "rules.tengo", prefab: "rules.tengo", script: "scripts/rules.tengo"},
		{in: "scripts/rules.tengo", prefab: "scripts/rules.tengo", script: "scripts/rules.tengo"},
		{in: "prefabs/scripts/rules.tengo", prefab: "scripts/rules.tengo", script: "scripts/rules.tengo"},
		{in: "", wantErr: true},
		{in: "../go.mod", wantErr: true},
		{in: "prefabs/../../go.mod", wantErr: true},
		{in: "/etc/passwd", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			prefab, err := prefabPath(c.in)
			script, serr := scriptPath(c.in)
			if c.wantErr {
				assert.Error(t, err)
				assert.Error(t, serr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, serr)
			assert.Equal(t, c.prefab, prefab)
			assert.Equal(t, c.script, script)
		})
	}
}

func TestLoadRejectsEscapingName(t *testing.T) {
	_, err := Load("../levels/levels.yaml")
	assert.ErrorContains(t, err, "bad name")
}

func TestLoadScript(t *testing.T) {
	data, err := LoadScript(RulesScript)
	require.NoError(t, err)
	assert.Contains(t, string(data), "at_exit")
}

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		kind ChangeKind
		ok   bool
	}{
		{"levels/levels.yaml", ChangeSpec, true},
		{"prefabs/enemy.YML", ChangeSpec, true},
		{"prefabs/scripts/rules.tengo", ChangeScript, true},
		{"assets/level1_mask.png", ChangeImage, true},
		{"notes.txt", 0, false},
	}
	for _, c := range cases {
		kind, ok := classify(c.path)
		assert.Equal(t, c.ok, ok, c.path)
		if c.ok {
			assert.Equal(t, c.kind, kind, c.path)
		}
	}
}
