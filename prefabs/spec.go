package prefabs

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// File names of the tunable prefabs.
const (
	PlayerFile  = "player.yaml"
	EnemyFile   = "enemy.yaml"
	PickupsFile = "pickups.yaml"
	WorldFile   = "world.yaml"
	RulesScript = "rules.tengo"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name            string        `yaml:"name"`
	Width           int           `yaml:"width"`
	Height          int           `yaml:"height"`
	Health          int           `yaml:"health"`
	LifeUnit        int           `yaml:"life_unit"`
	MaxSpeed        float64       `yaml:"max_speed"`
	SprintSpeed     float64       `yaml:"sprint_speed"`
	Accel           float64       `yaml:"accel"`
	SprintAccel     float64       `yaml:"sprint_accel"`
	Gravity         float64       `yaml:"gravity"`
	MaxFall         float64       `yaml:"max_fall"`
	JumpSpeed       float64       `yaml:"jump_speed"`
	AttackFrames    int           `yaml:"attack_frames"`
	AttackFrameTime time.Duration `yaml:"attack_frame_time"`
	ShieldDuration  time.Duration `yaml:"shield_duration"`
	HazardCooldown  time.Duration `yaml:"hazard_cooldown"`
	Colors          []*YAMLColor  `yaml:"colors"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("prefabs: %s: size must be positive", PlayerFile)
	}
	if spec.Health <= 0 {
		return nil, fmt.Errorf("prefabs: %s: health must be positive", PlayerFile)
	}
	return &spec, nil
}

// Color returns the render colour for player i, cycling through Colors.
func (s *PlayerSpec) Color(i int) color.Color {
	if s == nil || len(s.Colors) == 0 {
		return color.White
	}
	c := s.Colors[i%len(s.Colors)]
	if c == nil || c.Color == nil {
		return color.White
	}
	return c.Color
}

// DamageSpec is an amount applied at most once per interval.
type DamageSpec struct {
	Amount   int           `yaml:"amount"`
	Interval time.Duration `yaml:"interval"`
}

type EnemySpec struct {
	Name    string     `yaml:"name"`
	Width   int        `yaml:"width"`
	Height  int        `yaml:"height"`
	Speed   float64    `yaml:"speed"`
	Health  int        `yaml:"health"`
	Columns int        `yaml:"columns"`
	Taken   DamageSpec `yaml:"damage_taken"`
	Dealt   DamageSpec `yaml:"damage_dealt"`
	Color   *YAMLColor `yaml:"color"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec](EnemyFile)
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("prefabs: %s: size must be positive", EnemyFile)
	}
	return &spec, nil
}

type PickupKindSpec struct {
	Width           float64       `yaml:"width"`
	Height          float64       `yaml:"height"`
	Health          int           `yaml:"health"`
	Score           int           `yaml:"score"`
	AppearAfter     time.Duration `yaml:"appear_after"`
	RespawnAfter    time.Duration `yaml:"respawn_after"`
	CollectCooldown time.Duration `yaml:"collect_cooldown"`
	Persistent      bool          `yaml:"persistent"`
	Relic           bool          `yaml:"relic"`
	Color           *YAMLColor    `yaml:"color"`
}

type PickupsSpec struct {
	Kinds map[string]PickupKindSpec `yaml:"kinds"`
}

func LoadPickupsSpec() (*PickupsSpec, error) {
	spec, err := LoadSpec[PickupsSpec](PickupsFile)
	if err != nil {
		return nil, err
	}
	for name, k := range spec.Kinds {
		if k.Width <= 0 || k.Height <= 0 {
			return nil, fmt.Errorf("prefabs: %s: kind %q: size must be positive", PickupsFile, name)
		}
	}
	return &spec, nil
}

// Names returns the kind names in sorted order.
func (s *PickupsSpec) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.Kinds))
	for name := range s.Kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type QuizSpec struct {
	PassScore       int `yaml:"pass_score"`
	PassEnemyDamage int `yaml:"pass_enemy_damage"`
	FailDamage      int `yaml:"fail_damage"`
}

type WorldSpec struct {
	DoorFrames       int           `yaml:"door_frames"`
	DoorFrameTime    time.Duration `yaml:"door_frame_time"`
	TransitionFrames int           `yaml:"transition_frames"`
	Quiz             QuizSpec      `yaml:"quiz"`
	Background       *YAMLColor    `yaml:"background"`
	SolidColor       *YAMLColor    `yaml:"solid_color"`
	HazardColor      *YAMLColor    `yaml:"hazard_color"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec](WorldFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

// ColorOr returns c's colour, or fallback when c is unset.
func ColorOr(c *YAMLColor, fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
