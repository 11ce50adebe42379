package levels

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// TableFile is the level table file name, both embedded and on disk.
const TableFile = "levels.yaml"

var ErrUnknownLevel = errors.New("levels: unknown level")

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type EnemyPlacement struct {
	Spawn     Point   `yaml:"spawn"`
	PatrolMin float64 `yaml:"patrol_min"`
	PatrolMax float64 `yaml:"patrol_max"`
	Aggro     float64 `yaml:"aggro"`
	Disengage float64 `yaml:"disengage"`
}

type PickupPlacement struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Level is one row of the level table. All coordinates are world pixels.
type Level struct {
	ID           string            `yaml:"-"`
	Name         string            `yaml:"name"`
	Mask         string            `yaml:"mask"`
	Width        int               `yaml:"width"`
	Height       int               `yaml:"height"`
	KillY        int               `yaml:"kill_y"`
	PlatformLine float64           `yaml:"platform_line"`
	Spawns       []Point           `yaml:"spawns"`
	Enemy        *EnemyPlacement   `yaml:"enemy"`
	Door         Point             `yaml:"door"`
	BossX        float64           `yaml:"boss_x"`
	Pickups      []PickupPlacement `yaml:"pickups"`
	Next         string            `yaml:"next"`
	AdvanceWhen  string            `yaml:"advance_when"`
	WinWhen      string            `yaml:"win_when"`
}

// Spawn returns the spawn point for player index i, reusing the first one
// when the level defines fewer.
func (l *Level) Spawn(i int) Point {
	if l == nil || len(l.Spawns) == 0 {
		return Point{}
	}
	if i < 0 || i >= len(l.Spawns) {
		return l.Spawns[0]
	}
	return l.Spawns[i]
}

type Table struct {
	Start  string            `yaml:"start"`
	Levels map[string]*Level `yaml:"levels"`
}

// LoadTable reads levels/levels.yaml from disk when present, otherwise the
// embedded copy, and validates every row.
func LoadTable() (*Table, error) {
	data, err := os.ReadFile(filepath.Join("levels", TableFile))
	if err != nil {
		data, err = LevelsFS.ReadFile(TableFile)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", TableFile, err)
		}
	}
	return ParseTable(data)
}

func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", TableFile, err)
	}
	if len(t.Levels) == 0 {
		return nil, fmt.Errorf("levels: %s has no levels", TableFile)
	}
	for id, l := range t.Levels {
		if l == nil {
			return nil, fmt.Errorf("levels: level %q is empty", id)
		}
		l.ID = id
		if err := l.validate(); err != nil {
			return nil, err
		}
	}
	for id, l := range t.Levels {
		if l.Next != "" {
			if _, ok := t.Levels[l.Next]; !ok {
				return nil, fmt.Errorf("levels: level %q: next %q: %w", id, l.Next, ErrUnknownLevel)
			}
		}
	}
	if t.Start == "" {
		t.Start = t.IDs()[0]
	}
	if _, ok := t.Levels[t.Start]; !ok {
		return nil, fmt.Errorf("levels: start %q: %w", t.Start, ErrUnknownLevel)
	}
	return &t, nil
}

func (l *Level) validate() error {
	switch {
	case l.Mask == "":
		return fmt.Errorf("levels: level %q: missing mask", l.ID)
	case l.Width <= 0 || l.Height <= 0:
		return fmt.Errorf("levels: level %q: world size %dx%d", l.ID, l.Width, l.Height)
	case len(l.Spawns) == 0:
		return fmt.Errorf("levels: level %q: no spawns", l.ID)
	case l.Enemy != nil && l.Enemy.Disengage <= l.Enemy.Aggro:
		return fmt.Errorf("levels: level %q: disengage %.0f must exceed aggro %.0f", l.ID, l.Enemy.Disengage, l.Enemy.Aggro)
	case l.Enemy != nil && l.Enemy.PatrolMax < l.Enemy.PatrolMin:
		return fmt.Errorf("levels: level %q: patrol bounds reversed", l.ID)
	}
	if l.KillY == 0 {
		l.KillY = l.Height
	}
	return nil
}

// Level looks up a level by id.
func (t *Table) Level(id string) (*Level, error) {
	if t == nil {
		return nil, fmt.Errorf("levels: %q: %w", id, ErrUnknownLevel)
	}
	l, ok := t.Levels[id]
	if !ok {
		return nil, fmt.Errorf("levels: %q: %w", id, ErrUnknownLevel)
	}
	return l, nil
}

// IDs returns the level ids in sorted order.
func (t *Table) IDs() []string {
	if t == nil {
		return nil
	}
	ids := make([]string, 0, len(t.Levels))
	for id := range t.Levels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
