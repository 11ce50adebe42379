package system

import (
	"fmt"
	"time"

	"github.com/milk9111/relicrun/common"
	"github.com/milk9111/relicrun/levels"
	"github.com/milk9111/relicrun/obj"
	"github.com/milk9111/relicrun/prefabs"
)

// Config is everything a World is built from. LoadConfig fills it from the
// level table and the prefab files.
type Config struct {
	Levels  *levels.Table
	Player  *prefabs.PlayerSpec
	Enemy   *prefabs.EnemySpec
	Pickups *prefabs.PickupsSpec
	World   *prefabs.WorldSpec
	// Prelude is tengo source prepended to every rule expression.
	Prelude string

	Viewport common.Size
}

func LoadConfig() (Config, error) {
	var cfg Config
	var err error

	if cfg.Levels, err = levels.LoadTable(); err != nil {
		return cfg, err
	}
	if cfg.Player, err = prefabs.LoadPlayerSpec(); err != nil {
		return cfg, err
	}
	if cfg.Enemy, err = prefabs.LoadEnemySpec(); err != nil {
		return cfg, err
	}
	if cfg.Pickups, err = prefabs.LoadPickupsSpec(); err != nil {
		return cfg, err
	}
	if cfg.World, err = prefabs.LoadWorldSpec(); err != nil {
		return cfg, err
	}
	prelude, err := prefabs.LoadScript(prefabs.RulesScript)
	if err != nil {
		return cfg, fmt.Errorf("system: load %s: %w", prefabs.RulesScript, err)
	}
	cfg.Prelude = string(prelude)
	cfg.Viewport = common.Size{W: common.BaseWidth, H: common.BaseHeight}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Levels == nil:
		return fmt.Errorf("system: config has no level table")
	case c.Player == nil:
		return fmt.Errorf("system: config has no player spec")
	case c.Enemy == nil:
		return fmt.Errorf("system: config has no enemy spec")
	case c.World == nil:
		return fmt.Errorf("system: config has no world spec")
	}
	return nil
}

// Tuning converts the player spec into kinematics constants.
func (c Config) Tuning() obj.Tuning {
	p := c.Player
	if p == nil {
		return obj.DefaultTuning()
	}
	return obj.Tuning{
		MaxSpeed:        p.MaxSpeed,
		SprintSpeed:     p.SprintSpeed,
		Accel:           p.Accel,
		SprintAccel:     p.SprintAccel,
		Gravity:         p.Gravity,
		MaxFall:         p.MaxFall,
		JumpSpeed:       p.JumpSpeed,
		AttackFrames:    p.AttackFrames,
		AttackFrameTime: p.AttackFrameTime,
		LifeUnit:        p.LifeUnit,
	}
}

func (c Config) EnemyTuning() obj.EnemyTuning {
	e := c.Enemy
	if e == nil {
		return obj.DefaultEnemyTuning()
	}
	return obj.EnemyTuning{W: e.Width, H: e.Height, Speed: e.Speed, Health: e.Health, Columns: e.Columns}
}

// PickupKinds builds the kind table shared by every pickup instance.
func (c Config) PickupKinds() map[string]*obj.PickupKind {
	kinds := map[string]*obj.PickupKind{}
	if c.Pickups == nil {
		return kinds
	}
	for name, k := range c.Pickups.Kinds {
		kinds[name] = &obj.PickupKind{
			Name:            name,
			Health:          k.Health,
			Score:           k.Score,
			W:               k.Width,
			H:               k.Height,
			AppearAfter:     k.AppearAfter,
			RespawnAfter:    k.RespawnAfter,
			CollectCooldown: k.CollectCooldown,
			Persistent:      k.Persistent,
			Relic:           k.Relic,
		}
	}
	return kinds
}

func (c Config) shieldDuration() time.Duration {
	if c.Player == nil {
		return 0
	}
	return c.Player.ShieldDuration
}

func (c Config) hazardCooldown() time.Duration {
	if c.Player == nil || c.Player.HazardCooldown <= 0 {
		return time.Second
	}
	return c.Player.HazardCooldown
}
