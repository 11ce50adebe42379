package system

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/relicrun/common"
	"github.com/milk9111/relicrun/levels"
	"github.com/milk9111/relicrun/obj"
)

// Mode selects how many players take part.
type Mode int

const (
	ModeSolo Mode = iota
	ModeDuo
)

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "solo":
		return ModeSolo, nil
	case "duo":
		return ModeDuo, nil
	}
	return ModeSolo, fmt.Errorf("system: unknown mode %q", s)
}

func (m Mode) String() string {
	if m == ModeDuo {
		return "duo"
	}
	return "solo"
}

// Players is the number of actors the mode spawns.
func (m Mode) Players() int {
	if m == ModeDuo {
		return 2
	}
	return 1
}

// ExitReason says why a run ended.
type ExitReason int

const (
	ExitNone ExitReason = iota
	ExitQuit
	ExitAllDead
	ExitWon
)

func (r ExitReason) String() string {
	switch r {
	case ExitQuit:
		return "quit"
	case ExitAllDead:
		return "all_dead"
	case ExitWon:
		return "won"
	}
	return "none"
}

type Outcome struct {
	Running bool
	Reason  ExitReason
}

// MaskLoader resolves a level's mask name to a collision mask.
type MaskLoader func(name string) (*obj.CollisionMask, error)

// ConfigLoader re-reads the tunable configuration for hot reload.
type ConfigLoader func() (Config, error)

type Option func(*World)

func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

func WithMode(m Mode) Option {
	return func(w *World) { w.mode = m }
}

// WithStartLevel overrides the table's start level.
func WithStartLevel(id string) Option {
	return func(w *World) { w.startID = id }
}

func WithMaskLoader(fn MaskLoader) Option {
	return func(w *World) {
		if fn != nil {
			w.loadMask = fn
		}
	}
}

func WithConfigLoader(fn ConfigLoader) Option {
	return func(w *World) {
		if fn != nil {
			w.loadConfig = fn
		}
	}
}

// LevelState is the live instance of one level. It is rebuilt on every
// level entry.
type LevelState struct {
	Spec     *levels.Level
	Mask     *obj.CollisionMask
	Kin      *obj.Kinematics
	Camera   *obj.Camera
	Players  []*obj.Actor
	Enemy    *obj.Enemy
	Pickups  []*obj.Pickup
	Gate     *obj.Gate
	Rules    *Rules
	Triggers Triggers

	start   time.Duration
	held    []heldDirs
	ruleErr bool
}

// World runs the simulation one tick at a time.
type World struct {
	cfg        Config
	logger     *log.Logger
	mode       Mode
	startID    string
	loadMask   MaskLoader
	loadConfig ConfigLoader
	kinds      map[string]*obj.PickupKind

	Level      *LevelState
	transition *obj.Transition

	now          time.Duration
	relics       int
	enemyPenalty int
	outcome      Outcome
}

// NewWorld builds a world and enters the start level. A level that cannot
// be loaded is returned as an error.
func NewWorld(cfg Config, opts ...Option) (*World, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Viewport.W <= 0 || cfg.Viewport.H <= 0 {
		cfg.Viewport = common.Size{W: common.BaseWidth, H: common.BaseHeight}
	}

	w := &World{
		cfg:        cfg,
		logger:     log.Default(),
		loadMask:   obj.LoadCollisionMask,
		loadConfig: LoadConfig,
		outcome:    Outcome{Running: true},
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.WithPrefix("world")
	w.kinds = cfg.PickupKinds()

	w.transition = obj.NewTransition(cfg.World.TransitionFrames)
	w.transition.OnStart = func(target string) {
		if err := w.enterLevel(target); err != nil {
			w.logger.Error("level load failed", "id", target, "err", err)
		}
	}

	start := w.startID
	if start == "" {
		start = cfg.Levels.Start
	}
	if err := w.enterLevel(start); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *World) Mode() Mode {
	if w == nil {
		return ModeSolo
	}
	return w.mode
}

func (w *World) Outcome() Outcome {
	if w == nil {
		return Outcome{}
	}
	return w.outcome
}

// LevelID returns the id of the current level.
func (w *World) LevelID() string {
	if w == nil || w.Level == nil || w.Level.Spec == nil {
		return ""
	}
	return w.Level.Spec.ID
}

// Relics is the run-wide relic count.
func (w *World) Relics() int {
	if w == nil {
		return 0
	}
	return w.relics
}

// Score is the team total.
func (w *World) Score() int {
	if w == nil || w.Level == nil {
		return 0
	}
	total := 0
	for _, p := range w.Level.Players {
		total += p.Score
	}
	return total
}

func (w *World) enterLevel(id string) error {
	spec, err := w.cfg.Levels.Level(id)
	if err != nil {
		return err
	}
	mask, err := w.loadMask(spec.Mask)
	if err != nil {
		return fmt.Errorf("system: enter level %s: %w", id, err)
	}
	rules, err := CompileRules(w.cfg.Prelude, spec)
	if err != nil {
		return err
	}

	lvl := &LevelState{
		Spec:   spec,
		Mask:   mask,
		Kin:    obj.NewKinematics(w.cfg.Tuning(), float64(spec.Width), spec.KillY),
		Camera: obj.NewCamera(spec.PlatformLine),
		Gate:   obj.NewGate(spec.Door.X, spec.Door.Y, w.cfg.World.DoorFrames, w.cfg.World.DoorFrameTime),
		Rules:  rules,
		start:  w.now,
	}

	var prev []*obj.Actor
	if w.Level != nil {
		prev = w.Level.Players
	}
	ps := w.cfg.Player
	for i := range w.mode.Players() {
		sp := spec.Spawn(i)
		a := obj.NewActor(i, sp.X, int(sp.Y), ps.Width, ps.Height, ps.Health)
		if i < len(prev) {
			a.Health = prev[i].Health
			a.Score = prev[i].Score
		}
		lvl.Players = append(lvl.Players, a)
	}
	lvl.held = make([]heldDirs, len(lvl.Players))

	if spec.Enemy != nil {
		ep := spec.Enemy
		z := obj.Zones{Aggro: ep.Aggro, Disengage: ep.Disengage, PatrolMin: ep.PatrolMin, PatrolMax: ep.PatrolMax}
		e := obj.NewEnemy(ep.Spawn.X, int(ep.Spawn.Y), z, w.cfg.EnemyTuning())
		e.OnTransition = func(from, to obj.EnemyState) {
			w.logger.Debug("enemy state", "from", from, "to", to)
		}
		if w.enemyPenalty > 0 {
			e.ApplyHealth(-w.enemyPenalty)
			w.logger.Info("enemy weakened", "damage", w.enemyPenalty, "health", e.Health)
			w.enemyPenalty = 0
		}
		lvl.Enemy = e
	}

	for i, pp := range spec.Pickups {
		kind, ok := w.kinds[pp.Kind]
		if !ok {
			return fmt.Errorf("system: enter level %s: pickup %d: unknown kind %q", id, i, pp.Kind)
		}
		lvl.Pickups = append(lvl.Pickups, obj.NewPickup(i, kind, pp.X, pp.Y))
	}

	lvl.Gate.Start(0)
	w.Level = lvl
	w.trackCamera()
	w.logger.Info("level loaded", "id", id, "name", spec.Name, "players", len(lvl.Players))
	return nil
}

// levelTime is the clock every per-level timer runs on.
func (w *World) levelTime() time.Duration {
	if w.Level == nil {
		return 0
	}
	return w.now - w.Level.start
}

// Step advances the world to now. Events are the input edges gathered since
// the previous tick.
func (w *World) Step(now, dt time.Duration, events []obj.Event) Outcome {
	if w == nil || w.Level == nil {
		return Outcome{}
	}
	if !w.outcome.Running {
		return w.outcome
	}
	w.now = now

	for _, ev := range events {
		if ev.Action == obj.ActionQuit && ev.Down {
			w.finish(ExitQuit)
			return w.outcome
		}
	}
	w.TrackKeys(events)

	if w.transition.Update() {
		return w.outcome
	}

	lvl := w.Level
	lt := w.levelTime()

	if !lvl.Triggers.GameStarted {
		if !lvl.Gate.Update(lt) {
			w.trackCamera()
			return w.outcome
		}
		lvl.Triggers.GameStarted = true
		w.logger.Debug("gate open", "level", lvl.Spec.ID)
	}

	if lvl.Triggers.QuizPending {
		return w.outcome
	}

	w.applyInput(events, lt)
	w.moveActors(lt, dt)
	w.trackCamera()
	w.updateEnemy(lt)
	w.collectPickups(lt)
	w.checkBoss()

	if w.allDead() {
		lvl.Triggers.Lost = true
		w.finish(ExitAllDead)
		return w.outcome
	}

	w.evaluateRules()
	return w.outcome
}

func (w *World) finish(reason ExitReason) {
	if !w.outcome.Running {
		return
	}
	w.outcome = Outcome{Running: false, Reason: reason}
	w.logger.Info("run finished", "reason", reason, "score", w.Score(), "relics", w.relics)
}

func (w *World) applyInput(events []obj.Event, lt time.Duration) {
	lvl := w.Level
	kin := lvl.Kin
	for _, ev := range events {
		for i, p := range lvl.Players {
			if !ev.Applies(i) || !p.Alive() {
				continue
			}
			switch ev.Action {
			case obj.ActionJump:
				if ev.Down {
					kin.Jump(p)
				}
			case obj.ActionAttack:
				if ev.Down && kin.StartAttack(p, lt) {
					w.logger.Debug("attack", "player", i)
				}
			case obj.ActionShield:
				if ev.Down && !p.Shielded(lt, w.cfg.shieldDuration()) {
					p.ActivateShield(lt)
					w.logger.Info("shield up", "player", i)
				}
			case obj.ActionGuide:
				if ev.Down {
					p.ToggleGuide()
				}
			}
		}
	}

	// Held direction keys take effect again once an attack ends.
	for i, p := range lvl.Players {
		if dir := lvl.held[i].dir(); dir != 0 && p.Alive() && p.Status != obj.Attacking {
			kin.SetMove(p, dir, p.Sprint)
		}
	}
}

func (w *World) moveActors(lt, dt time.Duration) {
	lvl := w.Level
	cooldown := w.cfg.hazardCooldown()
	for i, p := range lvl.Players {
		if !p.Alive() {
			continue
		}
		res := lvl.Kin.Step(p, lvl.Mask, lt, dt)
		if res.FellOffWorld {
			lvl.held[i].clear()
			w.logger.Info("fell off world", "player", i, "health", p.Health)
			continue
		}
		if res.HazardHit && p.HazardReady(lt, cooldown) {
			p.MarkHazard(lt)
			lvl.Kin.DeathReset(p)
			lvl.held[i].clear()
			w.logger.Info("hazard", "player", i, "health", p.Health)
		}
	}
}

// trackCamera follows the first living player, or the first player when
// everyone is dead.
func (w *World) trackCamera() {
	lvl := w.Level
	if lvl == nil || len(lvl.Players) == 0 {
		return
	}
	target := lvl.Players[0]
	for _, p := range lvl.Players {
		if p.Alive() {
			target = p
			break
		}
	}
	world := common.Size{W: float64(lvl.Spec.Width), H: float64(lvl.Spec.Height)}
	lvl.Camera.Update(target.CenterX(), w.cfg.Viewport, world)
}

func (w *World) allDead() bool {
	for _, p := range w.Level.Players {
		if p.Alive() {
			return false
		}
	}
	return true
}

func (w *World) ruleVars() RuleVars {
	lvl := w.Level
	v := RuleVars{
		Level:       lvl.Spec.ID,
		Score:       w.Score(),
		EnemyAlive:  lvl.Enemy.Alive(),
		WorldWidth:  float64(lvl.Spec.Width),
		PlayerWidth: float64(w.cfg.Player.Width),
		Relics:      w.relics,
		QuizPassed:  lvl.Triggers.QuizPassed,
	}
	for _, p := range lvl.Players {
		if p.Alive() && p.X > v.PlayerX {
			v.PlayerX = p.X
		}
	}
	return v
}

func (w *World) evaluateRules() {
	lvl := w.Level
	if lvl.Triggers.Finished() || lvl.Triggers.LevelComplete || w.transition.Active {
		return
	}
	advance, win, err := lvl.Rules.Evaluate(w.ruleVars())
	if err != nil {
		if !lvl.ruleErr {
			w.logger.Warn("rule failed", "level", lvl.Spec.ID, "err", err)
			lvl.ruleErr = true
		}
	}
	if win {
		lvl.Triggers.Won = true
		w.finish(ExitWon)
		return
	}
	if advance && lvl.Spec.Next != "" {
		lvl.Triggers.LevelComplete = true
		w.logger.Info("level complete", "id", lvl.Spec.ID, "next", lvl.Spec.Next)
		w.transition.Enter(lvl.Spec.Next)
	}
}

// Fade is the opacity of the level transition overlay.
func (w *World) Fade() float64 {
	if w == nil {
		return 0
	}
	return w.transition.Alpha()
}

// ResolveQuiz applies the boss quiz result. It does nothing unless a quiz is
// pending.
func (w *World) ResolveQuiz(passed bool) {
	if w == nil || w.Level == nil || !w.Level.Triggers.QuizPending {
		return
	}
	t := &w.Level.Triggers
	t.QuizPending = false
	t.QuizResolved = true
	t.QuizPassed = passed

	q := w.cfg.World.Quiz
	if passed {
		for _, p := range w.Level.Players {
			if p.Alive() {
				p.Score += q.PassScore
				break
			}
		}
		w.enemyPenalty += q.PassEnemyDamage
	} else {
		for _, p := range w.Level.Players {
			if p.Alive() {
				p.ApplyHealth(-q.FailDamage)
			}
		}
	}
	w.logger.Info("quiz resolved", "passed", passed, "score", w.Score())
}

// Reload re-reads the tuning and the level table. On failure the current
// configuration is kept. The live mask is never replaced.
func (w *World) Reload() error {
	if w == nil {
		return nil
	}
	cfg, err := w.loadConfig()
	if err == nil {
		err = cfg.validate()
	}
	if err != nil {
		w.logger.Warn("reload failed", "err", err)
		return err
	}
	cfg.Viewport = w.cfg.Viewport

	lvl := w.Level
	var spec *levels.Level
	var rules *Rules
	if lvl != nil {
		if spec, err = cfg.Levels.Level(lvl.Spec.ID); err == nil {
			rules, err = CompileRules(cfg.Prelude, spec)
		}
		if err != nil {
			w.logger.Warn("reload failed", "err", err)
			return err
		}
	}

	w.cfg = cfg
	for name, k := range cfg.PickupKinds() {
		if cur, ok := w.kinds[name]; ok {
			*cur = *k
		} else {
			w.kinds[name] = k
		}
	}

	if lvl != nil {
		lvl.Kin.Tuning = cfg.Tuning()
		lvl.Kin.KillY = spec.KillY
		lvl.Camera.PlatformLine = spec.PlatformLine
		lvl.Rules = rules
		lvl.ruleErr = false
		if lvl.Enemy != nil {
			lvl.Enemy.SetTuning(cfg.EnemyTuning())
			if ep := spec.Enemy; ep != nil {
				lvl.Enemy.Zones = obj.Zones{Aggro: ep.Aggro, Disengage: ep.Disengage, PatrolMin: ep.PatrolMin, PatrolMax: ep.PatrolMax}
			}
		}
		lvl.Spec.AdvanceWhen = spec.AdvanceWhen
		lvl.Spec.WinWhen = spec.WinWhen
		lvl.Spec.Next = spec.Next
		lvl.Spec.BossX = spec.BossX
	}
	w.logger.Info("config reloaded")
	return nil
}
