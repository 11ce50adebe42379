package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/relicrun/common"
	"github.com/milk9111/relicrun/prefabs"
	"github.com/milk9111/relicrun/system"
)

var (
	flagLevel       string
	flagMode        string
	flagDebug       bool
	flagAutoQuiz    string
	flagWatch       bool
	flagBaseMonitor bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run from the start level, or from --level.

Controls:
  Left/Right, Up    - Move, jump (player 1)
  A/D, W            - Move, jump (player 2 in duo mode)
  Shift             - Sprint
  Mouse             - Attack
  P                 - Shield
  G                 - Toggle the controls guide
  Tab               - Pause
  Esc               - Quit

Examples:
  relicrun play
  relicrun play --mode duo
  relicrun play --level 2 --auto-quiz pass
  relicrun play --watch --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level id to start on (default: the table's start level)")
	playCmd.Flags().StringVar(&flagMode, "mode", "solo", "Player mode: solo or duo")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Draw debug overlays")
	playCmd.Flags().StringVar(&flagAutoQuiz, "auto-quiz", "", "Resolve the boss quiz without asking: pass or fail")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload prefabs and the level table when they change on disk")
	playCmd.Flags().BoolVarP(&flagBaseMonitor, "base-monitor", "m", false, "Use the first monitor instead of the primary one")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	mode, err := system.ParseMode(flagMode)
	if err != nil {
		return err
	}

	var autoQuiz *bool
	switch flagAutoQuiz {
	case "":
	case "pass", "fail":
		passed := flagAutoQuiz == "pass"
		autoQuiz = &passed
	default:
		return fmt.Errorf("relicrun: --auto-quiz must be pass or fail, got %q", flagAutoQuiz)
	}

	cfg, err := system.LoadConfig()
	if err != nil {
		return err
	}

	world, err := system.NewWorld(cfg,
		system.WithLogger(logger),
		system.WithMode(mode),
		system.WithStartLevel(flagLevel),
	)
	if err != nil {
		return err
	}

	game := NewGame(world, system.NewRenderer(cfg), mode, logger)
	game.debug = flagDebug
	game.autoQuiz = autoQuiz

	if flagWatch {
		dirs := existingDirs("prefabs", "prefabs/scripts", "levels", "assets")
		w, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			logger.Warn("watch disabled", "err", err)
		} else {
			defer w.Close()
			game.watcher = w
			logger.Info("watching", "dirs", dirs)
		}
	}

	if flagBaseMonitor {
		if monitors := ebiten.AppendMonitors(nil); len(monitors) > 0 {
			ebiten.SetMonitor(monitors[0])
		}
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("relicrun")

	logger.Info("starting", "mode", mode, "level", world.LevelID())
	if err := ebiten.RunGame(game); err != nil {
		return err
	}
	out := world.Outcome()
	logger.Info("game over", "reason", out.Reason, "score", world.Score(), "relics", world.Relics())
	return nil
}

func existingDirs(dirs ...string) []string {
	var out []string
	for _, d := range dirs {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			out = append(out, d)
		}
	}
	return out
}
