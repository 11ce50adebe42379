// maskview shows a level's collision mask with its table entries drawn on
// top, for checking spawns, zones and pickups while authoring levels.
//
// Controls: Left/Right or A/D scroll, Shift scrolls faster, C copies the
// world position under the cursor to the clipboard, Esc quits.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"golang.design/x/clipboard"

	"github.com/milk9111/relicrun/common"
	"github.com/milk9111/relicrun/levels"
	"github.com/milk9111/relicrun/obj"
	"github.com/milk9111/relicrun/prefabs"
)

var (
	flagLevel string
	flagScale float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "maskview",
	Short:        "Inspect a level's collision mask and table entries",
	Args:         cobra.NoArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Level id (default: the table's start level)")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "maskview"})

	table, err := levels.LoadTable()
	if err != nil {
		return err
	}
	id := flagLevel
	if id == "" {
		id = table.Start
	}
	lvl, err := table.Level(id)
	if err != nil {
		return err
	}
	mask, err := obj.LoadCollisionMask(lvl.Mask)
	if err != nil {
		return err
	}
	if mask.Width() != lvl.Width || mask.Height() != lvl.Height {
		logger.Warn("mask size differs from table", "mask", fmt.Sprintf("%dx%d", mask.Width(), mask.Height()), "table", fmt.Sprintf("%dx%d", lvl.Width, lvl.Height))
	}

	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}

	v := newViewer(lvl, mask, player)
	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard unavailable", "err", err)
	} else {
		v.copy = func(s string) { clipboard.Write(clipboard.FmtText, []byte(s)) }
	}
	v.logger = logger

	scale := max(flagScale, 0.25)
	ebiten.SetWindowSize(int(common.BaseWidth*scale), int(common.BaseHeight*scale))
	ebiten.SetWindowTitle(fmt.Sprintf("maskview - level %s", lvl.ID))
	return ebiten.RunGame(v)
}
