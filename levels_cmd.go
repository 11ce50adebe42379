package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/relicrun/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level table",
	Long:  `Shows every level with its world size, spawn and enemy zones.`,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	table, err := levels.LoadTable()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-4s  %-16s  %-9s  %-11s  %-9s  %-9s  %s\n", "ID", "Name", "World", "Spawn", "Aggro", "Disengage", "Next")
	fmt.Fprintf(out, "  %-4s  %-16s  %-9s  %-11s  %-9s  %-9s  %s\n", "--", "----", "-----", "-----", "-----", "---------", "----")
	for _, id := range table.IDs() {
		l := table.Levels[id]
		sp := l.Spawn(0)
		aggro, disengage := "-", "-"
		if l.Enemy != nil {
			aggro = fmt.Sprintf("%.0f", l.Enemy.Aggro)
			disengage = fmt.Sprintf("%.0f", l.Enemy.Disengage)
		}
		next := l.Next
		if next == "" {
			next = "-"
		}
		fmt.Fprintf(out, "  %-4s  %-16s  %-9s  %-11s  %-9s  %-9s  %s\n",
			id, l.Name, fmt.Sprintf("%dx%d", l.Width, l.Height),
			fmt.Sprintf("(%.0f,%.0f)", sp.X, sp.Y), aggro, disengage, next)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Start level: %s. Run 'relicrun play --level <id>' to start elsewhere.\n", table.Start)
	return nil
}
