package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ebiten-platformer/level"
	"ebiten-platformer/preview"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [dir]",
	Short: "List level files",
	Long: `List the level files in a directory (default: ./levels).
Files that fail to load are reported as warnings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "levels"
		if len(args) == 1 {
			dir = args[0]
		}

		defs, problems, err := level.LoadDir(dir)
		if err != nil {
			return err
		}
		for _, problem := range problems {
			logger.Warn("skipping level", "err", problem)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "built-in: %s\n", preview.Summary(level.Default()))
		for _, def := range defs {
			fmt.Fprintf(out, "%s: %s\n", def.Path, preview.Summary(def))
		}
		return nil
	},
}
