package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ebiten-platformer/config"
	"ebiten-platformer/level"
	"ebiten-platformer/preview"
)

var flagPlain bool

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a level to the terminal",
	Long: `Print a level to the terminal using the configured palette.
The player spawn is marked with @.

Examples:
  platformer preview
  platformer preview --level levels/pocket.yaml --plain`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		def, err := level.LoadOrDefault(flagLevel)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, preview.Summary(def))
		fmt.Fprint(out, preview.New(nil, cfg.Palette, flagPlain).Render(def))
		return nil
	},
}

func init() {
	previewCmd.Flags().StringVar(&flagLevel, "level", "", "Path to a level YAML file (default: built-in level)")
	previewCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a config YAML file")
	previewCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain characters without colors")
}
