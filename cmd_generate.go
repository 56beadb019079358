package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ebiten-platformer/generation"
	"ebiten-platformer/level"
	"ebiten-platformer/preview"
)

var (
	flagGenWidth  int
	flagGenHeight int
	flagGenSeed   int64
	flagGenName   string
	flagGenOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random level",
	Long: `Generate a random level with rolling terrain, caves and floating platforms.
Without --output the level YAML is printed to stdout.

Examples:
  platformer generate --seed 7
  platformer generate --width 128 --height 20 --name Caverns -o levels/caverns.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := generation.NewLevelGenerator()
		if cmd.Flags().Changed("seed") {
			gen.SetSeed(flagGenSeed)
		}

		def, err := gen.Generate(generation.Options{
			Name:   flagGenName,
			Width:  flagGenWidth,
			Height: flagGenHeight,
		})
		if err != nil {
			return err
		}

		if flagGenOutput == "" {
			data, err := level.Marshal(def)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		if err := level.SaveFile(flagGenOutput, def); err != nil {
			return err
		}
		logger.Info("level written", "path", flagGenOutput)
		fmt.Fprintln(cmd.OutOrStdout(), preview.Summary(def))
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&flagGenWidth, "width", 98, fmt.Sprintf("Level width in tiles (%d-%d)", generation.MinWidth, generation.MaxWidth))
	generateCmd.Flags().IntVar(&flagGenHeight, "height", 22, fmt.Sprintf("Level height in tiles (%d-%d)", generation.MinHeight, generation.MaxHeight))
	generateCmd.Flags().Int64Var(&flagGenSeed, "seed", 0, "Random seed (default: time based)")
	generateCmd.Flags().StringVar(&flagGenName, "name", "", "Level name (default: generated)")
	generateCmd.Flags().StringVarP(&flagGenOutput, "output", "o", "", "Write the level to this file")
}
