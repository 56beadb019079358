package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"ebiten-platformer/config"
	"ebiten-platformer/level"
)

var (
	flagLevel      string
	flagConfig     string
	flagTrace      string
	flagFullscreen bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window and play a level.

Controls:
  Arrow keys / WASD  - Move
  F1                 - Toggle debug overlay
  Esc                - Close overlay, then quit

Examples:
  platformer play
  platformer play --level levels/pocket.yaml
  platformer play --trace run.csv`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Path to a level YAML file (default: built-in level)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a config YAML file")
	playCmd.Flags().StringVar(&flagTrace, "trace", "", "Write a per-frame CSV trace to this file")
	playCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen mode")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagFullscreen {
		cfg.Window.Fullscreen = true
	}

	def, err := level.LoadOrDefault(flagLevel)
	if err != nil {
		return err
	}

	var trace io.Writer
	if flagTrace != "" {
		f, err := os.Create(flagTrace)
		if err != nil {
			return fmt.Errorf("create trace: %w", err)
		}
		defer f.Close()
		trace = f
	}

	game, err := NewGame(cfg, def, trace, logger)
	if err != nil {
		return err
	}

	windowWidth, windowHeight := cfg.WindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(cfg.Window.TPS)

	runErr := ebiten.RunGame(game)
	if err := game.Close(); err != nil {
		logger.Warn("could not flush trace", "err", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return runErr
	}
	logger.Debug("window closed")
	return nil
}
