package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/Dhaizei/trae-solo-plane-war/internal/asset"
	"github.com/Dhaizei/trae-solo-plane-war/internal/audio"
	"github.com/Dhaizei/trae-solo-plane-war/internal/core"
	"github.com/Dhaizei/trae-solo-plane-war/internal/game/planewar"
	"github.com/Dhaizei/trae-solo-plane-war/internal/platform/tui"
	"github.com/Dhaizei/trae-solo-plane-war/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagAssets     string
	flagSounds     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD - Move ship
  Space       - Fire (also starts and restarts the game)
  P           - Pause
  R           - Restart (after game over)
  Esc/Q       - Quit

Difficulty presets:
  easy   - More lives, slower enemy waves
  normal - Default balance
  hard   - Fewer lives, faster and denser waves
  fixed  - No difficulty progression

Examples:
  planewar play
  planewar play --difficulty hard
  planewar play --config ./my-planewar.yaml
  planewar play --assets ./sprites --sounds ./sounds
  planewar play --seed 12345 --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd.Flags())
}

// addPlayFlags registers the play flags on the given flag set, so they work
// both on 'planewar play' and on the bare 'planewar' invocation.
func addPlayFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	fs.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	fs.BoolVar(&flagMute, "mute", false, "Disable sound")
	fs.StringVar(&flagAssets, "assets", "", "Directory with sprite .txt files (built-in art if missing)")
	fs.StringVar(&flagSounds, "sounds", "", "Directory with .wav sound files (generated sounds if missing)")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "planewar"})

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	planewar.SetConfigPath(flagConfig)
	planewar.SetDifficultyPreset(flagDifficulty)

	// Load sprite art; missing files fall back to the built-in placeholders
	sprites := asset.Load(flagAssets, logger)

	game := planewar.New()
	game.SetSprites(sprites)

	// Set up sound; failures leave the game silent but playable
	sound := audio.NewManager(logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("Sound unavailable, continuing silent", "error", err)
		sound = nil
	} else {
		sound.SetMuted(flagMute)
		sound.LoadDir(flagSounds)
		defer sound.Cleanup()
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("Could not open scores database, scores will not be saved", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, sound, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
