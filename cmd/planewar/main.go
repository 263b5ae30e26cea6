// planewar is a terminal arcade shooter: pilot a ship at the bottom of the
// screen and shoot down the descending enemy planes.
//
// Usage:
//
//	planewar                 - Play (same as 'planewar play')
//	planewar play            - Play the game
//	planewar scores          - Show high scores
//	planewar serve           - Start SSH server for remote play
//	planewar version         - Show version
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.planewar/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "planewar",
	Short: "Plane War - a terminal shoot-em-up",
	Long: `Plane War is a terminal arcade shooter. Pilot your ship at the
bottom of the screen, dodge the descending enemy planes and shoot
them down before they reach you.

Available commands:
  play     - Play the game (default when no command is given)
  scores   - View high scores
  serve    - Start SSH server for remote play
  version  - Show version

Examples:
  planewar
  planewar play --difficulty hard
  planewar play --seed 12345 --mute
  planewar scores
  planewar serve --ssh :2222`,
	Run: runPlay,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("planewar %s\n", version)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.planewar/scores.db", "Path to scores database")

	// Play flags also apply to the bare root invocation
	addPlayFlags(rootCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
