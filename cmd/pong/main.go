// pong is Pong against a CPU paddle, in the terminal or in a window.
//
// Usage:
//
//	pong list              - List game variants
//	pong play [variant]    - Play in the terminal
//	pong menu              - Pick a variant and difficulty interactively
//	pong window [variant]  - Play in a desktop window
//	pong config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Use a custom config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn or error
//	--log-file <path>      - Log destination (terminal default: ~/.arcade/pong.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/retro-pong/internal/games/pong"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong against the CPU",
	Long: `Pong against a CPU paddle. You play the left paddle; the first side to
reach the winning score takes the match.

Available commands:
  list     - Show the game variants
  play     - Play in the terminal
  menu     - Interactive variant and difficulty picker
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  pong play
  pong play pong_retro --difficulty hard
  pong window --seed 42
  pong config > ~/.arcade/configs/pong.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: ~/.arcade/pong.log in the terminal, stderr in a window)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
