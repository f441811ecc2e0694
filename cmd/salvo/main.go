// salvo is a terminal battleship game: you against a random-firing computer
// on 10x10 grids.
//
// Usage:
//
//	salvo play               - Play a game in the local terminal
//	salvo serve              - Start SSH server for remote play
//	salvo stats              - Show aggregate win/loss statistics
//	salvo history            - Browse recent match results
//
// Global flags:
//
//	--seed <value>   - RNG seed for reproducible fleet placement
//	--db <path>      - Results database path
//	--config <path>  - Config file path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akulikov/salvo/internal/config"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "salvo",
	Short: "Salvo - Battleship in your terminal",
	Long: `Salvo is a terminal battleship game. A fixed fleet (5, 4, 3, 3, 2)
is placed randomly on two 10x10 boards; you and a random-firing computer
take turns until one fleet is sunk.

Available commands:
  play     - Play a game in the local terminal
  serve    - Start SSH server for remote play
  stats    - Show aggregate win/loss statistics
  history  - Browse recent match results

Examples:
  salvo play
  salvo play --seed 42
  salvo serve --ssh :2222
  salvo stats`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg, nil
}
