// typewar is a terminal typing trainer: glyphs close in on a target at the
// center of the screen and typing a glyph destroys it.
//
// Usage:
//
//	typewar                  - Play with random traditional hanzi
//	typewar -i words.txt     - Play with words from a file
//	typewar words -n 20      - Print sample words without playing
//
// Global flags:
//
//	--file, -i <path>  - Word list (whitespace separated)
//	--seed <value>     - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFile string
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "typewar",
	Short: "Type War - destroy incoming glyphs by typing them",
	Long: `Type War is a typing trainer for the terminal. Glyphs spawn on a ring
around the screen and drift toward the target in the middle. Type a glyph
to destroy it; every glyph that reaches the target costs one hit point.

Without a word list the glyphs are random traditional Chinese characters.

Controls:
  Ctrl+P     - Pause
  Ctrl+R     - Restart (after game over)
  Ctrl+C     - Quit
  Enter/Space - Fire the typed word (line input)
  Esc        - Clear the typed word (line input)

Difficulty options:
  easy   - 150 HP, speed x0.75, spawn period x1.25, speeds up with score
  normal - Config values as is
  hard   - 50 HP, speed x1.5, spawn period x0.75, speeds up with score
  fixed  - No speed progression

Explicit --speed, --hp, --freq and --fps values win over the preset.

Examples:
  typewar
  typewar -i words.txt --input line
  typewar --speed 40 --freq 2000 --hp 20
  typewar --difficulty hard --sound
  typewar words -n 10 --codes`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "i", "", "Word list file (default: random hanzi)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(wordsCmd)
}
