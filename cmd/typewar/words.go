package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typewar/internal/words"
)

var (
	flagCount int
	flagCodes bool
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Print sample words from the word source",
	Long: `Print words drawn the same way the game draws them: from the word list
when --file is given, otherwise random traditional hanzi.

Examples:
  typewar words
  typewar words -n 50 --codes
  typewar words -i words.txt --seed 7`,
	Args: cobra.NoArgs,
	RunE: runWords,
}

func init() {
	wordsCmd.Flags().IntVarP(&flagCount, "count", "n", 10, "Number of words to print")
	wordsCmd.Flags().BoolVar(&flagCodes, "codes", false, "Show the EUC-TW bytes of each glyph")
}

func runWords(cmd *cobra.Command, _ []string) error {
	if flagCount < 0 {
		return fmt.Errorf("typewar: count must not be negative, got %d", flagCount)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := words.New(loadWordList(newLogger(os.Stderr)), rand.New(rand.NewSource(seed)))

	out := cmd.OutOrStdout()
	for i := 0; i < flagCount; i++ {
		w := src.Next()
		if !flagCodes {
			fmt.Fprintln(out, w)
			continue
		}
		code, err := words.EncodeEUCTW(w)
		if err != nil {
			fmt.Fprintf(out, "%-11s\t%s\n", "-", w)
			continue
		}
		fmt.Fprintf(out, "% X\t%s\n", code, w)
	}
	return nil
}
