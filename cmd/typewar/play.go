package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/typewar/internal/audio"
	"github.com/vovakirdan/typewar/internal/config"
	"github.com/vovakirdan/typewar/internal/core"
	"github.com/vovakirdan/typewar/internal/games/typewar"
	"github.com/vovakirdan/typewar/internal/platform/tui"
	"github.com/vovakirdan/typewar/internal/words"
)

var (
	flagSpeed      float64
	flagHP         int
	flagFreq       int
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagInput      string
	flagSound      bool
	flagLogFile    string
)

func init() {
	f := rootCmd.Flags()
	f.Float64VarP(&flagSpeed, "speed", "s", 20.0, "Glyph speed in px/s")
	f.IntVar(&flagHP, "hp", 100, "Initial hit points")
	f.IntVar(&flagFreq, "freq", 3000, "Spawn period in milliseconds")
	f.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	f.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	f.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	f.StringVar(&flagInput, "input", "auto", "Input mode: auto, direct, line")
	f.BoolVar(&flagSound, "sound", false, "Play sound cues")
	f.StringVar(&flagLogFile, "log-file", "", "Write a session log to this file")
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "typewar",
	})
}

// loadWordList returns the configured word list, or nil to sample hanzi.
func loadWordList(logger *log.Logger) []string {
	if flagFile == "" {
		return nil
	}
	list, err := words.LoadFile(flagFile)
	if err != nil {
		logger.Warn("word list unusable, sampling hanzi instead", "file", flagFile, "err", err)
		return nil
	}
	logger.Debug("word list loaded", "file", flagFile, "words", len(list))
	return list
}

// loadConfig resolves the game config: file, then preset, then explicit flags.
func loadConfig(cmd *cobra.Command) (config.TypewarConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	flags := cmd.Flags()
	if flags.Changed("speed") {
		cfg.Gameplay.Speed = flagSpeed
	}
	if flags.Changed("hp") {
		cfg.Gameplay.HitPoints = flagHP
	}
	if flags.Changed("freq") {
		cfg.Gameplay.SpawnPeriodMs = flagFreq
	}
	if flags.Changed("fps") {
		cfg.Gameplay.TickRate = flagFPS
	}

	return cfg, cfg.Validate()
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr)

	mode, err := tui.ParseInputMode(flagInput)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("typewar: stdout is not a terminal")
	}

	wordList := loadWordList(logger)
	mode = mode.Resolve(wordList != nil)

	// Get terminal size early; the first WindowSizeMsg corrects it anyway
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = cfg.Gameplay.TickRate
	rt.Seed = flagSeed

	// The alt screen owns the terminal during the session
	sessionLog := newLogger(io.Discard)
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if openErr != nil {
			return fmt.Errorf("typewar: open log file: %w", openErr)
		}
		defer f.Close()
		sessionLog = newLogger(f)
		sessionLog.SetLevel(log.DebugLevel)
	}

	player := audio.NewPlayer()
	if flagSound {
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable, playing silently", "err", err)
		}
	}
	defer player.Close()

	game := typewar.New(cfg, wordList)
	final, runErr := tui.Run(game, tui.Options{
		Runtime:     rt,
		SpawnPeriod: time.Duration(cfg.Gameplay.SpawnPeriodMs) * time.Millisecond,
		Mode:        mode,
		Logger:      sessionLog,
		Feedback:    player,
	})
	if runErr != nil {
		return fmt.Errorf("typewar: %w", runErr)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Score: %d  Missed: %d  Accuracy: %.0f%%\n",
		final.Score, game.Missed(), game.Accuracy()*100)
	return nil
}
