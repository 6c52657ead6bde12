package main

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

func TestLoadConfigFlagOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	if err := rootCmd.ParseFlags([]string{"--hp", "7", "--speed", "55", "--difficulty", "hard"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	t.Cleanup(func() {
		flagDifficulty = ""
		rootCmd.Flags().Lookup("hp").Changed = false
		rootCmd.Flags().Lookup("speed").Changed = false
		rootCmd.Flags().Lookup("difficulty").Changed = false
	})

	cfg, err := loadConfig(rootCmd)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	// Explicit flags win over the preset.
	if cfg.Gameplay.HitPoints != 7 {
		t.Errorf("HitPoints = %d, expected 7", cfg.Gameplay.HitPoints)
	}
	if cfg.Gameplay.Speed != 55 {
		t.Errorf("Speed = %g, expected 55", cfg.Gameplay.Speed)
	}
	// Untouched values follow the preset.
	if cfg.Gameplay.SpawnPeriodMs != 2250 {
		t.Errorf("SpawnPeriodMs = %d, expected 2250", cfg.Gameplay.SpawnPeriodMs)
	}
}

func TestWordsCommand(t *testing.T) {
	var out bytes.Buffer
	wordsCmd.SetOut(&out)
	flagCount, flagCodes, flagSeed, flagFile = 5, true, 42, ""
	t.Cleanup(func() {
		flagCount, flagCodes, flagSeed = 10, false, 0
		wordsCmd.SetOut(nil)
	})

	if err := runWords(wordsCmd, nil); err != nil {
		t.Fatalf("runWords() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("printed %d lines, expected 5", len(lines))
	}
	line := regexp.MustCompile(`^8E A1 [C-F][0-9A-F] [A-F][0-9A-F]\t\S+$`)
	for _, l := range lines {
		if !line.MatchString(l) {
			t.Errorf("line %q does not look like an EUC-TW code and glyph", l)
		}
	}
}
