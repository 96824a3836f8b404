package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyVeryEasy DifficultyPreset = "very_easy"
	DifficultyEasy     DifficultyPreset = "easy"
	DifficultyMedium   DifficultyPreset = "medium"
	DifficultyHard     DifficultyPreset = "hard"
)

// Presets lists the difficulties from easiest to hardest.
var Presets = []DifficultyPreset{
	DifficultyVeryEasy,
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
}

// Index returns the preset's position in Presets, or -1 if unknown.
func (p DifficultyPreset) Index() int {
	for i, preset := range Presets {
		if preset == p {
			return i
		}
	}
	return -1
}

// Title returns the menu label for the preset.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyVeryEasy:
		return "Very Easy"
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return string(p)
	}
}

// PartsPerFrame returns the worm speed for the preset: one sub-step plus
// one per difficulty index.
func (p DifficultyPreset) PartsPerFrame() int {
	idx := p.Index()
	if idx < 0 {
		idx = 0
	}
	return 1 + idx
}

// ParsePreset accepts preset names case-insensitively, with '-' or ' ' in
// place of '_'. An empty string selects the easiest preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyVeryEasy, nil
	}
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	p := DifficultyPreset(norm)
	if p.Index() < 0 {
		return "", fmt.Errorf("config: unknown difficulty %q (want one of very_easy, easy, medium, hard)", s)
	}
	return p, nil
}

// ApplyWormPreset modifies the config based on a difficulty preset.
func ApplyWormPreset(cfg *WormConfig, preset DifficultyPreset) {
	cfg.PartsPerFrame = preset.PartsPerFrame()
}
