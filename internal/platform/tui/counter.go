package tui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scoreEaseSeconds is how long the footer takes to catch up with a new score.
const scoreEaseSeconds = 0.4

// ScoreCounter eases the displayed score toward the real one so apples and
// level bonuses roll up instead of jumping.
type ScoreCounter struct {
	tween  *gween.Tween
	shown  float32
	target int
}

// Set starts easing toward score. Resetting to a lower score snaps.
func (c *ScoreCounter) Set(score int) {
	if score == c.target {
		return
	}
	if score < c.target {
		c.tween = nil
		c.shown = float32(score)
		c.target = score
		return
	}
	c.tween = gween.New(c.shown, float32(score), scoreEaseSeconds, ease.OutQuad)
	c.target = score
}

// Update advances the easing by dt seconds.
func (c *ScoreCounter) Update(dt float32) {
	if c.tween == nil {
		return
	}
	v, done := c.tween.Update(dt)
	c.shown = v
	if done {
		c.tween = nil
		c.shown = float32(c.target)
	}
}

// Value returns the score to display.
func (c *ScoreCounter) Value() int {
	return int(math.Round(float64(c.shown)))
}

var (
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)
	footerHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// renderFooter draws the one-line status bar under the playfield.
func renderFooter(title string, score, level, width int) string {
	left := footerStyle.Render(fmt.Sprintf(" %s  Score %d  Level %d ", title, score, level))
	hint := footerHintStyle.Render(" ←/→ steer  enter pause/restart  b back  q quit")
	line := lipgloss.JoinHorizontal(lipgloss.Top, left, hint)
	if width > 0 {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}
