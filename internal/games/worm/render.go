package worm

import (
	"fmt"

	"github.com/vovakirdan/tui-worm/internal/core"
)

// Smallest terminal the world can be squeezed into.
const (
	minScreenW = 40
	minScreenH = 15
)

// Render draws the current frame into dst, scaling world space to cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	view := newViewport(g.cfg.World.Width, g.cfg.World.Height, dst.Width(), dst.Height())
	snap := g.Snapshot()

	g.renderArena(dst, view, snap)
	if snap.AppleVisible {
		x, y := view.cell(snap.Apple)
		dst.SetColored(x, y, '●', core.ColorRed)
	}
	g.renderWorm(dst, view, snap)
	g.renderHUD(dst, view, snap)

	switch {
	case snap.Status == StatusEmpty:
		g.renderOverlay(dst, "Crashed!", "Press Enter to restart")
	case snap.Status == StatusLevelComplete:
		g.renderOverlay(dst, fmt.Sprintf("Level %d complete!", snap.Level), "Get ready...")
	case snap.Paused:
		g.renderOverlay(dst, "Paused", "Press Enter to continue")
	}
}

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(worldW, worldH float64, w, h int) viewport {
	return viewport{sx: float64(w) / worldW, sy: float64(h) / worldH, w: w, h: h}
}

func (v viewport) cell(p core.Vec) (int, int) {
	x := core.Clamp(int(p.X*v.sx), 0, v.w-1)
	y := core.Clamp(int(p.Y*v.sy), 0, v.h-1)
	return x, y
}

func (g *Game) renderArena(dst *core.Screen, view viewport, snap Snapshot) {
	x0, y0 := view.cell(core.Vec{X: snap.Arena.Left, Y: snap.Arena.Top})
	x1, y1 := view.cell(core.Vec{X: snap.Arena.Right, Y: snap.Arena.Bottom})
	dst.DrawBox(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), core.ColorGray)

	if !snap.ExitVisible {
		return
	}
	ex0, _ := view.cell(core.Vec{X: snap.Exit.Left, Y: snap.Exit.Top})
	ex1, _ := view.cell(core.Vec{X: snap.Exit.Right, Y: snap.Exit.Top})
	for x := ex0; x <= ex1; x++ {
		dst.SetColored(x, y0, '▲', core.ColorBrightYellow)
	}
}

func (g *Game) renderWorm(dst *core.Screen, view viewport, snap Snapshot) {
	body, head := core.ColorGreen, core.ColorBrightGreen
	if snap.Status == StatusCrashed || snap.Status == StatusEmpty {
		body, head = core.ColorRed, core.ColorBrightRed
	}
	for i, seg := range snap.Segments {
		x, y := view.cell(seg)
		if i == len(snap.Segments)-1 {
			dst.SetColored(x, y, '@', head)
		} else {
			dst.SetColored(x, y, 'o', body)
		}
	}
}

// renderHUD draws level and score in the band below the arena.
func (g *Game) renderHUD(dst *core.Screen, view viewport, snap Snapshot) {
	_, y := view.cell(core.Vec{Y: snap.Arena.Bottom})
	y += 2
	if y >= dst.Height() {
		y = dst.Height() - 1
	}
	hud := fmt.Sprintf(" Level: %d   Score: %d   Length: %d/%d",
		snap.Level, snap.Score, len(snap.Segments), snap.RequiredLength)
	dst.DrawTextColored(0, y, hud, core.ColorWhite)
	if snap.ExitVisible && snap.Status == StatusRunning {
		dst.DrawTextColored(len([]rune(hud))+3, y, "Exit open!", core.ColorBrightYellow)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		dst.DrawHLine(boxX+1, y, boxW-2, ' ', core.ColorDefault)
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)
	dst.DrawTextCentered(boxY+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+3, line2, core.ColorGray)
}
