package tui

import (
	"fmt"

	"github.com/vovakirdan/gravity-dodge/internal/core"
	"github.com/vovakirdan/gravity-dodge/internal/dodge"
)

// HUD is the terminal score line and overlay panels. It implements
// dodge.Display and draws on top of the rendered world.
type HUD struct {
	dodge.DisplayState
}

// Draw writes the score line and any visible panel onto the screen.
func (h *HUD) Draw(s *core.Screen) {
	s.DrawText(1, 0, fmt.Sprintf("Score: %d", h.Score), core.ColorText)
	best := fmt.Sprintf("Best: %d", h.HighScore)
	s.DrawText(s.Width()-len(best)-1, 0, best, core.ColorText)

	switch {
	case h.StartOpen:
		drawPanel(s, "GRAVITY DODGE", "", "Press SPACE to start")
	case h.GameOverOpen:
		drawPanel(s, "GAME OVER", fmt.Sprintf("Score: %d", h.FinalScore), "Press SPACE to restart")
	}
}

// drawPanel draws a centred box holding the given lines. Empty lines are kept
// as spacing.
func drawPanel(s *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	w := width + 4
	h := len(lines) + 2
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	s.FillRect(x, y, w, h, core.ColorPanel)
	s.DrawBox(x, y, w, h, core.ColorText)
	for i, l := range lines {
		s.DrawText(x+(w-len(l))/2, y+1+i, l, core.ColorText)
	}
}
