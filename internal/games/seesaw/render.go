package seesaw

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/pumpkin-seesaw/internal/core"
)

// Render draws the game to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderPieces(dst)
	g.renderParticles(dst)

	if g.showPrompt {
		g.renderPrompt(dst)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCenteredColor(h/2-1, g.tr.T("hud.too_small"), core.ColorBrightRed)
	dst.DrawTextCentered(h/2+1, g.tr.T("hud.resize", MinWidth, MinHeight))
}

func (g *Game) renderHUD(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()

	dst.DrawTextColor(1, 0, g.tr.T("hud.title"), core.ColorOrange)
	score := g.tr.T("hud.score", g.score)
	dst.DrawTextColor(w-1-core.TextWidth(score), 0, score, core.ColorBrightWhite)

	if sub := g.tr.T("hud.subtitle"); core.TextWidth(sub) <= w {
		dst.DrawTextCenteredColor(1, sub, core.ColorGray)
	}

	if g.paused {
		dst.DrawTextCenteredColor(2, g.tr.T("hud.paused"), core.ColorBrightCyan)
	} else {
		dst.DrawTextCenteredColor(2, g.StatusText(), core.ColorBrightYellow)
	}

	dst.DrawTextCenteredColor(h-1, g.tr.T("hud.controls"), core.ColorGray)
}

func (g *Game) renderBoard(dst *core.Screen) {
	l := g.layout
	st := styleFor(g.cfg.Appearance.SeesawStyle)
	px, py := core.Round(l.PivotX), core.Round(l.PivotY)

	// Ground and pivot
	dst.DrawHLine(0, l.GroundY(), dst.Width(), '─', core.ColorDarkGray)
	dst.DrawTextColor(px-1, py+1, "/_\\", st.Pivot)
	dst.DrawTextColor(px-2, py+2, "/___\\", st.Pivot)

	// Plank: one cell per column along the rotated line.
	slope := l.Slope(g.angle)
	reach := l.HalfLength * math.Cos(mgl64.DegToRad(g.angle))
	rowAt := func(x int) int {
		return core.Round(l.PivotY + (float64(x)-l.PivotX)*slope)
	}
	for x := core.Round(l.PivotX - reach); x <= core.Round(l.PivotX+reach); x++ {
		row, next := rowAt(x), rowAt(x+1)
		glyph := '='
		switch {
		case next < row:
			glyph = '/'
		case next > row:
			glyph = '\\'
		}
		dst.SetColor(x, row, glyph, st.Board)
	}

	// Slot markers just above the plank
	for _, side := range []Side{SideLeft, SideRight} {
		row := g.slots[side]
		for i := range row.Cap() {
			x, y := l.Project(g.angle, l.SlotOffset(side, i), -1)
			glyph, color := '.', st.SlotEmpty
			if row.Occupied(i) {
				glyph, color = 'o', st.SlotFilled
			}
			dst.SetColor(core.Round(x), core.Round(y), glyph, color)
		}
	}

	// Side totals beyond each end, kept on screen
	left, right := g.Weights()
	lx, ly := l.End(g.angle, SideLeft)
	label := g.tr.T("hud.weight", left)
	x := core.Clamp(core.Round(lx)-2-core.TextWidth(label), 0, dst.Width()-core.TextWidth(label))
	dst.DrawTextColor(x, core.Round(ly), label, st.Label)
	rx, ry := l.End(g.angle, SideRight)
	label = g.tr.T("hud.weight", right)
	x = core.Clamp(core.Round(rx)+2, 0, dst.Width()-core.TextWidth(label))
	dst.DrawTextColor(x, core.Round(ry), label, st.Label)
}

func (g *Game) renderPieces(dst *core.Screen) {
	selected := g.Selected()
	for _, p := range g.pieces {
		r := pieceRect(p)
		dst.DrawTextColor(r.X, r.Y, p.Label(), PumpkinColor(g.cfg.Appearance.ColorPreset, p.Weight))
		if p.ID == selected && !g.showPrompt {
			dst.SetColor(r.X-1, r.Y, '>', core.ColorBrightWhite)
			dst.SetColor(r.Right(), r.Y, '<', core.ColorBrightWhite)
		}
	}
}

func (g *Game) renderParticles(dst *core.Screen) {
	for _, p := range g.particles {
		dst.SetColor(core.Round(p.X), core.Round(p.Y), p.Glyph, p.Color)
	}
}

func (g *Game) renderPrompt(dst *core.Screen) {
	title := g.tr.T("prompt.title")
	body := g.tr.T("prompt.body")
	options := fmt.Sprintf("%s    %s", g.tr.T("prompt.new_game"), g.tr.T("prompt.continue"))

	w := max(core.TextWidth(body), core.TextWidth(options), 30) + 6
	h := 7
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorOrange)
	dst.DrawTextCenteredColor(box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, body)
	dst.DrawTextCenteredColor(box.Y+5, options, core.ColorBrightGreen)
}
