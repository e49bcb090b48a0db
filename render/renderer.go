// Package render draws game snapshots to a tcell screen. It is a pure
// consumer: everything it needs is in the snapshot, and it never touches
// session internals
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/game"
)

const (
	// cellWidth is the number of terminal columns per board cell
	cellWidth = 2

	boardOffsetX = 2
	boardOffsetY = 1
	panelGap     = 4
)

// colorFor maps palette entries to terminal colors
var colorFor = map[game.Color]tcell.Color{
	game.ColorCyan:   tcell.ColorAqua,
	game.ColorYellow: tcell.ColorYellow,
	game.ColorPurple: tcell.ColorPurple,
	game.ColorGreen:  tcell.ColorGreen,
	game.ColorRed:    tcell.ColorRed,
	game.ColorBlue:   tcell.ColorBlue,
	game.ColorOrange: tcell.ColorOrange,
	game.ColorBomb:   tcell.ColorWhite,
}

// Renderer draws snapshots onto a screen
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer for the given screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame from the snapshot
func (r *Renderer) Draw(snap game.Snapshot) {
	r.screen.Clear()

	r.drawFrame(snap)
	r.drawBoard(snap)
	if snap.Active != nil && !snap.GameOver {
		r.drawGhost(snap)
		r.drawActive(snap)
	}
	r.drawEffects(snap)
	r.drawPanel(snap)
	r.drawOverlays(snap)

	r.screen.Show()
}

// cellOrigin converts board coordinates to screen coordinates
func cellOrigin(x, y int) (int, int) {
	return boardOffsetX + 1 + x*cellWidth, boardOffsetY + 1 + y
}

func (r *Renderer) drawFrame(snap game.Snapshot) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	innerW := snap.Width * cellWidth

	for x := 0; x <= innerW+1; x++ {
		r.screen.SetContent(boardOffsetX+x, boardOffsetY, tcell.RuneHLine, nil, style)
		r.screen.SetContent(boardOffsetX+x, boardOffsetY+snap.Height+1, tcell.RuneHLine, nil, style)
	}
	for y := 0; y <= snap.Height+1; y++ {
		r.screen.SetContent(boardOffsetX, boardOffsetY+y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(boardOffsetX+innerW+1, boardOffsetY+y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(boardOffsetX, boardOffsetY, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(boardOffsetX+innerW+1, boardOffsetY, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(boardOffsetX, boardOffsetY+snap.Height+1, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(boardOffsetX+innerW+1, boardOffsetY+snap.Height+1, tcell.RuneLRCorner, nil, style)
}

func (r *Renderer) drawBoard(snap game.Snapshot) {
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			cell := snap.Grid[y][x]
			if cell.Empty() {
				continue
			}
			r.fillCell(x, y, colorFor[cell.Color])
		}
	}
}

func (r *Renderer) drawGhost(snap game.Snapshot) {
	p := snap.Active
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for sy, row := range p.Shape {
		for sx, occupied := range row {
			if !occupied {
				continue
			}
			gx, gy := cellOrigin(p.X+sx, snap.GhostY+sy)
			if snap.GhostY+sy < 0 {
				continue
			}
			r.screen.SetContent(gx, gy, '░', nil, style)
			r.screen.SetContent(gx+1, gy, '░', nil, style)
		}
	}
}

func (r *Renderer) drawActive(snap game.Snapshot) {
	p := snap.Active
	color := colorFor[p.Color]
	for sy, row := range p.Shape {
		for sx, occupied := range row {
			if !occupied || p.Y+sy < 0 {
				continue
			}
			if p.IsBomb {
				gx, gy := cellOrigin(p.X+sx, p.Y+sy)
				style := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
				r.screen.SetContent(gx, gy, '◉', nil, style)
				r.screen.SetContent(gx+1, gy, ' ', nil, style)
				continue
			}
			r.fillCell(p.X+sx, p.Y+sy, color)
		}
	}
}

func (r *Renderer) drawEffects(snap game.Snapshot) {
	for _, e := range snap.Effects {
		switch e.Kind {
		case game.EffectLineClear:
			// Flash the rows, alternating with progress
			on := int(e.Progress*8)%2 == 0
			for _, y := range e.Rows {
				for x := 0; x < snap.Width; x++ {
					if on {
						r.fillCell(x, y, tcell.ColorWhite)
					} else {
						r.blankCell(x, y)
					}
				}
			}
		case game.EffectExplosion:
			style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
			for _, rc := range e.Removed {
				gx, gy := cellOrigin(rc.X, rc.Y)
				r.screen.SetContent(gx, gy, '✦', nil, style)
				r.screen.SetContent(gx+1, gy, ' ', nil, style)
			}
		}
	}
}

func (r *Renderer) drawPanel(snap game.Snapshot) {
	px := boardOffsetX + snap.Width*cellWidth + panelGap
	y := boardOffsetY

	label := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	value := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	r.drawText(px, y, "SCORE", label)
	r.drawText(px, y+1, fmt.Sprintf("%d", snap.Score), value)
	r.drawText(px, y+3, "LEVEL", label)
	r.drawText(px, y+4, fmt.Sprintf("%d", snap.Level), value)
	r.drawText(px, y+6, "LINES", label)
	r.drawText(px, y+7, fmt.Sprintf("%d", snap.Lines), value)

	if snap.RenCount >= 2 {
		combo := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		r.drawText(px, y+9, fmt.Sprintf("REN x%d", snap.RenCount), combo)
	}

	r.drawText(px, y+11, "HOLD", label)
	if snap.Hold != nil {
		r.drawMiniPiece(px, y+12, *snap.Hold, snap.CanHold)
	}

	r.drawText(px, y+15, "NEXT", label)
	for i, kind := range snap.Upcoming {
		r.drawMiniPiece(px, y+16+i*3, kind, true)
	}

	r.drawChargeBar(px, y+16+len(snap.Upcoming)*3+1, snap)
}

func (r *Renderer) drawChargeBar(px, py int, snap game.Snapshot) {
	label := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	r.drawText(px, py, "ULTIMATE", label)

	const barWidth = 10
	filled := int(snap.ChargeFraction * barWidth)

	var style tcell.Style
	switch {
	case snap.AbilityActive:
		style = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case snap.ChargeFraction >= 1 && snap.CooldownRemaining == 0:
		style = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	default:
		style = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	}

	for i := 0; i < barWidth; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		r.screen.SetContent(px+i, py+1, ch, nil, style)
	}

	switch {
	case snap.AbilityActive:
		r.drawText(px, py+2, fmt.Sprintf("ACTIVE %.0fs", snap.AbilityRemaining.Seconds()), style)
	case snap.CooldownRemaining > 0:
		r.drawText(px, py+2, fmt.Sprintf("COOLDOWN %.0fs", snap.CooldownRemaining.Seconds()), style)
	case snap.ChargeFraction >= 1:
		r.drawText(px, py+2, "READY [b]", style)
	}
}

func (r *Renderer) drawMiniPiece(px, py int, kind game.Kind, bright bool) {
	p := game.MustPiece(kind)
	color := colorFor[p.Color]
	style := tcell.StyleDefault.Foreground(color)
	if !bright {
		style = tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
	for sy, row := range p.Shape {
		for sx, occupied := range row {
			if occupied {
				r.screen.SetContent(px+sx*2, py+sy, '█', nil, style)
				r.screen.SetContent(px+sx*2+1, py+sy, '█', nil, style)
			}
		}
	}
}

func (r *Renderer) drawOverlays(snap game.Snapshot) {
	cx := boardOffsetX + snap.Width*cellWidth/2 + 1
	cy := boardOffsetY + snap.Height/2

	switch {
	case !snap.Started:
		r.drawCentered(cx, cy, "BLOCKFALL", tcell.StyleDefault.Bold(true))
		r.drawCentered(cx, cy+2, "press enter to start", tcell.StyleDefault)
	case snap.GameOver:
		r.drawCentered(cx, cy, "GAME OVER", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
		r.drawCentered(cx, cy+2, "r to restart, q to quit", tcell.StyleDefault)
	case snap.Paused:
		r.drawCentered(cx, cy, "PAUSED", tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}
}

func (r *Renderer) fillCell(x, y int, color tcell.Color) {
	gx, gy := cellOrigin(x, y)
	style := tcell.StyleDefault.Foreground(color)
	r.screen.SetContent(gx, gy, '█', nil, style)
	r.screen.SetContent(gx+1, gy, '█', nil, style)
}

func (r *Renderer) blankCell(x, y int) {
	gx, gy := cellOrigin(x, y)
	r.screen.SetContent(gx, gy, ' ', nil, tcell.StyleDefault)
	r.screen.SetContent(gx+1, gy, ' ', nil, tcell.StyleDefault)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawCentered(cx, y int, text string, style tcell.Style) {
	r.drawText(cx-len(text)/2, y, text, style)
}
