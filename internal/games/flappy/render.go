package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	DirtChar      = '▒'
	BodyChar      = '■'
	BeakChar      = '▶'
	DeadChar      = '✕'
)

var wingChars = [wingFrameCount]rune{
	WingUp:   '▀',
	WingMid:  '■',
	WingDown: '▄',
}

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(field config.Field, w, h int) viewport {
	return viewport{
		sx: float64(w) / float64(field.Width),
		sy: float64(h) / float64(field.Height),
	}
}

func (v viewport) col(x int) int {
	return int(math.Floor(float64(x) * v.sx))
}

func (v viewport) row(y int) int {
	return int(math.Floor(float64(y) * v.sy))
}

// rect scales a world rectangle, keeping anything non-empty at least one cell.
func (v viewport) rect(r core.Rect) core.Rect {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1, y1 := v.col(r.Right()), v.row(r.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	renderSnapshot(dst, g.Snapshot())
}

func renderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	vp := newViewport(s.Field, dst.Width(), dst.Height())
	groundRow := vp.row(s.Field.GroundY)

	for _, p := range s.Obstacles {
		drawPair(dst, vp, p, groundRow)
	}
	drawGround(dst, vp, groundRow, s.GroundOffset)
	drawActor(dst, vp, s)
	drawHUD(dst, s)

	switch s.Phase {
	case PhaseIdle:
		drawMessageBox(dst, core.ColorBrightWhite,
			"PRESS SPACE TO START",
			"space / click to flap",
		)
	case PhaseGameOver:
		lines := []string{
			"GAME OVER",
			fmt.Sprintf("SCORE = %d", s.Score),
			fmt.Sprintf("HIGH SCORE = %d", s.HighScore),
		}
		if s.NewHighScore {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		if s.CanRestart {
			lines = append(lines, "R / SPACE to restart")
		}
		drawMessageBox(dst, core.ColorBrightWhite, lines...)
	}
}

// drawPair renders both pipes of a pair, clipped at the ground.
func drawPair(dst *core.Screen, vp viewport, p ObstaclePair, groundRow int) {
	upper := vp.rect(p.Upper)
	lower := vp.rect(p.Lower)
	if lower.Bottom() > groundRow {
		lower.H = max(groundRow-lower.Y, 0)
	}

	dst.DrawRect(upper, PipeChar, core.ColorGreen)
	dst.DrawRect(lower, PipeChar, core.ColorGreen)

	// Caps face the gap
	dst.DrawHLine(upper.X, upper.Bottom()-1, upper.W, PipeCapTop, core.ColorBrightGreen)
	if lower.H > 0 {
		dst.DrawHLine(lower.X, lower.Y, lower.W, PipeCapBottom, core.ColorBrightGreen)
	}
}

// groundPeriod is the dirt texture period in world units. With the default
// scroll speed the offset steps from -32 to -36 and wraps to 0, which is the
// same phase, so the texture never jumps.
const groundPeriod = groundScrollWrap + 1

// drawGround renders the ground line and a dirt band that scrolls with the offset.
// The pattern is laid out in world units so it lines up across the offset wrap.
func drawGround(dst *core.Screen, vp viewport, groundRow, offset int) {
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorYellow)

	for y := groundRow + 1; y < dst.Height(); y++ {
		wy := int(float64(y) / vp.sy)
		for x, n := 0, dst.Width(); x < n; x++ {
			wx := int(float64(x)/vp.sx) - offset
			if ((wx+wy)%groundPeriod+groundPeriod)%groundPeriod < groundPeriod/4 {
				dst.SetColored(x, y, DirtChar, core.ColorOrange)
			}
		}
	}
}

func drawActor(dst *core.Screen, vp viewport, s Snapshot) {
	r := vp.rect(s.Actor)

	if !s.Alive {
		dst.DrawRect(r, DeadChar, core.ColorBrightRed)
		return
	}

	dst.DrawRect(r, BodyChar, core.ColorBrightYellow)
	_, midY := r.Center()
	dst.SetColored(r.X, midY, wingChars[s.Wing], core.ColorYellow)
	if r.W > 1 {
		dst.SetColored(r.Right()-1, midY, BeakChar, core.ColorOrange)
	}
}

func drawHUD(dst *core.Screen, s Snapshot) {
	dst.DrawTextCentered(1, fmt.Sprintf(" %d ", s.Score), core.ColorBrightWhite)

	hi := fmt.Sprintf("HI %d ", s.HighScore)
	dst.DrawTextColored(dst.Width()-len(hi), 0, hi, core.ColorGray)
}

// drawMessageBox draws a bordered box with centred lines in the middle of the screen.
func drawMessageBox(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, c)
	}
}
