package devil

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '▀'
	MovingChar   = '▔'
	ObstacleChar = '▲'
	BombChar     = '●'
	GoalChar     = '⚑'
	PlayerChar   = '█'
	LifeChar     = '♥'
)

// Minimum terminal size for a readable playfield.
const (
	minScreenW = 40
	minScreenH = 12
)

// hudRows is the number of rows reserved above the playfield.
const hudRows = 1

// viewport maps canvas coordinates onto terminal cells.
type viewport struct {
	sx, sy float64
	top    int
	bottom int // Exclusive
	width  int
}

func newViewport(dst *core.Screen, canvasW, canvasH float64) viewport {
	playH := dst.Height() - hudRows
	return viewport{
		sx:     float64(dst.Width()) / canvasW,
		sy:     float64(playH) / canvasH,
		top:    hudRows,
		bottom: dst.Height(),
		width:  dst.Width(),
	}
}

// cells returns the cell box covering r, at least one cell in each direction.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x = int(math.Floor(r.X * v.sx))
	y = v.top + int(math.Floor(r.Y*v.sy))
	w = core.Max(1, int(math.Round(r.W*v.sx)))
	h = core.Max(1, int(math.Round(r.H*v.sy)))
	return x, y, w, h
}

// fill draws r clipped to the playfield so off-canvas entities never touch the HUD.
func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x, y, w, h := v.cells(r)
	for yy := core.Max(y, v.top); yy < core.Min(y+h, v.bottom); yy++ {
		for xx := core.Max(x, 0); xx < core.Min(x+w, v.width); xx++ {
			dst.SetColored(xx, yy, ch, c)
		}
	}
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		msg := fmt.Sprintf("Terminal too small: need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2, msg)
		return
	}

	if g.phase == PhaseMenu || g.world == nil {
		g.drawMenu(dst)
		return
	}

	v := newViewport(dst, g.cfg.Canvas.Width, g.cfg.Canvas.Height)
	g.drawWorld(dst, v)
	g.drawHUD(dst)

	switch g.phase {
	case PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "P: resume  R: restart  B: menu")
	case PhaseLevelComplete:
		drawCenteredMessage(dst,
			fmt.Sprintf("LEVEL %d COMPLETE", g.level),
			fmt.Sprintf("+%d  |  Enter: next level", g.cfg.Session.GoalScore(g.level)))
	case PhaseGameOver:
		title := "GAME OVER"
		if g.completed {
			title = fmt.Sprintf("ALL %d LEVELS CLEARED", g.cfg.Session.MaxLevel)
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  R: restart  B: menu", g.score))
	}
}

func (g *Game) drawWorld(dst *core.Screen, v viewport) {
	w := g.world

	for _, p := range w.Platforms {
		v.fill(dst, p.Rect, PlatformChar, core.ColorGreen)
	}
	for _, mp := range w.Moving {
		v.fill(dst, mp.Rect, MovingChar, core.ColorCyan)
	}
	for _, o := range w.Obstacles {
		v.fill(dst, o.Rect, ObstacleChar, core.ColorRed)
	}
	for _, b := range w.Bombs {
		c := core.ColorOrange
		if !b.Active {
			c = core.ColorGray
		}
		v.fill(dst, b.Rect, BombChar, c)
	}
	v.fill(dst, w.Goal.Rect, GoalChar, core.ColorBrightYellow)

	pc := core.ColorBrightBlue
	switch {
	case g.FallWarning():
		pc = core.ColorBrightRed
	case g.player.Animation == AnimJumping:
		pc = core.ColorBrightCyan
	}
	v.fill(dst, g.player.Rect(), PlayerChar, pc)
}

func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" Level %d/%d  Score %d  ", g.level, g.cfg.Session.MaxLevel, g.score)
	dst.DrawText(0, 0, left)

	x := utf8.RuneCountInString(left)
	dst.DrawTextColored(x, 0, strings.Repeat(string(LifeChar), g.lives), core.ColorRed)

	timeText := fmt.Sprintf(" Time %02d ", g.timeLeft)
	tc := core.ColorDefault
	if g.LowTime() {
		tc = core.ColorBrightRed
	}
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(timeText)-1, 0, timeText, tc)

	if g.FallWarning() {
		dst.DrawTextColored(x+g.lives+2, 0, "FALLING!", core.ColorBrightRed)
	}
}

func (g *Game) drawMenu(dst *core.Screen) {
	lines := []string{
		"L E V E L   D E V I L",
		"",
		fmt.Sprintf("%d levels. %d lives. Reach the flag before time runs out.", g.cfg.Session.MaxLevel, g.cfg.Session.Lives),
		"",
		"←/→ or A/D: move   Space/W/↑: jump   P: pause",
		"",
		"Press Enter to start",
	}
	if g.err != nil {
		lines = append(lines, "", "Error: "+g.err.Error())
	}

	y := (dst.Height() - len(lines)) / 2
	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorBrightYellow
		}
		x := (dst.Width() - utf8.RuneCountInString(line)) / 2
		dst.DrawTextColored(x, y+i, line, c)
	}

	tw := utf8.RuneCountInString(lines[0])
	dst.DrawHLine((dst.Width()-tw)/2, y+1, tw, '─', core.ColorGray)
}

func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	tw := utf8.RuneCountInString(title)
	sw := utf8.RuneCountInString(subtitle)

	boxW := core.Max(tw, sw) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-tw)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-sw)/2, boxY+3, subtitle)
}
