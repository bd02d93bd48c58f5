package game

import (
	"fmt"
	"math"

	"github.com/maxvk/flapmax/internal/core"
)

// Visual characters for rendering
const (
	heroChar      = '▶'
	heroBodyChar  = '●'
	poleChar      = '█'
	poleCapTop    = '▄'
	poleCapBottom = '▀'
	floorChar     = '═'
	coinChar      = '●'
	burgerChar    = '♦'
)

// Render draws the current game state to the screen. World Y grows
// upward, screen Y grows downward; toRow flips between them.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawFloor(dst)

	for _, ps := range g.obstacles.Active() {
		g.drawPoleSet(dst, ps)
	}

	for _, c := range g.collectibles.Active() {
		x := int(math.Round(c.Pos.X))
		y := g.toRow(c.Pos.Y)
		if c.Kind == KindBurger {
			dst.SetColored(x, y, burgerChar, core.ColorOrange)
		} else {
			dst.SetColored(x, y, coinChar, core.ColorBrightYellow)
		}
	}

	g.drawHero(dst)
	g.drawHUD(dst)

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("%s  |  Score: %d  Coins: %d  |  Press R to restart",
				g.reason, g.mainScore, g.coinScore))
	}
}

// toRow converts a world-space Y to a screen row.
func (g *Game) toRow(worldY float64) int {
	return g.runtime.ScreenH - 1 - int(math.Round(worldY))
}

// drawFloor renders the scrolling floor band.
func (g *Game) drawFloor(dst *core.Screen) {
	floorRows := int(g.cfg.Obstacles.FloorHeight)
	phase := int(g.floorOffset) % 4
	for row := 0; row < floorRows; row++ {
		y := dst.Height() - 1 - row
		for x := 0; x < dst.Width(); x++ {
			ch := floorChar
			if (x+phase)%4 == 0 {
				ch = '╪'
			}
			dst.SetColored(x, y, ch, core.ColorGray)
		}
	}
}

// drawPoleSet renders a pole pair with gap caps.
func (g *Game) drawPoleSet(dst *core.Screen, ps *PoleSet) {
	left := int(math.Round(ps.X))
	width := int(math.Round(ps.W))

	top := ps.TopRect()
	topStart := g.toRow(top.Top())
	topEnd := g.toRow(top.Y) // Row of the cap at the gap's upper lip
	for y := topStart; y < topEnd; y++ {
		for x := left; x < left+width; x++ {
			dst.SetColored(x, y, poleChar, core.ColorGreen)
		}
	}
	for x := left; x < left+width; x++ {
		dst.SetColored(x, topEnd, poleCapTop, core.ColorGreen)
	}

	bottom := ps.BottomRect()
	bottomStart := g.toRow(bottom.Top())
	bottomEnd := g.toRow(bottom.Y)
	for x := left; x < left+width; x++ {
		dst.SetColored(x, bottomStart, poleCapBottom, core.ColorGreen)
	}
	for y := bottomStart + 1; y <= bottomEnd; y++ {
		for x := left; x < left+width; x++ {
			dst.SetColored(x, y, poleChar, core.ColorGreen)
		}
	}
}

// drawHero renders the hero hitbox.
func (g *Game) drawHero(dst *core.Screen) {
	r := g.hero.Rect()
	left := int(math.Round(r.X))
	w := int(math.Round(r.W))
	h := int(math.Round(r.H))
	topRow := g.toRow(r.Top())
	for dy := 1; dy <= h; dy++ {
		for dx := 0; dx < w; dx++ {
			ch := heroBodyChar
			if dy == 1 && dx == w-1 {
				ch = heroChar
			}
			dst.SetColored(left+dx, topRow+dy, ch, core.ColorBrightWhite)
		}
	}
}

// drawHUD renders score and stamina.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Coins: %d ", g.mainScore, g.coinScore))

	// Stamina bar, 10 cells wide
	const bar = 10
	filled := 0
	if g.cfg.Stamina.Max > 0 {
		filled = int(math.Round(g.hero.Stamina / g.cfg.Stamina.Max * bar))
	}
	filled = core.Clamp(filled, 0, bar)

	col := core.ColorGreen
	if filled <= 3 {
		col = core.ColorRed
	}
	label := " Energy ["
	x := dst.Width() - len(label) - bar - 2
	dst.DrawText(x, 0, label)
	for i := 0; i < bar; i++ {
		ch := ' '
		if i < filled {
			ch = '█'
		}
		dst.SetColored(x+len(label)+i, 0, ch, col)
	}
	dst.Set(x+len(label)+bar, 0, ']')
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
