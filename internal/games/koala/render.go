package koala

import (
	"math"

	"github.com/vovakirdan/koala-run/internal/core"
	"github.com/vovakirdan/koala-run/internal/runner"
)

// Visual characters for rendering
const (
	HillChar     = '░'
	GroundChar   = '▀'
	KoalaBody    = '█'
	KoalaEar     = '◖'
	KoalaLeg1    = '╱'
	KoalaLeg2    = '╲'
	ObstacleChar = '▓'
	BearChar     = '█'
	BearEye      = '●'
)

// Rows of rolling hills drawn above the ground.
const hillRows = 4

// viewport maps world pixels to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{
		sx: float64(dst.Width()) / worldW,
		sy: float64(dst.Height()) / worldH,
	}
}

// rect returns the cells covered by b. Every visible box covers at least
// one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.Left() * v.sx))
	y0 := int(math.Floor(b.Top() * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// worldX returns the world x at the center of screen column c.
func (v viewport) worldX(c int) float64 { return (float64(c) + 0.5) / v.sx }

// Render draws the current session to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	snap := g.session.Snapshot()
	vp := newViewport(dst, g.cfg.World.Width, g.cfg.World.Height)
	groundRow := vp.row(g.cfg.World.Ground.Y - g.cfg.World.Ground.Height/2)

	g.drawBackground(dst, vp, snap.Tiles, groundRow)
	for _, p := range g.world.Platforms() {
		r := vp.rect(p)
		dst.DrawHLine(r.X, r.Y, r.W, GroundChar, core.ColorGround)
	}

	for _, o := range snap.Obstacles {
		dst.DrawRect(vp.rect(o.Box), ObstacleChar, core.ColorObstacle)
	}
	if snap.Antagonist != nil {
		g.drawBear(dst, vp, *snap.Antagonist)
	}
	g.drawKoala(dst, vp, snap.Player)

	// HUD sits at a fixed world position
	dst.DrawTextColored(vp.col(75), vp.row(100), snap.Progress, core.ColorHUD)

	switch {
	case g.outcome == core.OutcomeGameOver:
		g.drawCenteredMessage(dst, "Game Over!", "Press R to restart", core.ColorDanger)
	case g.outcome == core.OutcomeWon:
		g.drawCenteredMessage(dst, "You Win!", "You made it to the bear. Press R to play again", core.ColorVictory)
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorHUD)
	}
}

// drawBackground renders both looping tiles. The second tile is mirrored so
// the seams always line up.
func (g *Game) drawBackground(dst *core.Screen, vp viewport, tiles [2]runner.BackgroundTile, groundRow int) {
	for c := 0; c < dst.Width(); c++ {
		wx := vp.worldX(c)
		for i, t := range tiles {
			if wx < t.X || wx >= t.Right() {
				continue
			}
			u := (wx - t.X) / t.Width
			if i == 1 {
				u = 1 - u
			}
			height := int(math.Round(float64(hillRows) * (0.5 - 0.5*math.Cos(2*math.Pi*u))))
			for y := groundRow - height; y < groundRow; y++ {
				dst.SetColored(c, y, HillChar, core.ColorHill)
			}
			break
		}
	}
}

// drawKoala renders the player.
//
//	◖██
//	███
//	╱ ╲
func (g *Game) drawKoala(dst *core.Screen, vp viewport, p runner.Player) {
	x := vp.col(p.Box.CX) - 1
	y := vp.row(p.Box.Bottom()) - 3

	dst.SetColored(x, y, KoalaEar, core.ColorPlayer)
	dst.SetColored(x+1, y, KoalaBody, core.ColorPlayer)
	dst.SetColored(x+2, y, KoalaBody, core.ColorPlayer)
	for dx := 0; dx < 3; dx++ {
		dst.SetColored(x+dx, y+1, KoalaBody, core.ColorPlayer)
	}

	switch {
	case !p.Grounded:
		// In air - legs tucked
		dst.SetColored(x, y+2, KoalaLeg1, core.ColorPlayer)
		dst.SetColored(x+1, y+2, KoalaLeg2, core.ColorPlayer)
	case g.frame < 5:
		dst.SetColored(x, y+2, KoalaLeg1, core.ColorPlayer)
		dst.SetColored(x+2, y+2, KoalaLeg2, core.ColorPlayer)
	default:
		dst.SetColored(x+1, y+2, KoalaLeg1, core.ColorPlayer)
		dst.SetColored(x+2, y+2, KoalaLeg2, core.ColorPlayer)
	}
}

func (g *Game) drawBear(dst *core.Screen, vp viewport, a runner.Antagonist) {
	r := vp.rect(a.Box)
	dst.DrawRect(r, BearChar, core.ColorAntagonist)
	// Facing left, toward the koala
	dst.SetColored(r.X+1, r.Y+1, BearEye, core.ColorDefault)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, title, c)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorDefault)
}
