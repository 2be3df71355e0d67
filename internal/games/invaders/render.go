package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Minimum screen size the field can be drawn in.
const (
	MinScreenW = 30
	MinScreenH = 14
)

// Field size in cells at most; larger screens centre the field.
const (
	maxFieldW = 64
	maxFieldH = 32
)

// viewport maps world coordinates to screen cells inside the field box.
type viewport struct {
	box    core.Rect
	inner  core.Rect
	hw, hh float64
}

func newViewport(dst *core.Screen, hw, hh float64) viewport {
	fw := core.Min(dst.Width()-2, maxFieldW)
	fh := core.Min(dst.Height()-3, maxFieldH)
	box := core.NewRect((dst.Width()-(fw+2))/2, 1, fw+2, fh+2)
	return viewport{
		box:   box,
		inner: core.NewRect(box.X+1, box.Y+1, fw, fh),
		hw:    hw,
		hh:    hh,
	}
}

// cell returns the screen cell for a world position.
func (v viewport) cell(p core.Vec2) (int, int) {
	cx := (p.X + v.hw) / (2 * v.hw) * float64(v.inner.W-1)
	cy := (v.hh - p.Y) / (2 * v.hh) * float64(v.inner.H-1)
	return v.inner.X + int(math.Round(cx)), v.inner.Y + int(math.Round(cy))
}

// Render draws the current phase into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}
	if g.world == nil || g.assets == nil {
		return
	}

	v := newViewport(dst, g.cfg.Field.HalfWidth, g.cfg.Field.HalfHeight)
	g.renderHUD(dst)
	dst.DrawBox(v.box, core.ColorGray)

	for _, e := range g.world.Of(core.KindText) {
		_, y := v.cell(e.Pos)
		color := core.ColorBrightWhite
		if e.Label == g.assets.Messages.Title {
			color = core.ColorBrightYellow
		}
		dst.DrawTextCenteredColored(y, e.Label, color)
	}

	for _, kind := range []core.EntityKind{core.KindAlien, core.KindExplosion, core.KindProjectile, core.KindPlayer} {
		sprite, _ := g.assets.SpriteFor(kind)
		for _, e := range g.world.Of(kind) {
			g.drawSprite(dst, v, e.Pos, sprite)
		}
	}

	if g.Paused() {
		dst.DrawTextCenteredColored(v.inner.Y+v.inner.H/2, g.assets.Messages.Paused, core.ColorBrightYellow)
	}
}

// drawSprite draws a glyph centred on pos, clipped to the field.
func (g *Game) drawSprite(dst *core.Screen, v viewport, pos core.Vec2, s Sprite) {
	cx, cy := v.cell(pos)
	x := cx - s.Width/2
	i := 0
	for _, r := range s.Glyph {
		if v.inner.Contains(x+i, cy) {
			dst.SetColored(x+i, cy, r, s.Color)
		}
		i++
	}
}

// renderHUD draws score, round and shots on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Round %d", g.round+1))

	right := g.phase.String()
	if g.play != nil {
		right = fmt.Sprintf("Aliens: %d  Shots: %d", g.world.Count(core.KindAlien), g.play.projectiles.Shots())
	}
	dst.DrawText(dst.Width()-len(right)-1, 0, right)
}
