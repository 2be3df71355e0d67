package tui

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '▲', core.ColorBrightCyan)
	s.DrawTextColored(0, 1, "xyz", core.ColorRed)

	// Tests run without a color profile, so styles render as plain text.
	expected := "ab▲   \nxyz   "
	if got := RenderScreen(s); got != expected {
		t.Errorf("RenderScreen() = %q, expected %q", got, expected)
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func TestRasterizeScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(1, 1, '▛', core.ColorBrightGreen)

	dc := RasterizeScreen(s)
	if dc.Width() != 4*cellPxW || dc.Height() != 2*cellPxH {
		t.Fatalf("image is %dx%d, expected %dx%d", dc.Width(), dc.Height(), 4*cellPxW, 2*cellPxH)
	}

	r, g, b, _ := dc.Image().At(1*cellPxW+cellPxW/2, 1*cellPxH+cellPxH/2).RGBA()
	wr, wg, wb := core.ColorBrightGreen.RGB()
	if uint8(r>>8) != wr || uint8(g>>8) != wg || uint8(b>>8) != wb {
		t.Errorf("block pixel = (%d, %d, %d), expected (%d, %d, %d)", r>>8, g>>8, b>>8, wr, wg, wb)
	}

	r, g, b, _ = dc.Image().At(0, 0).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Error("empty cells should stay black")
	}
}
