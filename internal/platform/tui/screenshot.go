package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Pixel size of one screen cell in PNG screenshots.
const (
	cellPxW = 8
	cellPxH = 16
)

// DefaultScreenshotDir returns ~/.arcade/screenshots.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".arcade", "screenshots")
}

// SaveScreenshot writes the screen as plain text and as a PNG into dir.
// Returns the path of the PNG.
func SaveScreenshot(s *core.Screen, dir, gameID string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: cannot create directory %s: %w", dir, err)
	}

	base := filepath.Join(dir, fmt.Sprintf("%s_%s", gameID, now.Format("20060102_150405")))
	if err := os.WriteFile(base+".txt", []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: cannot write text: %w", err)
	}

	png := base + ".png"
	if err := RasterizeScreen(s).SavePNG(png); err != nil {
		return "", fmt.Errorf("screenshot: cannot write png: %w", err)
	}
	return png, nil
}

// RasterizeScreen draws the screen buffer onto a gg context, one cell per
// cellPxW x cellPxH block. ASCII runes are drawn with the built-in font;
// other runes become solid blocks in their color.
func RasterizeScreen(s *core.Screen) *gg.Context {
	w := core.Max(s.Width(), 1) * cellPxW
	h := core.Max(s.Height(), 1) * cellPxH
	dc := gg.NewContext(w, h)

	dc.SetRGB255(0, 0, 0)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune == ' ' || cell.Rune == 0 {
				continue
			}
			r, g, b := cell.Color.RGB()
			dc.SetRGB255(int(r), int(g), int(b))

			px := float64(x * cellPxW)
			py := float64(y * cellPxH)
			if cell.Rune < 0x80 {
				dc.DrawStringAnchored(string(cell.Rune), px+cellPxW/2, py+cellPxH/2, 0.5, 0.5)
				continue
			}
			dc.DrawRectangle(px+1, py+2, cellPxW-2, cellPxH-4)
			dc.Fill()
		}
	}
	return dc
}
