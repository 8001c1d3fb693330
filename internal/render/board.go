// Package render draws a debug PNG of a board state with a gg.Context:
// solid background fill, circular tiles, a health bar under each, and a
// name label, laid out over the fixed 3x3 + 2-reserve grid.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"

	"fightboard/internal/combat"
)

const (
	tileRadius   = 38.0
	cellSize     = 120.0
	boardMarginX = 80.0
	boardMarginY = 60.0
	reserveGapY  = 150.0
)

// Options controls board PNG rendering.
type Options struct {
	Width  int
	Height int
}

// DefaultOptions returns a canvas sized for one side's 3x3 grid and its
// reserve strip; Matchup stacks two such canvases.
func DefaultOptions() Options {
	return Options{Width: 900, Height: 820}
}

// Board renders a single side's Main+Reserve tiles to a PNG. label is drawn
// at the top (e.g. "P1").
func Board(b combat.Board, label string, opts Options) ([]byte, error) {
	dc := gg.NewContext(opts.Width, opts.Height)
	drawBackground(dc, opts)

	dc.SetColor(color.White)
	if err := dc.LoadFontFace(fontPath(), 22); err == nil {
		dc.DrawStringAnchored(label, float64(opts.Width)/2, 30, 0.5, 0.5)
	}

	for i := 0; i < 9; i++ {
		row, col := i/3, i%3
		x := boardMarginX + float64(col)*cellSize + cellSize/2
		y := boardMarginY + 60 + float64(row)*cellSize + cellSize/2
		drawTile(dc, b.Main[i], x, y)
	}

	reserveY := boardMarginY + 60 + 3*cellSize + reserveGapY/2
	for i := 0; i < 2; i++ {
		x := boardMarginX + float64(i)*cellSize + cellSize/2 + cellSize
		drawTile(dc, b.Reserve[i], x, reserveY)
	}

	return encodePNG(dc.Image())
}

// Matchup renders both sides' boards into one PNG, P1 above P2, the shape
// used by GET /rounds/{id}/board.png.
func Matchup(p1, p2 combat.Board, opts Options) ([]byte, error) {
	dc := gg.NewContext(opts.Width, opts.Height*2+40)
	drawBackground(dc, Options{Width: opts.Width, Height: opts.Height*2 + 40})

	top, err := Board(p1, "P1", opts)
	if err != nil {
		return nil, err
	}
	bottom, err := Board(p2, "P2", opts)
	if err != nil {
		return nil, err
	}

	topImg, err := png.Decode(bytes.NewReader(top))
	if err != nil {
		return nil, err
	}
	bottomImg, err := png.Decode(bytes.NewReader(bottom))
	if err != nil {
		return nil, err
	}
	dc.DrawImage(topImg, 0, 0)
	dc.DrawImage(bottomImg, 0, opts.Height+40)

	return encodePNG(dc.Image())
}

func drawBackground(dc *gg.Context, opts Options) {
	dc.SetColor(color.RGBA{18, 18, 28, 255})
	dc.DrawRectangle(0, 0, float64(opts.Width), float64(opts.Height))
	dc.Fill()
}

func drawTile(dc *gg.Context, t combat.Tile, x, y float64) {
	if t.Empty() {
		dc.SetColor(color.RGBA{40, 40, 55, 255})
		dc.DrawCircle(x, y, tileRadius)
		dc.Stroke()
		return
	}

	bodyColor := color.RGBA{70, 130, 200, 255}
	if t.Dead {
		bodyColor = color.RGBA{60, 60, 60, 255}
	}
	dc.SetColor(bodyColor)
	dc.DrawCircle(x, y, tileRadius)
	dc.Fill()

	dc.SetColor(color.White)
	dc.SetLineWidth(3)
	dc.DrawCircle(x, y, tileRadius)
	dc.Stroke()

	barWidth := tileRadius * 2
	barHeight := 8.0
	barY := y - tileRadius - 14
	cap := t.BaseHealthSnapshot
	if cap <= 0 {
		cap = t.CurrentHealth
	}
	pct := 0.0
	if cap > 0 {
		pct = float64(t.CurrentHealth) / float64(cap)
	}
	dc.SetColor(color.RGBA{51, 51, 51, 255})
	dc.DrawRectangle(x-barWidth/2, barY, barWidth, barHeight)
	dc.Fill()
	switch {
	case pct > 0.5:
		dc.SetColor(color.RGBA{83, 255, 69, 255})
	case pct > 0.25:
		dc.SetColor(color.RGBA{255, 149, 0, 255})
	default:
		dc.SetColor(color.RGBA{255, 62, 62, 255})
	}
	dc.DrawRectangle(x-barWidth/2, barY, barWidth*pct, barHeight)
	dc.Fill()

	dc.SetColor(color.White)
	if err := dc.LoadFontFace(fontPath(), 13); err == nil {
		dc.DrawStringAnchored(t.HeroID, x, y+tileRadius+16, 0.5, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("%d", t.CurrentHealth), x, y, 0.5, 0.5)
	}
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fontPath() string {
	return "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
}
