package tui

import (
	"github.com/vovakirdan/flying-bird/internal/core"
	"github.com/vovakirdan/flying-bird/internal/game"
)

// sampleMode decides how a bitmap maps onto its destination cells.
type sampleMode int

const (
	sampleStretch sampleMode = iota // Scale the art to the destination
	sampleTile                      // Repeat the art from the destination origin
)

// bitmap is a small glyph image. Spaces are transparent.
type bitmap struct {
	rows   [][]rune
	colors map[rune]core.Color
	base   core.Color
	mode   sampleMode
	opaque bool // Draw spaces too
}

func newBitmap(mode sampleMode, opaque bool, base core.Color, colors map[rune]core.Color, rows ...string) bitmap {
	b := bitmap{mode: mode, opaque: opaque, base: base, colors: colors}
	for _, r := range rows {
		b.rows = append(b.rows, []rune(r))
	}
	return b
}

func (b bitmap) width() int {
	w := 0
	for _, r := range b.rows {
		w = max(w, len(r))
	}
	return w
}

// sample returns the cell for offset (dx, dy) inside a destination of w x h cells.
func (b bitmap) sample(dx, dy, w, h int) (core.Cell, bool) {
	bw, bh := b.width(), len(b.rows)
	if bw == 0 || bh == 0 || w <= 0 || h <= 0 {
		return core.Cell{}, false
	}

	var sx, sy int
	switch b.mode {
	case sampleTile:
		sx, sy = dx%bw, dy%bh
	default:
		sx, sy = dx*bw/w, dy*bh/h
	}

	row := b.rows[sy]
	r := ' '
	if sx < len(row) {
		r = row[sx]
	}
	if r == ' ' && !b.opaque {
		return core.Cell{}, false
	}

	c, ok := b.colors[r]
	if !ok {
		c = b.base
	}
	return core.Cell{Rune: r, Color: c}, true
}

// sprites holds the terminal art for every game sprite.
var sprites = map[game.Sprite]bitmap{
	game.SpriteBackground: newBitmap(sampleTile, true, core.ColorSky, map[rune]core.Color{
		'~': core.ColorCloud,
		'.': core.ColorGray,
		'"': core.ColorGrass,
	},
		"                          .                     ",
		"        ~~~~                        ~~~         ",
		"      ~~~~~~~~                    ~~~~~~~       ",
		"                  .                             ",
		"                              ~~                ",
		"   .                        ~~~~~~        .     ",
		"                                                ",
		"              ~~~~~                             ",
		"            ~~~~~~~~~            .              ",
		"                                        \"       ",
		"     \"                  \"                       ",
	),
	game.SpriteObstacle: newBitmap(sampleStretch, false, core.ColorObstacle, nil,
		"▐█▌",
	),
	game.SpriteBird: newBitmap(sampleStretch, false, core.ColorBird, map[rune]core.Color{
		'>': core.ColorBeak,
	},
		"(o>",
		"^^ ",
	),
}
