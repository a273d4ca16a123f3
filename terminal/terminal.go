package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/andrewhalle/termsnake/game"
	"github.com/andrewhalle/termsnake/render"
)

// Background styles for the game's semantic colors. Cells are painted
// as colored blanks, so only the background matters.
var (
	styleHead  = tcell.StyleDefault.Background(tcell.ColorRed)
	styleTrail = tcell.StyleDefault.Background(tcell.ColorBlue)
	styleFood  = tcell.StyleDefault.Background(tcell.ColorGreen)
)

// Terminal wraps a tcell screen as the game's drawing surface and
// input source. Init enters the alternate screen in raw mode with the
// cursor hidden; Fini restores the terminal and is safe to call more
// than once.
type Terminal struct {
	screen tcell.Screen
}

// New allocates and initializes the terminal.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	screen.Clear()
	screen.HideCursor()
	return &Terminal{screen: screen}, nil
}

// Fini restores the terminal state.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// Bounds returns the grid size as a coordinate. Valid game cells are
// 1 <= c < Bounds() on both axes.
func (t *Terminal) Bounds() game.Coord {
	w, h := t.screen.Size()
	return game.Coord{X: w, Y: h}
}

// Paint implements render.Surface. Game coordinates are 1-indexed,
// tcell cells are 0-indexed.
func (t *Terminal) Paint(c game.Coord, color render.Color) {
	style := styleHead
	switch color {
	case render.ColorTrail:
		style = styleTrail
	case render.ColorFood:
		style = styleFood
	}
	t.screen.SetContent(c.X-1, c.Y-1, ' ', nil, style)
}

// Clear implements render.Surface, restoring a cell to blank.
func (t *Terminal) Clear(c game.Coord) {
	t.screen.SetContent(c.X-1, c.Y-1, ' ', nil, tcell.StyleDefault)
}

// Flush implements render.Surface, presenting all pending cell
// updates at once.
func (t *Terminal) Flush() {
	t.screen.Show()
}
