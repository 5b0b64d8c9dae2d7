// Package viewer shows a finished placement search in the terminal and
// lets the user step through the tied placements.
package viewer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/towermaze/cutoff"
	"github.com/katalvlaran/towermaze/gridgraph"
)

// tileWidth is the number of terminal columns per map tile.
const tileWidth = 3

// cursor is the index of the shown placement among n.
type cursor struct {
	i, n int
}

func (c cursor) next() cursor {
	if c.n == 0 {
		return c
	}
	c.i = (c.i + 1) % c.n
	return c
}

func (c cursor) prev() cursor {
	if c.n == 0 {
		return c
	}
	c.i = (c.i - 1 + c.n) % c.n
	return c
}

// Viewer draws one grid with the placements of a Result overlaid.
type Viewer struct {
	screen tcell.Screen
	grid   *gridgraph.Grid
	res    *cutoff.Result
	cur    cursor
}

// New binds a viewer to an initialized screen. The grid is only read.
func New(screen tcell.Screen, g *gridgraph.Grid, res *cutoff.Result) *Viewer {
	return &Viewer{
		screen: screen,
		grid:   g,
		res:    res,
		cur:    cursor{n: len(res.Placements)},
	}
}

// Run draws and processes events until the user quits.
// The caller owns Init and Fini of the screen.
func (v *Viewer) Run() error {
	v.draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !v.handle(ev) {
			return nil
		}
	}
}

// handle applies one event and reports whether to keep running.
func (v *Viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.cur = v.cur.prev()
		case tcell.KeyRight:
			v.cur = v.cur.next()
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
			return true
		default:
			return true
		}
		v.draw()
	case *tcell.EventResize:
		v.screen.Sync()
		v.draw()
	}
	return true
}

func (v *Viewer) placement() cutoff.Placement {
	if v.cur.n == 0 {
		return nil
	}
	return v.res.Placements[v.cur.i]
}

func (v *Viewer) draw() {
	v.screen.Clear()
	kinds := v.grid.Overlay(v.placement())
	for y, row := range kinds {
		for x, k := range row {
			st := styleOf(k)
			for dx := 0; dx < tileWidth; dx++ {
				r := ' '
				if dx == tileWidth/2 {
					r = k.Glyph()
				}
				v.screen.SetContent(x*tileWidth+dx, y, r, nil, st)
			}
		}
	}
	v.text(0, v.grid.Height, v.status())
	v.text(0, v.grid.Height+1, "left/right: cycle  q: quit")
	v.screen.Show()
}

func (v *Viewer) status() string {
	if v.cur.n == 0 {
		return fmt.Sprintf("no placement: map unsolvable  combinations %d", v.res.Combinations)
	}
	return fmt.Sprintf("placement %d/%d  distance %d  combinations %d  took %s",
		v.cur.i+1, v.cur.n, v.res.Distance, v.res.Combinations, v.res.Duration)
}

func (v *Viewer) text(x, y int, s string) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

func styleOf(k gridgraph.TileKind) tcell.Style {
	st := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	switch k {
	case gridgraph.Free:
		return st.Background(tcell.NewRGBColor(0xa1, 0x6b, 0x55))
	case gridgraph.Unbuildable:
		return st.Background(tcell.NewRGBColor(0x6e, 0x3b, 0x27))
	case gridgraph.Spawn:
		return st.Background(tcell.ColorRed)
	case gridgraph.Exit:
		return st.Background(tcell.ColorGreen)
	case gridgraph.Occupied:
		return st.Background(tcell.NewRGBColor(0x6e, 0x1f, 0xa6))
	case gridgraph.Path:
		return st.Background(tcell.NewRGBColor(0xf7, 0xed, 0x23)).Foreground(tcell.ColorBlack)
	default:
		return tcell.StyleDefault
	}
}
