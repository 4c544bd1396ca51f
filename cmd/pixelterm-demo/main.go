// Demo: layered composition on a live terminal. A gradient base layer, an
// alpha-blended pointer trail, and a status line, driven by the input
// queue.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/pixelterm/event"
	"github.com/lixenwraith/pixelterm/render"
	"github.com/lixenwraith/pixelterm/terminal"
)

var (
	flagWidth  int
	flagHeight int
	flagFPS    int
)

var rootCmd = &cobra.Command{
	Use:          "pixelterm-demo",
	Short:        "Interactive demo of the layered cell compositor",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagFPS < 1 {
			flagFPS = 1
		}
		return run()
	},
}

func main() {
	rootCmd.Flags().IntVar(&flagWidth, "width", 80, "terminal width in cells")
	rootCmd.Flags().IntVar(&flagHeight, "height", 25, "terminal height in cells")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 30, "frame rate")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "demo"})
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	grid, err := render.NewGrid(render.Config{Width: flagWidth, Height: flagHeight})
	if err != nil {
		return err
	}
	queue := event.NewQueue(0)

	base, err := grid.CreateLayer(0, render.BlendReplace)
	if err != nil {
		return err
	}
	trail, err := grid.CreateLayer(10, render.BlendAlpha)
	if err != nil {
		return err
	}
	status, err := grid.CreateLayerTop(render.BlendReplace)
	if err != nil {
		return err
	}

	drawBackground(grid, base)

	backend := terminal.NewTcellBackend(queue)
	if err := backend.Init(); err != nil {
		return err
	}
	defer backend.Fini()

	stop := make(chan struct{})
	go backend.Pump(stop)
	defer close(stop)

	logger.Info("started", "width", flagWidth, "height", flagHeight, "fps", flagFPS)

	ramp := render.Ramp(render.RGBABrightCyan, render.RGBABrightMagenta, 8)
	tick := time.NewTicker(time.Second / time.Duration(flagFPS))
	defer tick.Stop()

	lastCode := uint16(0)
	for range tick.C {
		for {
			ev, ok := queue.Poll()
			if !ok {
				break
			}
			switch ev.Type {
			case event.KeyDown:
				lastCode = ev.Code
				if ev.Code == terminal.CodeEscape || ev.Code == uint16('q') {
					logger.Info("stopped", "dropped_events", queue.Dropped())
					return nil
				}
			case event.PointerMove:
				c := ramp[(ev.X+ev.Y)%len(ramp)]
				cell := render.Cell{
					Glyph: 0xDB, // full block
					Fg:    c.WithAlpha(140),
					Bg:    c.WithAlpha(90),
				}
				if err := grid.Put(trail, ev.X, ev.Y, cell); err != nil {
					return err
				}
			}
		}

		drawStatus(grid, status, queue, lastCode)
		if err := backend.Present(grid); err != nil {
			return err
		}
	}
	return nil
}

// drawBackground fills the base layer with a framed gradient field.
func drawBackground(g *render.Grid, h render.LayerHandle) {
	w, ht := g.Width(), g.Height()
	ramp := render.Ramp(render.NewRGB(20, 20, 40), render.NewRGB(60, 20, 80), ht)
	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			g.Put(h, x, y, render.Cell{
				Glyph: 0xB0, // light shade
				Fg:    render.RGBADarkGray,
				Bg:    ramp[y],
			})
		}
	}
	frame(g, h, render.Area{X: 0, Y: 0, Width: w, Height: ht})
	g.Print(h, 2, 0, " pixelterm ", render.RGBAWhite, render.RGBABlack, 0)
	g.Print(h, 2, ht-1, " move the pointer, q to quit ", render.RGBALightGray, render.RGBABlack, 0)
}

// frame draws a double-line box on the area border.
func frame(g *render.Grid, h render.LayerHandle, a render.Area) {
	fg, bg := render.RGBALightGray, render.RGBABlack
	x1, y1 := a.X+a.Width-1, a.Y+a.Height-1
	for x := a.X + 1; x < x1; x++ {
		g.Put(h, x, a.Y, render.NewCell(0xCD, fg, bg))
		g.Put(h, x, y1, render.NewCell(0xCD, fg, bg))
	}
	for y := a.Y + 1; y < y1; y++ {
		g.Put(h, a.X, y, render.NewCell(0xBA, fg, bg))
		g.Put(h, x1, y, render.NewCell(0xBA, fg, bg))
	}
	g.Put(h, a.X, a.Y, render.NewCell(0xC9, fg, bg))
	g.Put(h, x1, a.Y, render.NewCell(0xBB, fg, bg))
	g.Put(h, a.X, y1, render.NewCell(0xC8, fg, bg))
	g.Put(h, x1, y1, render.NewCell(0xBC, fg, bg))
}

func drawStatus(g *render.Grid, h render.LayerHandle, q *event.Queue, lastCode uint16) {
	text := fmt.Sprintf(" key=%#04x pending=%d dropped=%d ", lastCode, q.Len(), q.Dropped())
	g.ClearArea(h, render.Area{X: 0, Y: g.Height() - 1, Width: g.Width(), Height: 1})
	g.Print(h, g.Width()-len(text)-2, g.Height()-1, text, render.RGBAYellow, render.RGBABlack, 0)
}
