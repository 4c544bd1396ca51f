// Atlas viewer: rasterizes a range of CP437 glyphs through the real pixel
// pipeline and prints the resulting masks to stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/pixelterm/render"
)

func main() {
	first := flag.Int("first", 0, "first glyph index")
	last := flag.Int("last", 255, "last glyph index")
	perRow := flag.Int("columns", 8, "glyphs per row")
	flag.Parse()

	if *first < 0 || *last > 255 || *first > *last || *perRow < 1 {
		log.Error("invalid glyph range", "first", *first, "last", *last)
		os.Exit(1)
	}

	count := *last - *first + 1
	rows := (count + *perRow - 1) / *perRow

	grid, err := render.NewGrid(render.Config{Width: *perRow, Height: rows, MaxLayers: 1})
	if err != nil {
		log.Error("grid", "err", err)
		os.Exit(1)
	}
	layer, err := grid.CreateLayer(0, render.BlendReplace)
	if err != nil {
		log.Error("layer", "err", err)
		os.Exit(1)
	}
	for i := 0; i < count; i++ {
		g := byte(*first + i)
		if err := grid.Put(layer, i%*perRow, i / *perRow, render.NewCell(g, render.RGBAWhite, render.RGBABlack)); err != nil {
			log.Error("put", "glyph", g, "err", err)
			os.Exit(1)
		}
	}

	pw, ph := grid.PixelExtent()
	pixels := make([]uint32, pw*ph)
	if err := grid.Render(render.NewPixelBuffer(pixels, pw)); err != nil {
		log.Error("render", "err", err)
		os.Exit(1)
	}

	white := render.RGBAWhite.ARGB()
	var sb strings.Builder
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if pixels[y*pw+x] == white {
				sb.WriteRune('█')
			} else {
				sb.WriteRune('·')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}
