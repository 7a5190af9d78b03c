// seehuhn.de/go/ufo - a library for reading and writing UFO font sources
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package traverse

import (
	"fmt"
	"regexp"

	"golang.org/x/text/unicode/runenames"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/ufo"
	"seehuhn.de/go/ufo/optional"
	"seehuhn.de/go/ufo/pen"
)

// glyphCtx represents an individual glyph.  Components are resolved in
// layer.
type glyphCtx struct {
	layer *ufo.Layer
	g     *ufo.Glyph
}

func (c *glyphCtx) Show() error {
	g := c.g
	fmt.Printf("Glyph: %s\n", g.Name())
	fmt.Printf("Width: %g\n", g.Width)
	fmt.Printf("Height: %g\n", g.Height)
	if vo, ok := g.VerticalOrigin.Get(); ok {
		fmt.Printf("Vertical origin: %g\n", vo)
	}
	for _, r := range g.Unicodes {
		fmt.Printf("Unicode: U+%04X %s\n", r, runenames.Name(r))
	}
	if auto := g.AutoUnicodes(); len(auto) == 1 && len(g.Unicodes) == 0 {
		fmt.Printf("Unicode from name: U+%04X %s\n", auto[0], runenames.Name(auto[0]))
	}
	if g.Note != "" {
		fmt.Printf("Note: %s\n", g.Note)
	}

	bbox, err := g.Bounds(c.layer)
	if err != nil {
		return err
	}
	if bbox != nil {
		fmt.Printf("BBox: (%g,%g)-(%g,%g)\n", bbox.LLx, bbox.LLy, bbox.URx, bbox.URy)
		margins := []struct {
			name string
			get  func(*ufo.Layer) (optional.Float, error)
		}{
			{"left", g.LeftMargin},
			{"right", g.RightMargin},
			{"bottom", g.BottomMargin},
			{"top", g.TopMargin},
		}
		for _, m := range margins {
			val, err := m.get(c.layer)
			if err != nil {
				return err
			}
			fmt.Printf("Margin %s: %s\n", m.name, val)
		}
	}

	for _, a := range g.Anchors {
		fmt.Printf("Anchor %q: (%g, %g)\n", a.Name, a.X, a.Y)
	}
	for _, comp := range g.Components {
		fmt.Printf("Component %s: %v\n", comp.BaseGlyph, comp.Transform)
	}

	p := &pen.PathPen{Glyphs: c.layer}
	err = g.Draw(p)
	if err == nil {
		err = p.Err
	}
	if err != nil {
		return err
	}
	if len(p.Path.Cmds) == 0 {
		fmt.Println("\nOutline Path: (empty)")
		return nil
	}

	fmt.Println("\nOutline Path:")
	k := 0
	coords := p.Path.Coords
	for i, cmd := range p.Path.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			fmt.Printf("  %d: MoveTo(%g, %g)\n", i, coords[k].X, coords[k].Y)
			k++
		case path.CmdLineTo:
			fmt.Printf("  %d: LineTo(%g, %g)\n", i, coords[k].X, coords[k].Y)
			k++
		case path.CmdQuadTo:
			fmt.Printf("  %d: QuadTo(%g, %g, %g, %g)\n", i,
				coords[k].X, coords[k].Y, coords[k+1].X, coords[k+1].Y)
			k += 2
		case path.CmdCubeTo:
			fmt.Printf("  %d: CurveTo(%g, %g, %g, %g, %g, %g)\n", i,
				coords[k].X, coords[k].Y, coords[k+1].X, coords[k+1].Y, coords[k+2].X, coords[k+2].Y)
			k += 3
		case path.CmdClose:
			fmt.Printf("  %d: ClosePath()\n", i)
		}
	}
	return nil
}

func (c *glyphCtx) Next() []Step {
	return []Step{{
		Match: regexp.MustCompile(`^lib$`),
		Desc:  "`lib`",
		Next: func(key string) (Context, error) {
			return &libCtx{d: c.g.Lib}, nil
		},
	}}
}
