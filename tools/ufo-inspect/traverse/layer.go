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
	"strings"

	"seehuhn.de/go/ufo"
)

type layerListCtx struct {
	ls *ufo.LayerSet
}

func (c *layerListCtx) Show() error {
	for l := range c.ls.All() {
		mark := " "
		if l == c.ls.Default() {
			mark = "*"
		}
		color := ""
		if l.Color != nil {
			color = " color=" + l.Color.String()
		}
		fmt.Printf("%s %-24s %5d glyphs%s\n", mark, l.Name(), l.Len(), color)
	}
	return nil
}

func (c *layerListCtx) Next() []Step {
	return []Step{{
		Match: regexp.MustCompile(`^.+$`),
		Desc:  "layer name",
		Next: func(key string) (Context, error) {
			l := c.ls.Get(key)
			if l == nil {
				return nil, &KeyError{Key: key, Ctx: "layers"}
			}
			return &layerCtx{l: l}, nil
		},
	}}
}

type layerCtx struct {
	l *ufo.Layer
}

func (c *layerCtx) Show() error {
	const indent = "  "

	fmt.Printf("Layer %q:\n", c.l.Name())
	fmt.Printf("%s Name               | Unicode |    Width | BBox (LLx,LLy)-(URx,URy)\n", indent)
	fmt.Printf("%s--------------------|---------|----------|-------------------------\n", indent)

	for g := range c.l.All() {
		var codes []string
		for _, r := range g.Unicodes {
			codes = append(codes, fmt.Sprintf("%04X", r))
		}

		bboxStr := ""
		bbox, err := g.Bounds(c.l)
		if err != nil {
			bboxStr = "error: " + err.Error()
		} else if bbox != nil {
			bboxStr = fmt.Sprintf("(%g,%g)-(%g,%g)", bbox.LLx, bbox.LLy, bbox.URx, bbox.URy)
		}

		fmt.Printf("%s%-19s | %-7s | %8g | %s\n",
			indent, g.Name(), strings.Join(codes, ","), g.Width, bboxStr)
	}
	return nil
}

func (c *layerCtx) Next() []Step {
	return []Step{
		{
			Match: regexp.MustCompile(`^lib$`),
			Desc:  "`lib`",
			Next: func(key string) (Context, error) {
				return &libCtx{d: c.l.Lib}, nil
			},
		},
		{
			Match: regexp.MustCompile(`^glyph:.+$`),
			Desc:  "`glyph:` followed by a glyph name",
			Next: func(key string) (Context, error) {
				return c.glyph(strings.TrimPrefix(key, "glyph:"))
			},
		},
		{
			Match: regexp.MustCompile(`^.+$`),
			Desc:  "glyph name",
			Next:  c.glyph,
		},
	}
}

func (c *layerCtx) glyph(key string) (Context, error) {
	g := c.l.Get(key)
	if g == nil {
		return nil, &KeyError{Key: key, Ctx: "layer " + c.l.Name()}
	}
	return &glyphCtx{layer: c.l, g: g}, nil
}
