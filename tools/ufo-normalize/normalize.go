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

package main

import (
	"math"
	"slices"

	"seehuhn.de/go/ufo"
)

type options struct {
	AutoUnicodes    bool
	CompleteOrder   bool
	Round           bool
	DropEmptyLayers bool
}

type stats struct {
	Unicodes      int
	Ordered       int
	Rounded       int
	DroppedLayers int
}

// normalize applies the selected clean-up steps to f.
func normalize(f *ufo.Font, opt *options) (*stats, error) {
	st := &stats{}

	if opt.DropEmptyLayers {
		for _, name := range f.Layers.Names() {
			l := f.Layers.Get(name)
			if l == f.DefaultLayer() || l.Len() > 0 {
				continue
			}
			_, err := f.Layers.RemoveLayer(name)
			if err != nil {
				return nil, err
			}
			tracer().Debugf("dropped empty layer %q", name)
			st.DroppedLayers++
		}
	}

	if opt.AutoUnicodes {
		for g := range f.All() {
			if len(g.Unicodes) > 0 {
				continue
			}
			if rr := g.AutoUnicodes(); rr != nil {
				g.Unicodes = rr
				st.Unicodes++
			}
		}
	}

	if opt.CompleteOrder {
		st.Ordered = completeOrder(f)
	}

	if opt.Round {
		for l := range f.Layers.All() {
			for g := range l.All() {
				roundGlyph(g)
				st.Rounded++
			}
		}
	}

	return st, nil
}

// completeOrder removes names of missing glyphs from the glyph order and
// appends the glyphs of the default layer which are not yet listed.  The
// return value is the number of names appended.
func completeOrder(f *ufo.Font) int {
	seen := make(map[string]bool)
	order := f.GlyphOrder[:0:0]
	for _, name := range f.GlyphOrder {
		if seen[name] || !f.Contains(name) {
			continue
		}
		seen[name] = true
		order = append(order, name)
	}
	n := len(order)
	for _, name := range f.Names() {
		if !seen[name] {
			order = append(order, name)
		}
	}
	f.GlyphOrder = slices.Clip(order)
	return len(order) - n
}

func roundGlyph(g *ufo.Glyph) {
	g.Width = math.Round(g.Width)
	g.Height = math.Round(g.Height)
	if vo, ok := g.VerticalOrigin.Get(); ok {
		g.VerticalOrigin.Set(math.Round(vo))
	}
	for _, c := range g.Contours {
		for _, pt := range c.Points {
			pt.X = math.Round(pt.X)
			pt.Y = math.Round(pt.Y)
		}
	}
	for _, c := range g.Components {
		c.Transform[4] = math.Round(c.Transform[4])
		c.Transform[5] = math.Round(c.Transform[5])
	}
	for _, a := range g.Anchors {
		a.X = math.Round(a.X)
		a.Y = math.Round(a.Y)
	}
}
