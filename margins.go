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

package ufo

import "seehuhn.de/go/ufo/optional"

// The margins of a glyph are the distances between its bounding box and the
// advance box.  All margin methods take a layer, which is used to resolve
// components.  The layer may be nil for glyphs without components.
//
// The margin getters return an unset value for glyphs without outline.  The
// setters do nothing for such glyphs.  Setting a margin to its current value
// leaves the glyph unchanged.  Glyphs which use the modified glyph as a
// component are never updated.

// LeftMargin returns the distance from the origin to the left edge of the
// glyph's bounding box.
func (g *Glyph) LeftMargin(layer *Layer) (optional.Float, error) {
	var res optional.Float
	bbox, err := g.Bounds(layer)
	if err != nil || bbox == nil {
		return res, err
	}
	res.Set(bbox.LLx)
	return res, nil
}

// SetLeftMargin changes the left margin.  The outline, components and
// anchors are shifted horizontally and the width is adjusted, so that the
// right margin stays the same.
func (g *Glyph) SetLeftMargin(value float64, layer *Layer) error {
	bbox, err := g.Bounds(layer)
	if err != nil || bbox == nil {
		return err
	}
	diff := value - bbox.LLx
	if diff != 0 {
		g.Width += diff
		g.Move(diff, 0)
	}
	return nil
}

// RightMargin returns the distance from the right edge of the glyph's
// bounding box to the advance width.
func (g *Glyph) RightMargin(layer *Layer) (optional.Float, error) {
	var res optional.Float
	bbox, err := g.Bounds(layer)
	if err != nil || bbox == nil {
		return res, err
	}
	res.Set(g.Width - bbox.URx)
	return res, nil
}

// SetRightMargin changes the right margin by adjusting the width.
func (g *Glyph) SetRightMargin(value float64, layer *Layer) error {
	bbox, err := g.Bounds(layer)
	if err != nil || bbox == nil {
		return err
	}
	width := bbox.URx + value
	if width != g.Width {
		g.Width = width
	}
	return nil
}

// TopMargin returns the distance from the top edge of the glyph's bounding
// box to the vertical origin.
func (g *Glyph) TopMargin(layer *Layer) (optional.Float, error) {
	var res optional.Float
	bbox, err := g.Bounds(layer)
	if err != nil || bbox == nil {
		return res, err
	}
	res.Set(g.VerticalOrigin.Or(g.Height) - bbox.URy)
	return res, nil
}

// SetTopMargin changes the top margin.  The vertical origin is moved and
// the height is adjusted, so that the bottom margin stays the same.
func (g *Glyph) SetTopMargin(value float64, layer *Layer) error {
	bbox, err := g.Bounds(layer)
	if err != nil || bbox == nil {
		return err
	}
	old := g.VerticalOrigin.Or(g.Height) - bbox.URy
	if old != value {
		g.VerticalOrigin.Set(bbox.URy + value)
		g.Height += value - old
	}
	return nil
}

// BottomMargin returns the distance from the bottom of the vertical advance
// box to the bottom edge of the glyph's bounding box.
func (g *Glyph) BottomMargin(layer *Layer) (optional.Float, error) {
	var res optional.Float
	bbox, err := g.Bounds(layer)
	if err != nil || bbox == nil {
		return res, err
	}
	bottom := bbox.LLy
	if vo, ok := g.VerticalOrigin.Get(); ok {
		bottom -= vo - g.Height
	}
	res.Set(bottom)
	return res, nil
}

// SetBottomMargin changes the bottom margin by adjusting the height.
// If the vertical origin is unset, it is first set to the current height,
// so that the top margin stays the same.  The outline is not moved.
func (g *Glyph) SetBottomMargin(value float64, layer *Layer) error {
	bbox, err := g.Bounds(layer)
	if err != nil || bbox == nil {
		return err
	}
	old := bbox.LLy
	vo, ok := g.VerticalOrigin.Get()
	if ok {
		old -= vo - g.Height
	}
	diff := value - old
	if diff != 0 {
		if !ok {
			g.VerticalOrigin.Set(g.Height)
		}
		g.Height += diff
	}
	return nil
}
