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

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/ufo/pen"
)

// Component places a transformed copy of another glyph into a glyph.
//
// The base glyph is referenced by name.  It is looked up in a layer each
// time the geometry of the component is needed.
type Component struct {
	BaseGlyph  string
	Transform  matrix.Matrix
	Identifier string
}

// NewComponent returns a component which places baseGlyph without
// transformation.
func NewComponent(baseGlyph string) *Component {
	return &Component{BaseGlyph: baseGlyph, Transform: matrix.Identity}
}

// Draw draws the component into a segment pen.
func (c *Component) Draw(p pen.Pen) {
	p.AddComponent(c.BaseGlyph, c.Transform)
}

// DrawPoints draws the component into a point pen.
func (c *Component) DrawPoints(pp pen.PointPen) {
	pp.AddComponent(c.BaseGlyph, c.Transform, c.Identifier)
}

// Bounds returns the tight bounding box of the transformed base glyph.
// The base glyph is looked up in layer.
func (c *Component) Bounds(layer *Layer) (*rect.Rect, error) {
	return c.bounds(layer, false)
}

// ControlBounds returns the bounding box of all points of the transformed
// base glyph, including off-curve points.
func (c *Component) ControlBounds(layer *Layer) (*rect.Rect, error) {
	return c.bounds(layer, true)
}

func (c *Component) bounds(layer *Layer, control bool) (*rect.Rect, error) {
	bp := newBoundsPen(layer, control)
	c.Draw(bp)
	if bp.Err != nil {
		return nil, bp.Err
	}
	return bp.Bounds(), nil
}

// Move shifts the component by (dx, dy).
func (c *Component) Move(dx, dy float64) {
	c.Transform[4] += dx
	c.Transform[5] += dy
}

// EnsureIdentifier implements the [LibObject] interface.
func (c *Component) EnsureIdentifier() string {
	return ensureIdentifier(&c.Identifier)
}

// Equal reports whether two components are the same.
func (c *Component) Equal(other *Component) bool {
	if c == nil || other == nil {
		return c == other
	}
	return *c == *other
}

// Copy returns a copy of the component.
func (c *Component) Copy() *Component {
	res := *c
	return &res
}

// newBoundsPen returns a bounds pen which resolves components in layer.
// A nil layer leaves the glyph set unset, so that components report
// [ErrLayerRequired].
func newBoundsPen(layer *Layer, control bool) *pen.BoundsPen {
	bp := &pen.BoundsPen{Control: control}
	if layer != nil {
		bp.Glyphs = layer
	}
	return bp
}
