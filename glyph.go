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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/ufo/lib"
	"seehuhn.de/go/ufo/optional"
	"seehuhn.de/go/ufo/pen"
)

// Glyph is a single glyph of a layer.
//
// A glyph which is not part of a layer may be unnamed.  The name of a glyph
// inside a layer can only be changed through the layer, see
// [Layer.RenameGlyph].
type Glyph struct {
	name string

	Width  float64
	Height float64

	// VerticalOrigin is the y-coordinate of the origin for vertical
	// typesetting.  If unset, Height is used.
	VerticalOrigin optional.Float

	Unicodes []rune
	Note     string
	Image    *Image

	Contours   []*Contour
	Components []*Component
	Anchors    []*Anchor
	Guidelines []*Guideline

	Lib *lib.Dict

	objectLibs map[string]*lib.Dict
	layer      *Layer
}

// NewGlyph allocates a new, empty glyph which is not part of any layer.
// The name may be empty.
func NewGlyph(name string) *Glyph {
	return &Glyph{name: name, Lib: lib.NewDict()}
}

// Name returns the name of the glyph.
func (g *Glyph) Name() string {
	return g.name
}

// Unicode returns the first code point assigned to the glyph.
func (g *Glyph) Unicode() (rune, bool) {
	if len(g.Unicodes) == 0 {
		return 0, false
	}
	return g.Unicodes[0], true
}

// Pen returns a segment pen which appends contours and components to the
// glyph.
func (g *Glyph) Pen() *pen.SegmentToPoint {
	return pen.NewSegmentToPoint(g.PointPen())
}

// PointPen returns a point pen which appends contours and components to the
// glyph.
func (g *Glyph) PointPen() pen.PointPen {
	return &glyphPointPen{g: g}
}

// DrawPoints draws the contours and components of the glyph into a point
// pen.
func (g *Glyph) DrawPoints(pp pen.PointPen) {
	for _, c := range g.Contours {
		c.DrawPoints(pp)
	}
	for _, c := range g.Components {
		c.DrawPoints(pp)
	}
}

// Draw draws the contours and components of the glyph into a segment pen.
func (g *Glyph) Draw(p pen.Pen) error {
	pp := pen.NewPointToSegment(p)
	g.DrawPoints(pp)
	return pp.Err
}

// Bounds returns the tight bounding box of the glyph outline.
// Components are resolved in layer, which may be nil if the glyph has no
// components.  The result is nil if the glyph has no outline.
func (g *Glyph) Bounds(layer *Layer) (*rect.Rect, error) {
	return g.bounds(layer, false)
}

// ControlBounds returns the bounding box of all points of the glyph,
// including off-curve points.
func (g *Glyph) ControlBounds(layer *Layer) (*rect.Rect, error) {
	return g.bounds(layer, true)
}

func (g *Glyph) bounds(layer *Layer, control bool) (*rect.Rect, error) {
	bp := newBoundsPen(layer, control)
	err := g.Draw(bp)
	if err != nil {
		return nil, err
	}
	if bp.Err != nil {
		return nil, bp.Err
	}
	return bp.Bounds(), nil
}

// Move shifts all contours, components and anchors by (dx, dy).
func (g *Glyph) Move(dx, dy float64) {
	for _, c := range g.Contours {
		c.Move(dx, dy)
	}
	for _, c := range g.Components {
		c.Move(dx, dy)
	}
	for _, a := range g.Anchors {
		a.Move(dx, dy)
	}
}

// Clear removes the outline, anchors, guidelines and image of the glyph.
func (g *Glyph) Clear() {
	g.Contours = nil
	g.Components = nil
	g.Anchors = nil
	g.Guidelines = nil
	g.Image = nil
}

// ObjectLib returns the lib of an anchor, component, contour, guideline or
// point of this glyph.  An identifier is assigned to obj, if it does not
// have one yet.  Changes to the returned dictionary are stored in the
// glyph.
func (g *Glyph) ObjectLib(obj LibObject) *lib.Dict {
	id := obj.EnsureIdentifier()
	if g.objectLibs == nil {
		g.objectLibs = make(map[string]*lib.Dict)
	}
	d, ok := g.objectLibs[id]
	if !ok {
		d = lib.NewDict()
		g.objectLibs[id] = d
	}
	return d
}

// liveIdentifiers returns the identifiers of all objects in the glyph.
func (g *Glyph) liveIdentifiers() map[string]bool {
	ids := make(map[string]bool)
	add := func(id string) {
		if id != "" {
			ids[id] = true
		}
	}
	for _, c := range g.Contours {
		add(c.Identifier)
		for _, pt := range c.Points {
			add(pt.Identifier)
		}
	}
	for _, c := range g.Components {
		add(c.Identifier)
	}
	for _, a := range g.Anchors {
		add(a.Identifier)
	}
	for _, gl := range g.Guidelines {
		add(gl.Identifier)
	}
	return ids
}

// Copy returns a deep copy of the glyph.  The copy has the same name, but
// is not part of any layer.
func (g *Glyph) Copy() *Glyph {
	return g.CopyAs(g.name)
}

// CopyAs returns a deep copy of the glyph under a new name.
func (g *Glyph) CopyAs(name string) *Glyph {
	res := &Glyph{name: name}
	res.CopyDataFrom(g)
	return res
}

// CopyDataFrom replaces all data of g with deep copies of the data in
// other.  The name of g is not changed.
func (g *Glyph) CopyDataFrom(other *Glyph) {
	g.Width = other.Width
	g.Height = other.Height
	g.VerticalOrigin = other.VerticalOrigin
	g.Unicodes = slices.Clone(other.Unicodes)
	g.Note = other.Note
	g.Image = other.Image.Copy()
	g.Contours = make([]*Contour, len(other.Contours))
	for i, c := range other.Contours {
		g.Contours[i] = c.Copy()
	}
	g.Components = make([]*Component, len(other.Components))
	for i, c := range other.Components {
		g.Components[i] = c.Copy()
	}
	g.Anchors = make([]*Anchor, len(other.Anchors))
	for i, a := range other.Anchors {
		g.Anchors[i] = a.Copy()
	}
	g.Guidelines = make([]*Guideline, len(other.Guidelines))
	for i, gl := range other.Guidelines {
		g.Guidelines[i] = gl.Copy()
	}
	g.Lib = other.Lib.Copy()
	g.objectLibs = remapObjectLibs(other.objectLibs, g.liveIdentifiers())
}

// Equal reports whether two glyphs have the same name and data.
// Object libs are compared after removing empty and unused entries.
func (g *Glyph) Equal(other *Glyph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.name != other.name ||
		g.Width != other.Width ||
		g.Height != other.Height ||
		!g.VerticalOrigin.Equal(other.VerticalOrigin) ||
		!slices.Equal(g.Unicodes, other.Unicodes) ||
		g.Note != other.Note ||
		!g.Image.Equal(other.Image) {
		return false
	}
	if !slices.EqualFunc(g.Contours, other.Contours, (*Contour).Equal) ||
		!slices.EqualFunc(g.Components, other.Components, (*Component).Equal) ||
		!slices.EqualFunc(g.Anchors, other.Anchors, (*Anchor).Equal) ||
		!slices.EqualFunc(g.Guidelines, other.Guidelines, (*Guideline).Equal) {
		return false
	}
	if !libEqual(g.Lib, other.Lib, glyphManagedKeys...) {
		return false
	}
	return objectLibsEqual(
		pruneObjectLibs(g.objectLibs, g.liveIdentifiers()),
		pruneObjectLibs(other.objectLibs, other.liveIdentifiers()))
}

// glyphPointPen appends the outline it receives to a glyph.
type glyphPointPen struct {
	g       *Glyph
	contour *Contour
}

func (p *glyphPointPen) BeginPath(identifier string) {
	p.contour = &Contour{Identifier: identifier}
}

func (p *glyphPointPen) AddPoint(pt vec.Vec2, tp pen.PointType, smooth bool, name, identifier string) {
	if p.contour == nil {
		p.BeginPath("")
	}
	p.contour.Points = append(p.contour.Points, &Point{
		X:          pt.X,
		Y:          pt.Y,
		Type:       tp,
		Smooth:     smooth,
		Name:       name,
		Identifier: identifier,
	})
}

func (p *glyphPointPen) EndPath() {
	if p.contour == nil {
		return
	}
	p.g.Contours = append(p.g.Contours, p.contour)
	p.contour = nil
}

func (p *glyphPointPen) AddComponent(baseGlyph string, transform matrix.Matrix, identifier string) {
	p.g.Components = append(p.g.Components, &Component{
		BaseGlyph:  baseGlyph,
		Transform:  transform,
		Identifier: identifier,
	})
}
