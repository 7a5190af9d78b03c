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

package pen

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// BoundsPen computes the bounding box of an outline.
//
// By default the tight bounding box of the outline is computed, using the
// extrema of the curve segments.  If Control is set, the box of all points,
// including off-curve control points, is computed instead.
//
// Components are drawn by looking up the base glyph in Glyphs.
type BoundsPen struct {
	Glyphs  GlyphSet
	Control bool

	// Err records the first error encountered while resolving components.
	Err error

	bbox     *rect.Rect
	current  vec.Vec2
	resolver componentResolver
}

// Bounds returns the bounding box of everything drawn so far.
// The result is nil if nothing has been drawn.
func (p *BoundsPen) Bounds() *rect.Rect {
	if p.bbox == nil {
		return nil
	}
	res := *p.bbox
	return &res
}

// MoveTo implements the [Pen] interface.
func (p *BoundsPen) MoveTo(pt vec.Vec2) {
	p.extend(pt)
	p.current = pt
}

// LineTo implements the [Pen] interface.
func (p *BoundsPen) LineTo(pt vec.Vec2) {
	p.extend(pt)
	p.current = pt
}

// CurveTo implements the [Pen] interface.
func (p *BoundsPen) CurveTo(p1, p2, p3 vec.Vec2) {
	if p.Control {
		p.extend(p1)
		p.extend(p2)
	} else {
		for _, t := range cubicExtrema(p.current, p1, p2, p3) {
			p.extend(cubicAt(p.current, p1, p2, p3, t))
		}
	}
	p.extend(p3)
	p.current = p3
}

// QCurveTo implements the [Pen] interface.
func (p *BoundsPen) QCurveTo(pts ...vec.Vec2) {
	if len(pts) == 0 {
		return
	}
	if p.Control {
		for _, pt := range pts {
			p.extend(pt)
		}
		p.current = pts[len(pts)-1]
		return
	}
	if len(pts) == 1 {
		p.LineTo(pts[0])
		return
	}
	for _, seg := range quadSegments(pts) {
		for _, t := range quadExtrema(p.current, seg[0], seg[1]) {
			p.extend(quadAt(p.current, seg[0], seg[1], t))
		}
		p.extend(seg[1])
		p.current = seg[1]
	}
}

// ClosePath implements the [Pen] interface.
func (p *BoundsPen) ClosePath() {}

// EndPath implements the [Pen] interface.
func (p *BoundsPen) EndPath() {}

// AddComponent implements the [Pen] interface.
func (p *BoundsPen) AddComponent(baseGlyph string, transform matrix.Matrix) {
	err := p.resolver.draw(p.Glyphs, p, baseGlyph, transform)
	if err != nil && p.Err == nil {
		p.Err = err
	}
}

func (p *BoundsPen) extend(pt vec.Vec2) {
	if p.bbox == nil {
		p.bbox = &rect.Rect{LLx: pt.X, LLy: pt.Y, URx: pt.X, URy: pt.Y}
		return
	}
	p.bbox.LLx = min(p.bbox.LLx, pt.X)
	p.bbox.LLy = min(p.bbox.LLy, pt.Y)
	p.bbox.URx = max(p.bbox.URx, pt.X)
	p.bbox.URy = max(p.bbox.URy, pt.Y)
}

// UnionBounds returns the smallest rectangle which contains both a and b.
// A nil argument stands for the empty set.
func UnionBounds(a, b *rect.Rect) *rect.Rect {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		res := *b
		return &res
	case b == nil:
		res := *a
		return &res
	}
	return &rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}
