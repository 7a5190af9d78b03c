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
	"seehuhn.de/go/geom/vec"
)

// TransformPen applies an affine transformation to an outline before
// passing it on.
type TransformPen struct {
	Out Pen
	M   matrix.Matrix
}

// MoveTo implements the [Pen] interface.
func (p *TransformPen) MoveTo(pt vec.Vec2) {
	p.Out.MoveTo(apply(p.M, pt))
}

// LineTo implements the [Pen] interface.
func (p *TransformPen) LineTo(pt vec.Vec2) {
	p.Out.LineTo(apply(p.M, pt))
}

// CurveTo implements the [Pen] interface.
func (p *TransformPen) CurveTo(p1, p2, p3 vec.Vec2) {
	p.Out.CurveTo(apply(p.M, p1), apply(p.M, p2), apply(p.M, p3))
}

// QCurveTo implements the [Pen] interface.
func (p *TransformPen) QCurveTo(pts ...vec.Vec2) {
	tPts := make([]vec.Vec2, len(pts))
	for i, pt := range pts {
		tPts[i] = apply(p.M, pt)
	}
	p.Out.QCurveTo(tPts...)
}

// ClosePath implements the [Pen] interface.
func (p *TransformPen) ClosePath() {
	p.Out.ClosePath()
}

// EndPath implements the [Pen] interface.
func (p *TransformPen) EndPath() {
	p.Out.EndPath()
}

// AddComponent implements the [Pen] interface.
// The component transformation is applied first, followed by M.
func (p *TransformPen) AddComponent(baseGlyph string, transform matrix.Matrix) {
	p.Out.AddComponent(baseGlyph, transform.Mul(p.M))
}

// componentResolver draws components by looking up their base glyphs in a
// glyph set.  The names of the glyphs being drawn are kept on a stack, to
// detect cycles.
type componentResolver struct {
	stack []string
}

func (r *componentResolver) draw(glyphs GlyphSet, out Pen, name string, m matrix.Matrix) error {
	if glyphs == nil {
		return ErrLayerRequired
	}
	for i, other := range r.stack {
		if other == name {
			chain := append([]string{}, r.stack[i:]...)
			return &CyclicComponentError{Chain: append(chain, name)}
		}
	}
	r.stack = append(r.stack, name)
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()
	return glyphs.DrawGlyph(name, &TransformPen{Out: out, M: m})
}
