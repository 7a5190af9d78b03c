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

// Package pen implements the pen protocol for glyph outlines.
//
// Outlines are described either segment by segment, using a [Pen], or point
// by point, using a [PointPen].  The segment protocol is convenient for
// drawing and geometry computations, the point protocol preserves all
// information stored in a UFO glyph, including point names, the smooth flag
// and identifiers.  [SegmentToPoint] and [PointToSegment] convert between the
// two.
//
// Pens do not panic when the protocol is violated.  Instead, the first error
// is recorded in the Err field of the pen and later calls have no effect on
// the error.
package pen

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Pen receives an outline segment by segment.
type Pen interface {
	// MoveTo starts a new contour.
	MoveTo(pt vec.Vec2)

	// LineTo adds a straight line to the current contour.
	LineTo(pt vec.Vec2)

	// CurveTo adds a cubic Bézier curve to the current contour.
	CurveTo(p1, p2, p3 vec.Vec2)

	// QCurveTo adds a sequence of quadratic Bézier curves.  The last point
	// is on the curve, all other points are off-curve control points.
	// Between two consecutive off-curve points an on-curve point is
	// implied, halfway between the two.
	QCurveTo(pts ...vec.Vec2)

	// ClosePath closes the current contour.
	ClosePath()

	// EndPath ends the current contour without closing it.
	EndPath()

	// AddComponent adds a reference to another glyph, transformed by the
	// given matrix.
	AddComponent(baseGlyph string, transform matrix.Matrix)
}

// PointPen receives an outline point by point.
type PointPen interface {
	// BeginPath starts a new contour.
	BeginPath(identifier string)

	// AddPoint adds a point to the current contour.
	AddPoint(pt vec.Vec2, tp PointType, smooth bool, name, identifier string)

	// EndPath ends the current contour.  A contour is closed unless its
	// first point has type [Move].
	EndPath()

	// AddComponent adds a reference to another glyph, transformed by the
	// given matrix.
	AddComponent(baseGlyph string, transform matrix.Matrix, identifier string)
}

// GlyphSet gives access to glyph outlines by name.  This is used to resolve
// components.
type GlyphSet interface {
	// DrawGlyph draws the outline of the named glyph into p.
	// If the glyph does not exist, a [*MissingGlyphError] is returned.
	DrawGlyph(name string, p Pen) error
}

// apply maps pt through the affine transformation m.
func apply(m matrix.Matrix, pt vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*pt.X + m[2]*pt.Y + m[4],
		Y: m[1]*pt.X + m[3]*pt.Y + m[5],
	}
}

// midpoint returns the point halfway between a and b.
func midpoint(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
