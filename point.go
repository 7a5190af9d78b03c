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
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/ufo/pen"
)

// Point is a point of a contour.
type Point struct {
	X, Y       float64
	Type       pen.PointType
	Smooth     bool
	Name       string
	Identifier string
}

// NewPoint returns a new point with the given coordinates and type.
func NewPoint(x, y float64, tp pen.PointType) *Point {
	return &Point{X: x, Y: y, Type: tp}
}

// Vec returns the coordinates of the point.
func (p *Point) Vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// Move shifts the point by (dx, dy).
func (p *Point) Move(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

// EnsureIdentifier implements the [LibObject] interface.
func (p *Point) EnsureIdentifier() string {
	return ensureIdentifier(&p.Identifier)
}

// Equal reports whether two points have the same coordinates and
// attributes.
func (p *Point) Equal(other *Point) bool {
	if p == nil || other == nil {
		return p == other
	}
	return *p == *other
}

// Copy returns a copy of the point.
func (p *Point) Copy() *Point {
	res := *p
	return &res
}
