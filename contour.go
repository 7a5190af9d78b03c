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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/ufo/pen"
)

// Contour is a sequence of points forming one closed or open outline.
//
// Callers which keep a pointer to a point or an index into Points must not
// rely on it after points are inserted or deleted.
type Contour struct {
	Points     []*Point
	Identifier string
}

// IsOpen reports whether the contour is open.  Open contours start with a
// point of type [pen.Move].
func (c *Contour) IsOpen() bool {
	return len(c.Points) > 0 && c.Points[0].Type == pen.Move
}

// DrawPoints draws the contour into a point pen.
func (c *Contour) DrawPoints(pp pen.PointPen) {
	pp.BeginPath(c.Identifier)
	for _, pt := range c.Points {
		pp.AddPoint(pt.Vec(), pt.Type, pt.Smooth, pt.Name, pt.Identifier)
	}
	pp.EndPath()
}

// Draw draws the contour into a segment pen.
func (c *Contour) Draw(p pen.Pen) error {
	pp := pen.NewPointToSegment(p)
	c.DrawPoints(pp)
	return pp.Err
}

// Bounds returns the tight bounding box of the contour.
// The result is nil for an empty contour.
func (c *Contour) Bounds() (*rect.Rect, error) {
	bp := &pen.BoundsPen{}
	err := c.Draw(bp)
	if err != nil {
		return nil, err
	}
	return bp.Bounds(), nil
}

// ControlBounds returns the bounding box of all points of the contour,
// including off-curve points.
func (c *Contour) ControlBounds() (*rect.Rect, error) {
	bp := &pen.BoundsPen{Control: true}
	err := c.Draw(bp)
	if err != nil {
		return nil, err
	}
	return bp.Bounds(), nil
}

// Move shifts all points of the contour by (dx, dy).
func (c *Contour) Move(dx, dy float64) {
	for _, pt := range c.Points {
		pt.Move(dx, dy)
	}
}

// EnsureIdentifier implements the [LibObject] interface.
func (c *Contour) EnsureIdentifier() string {
	return ensureIdentifier(&c.Identifier)
}

// Equal reports whether two contours consist of equal points.
func (c *Contour) Equal(other *Contour) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.Identifier != other.Identifier || len(c.Points) != len(other.Points) {
		return false
	}
	for i, pt := range c.Points {
		if !pt.Equal(other.Points[i]) {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of the contour.
func (c *Contour) Copy() *Contour {
	res := &Contour{
		Identifier: c.Identifier,
		Points:     make([]*Point, len(c.Points)),
	}
	for i, pt := range c.Points {
		res.Points[i] = pt.Copy()
	}
	return res
}
