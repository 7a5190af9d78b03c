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
	"math"

	"seehuhn.de/go/geom/vec"
)

// cubicExtrema returns the parameter values in (0, 1) where one of the
// coordinates of the cubic Bézier curve p0, p1, p2, p3 has a local extremum.
func cubicExtrema(p0, p1, p2, p3 vec.Vec2) []float64 {
	var res []float64
	res = cubicRoots(res, p0.X, p1.X, p2.X, p3.X)
	res = cubicRoots(res, p0.Y, p1.Y, p2.Y, p3.Y)
	return res
}

// cubicRoots appends the zeros of the derivative of a one-dimensional cubic
// Bézier curve.  The derivative is 3 (a t^2 + b t + c).
func cubicRoots(res []float64, x0, x1, x2, x3 float64) []float64 {
	d0 := x1 - x0
	d1 := x2 - x1
	d2 := x3 - x2
	a := d0 - 2*d1 + d2
	b := 2 * (d1 - d0)
	c := d0

	const eps = 1e-12
	if math.Abs(a) < eps {
		if math.Abs(b) < eps {
			return res
		}
		return appendInside(res, -c/b)
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return res
	}
	sq := math.Sqrt(disc)
	res = appendInside(res, (-b+sq)/(2*a))
	if sq > 0 {
		res = appendInside(res, (-b-sq)/(2*a))
	}
	return res
}

// quadExtrema returns the parameter values in (0, 1) where one of the
// coordinates of the quadratic Bézier curve p0, p1, p2 has a local extremum.
func quadExtrema(p0, p1, p2 vec.Vec2) []float64 {
	var res []float64
	if den := p0.X - 2*p1.X + p2.X; den != 0 {
		res = appendInside(res, (p0.X-p1.X)/den)
	}
	if den := p0.Y - 2*p1.Y + p2.Y; den != 0 {
		res = appendInside(res, (p0.Y-p1.Y)/den)
	}
	return res
}

func appendInside(res []float64, t float64) []float64 {
	if t > 0 && t < 1 {
		res = append(res, t)
	}
	return res
}

func cubicAt(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	a := s * s * s
	b := 3 * s * s * t
	c := 3 * s * t * t
	d := t * t * t
	return vec.Vec2{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

func quadAt(p0, p1, p2 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	a := s * s
	b := 2 * s * t
	c := t * t
	return vec.Vec2{
		X: a*p0.X + b*p1.X + c*p2.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y,
	}
}

// quadSegments splits the argument of a QCurveTo call into quadratic Bézier
// segments.  Each segment is given by its control point and its end point.
func quadSegments(pts []vec.Vec2) [][2]vec.Vec2 {
	n := len(pts)
	if n < 2 {
		return nil
	}
	res := make([][2]vec.Vec2, 0, n-1)
	for i := 0; i < n-1; i++ {
		ctrl := pts[i]
		end := pts[i+1]
		if i+1 < n-1 {
			end = midpoint(pts[i], pts[i+1])
		}
		res = append(res, [2]vec.Vec2{ctrl, end})
	}
	return res
}
