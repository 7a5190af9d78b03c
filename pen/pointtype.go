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

import "fmt"

// PointType describes the role of a point in a contour.
//
// The type of an on-curve point gives the kind of segment which ends at the
// point.
type PointType uint8

// These are the valid point types.
const (
	OffCurve PointType = iota // control point, not on the curve
	Move                      // first point of an open contour
	Line                      // end of a straight line segment
	Curve                     // end of a cubic Bézier segment
	QCurve                    // end of a quadratic Bézier segment
)

// ParsePointType converts the point type used in GLIF files to a PointType.
// The empty string denotes an off-curve point.
func ParsePointType(s string) (PointType, error) {
	switch s {
	case "", "offcurve":
		return OffCurve, nil
	case "move":
		return Move, nil
	case "line":
		return Line, nil
	case "curve":
		return Curve, nil
	case "qcurve":
		return QCurve, nil
	}
	return 0, fmt.Errorf("%w %q", ErrInvalidSegmentKind, s)
}

// IsValid reports whether tp is one of the defined point types.
func (tp PointType) IsValid() bool {
	return tp <= QCurve
}

// IsOnCurve reports whether points of this type lie on the outline.
func (tp PointType) IsOnCurve() bool {
	return tp != OffCurve
}

func (tp PointType) String() string {
	switch tp {
	case OffCurve:
		return "offcurve"
	case Move:
		return "move"
	case Line:
		return "line"
	case Curve:
		return "curve"
	case QCurve:
		return "qcurve"
	default:
		return fmt.Sprintf("PointType(%d)", uint8(tp))
	}
}
