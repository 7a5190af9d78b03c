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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// SegmentToPoint implements the [Pen] interface by forwarding the outline to
// a [PointPen].
//
// When a contour is closed and its last point coincides with the starting
// point, the two points are merged.  Otherwise the starting point of a closed
// contour becomes the end point of the implied closing line.
type SegmentToPoint struct {
	Out PointPen

	// Err records the first protocol violation.
	Err error

	contour []segmentPoint
	open    bool
}

type segmentPoint struct {
	pt vec.Vec2
	tp PointType
}

// NewSegmentToPoint returns a new pen which writes to out.
func NewSegmentToPoint(out PointPen) *SegmentToPoint {
	return &SegmentToPoint{Out: out}
}

// MoveTo implements the [Pen] interface.
func (p *SegmentToPoint) MoveTo(pt vec.Vec2) {
	if p.open {
		p.fail(errors.New("MoveTo inside an open contour"))
		p.flush()
	}
	p.contour = append(p.contour[:0], segmentPoint{pt, Move})
	p.open = true
}

// LineTo implements the [Pen] interface.
func (p *SegmentToPoint) LineTo(pt vec.Vec2) {
	if !p.check("LineTo") {
		return
	}
	p.contour = append(p.contour, segmentPoint{pt, Line})
}

// CurveTo implements the [Pen] interface.
func (p *SegmentToPoint) CurveTo(p1, p2, p3 vec.Vec2) {
	if !p.check("CurveTo") {
		return
	}
	p.contour = append(p.contour,
		segmentPoint{p1, OffCurve},
		segmentPoint{p2, OffCurve},
		segmentPoint{p3, Curve})
}

// QCurveTo implements the [Pen] interface.
func (p *SegmentToPoint) QCurveTo(pts ...vec.Vec2) {
	if !p.check("QCurveTo") {
		return
	}
	if len(pts) == 0 {
		p.fail(errors.New("QCurveTo without points"))
		return
	}
	last := len(pts) - 1
	for _, pt := range pts[:last] {
		p.contour = append(p.contour, segmentPoint{pt, OffCurve})
	}
	p.contour = append(p.contour, segmentPoint{pts[last], QCurve})
}

// ClosePath implements the [Pen] interface.
func (p *SegmentToPoint) ClosePath() {
	if !p.check("ClosePath") {
		return
	}
	n := len(p.contour)
	if n > 1 && p.contour[0].pt == p.contour[n-1].pt {
		p.contour[0] = p.contour[n-1]
		p.contour = p.contour[:n-1]
	} else if p.contour[0].tp == Move {
		p.contour[0].tp = Line
	}
	p.flush()
}

// EndPath implements the [Pen] interface.
func (p *SegmentToPoint) EndPath() {
	if !p.check("EndPath") {
		return
	}
	p.flush()
}

// AddComponent implements the [Pen] interface.
func (p *SegmentToPoint) AddComponent(baseGlyph string, transform matrix.Matrix) {
	if p.open {
		p.fail(errors.New("AddComponent inside an open contour"))
		p.flush()
	}
	p.Out.AddComponent(baseGlyph, transform, "")
}

func (p *SegmentToPoint) check(op string) bool {
	if !p.open {
		p.fail(errors.New(op + " without MoveTo"))
		return false
	}
	return true
}

func (p *SegmentToPoint) fail(err error) {
	if p.Err == nil {
		p.Err = fmt.Errorf("%w: %w", ErrInvalidContour, err)
	}
}

func (p *SegmentToPoint) flush() {
	p.Out.BeginPath("")
	for _, sp := range p.contour {
		p.Out.AddPoint(sp.pt, sp.tp, false, "", "")
	}
	p.Out.EndPath()
	p.contour = p.contour[:0]
	p.open = false
}
