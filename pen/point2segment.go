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

// PointToSegment implements the [PointPen] interface by forwarding the
// outline to a [Pen].
//
// Closed contours are rotated so that every segment ends on an on-curve
// point.  A closed contour without on-curve points is a quadratic contour;
// for these an on-curve point is implied halfway between the last and the
// first point.
type PointToSegment struct {
	Out Pen

	// OutputImpliedClosingLine, if set, causes the closing line of a
	// closed contour to be drawn explicitly.  By default the LineTo to the
	// starting point is omitted and left to ClosePath.
	OutputImpliedClosingLine bool

	// Err records the first protocol violation.
	Err error

	points []pointRecord
	inPath bool
}

type pointRecord struct {
	pt vec.Vec2
	tp PointType
}

// NewPointToSegment returns a new point pen which writes to out.
func NewPointToSegment(out Pen) *PointToSegment {
	return &PointToSegment{Out: out}
}

// BeginPath implements the [PointPen] interface.
func (p *PointToSegment) BeginPath(identifier string) {
	if p.inPath {
		p.fail(errors.New("BeginPath inside a contour"))
		p.flush()
	}
	p.points = p.points[:0]
	p.inPath = true
}

// AddPoint implements the [PointPen] interface.
func (p *PointToSegment) AddPoint(pt vec.Vec2, tp PointType, smooth bool, name, identifier string) {
	if !p.inPath {
		p.fail(errors.New("AddPoint outside a contour"))
		return
	}
	if !tp.IsValid() {
		if p.Err == nil {
			p.Err = fmt.Errorf("%w: %s", ErrInvalidSegmentKind, tp)
		}
		return
	}
	p.points = append(p.points, pointRecord{pt, tp})
}

// EndPath implements the [PointPen] interface.
func (p *PointToSegment) EndPath() {
	if !p.inPath {
		p.fail(errors.New("EndPath without BeginPath"))
		return
	}
	p.flush()
}

// AddComponent implements the [PointPen] interface.
func (p *PointToSegment) AddComponent(baseGlyph string, transform matrix.Matrix, identifier string) {
	if p.inPath {
		p.fail(errors.New("AddComponent inside a contour"))
		p.flush()
	}
	p.Out.AddComponent(baseGlyph, transform)
}

func (p *PointToSegment) fail(err error) {
	if p.Err == nil {
		p.Err = fmt.Errorf("%w: %w", ErrInvalidContour, err)
	}
}

type segment struct {
	tp  PointType
	pts []vec.Vec2
}

func (p *PointToSegment) flush() {
	points := p.points
	p.points = p.points[:0]
	p.inPath = false

	if len(points) == 0 {
		return
	}
	if len(points) == 1 {
		p.Out.MoveTo(points[0].pt)
		p.Out.EndPath()
		return
	}
	for _, rec := range points[1:] {
		if rec.tp == Move {
			p.fail(errors.New("move point inside a contour"))
			return
		}
	}

	closed := points[0].tp != Move
	var start vec.Vec2
	if !closed {
		start = points[0].pt
		points = points[1:]
	} else {
		first := -1
		for i, rec := range points {
			if rec.tp.IsOnCurve() {
				first = i
				break
			}
		}
		if first < 0 {
			p.drawOffCurveContour(points)
			return
		}
		rotated := make([]pointRecord, 0, len(points))
		rotated = append(rotated, points[first+1:]...)
		rotated = append(rotated, points[:first+1]...)
		points = rotated
		start = points[len(points)-1].pt
	}

	var segments []segment
	var current []vec.Vec2
	for _, rec := range points {
		current = append(current, rec.pt)
		if rec.tp == OffCurve {
			continue
		}
		segments = append(segments, segment{tp: rec.tp, pts: current})
		current = nil
	}
	// trailing off-curve points of an open contour are dropped

	out := p.Out
	out.MoveTo(start)
	last := start
	for i, seg := range segments {
		end := seg.pts[len(seg.pts)-1]
		switch seg.tp {
		case Line:
			if len(seg.pts) != 1 {
				p.fail(fmt.Errorf("line segment with %d off-curve points", len(seg.pts)-1))
				out.LineTo(end)
			} else if i+1 != len(segments) || p.OutputImpliedClosingLine || !closed || end == last {
				out.LineTo(end)
			}
		case Curve:
			switch len(seg.pts) {
			case 1:
				out.LineTo(end)
			case 2:
				out.QCurveTo(seg.pts...)
			case 3:
				out.CurveTo(seg.pts[0], seg.pts[1], seg.pts[2])
			default:
				p.fail(fmt.Errorf("curve segment with %d off-curve points", len(seg.pts)-1))
				out.LineTo(end)
			}
		case QCurve:
			out.QCurveTo(seg.pts...)
		}
		last = end
	}
	if closed {
		out.ClosePath()
	} else {
		out.EndPath()
	}
}

// drawOffCurveContour draws a closed quadratic contour which consists only of
// off-curve points.
func (p *PointToSegment) drawOffCurveContour(points []pointRecord) {
	pts := make([]vec.Vec2, 0, len(points)+1)
	for _, rec := range points {
		pts = append(pts, rec.pt)
	}
	implied := midpoint(pts[len(pts)-1], pts[0])
	pts = append(pts, implied)
	p.Out.MoveTo(implied)
	p.Out.QCurveTo(pts...)
	p.Out.ClosePath()
}
