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
	"fmt"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Recording is a [Pen] which stores all calls, so that they can be replayed
// later.
type Recording struct {
	Ops []Op
}

// Op is a single call recorded by a [Recording].
type Op struct {
	Kind      string // "moveTo", "lineTo", "curveTo", "qCurveTo", "closePath", "endPath", "addComponent"
	Points    []vec.Vec2
	Glyph     string
	Transform matrix.Matrix
}

func (op Op) String() string {
	var parts []string
	for _, pt := range op.Points {
		parts = append(parts, fmt.Sprintf("(%g,%g)", pt.X, pt.Y))
	}
	if op.Kind == "addComponent" {
		parts = append(parts, op.Glyph, fmt.Sprint(op.Transform))
	}
	return op.Kind + " " + strings.Join(parts, " ")
}

// MoveTo implements the [Pen] interface.
func (r *Recording) MoveTo(pt vec.Vec2) {
	r.Ops = append(r.Ops, Op{Kind: "moveTo", Points: []vec.Vec2{pt}})
}

// LineTo implements the [Pen] interface.
func (r *Recording) LineTo(pt vec.Vec2) {
	r.Ops = append(r.Ops, Op{Kind: "lineTo", Points: []vec.Vec2{pt}})
}

// CurveTo implements the [Pen] interface.
func (r *Recording) CurveTo(p1, p2, p3 vec.Vec2) {
	r.Ops = append(r.Ops, Op{Kind: "curveTo", Points: []vec.Vec2{p1, p2, p3}})
}

// QCurveTo implements the [Pen] interface.
func (r *Recording) QCurveTo(pts ...vec.Vec2) {
	r.Ops = append(r.Ops, Op{Kind: "qCurveTo", Points: append([]vec.Vec2{}, pts...)})
}

// ClosePath implements the [Pen] interface.
func (r *Recording) ClosePath() {
	r.Ops = append(r.Ops, Op{Kind: "closePath"})
}

// EndPath implements the [Pen] interface.
func (r *Recording) EndPath() {
	r.Ops = append(r.Ops, Op{Kind: "endPath"})
}

// AddComponent implements the [Pen] interface.
func (r *Recording) AddComponent(baseGlyph string, transform matrix.Matrix) {
	r.Ops = append(r.Ops, Op{Kind: "addComponent", Glyph: baseGlyph, Transform: transform})
}

// Replay draws the recorded outline into p.
func (r *Recording) Replay(p Pen) {
	for _, op := range r.Ops {
		switch op.Kind {
		case "moveTo":
			p.MoveTo(op.Points[0])
		case "lineTo":
			p.LineTo(op.Points[0])
		case "curveTo":
			p.CurveTo(op.Points[0], op.Points[1], op.Points[2])
		case "qCurveTo":
			p.QCurveTo(op.Points...)
		case "closePath":
			p.ClosePath()
		case "endPath":
			p.EndPath()
		case "addComponent":
			p.AddComponent(op.Glyph, op.Transform)
		}
	}
}
