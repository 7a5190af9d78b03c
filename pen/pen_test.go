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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

type recordedPoint struct {
	Pt vec.Vec2
	Tp PointType
}

// pointRecorder is a PointPen which stores the contours it receives.
type pointRecorder struct {
	Contours   [][]recordedPoint
	Components []string
}

func (r *pointRecorder) BeginPath(identifier string) {
	r.Contours = append(r.Contours, []recordedPoint{})
}

func (r *pointRecorder) AddPoint(pt vec.Vec2, tp PointType, smooth bool, name, identifier string) {
	last := len(r.Contours) - 1
	r.Contours[last] = append(r.Contours[last], recordedPoint{pt, tp})
}

func (r *pointRecorder) EndPath() {}

func (r *pointRecorder) AddComponent(baseGlyph string, transform matrix.Matrix, identifier string) {
	r.Components = append(r.Components, baseGlyph)
}

// glyphMap is a GlyphSet for testing.
type glyphMap map[string]*Recording

func (m glyphMap) DrawGlyph(name string, p Pen) error {
	rec, ok := m[name]
	if !ok {
		return &MissingGlyphError{Name: name}
	}
	rec.Replay(p)
	return nil
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func TestSegmentToPoint(t *testing.T) {
	type testCase struct {
		name string
		draw func(p Pen)
		want [][]recordedPoint
	}
	cases := []testCase{
		{
			name: "closed with duplicate end point",
			draw: func(p Pen) {
				p.MoveTo(pt(0, 0))
				p.LineTo(pt(10, 0))
				p.LineTo(pt(10, 10))
				p.LineTo(pt(0, 0))
				p.ClosePath()
			},
			want: [][]recordedPoint{{
				{pt(0, 0), Line}, {pt(10, 0), Line}, {pt(10, 10), Line},
			}},
		},
		{
			name: "closed with implied closing line",
			draw: func(p Pen) {
				p.MoveTo(pt(0, 0))
				p.LineTo(pt(10, 0))
				p.ClosePath()
			},
			want: [][]recordedPoint{{{pt(0, 0), Line}, {pt(10, 0), Line}}},
		},
		{
			name: "closed curve",
			draw: func(p Pen) {
				p.MoveTo(pt(0, 0))
				p.CurveTo(pt(10, 10), pt(10, 20), pt(0, 20))
				p.QCurveTo(pt(-5, 10), pt(0, 0))
				p.ClosePath()
			},
			want: [][]recordedPoint{{
				{pt(0, 0), QCurve},
				{pt(10, 10), OffCurve}, {pt(10, 20), OffCurve}, {pt(0, 20), Curve},
				{pt(-5, 10), OffCurve},
			}},
		},
		{
			name: "open",
			draw: func(p Pen) {
				p.MoveTo(pt(0, 0))
				p.LineTo(pt(10, 0))
				p.EndPath()
			},
			want: [][]recordedPoint{{{pt(0, 0), Move}, {pt(10, 0), Line}}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := &pointRecorder{}
			p := NewSegmentToPoint(rec)
			c.draw(p)
			if p.Err != nil {
				t.Fatal(p.Err)
			}
			if d := cmp.Diff(c.want, rec.Contours); d != "" {
				t.Errorf("contours (-want +got):\n%s", d)
			}
		})
	}
}

func TestSegmentToPointErrors(t *testing.T) {
	p := NewSegmentToPoint(&pointRecorder{})
	p.LineTo(pt(1, 2))
	if !errors.Is(p.Err, ErrInvalidContour) {
		t.Errorf("got %v, want %v", p.Err, ErrInvalidContour)
	}
}

func TestPointToSegment(t *testing.T) {
	type testCase struct {
		name   string
		points []recordedPoint
		want   []string
	}
	cases := []testCase{
		{
			name:   "closed lines",
			points: []recordedPoint{{pt(0, 0), Line}, {pt(10, 0), Line}, {pt(10, 10), Line}},
			want: []string{
				"moveTo (0,0)", "lineTo (10,0)", "lineTo (10,10)", "closePath ",
			},
		},
		{
			name: "rotate to on-curve end",
			points: []recordedPoint{
				{pt(10, 10), OffCurve}, {pt(10, 20), OffCurve}, {pt(0, 20), Curve},
				{pt(0, 0), Line},
			},
			want: []string{
				"moveTo (0,20)", "lineTo (0,0)", "curveTo (10,10) (10,20) (0,20)", "closePath ",
			},
		},
		{
			name: "only off-curve points",
			points: []recordedPoint{
				{pt(0, 0), OffCurve}, {pt(10, 0), OffCurve},
				{pt(10, 10), OffCurve}, {pt(0, 10), OffCurve},
			},
			want: []string{
				"moveTo (0,5)",
				"qCurveTo (0,0) (10,0) (10,10) (0,10) (0,5)",
				"closePath ",
			},
		},
		{
			name:   "open",
			points: []recordedPoint{{pt(0, 0), Move}, {pt(5, 5), OffCurve}, {pt(10, 0), QCurve}},
			want:   []string{"moveTo (0,0)", "qCurveTo (5,5) (10,0)", "endPath "},
		},
		{
			name:   "single point",
			points: []recordedPoint{{pt(3, 4), Line}},
			want:   []string{"moveTo (3,4)", "endPath "},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := &Recording{}
			p := NewPointToSegment(rec)
			p.BeginPath("")
			for _, rp := range c.points {
				p.AddPoint(rp.Pt, rp.Tp, false, "", "")
			}
			p.EndPath()
			if p.Err != nil {
				t.Fatal(p.Err)
			}
			var got []string
			for _, op := range rec.Ops {
				got = append(got, op.String())
			}
			if d := cmp.Diff(c.want, got); d != "" {
				t.Errorf("ops (-want +got):\n%s", d)
			}
		})
	}
}

func TestPointToSegmentInvalidType(t *testing.T) {
	p := NewPointToSegment(&Recording{})
	p.BeginPath("")
	p.AddPoint(pt(0, 0), PointType(17), false, "", "")
	p.EndPath()
	if !errors.Is(p.Err, ErrInvalidSegmentKind) {
		t.Errorf("got %v, want %v", p.Err, ErrInvalidSegmentKind)
	}

	_, err := ParsePointType("bezier")
	if !errors.Is(err, ErrInvalidSegmentKind) {
		t.Errorf("got %v, want %v", err, ErrInvalidSegmentKind)
	}
}

func TestPointTypeNames(t *testing.T) {
	for _, tp := range []PointType{OffCurve, Move, Line, Curve, QCurve} {
		got, err := ParsePointType(tp.String())
		if err != nil || got != tp {
			t.Errorf("%s: got %s, %v", tp, got, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	orig := &Recording{}
	orig.MoveTo(pt(0, 0))
	orig.CurveTo(pt(10, 10), pt(10, 20), pt(0, 20))
	orig.LineTo(pt(-10, 10))
	orig.ClosePath()
	orig.AddComponent("acute", matrix.Matrix{1, 0, 0, 1, 20, 0})

	got := &Recording{}
	orig.Replay(NewSegmentToPoint(NewPointToSegment(got)))
	if d := cmp.Diff(orig.Ops, got.Ops); d != "" {
		t.Errorf("ops (-want +got):\n%s", d)
	}
}

func curveGlyph() *Recording {
	rec := &Recording{}
	rec.MoveTo(pt(0, 0))
	rec.CurveTo(pt(10, 10), pt(10, 20), pt(0, 20))
	rec.ClosePath()
	return rec
}

func TestBounds(t *testing.T) {
	glyphs := glyphMap{"a": curveGlyph()}

	tight := &BoundsPen{}
	glyphs["a"].Replay(tight)
	if d := cmp.Diff(&rect.Rect{LLx: 0, LLy: 0, URx: 7.5, URy: 20}, tight.Bounds()); d != "" {
		t.Errorf("tight bounds (-want +got):\n%s", d)
	}

	control := &BoundsPen{Control: true}
	glyphs["a"].Replay(control)
	if d := cmp.Diff(&rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 20}, control.Bounds()); d != "" {
		t.Errorf("control bounds (-want +got):\n%s", d)
	}

	comp := &BoundsPen{Glyphs: glyphs}
	comp.AddComponent("a", matrix.Matrix{1, 0, 0, 1, -50, 100})
	if comp.Err != nil {
		t.Fatal(comp.Err)
	}
	if d := cmp.Diff(&rect.Rect{LLx: -50, LLy: 100, URx: -42.5, URy: 120}, comp.Bounds()); d != "" {
		t.Errorf("component bounds (-want +got):\n%s", d)
	}
}

func TestQuadBounds(t *testing.T) {
	p := &BoundsPen{}
	p.MoveTo(pt(0, 0))
	p.QCurveTo(pt(0, 10), pt(10, 10), pt(10, 0))
	// implied on-curve point at (5, 10) is the top of both arcs
	want := &rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	if d := cmp.Diff(want, p.Bounds()); d != "" {
		t.Errorf("bounds (-want +got):\n%s", d)
	}
}

func TestBoundsEmpty(t *testing.T) {
	p := &BoundsPen{}
	p.ClosePath()
	if p.Bounds() != nil {
		t.Errorf("got %v, want nil", p.Bounds())
	}
}

func TestComponentErrors(t *testing.T) {
	noLayer := &BoundsPen{}
	noLayer.AddComponent("a", matrix.Identity)
	if !errors.Is(noLayer.Err, ErrLayerRequired) {
		t.Errorf("got %v, want %v", noLayer.Err, ErrLayerRequired)
	}

	missing := &BoundsPen{Glyphs: glyphMap{}}
	missing.AddComponent("a", matrix.Identity)
	var mErr *MissingGlyphError
	if !errors.As(missing.Err, &mErr) || mErr.Name != "a" {
		t.Errorf("got %v, want missing glyph a", missing.Err)
	}

	a := &Recording{}
	a.AddComponent("b", matrix.Identity)
	b := &Recording{}
	b.AddComponent("a", matrix.Identity)
	cyclic := &BoundsPen{Glyphs: glyphMap{"a": a, "b": b}}
	cyclic.AddComponent("a", matrix.Identity)
	var cErr *CyclicComponentError
	if !errors.As(cyclic.Err, &cErr) {
		t.Fatalf("got %v, want cyclic component error", cyclic.Err)
	}
	if d := cmp.Diff([]string{"a", "b", "a"}, cErr.Chain); d != "" {
		t.Errorf("chain (-want +got):\n%s", d)
	}
	if !errors.Is(cyclic.Err, ErrCyclicComponentReference) {
		t.Error("cyclic error does not unwrap to the sentinel")
	}
}

func TestNestedComponentTransform(t *testing.T) {
	dot := &Recording{}
	dot.MoveTo(pt(0, 0))
	dot.LineTo(pt(1, 1))
	dot.ClosePath()
	// "inner" scales the dot by 10, "outer" shifts "inner" by (100, 0)
	inner := &Recording{}
	inner.AddComponent("dot", matrix.Matrix{10, 0, 0, 10, 0, 0})
	glyphs := glyphMap{"dot": dot, "inner": inner}

	p := &BoundsPen{Glyphs: glyphs}
	p.AddComponent("inner", matrix.Matrix{1, 0, 0, 1, 100, 0})
	if p.Err != nil {
		t.Fatal(p.Err)
	}
	want := &rect.Rect{LLx: 100, LLy: 0, URx: 110, URy: 10}
	if d := cmp.Diff(want, p.Bounds()); d != "" {
		t.Errorf("bounds (-want +got):\n%s", d)
	}
}

func TestPathPen(t *testing.T) {
	p := &PathPen{}
	p.MoveTo(pt(0, 0))
	p.QCurveTo(pt(0, 10), pt(10, 10), pt(10, 0))
	p.ClosePath()

	if p.Path.Cmds[0] != path.CmdMoveTo || p.Path.Cmds[1] != path.CmdQuadTo ||
		p.Path.Cmds[2] != path.CmdQuadTo || p.Path.Cmds[3] != path.CmdClose {
		t.Errorf("unexpected commands %v", p.Path.Cmds)
	}
	wantCoords := []vec.Vec2{pt(0, 0), pt(0, 10), pt(5, 10), pt(10, 10), pt(10, 0)}
	if d := cmp.Diff(wantCoords, p.Path.Coords); d != "" {
		t.Errorf("coords (-want +got):\n%s", d)
	}
}

func TestUnionBounds(t *testing.T) {
	a := &rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1}
	b := &rect.Rect{LLx: -1, LLy: 0.5, URx: 0.5, URy: 3}

	if UnionBounds(nil, nil) != nil {
		t.Error("union of empty sets is not empty")
	}
	if d := cmp.Diff(a, UnionBounds(nil, a)); d != "" {
		t.Errorf("nil union (-want +got):\n%s", d)
	}
	want := &rect.Rect{LLx: -1, LLy: 0, URx: 1, URy: 3}
	if d := cmp.Diff(want, UnionBounds(a, b)); d != "" {
		t.Errorf("union (-want +got):\n%s", d)
	}
}
