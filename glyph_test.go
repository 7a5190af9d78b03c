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
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/ufo/lib"
	"seehuhn.de/go/ufo/pen"
)

func TestGlyphBounds(t *testing.T) {
	l := NewLayer(DefaultLayerName)
	a, _ := l.NewGlyph("a")
	p := a.Pen()
	p.MoveTo(vec.Vec2{X: 0, Y: 0})
	p.CurveTo(vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 10, Y: 20}, vec.Vec2{X: 0, Y: 20})
	p.ClosePath()

	tight, err := a.Bounds(nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(&rect.Rect{LLx: 0, LLy: 0, URx: 7.5, URy: 20}, tight); d != "" {
		t.Errorf("tight bounds (-want +got):\n%s", d)
	}
	control, err := a.ControlBounds(nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(&rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 20}, control); d != "" {
		t.Errorf("control bounds (-want +got):\n%s", d)
	}

	b, _ := l.NewGlyph("b")
	b.Components = append(b.Components, &Component{
		BaseGlyph: "a",
		Transform: matrix.Translate(-50, 100),
	})
	tight, err = b.Bounds(l)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(&rect.Rect{LLx: -50, LLy: 100, URx: -42.5, URy: 120}, tight); d != "" {
		t.Errorf("composite tight bounds (-want +got):\n%s", d)
	}
	control, err = b.ControlBounds(l)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(&rect.Rect{LLx: -50, LLy: 100, URx: -40, URy: 120}, control); d != "" {
		t.Errorf("composite control bounds (-want +got):\n%s", d)
	}

	compBox, err := b.Components[0].Bounds(l)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(tight, compBox); d != "" {
		t.Errorf("component bounds (-want +got):\n%s", d)
	}

	_, err = b.Bounds(nil)
	if !errors.Is(err, ErrLayerRequired) {
		t.Errorf("missing layer not detected: %v", err)
	}

	empty := NewGlyph("space")
	box, err := empty.Bounds(nil)
	if box != nil || err != nil {
		t.Errorf("empty glyph: got %v, %v", box, err)
	}
}

func TestComponentErrors(t *testing.T) {
	l := NewLayer(DefaultLayerName)
	a, _ := l.NewGlyph("a")
	a.Components = append(a.Components, NewComponent("b"))
	b, _ := l.NewGlyph("b")
	b.Components = append(b.Components, NewComponent("a"))
	c, _ := l.NewGlyph("c")
	c.Components = append(c.Components, NewComponent("missing"))

	_, err := a.Bounds(l)
	var cycle *CyclicComponentError
	if !errors.As(err, &cycle) {
		t.Fatalf("cycle not detected: %v", err)
	}
	if d := cmp.Diff([]string{"b", "a", "b"}, cycle.Chain); d != "" {
		t.Errorf("cycle (-want +got):\n%s", d)
	}

	_, err = c.Bounds(l)
	var missing *MissingGlyphError
	if !errors.As(err, &missing) || missing.Name != "missing" {
		t.Errorf("missing glyph not detected: %v", err)
	}

	_, err = l.Bounds()
	var nameErr *NameError
	if !errors.As(err, &nameErr) || nameErr.Name != "a" {
		t.Errorf("layer bounds: unexpected error %v", err)
	}
}

func TestGlyphPens(t *testing.T) {
	g := NewGlyph("a")
	pp := g.PointPen()
	pp.BeginPath("c1")
	pp.AddPoint(vec.Vec2{X: 0, Y: 0}, pen.Line, false, "", "")
	pp.AddPoint(vec.Vec2{X: 100, Y: 0}, pen.Line, false, "", "")
	pp.AddPoint(vec.Vec2{X: 100, Y: 100}, pen.Line, false, "corner", "p1")
	pp.EndPath()
	pp.AddComponent("acute", matrix.Translate(10, 20), "comp")

	want := []*Contour{{
		Identifier: "c1",
		Points: []*Point{
			{X: 0, Y: 0, Type: pen.Line},
			{X: 100, Y: 0, Type: pen.Line},
			{X: 100, Y: 100, Type: pen.Line, Name: "corner", Identifier: "p1"},
		},
	}}
	if d := cmp.Diff(want, g.Contours); d != "" {
		t.Errorf("contours (-want +got):\n%s", d)
	}
	if len(g.Components) != 1 || g.Components[0].Identifier != "comp" {
		t.Errorf("wrong components %v", g.Components)
	}

	rec := &pen.Recording{}
	err := g.Draw(rec)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Ops) != 5 {
		t.Fatalf("got %d ops, want 5", len(rec.Ops))
	}
	var ops []string
	for _, op := range rec.Ops[:4] {
		ops = append(ops, op.String())
	}
	wantOps := []string{
		"moveTo (0,0)",
		"lineTo (100,0)",
		"lineTo (100,100)",
		"closePath ",
	}
	if d := cmp.Diff(wantOps, ops); d != "" {
		t.Errorf("ops (-want +got):\n%s", d)
	}
	if op := rec.Ops[4]; op.Glyph != "acute" || op.Transform != matrix.Translate(10, 20) {
		t.Errorf("wrong component op %v", op)
	}

	// drawing a glyph into the segment pen of another glyph copies the
	// outline
	h := NewGlyph("b")
	err = g.Draw(h.Pen())
	if err != nil {
		t.Fatal(err)
	}
	if len(h.Contours) != 1 || len(h.Contours[0].Points) != 3 {
		t.Errorf("outline not copied: %v", h.Contours)
	}
}

func TestGlyphCopy(t *testing.T) {
	l := NewLayer(DefaultLayerName)
	g, _ := l.NewGlyph("a")
	g.Width = 500
	g.Unicodes = []rune{'a'}
	g.Contours = append(g.Contours, &Contour{Points: []*Point{NewPoint(1, 2, pen.Move)}})
	g.Anchors = append(g.Anchors, &Anchor{X: 1, Y: 2, Name: "top"})
	g.Lib = lib.NewDict()
	g.Lib.Set("com.example.key", lib.Integer(1))
	g.ObjectLib(g.Anchors[0]).Set("com.example.anchor", lib.String("x"))

	c := g.Copy()
	if !c.Equal(g) {
		t.Fatal("copy differs from original")
	}
	if c.Name() != "a" {
		t.Errorf("copy has name %q", c.Name())
	}

	c.Contours[0].Points[0].X = 10
	c.Anchors[0].Name = "bottom"
	c.Unicodes[0] = 'b'
	c.Lib.Set("com.example.key", lib.Integer(2))
	c.ObjectLib(c.Anchors[0]).Set("com.example.anchor", lib.String("y"))
	if g.Contours[0].Points[0].X != 1 || g.Anchors[0].Name != "top" || g.Unicodes[0] != 'a' {
		t.Error("copy shares outline data with original")
	}
	if !lib.Equal(g.Lib.Get("com.example.key"), lib.Integer(1)) {
		t.Error("copy shares lib with original")
	}
	if !lib.Equal(g.ObjectLib(g.Anchors[0]).Get("com.example.anchor"), lib.String("x")) {
		t.Error("copy shares object lib with original")
	}

	// the copied anchor keeps the identifier, and thus its object lib
	if c.Anchors[0].Identifier != g.Anchors[0].Identifier {
		t.Error("identifier not copied")
	}

	d := NewGlyph("d")
	d.CopyDataFrom(g)
	if d.Name() != "d" || d.Width != 500 || len(d.Contours) != 1 {
		t.Errorf("CopyDataFrom: got %q %g %d", d.Name(), d.Width, len(d.Contours))
	}
}

func TestGlyphEqualObjectLibs(t *testing.T) {
	a := NewGlyph("a")
	a.Anchors = append(a.Anchors, &Anchor{Name: "top"})
	b := a.Copy()

	// empty object libs are ignored
	a.ObjectLib(a.Anchors[0])
	b.Anchors[0].Identifier = a.Anchors[0].Identifier
	if !a.Equal(b) {
		t.Error("empty object lib makes glyphs different")
	}

	a.ObjectLib(a.Anchors[0]).Set("k", lib.Bool(true))
	if a.Equal(b) {
		t.Error("object lib difference not detected")
	}

	// entries for removed objects are ignored
	a.Anchors = nil
	b.Anchors = nil
	if !a.Equal(b) {
		t.Error("stale object lib makes glyphs different")
	}
}

func TestGlyphMoveAndClear(t *testing.T) {
	g := NewGlyph("a")
	g.Contours = append(g.Contours, &Contour{Points: []*Point{NewPoint(1, 2, pen.Line)}})
	g.Components = append(g.Components, NewComponent("b"))
	g.Anchors = append(g.Anchors, &Anchor{X: 3, Y: 4})
	g.Guidelines = append(g.Guidelines, &Guideline{Name: "g"})
	g.Guidelines[0].X.Set(5)

	g.Move(10, 20)
	if pt := g.Contours[0].Points[0]; pt.X != 11 || pt.Y != 22 {
		t.Errorf("point not moved: %v", pt)
	}
	if m := g.Components[0].Transform; m[4] != 10 || m[5] != 20 {
		t.Errorf("component not moved: %v", m)
	}
	if a := g.Anchors[0]; a.X != 13 || a.Y != 24 {
		t.Errorf("anchor not moved: %v", a)
	}
	if x, _ := g.Guidelines[0].X.Get(); x != 5 {
		t.Errorf("guideline moved to %g", x)
	}

	g.Clear()
	if len(g.Contours)+len(g.Components)+len(g.Anchors)+len(g.Guidelines) != 0 {
		t.Error("glyph not cleared")
	}
}

func TestAutoUnicodes(t *testing.T) {
	cases := []struct {
		name string
		want []rune
	}{
		{"A", []rune{'A'}},
		{"a.sc", []rune{'a'}},
		{"uni00E9", []rune{'é'}},
		{"u1F600", []rune{0x1F600}},
		{"f_i", nil},
		{".notdef", nil},
		{"", nil},
	}
	for _, c := range cases {
		got := NewGlyph(c.name).AutoUnicodes()
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%q (-want +got):\n%s", c.name, d)
		}
	}
}

func TestFreshLibsAreWritable(t *testing.T) {
	f := New()
	f.Lib.Set("com.example.font", lib.Integer(1))
	f.Info.Other.Set("openTypeNameDesigner", lib.String("A. Person"))
	f.DefaultLayer().Lib.Set("com.example.layer", lib.Integer(2))

	g := NewGlyph("a")
	g.Lib.Set("com.example.glyph", lib.Integer(3))

	h, err := f.NewGlyph("b")
	if err != nil {
		t.Fatal(err)
	}
	h.Lib.Set("com.example.glyph", lib.Integer(4))

	l, err := f.NewLayer("background")
	if err != nil {
		t.Fatal(err)
	}
	l.Lib.Set("com.example.layer", lib.Integer(5))

	c := NewGlyph("c").Copy()
	c.Lib.Set("com.example.copy", lib.Integer(6))

	// libs of loaded objects are writable too, even where the file had none
	path := filepath.Join(t.TempDir(), "Test.ufo")
	if err := New().Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	loaded.Lib.Set("k", lib.Bool(true))
	loaded.Info.Other.Set("k", lib.Bool(true))
	loaded.DefaultLayer().Lib.Set("k", lib.Bool(true))
}
