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

package traverse

import (
	"errors"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/ufo"
	"seehuhn.de/go/ufo/lib"
)

func writeTestFont(t *testing.T) string {
	t.Helper()

	f := ufo.New()
	f.Info.FamilyName = "Inspect"
	f.Info.UnitsPerEm.Set(1000)
	f.Lib = lib.NewDict()
	sub := lib.NewDict()
	sub.Set("answer", lib.Integer(42))
	f.Lib.Set("com.example.sub", sub)
	f.Groups = map[string][]string{"public.kern1.O": {"O"}}
	f.Kerning = map[string]map[string]float64{"public.kern1.O": {"O": -10}}

	o, err := f.NewGlyph("O")
	if err != nil {
		t.Fatal(err)
	}
	o.Width = 600
	o.Unicodes = []rune{'O'}
	p := o.Pen()
	p.MoveTo(vec.Vec2{X: 50, Y: 0})
	p.LineTo(vec.Vec2{X: 550, Y: 0})
	p.QCurveTo(vec.Vec2{X: 550, Y: 700}, vec.Vec2{X: 50, Y: 700})
	p.ClosePath()

	oslash, err := f.NewGlyph("Oslash")
	if err != nil {
		t.Fatal(err)
	}
	oslash.Width = 600
	oslash.Components = append(oslash.Components, &ufo.Component{
		BaseGlyph: "O",
		Transform: matrix.Identity,
	})
	oslash.Anchors = append(oslash.Anchors, &ufo.Anchor{X: 300, Y: 720, Name: "top"})

	bg, err := f.NewLayer("public.background")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := bg.NewGlyph("O"); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "Inspect.ufo")
	err = f.Save(path)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWalk(t *testing.T) {
	path := writeTestFont(t)
	root, err := Root(path)
	if err != nil {
		t.Fatal(err)
	}

	cases := [][]string{
		nil,
		{"info"},
		{"lib"},
		{"lib", "com.example.sub"},
		{"groups"},
		{"kerning"},
		{"layers"},
		{"layers", "public.default"},
		{"layers", "public.background", "O"},
		{"layers", "public.default", "lib"},
		{"O"},
		{"Oslash"},
		{"Oslash", "lib"},
	}
	for _, keys := range cases {
		c, err := Walk(root, keys...)
		if err != nil {
			t.Errorf("%q: %v", keys, err)
			continue
		}
		err = c.Show()
		if err != nil {
			t.Errorf("%q: show: %v", keys, err)
		}
	}
}

func TestWalkErrors(t *testing.T) {
	path := writeTestFont(t)
	root, err := Root(path)
	if err != nil {
		t.Fatal(err)
	}

	cases := [][]string{
		{"missing"},
		{"layers", "missing"},
		{"layers", "public.default", "missing"},
		{"lib", "missing"},
		{"info", "anything"},
	}
	for _, keys := range cases {
		_, err := Walk(root, keys...)
		var keyErr *KeyError
		if !errors.As(err, &keyErr) {
			t.Errorf("%q: expected KeyError, got %v", keys, err)
		}
	}
}

func TestGlyphContext(t *testing.T) {
	path := writeTestFont(t)
	root, err := Root(path)
	if err != nil {
		t.Fatal(err)
	}
	c, err := Walk(root, "Oslash")
	if err != nil {
		t.Fatal(err)
	}
	gc, ok := c.(*glyphCtx)
	if !ok {
		t.Fatalf("unexpected context type %T", c)
	}
	if gc.g.Name() != "Oslash" || gc.layer.Name() != ufo.DefaultLayerName {
		t.Errorf("wrong glyph %q in layer %q", gc.g.Name(), gc.layer.Name())
	}
}

func TestRootMissing(t *testing.T) {
	_, err := Root(filepath.Join(t.TempDir(), "missing.ufo"))
	if err == nil {
		t.Error("expected error for missing font")
	}
}

func TestGlyphPrefix(t *testing.T) {
	f := ufo.New()
	for _, name := range []string{"info", "lib", "glyph:x"} {
		if _, err := f.NewGlyph(name); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "Names.ufo")
	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}
	root, err := Root(path)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		keys []string
		want string
	}{
		{[]string{"glyph:info"}, "info"},
		{[]string{"glyph:lib"}, "lib"},
		{[]string{"glyph:glyph:x"}, "glyph:x"},
		{[]string{"layers", ufo.DefaultLayerName, "glyph:lib"}, "lib"},
	}
	for _, tc := range cases {
		c, err := Walk(root, tc.keys...)
		if err != nil {
			t.Errorf("%q: %v", tc.keys, err)
			continue
		}
		gc, ok := c.(*glyphCtx)
		if !ok {
			t.Errorf("%q: unexpected context type %T", tc.keys, c)
			continue
		}
		if gc.g.Name() != tc.want {
			t.Errorf("%q: got glyph %q, want %q", tc.keys, gc.g.Name(), tc.want)
		}
	}

	// Without the prefix, reserved words still select the font data.
	c, err := Walk(root, "lib")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*libCtx); !ok {
		t.Errorf("unexpected context type %T", c)
	}

	_, err = Walk(root, "glyph:missing")
	var keyErr *KeyError
	if !errors.As(err, &keyErr) || keyErr.Key != "missing" {
		t.Errorf("expected KeyError for missing glyph, got %v", err)
	}
}
