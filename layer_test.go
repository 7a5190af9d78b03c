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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLayerInsert(t *testing.T) {
	l := NewLayer("test")

	a, err := l.NewGlyph("a")
	if err != nil {
		t.Fatal(err)
	}
	if l.Get("a") != a || !l.Contains("a") || l.Len() != 1 {
		t.Error("new glyph not in layer")
	}

	_, err = l.NewGlyph("a")
	if !errors.Is(err, ErrGlyphNameCollision) {
		t.Errorf("name collision not detected: %v", err)
	}
	_, err = l.NewGlyph("")
	if !errors.Is(err, ErrInvalidName) {
		t.Errorf("empty name not detected: %v", err)
	}

	err = l.AddGlyph(NewGlyph(""))
	if !errors.Is(err, ErrUnnamedGlyph) {
		t.Errorf("unnamed glyph not detected: %v", err)
	}

	// adding the same glyph twice fails
	b := NewGlyph("b")
	err = l.AddGlyph(b)
	if err != nil {
		t.Fatal(err)
	}
	err = l.AddGlyph(b)
	if !errors.Is(err, ErrGlyphNameCollision) {
		t.Errorf("second insert: got %v", err)
	}

	// a glyph can only be part of one layer
	other := NewLayer("other")
	err = other.AddGlyph(b)
	if !errors.Is(err, ErrGlyphInUse) {
		t.Errorf("glyph in two layers: got %v", err)
	}

	if d := cmp.Diff([]string{"a", "b"}, l.Names()); d != "" {
		t.Errorf("names (-want +got):\n%s", d)
	}
}

func TestLayerInsertMoveRename(t *testing.T) {
	l := NewLayer("test")
	g := NewGlyph("")
	err := l.InsertMove(g, "x", false)
	if err != nil {
		t.Fatal(err)
	}
	if g.Name() != "x" || l.Get("x") != g {
		t.Errorf("glyph inserted as %q", g.Name())
	}
}

func TestLayerInsertCopy(t *testing.T) {
	l := NewLayer("test")
	src := NewGlyph("")
	src.Width = 100

	c, err := l.InsertCopy(src, "a", false)
	if err != nil {
		t.Fatal(err)
	}
	if src.Name() != "" {
		t.Errorf("source renamed to %q", src.Name())
	}
	if c == src || c.Name() != "a" || c.Width != 100 {
		t.Errorf("wrong copy %v", c)
	}

	// the source can still be inserted elsewhere
	err = NewLayer("other").InsertMove(src, "b", false)
	if err != nil {
		t.Error(err)
	}

	_, err = l.InsertCopy(src, "a", false)
	if !errors.Is(err, ErrGlyphNameCollision) {
		t.Errorf("collision not detected: %v", err)
	}
	c2, err := l.InsertCopy(src, "a", true)
	if err != nil {
		t.Fatal(err)
	}
	if l.Get("a") != c2 {
		t.Error("glyph not replaced")
	}
}

func TestLayerSetGlyph(t *testing.T) {
	l := NewLayer("test")
	a1, _ := l.NewGlyph("a")
	err := l.SetGlyph(a1)
	if err != nil {
		t.Errorf("setting a glyph to itself: %v", err)
	}

	a2 := NewGlyph("a")
	err = l.SetGlyph(a2)
	if err != nil {
		t.Fatal(err)
	}
	if l.Get("a") != a2 {
		t.Error("glyph not replaced")
	}

	// the replaced glyph is free again
	err = NewLayer("other").AddGlyph(a1)
	if err != nil {
		t.Errorf("replaced glyph still attached: %v", err)
	}
}

func TestLayerRenameGlyph(t *testing.T) {
	l := NewLayer("test")
	a, _ := l.NewGlyph("a")
	l.NewGlyph("b")
	l.NewGlyph("c")

	err := l.RenameGlyph("a", "a", false)
	if err != nil {
		t.Errorf("rename to same name: %v", err)
	}
	err = l.RenameGlyph("x", "x", false)
	if !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("rename of missing glyph: %v", err)
	}
	err = l.RenameGlyph("x", "y", false)
	if !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("rename of missing glyph: %v", err)
	}
	err = l.RenameGlyph("a", "b", false)
	if !errors.Is(err, ErrGlyphNameCollision) {
		t.Errorf("collision not detected: %v", err)
	}
	err = l.RenameGlyph("a", "", false)
	if !errors.Is(err, ErrInvalidName) {
		t.Errorf("invalid name not detected: %v", err)
	}

	err = l.RenameGlyph("a", "d", false)
	if err != nil {
		t.Fatal(err)
	}
	if a.Name() != "d" || l.Get("d") != a || l.Contains("a") {
		t.Error("glyph not renamed")
	}
	if d := cmp.Diff([]string{"b", "c", "d"}, l.Names()); d != "" {
		t.Errorf("names (-want +got):\n%s", d)
	}

	err = l.RenameGlyph("d", "b", true)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"c", "b"}, l.Names()); d != "" {
		t.Errorf("names after overwrite (-want +got):\n%s", d)
	}
	if l.Get("b") != a {
		t.Error("wrong glyph after overwrite")
	}
}

func TestLayerRemoveGlyph(t *testing.T) {
	l := NewLayer("test")
	a, _ := l.NewGlyph("a")

	got, err := l.RemoveGlyph("a")
	if err != nil {
		t.Fatal(err)
	}
	if got != a || l.Len() != 0 {
		t.Error("glyph not removed")
	}
	_, err = l.RemoveGlyph("a")
	if !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("removing missing glyph: %v", err)
	}
	err = l.AddGlyph(a)
	if err != nil {
		t.Errorf("removed glyph cannot be added again: %v", err)
	}
}

func TestLayerCopyEqual(t *testing.T) {
	l := NewLayer("test")
	l.Color = &Color{R: 1, A: 1}
	a, _ := l.NewGlyph("a")
	a.Width = 100
	l.NewGlyph("b")

	c := l.Copy()
	if !c.Equal(l) {
		t.Fatal("copy differs from original")
	}
	c.Get("a").Width = 200
	c.Color.G = 1
	if a.Width != 100 || l.Color.G != 0 {
		t.Error("copy shares data with original")
	}
	if c.Equal(l) {
		t.Error("difference not detected")
	}

	// glyph order does not matter
	r := NewLayer("test")
	r.Color = &Color{R: 1, A: 1}
	r.NewGlyph("b")
	b, _ := r.NewGlyph("a")
	b.Width = 100
	if !r.Equal(l) {
		t.Error("glyph order makes layers different")
	}
}
