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

func TestNewLayerSet(t *testing.T) {
	_, err := NewLayerSet(nil, DefaultLayerName)
	if !errors.Is(err, ErrEmptyLayerSet) {
		t.Errorf("empty layer set: %v", err)
	}
	_, err = NewLayerSet([]*Layer{NewLayer("a"), nil}, "a")
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("nil layer: %v", err)
	}
	_, err = NewLayerSet([]*Layer{NewLayer("a"), NewLayer("a")}, "a")
	if !errors.Is(err, ErrDuplicateLayerName) {
		t.Errorf("duplicate layer: %v", err)
	}
	_, err = NewLayerSet([]*Layer{NewLayer("a")}, "b")
	if !errors.Is(err, ErrNoDefaultLayer) {
		t.Errorf("missing default: %v", err)
	}

	fg := NewLayer("foreground")
	ls, err := NewLayerSet([]*Layer{NewLayer("background"), fg}, "foreground")
	if err != nil {
		t.Fatal(err)
	}
	if ls.Default() != fg {
		t.Error("wrong default layer")
	}
	if d := cmp.Diff([]string{"background", "foreground"}, ls.Names()); d != "" {
		t.Errorf("names (-want +got):\n%s", d)
	}
}

func TestLayerSetEditing(t *testing.T) {
	f := New()
	ls := f.Layers

	bg, err := ls.NewLayer("background")
	if err != nil {
		t.Fatal(err)
	}
	_, err = ls.NewLayer("background")
	if !errors.Is(err, ErrLayerNameCollision) {
		t.Errorf("collision not detected: %v", err)
	}
	_, err = ls.NewLayer("")
	if !errors.Is(err, ErrInvalidName) {
		t.Errorf("empty name not detected: %v", err)
	}

	_, err = ls.RemoveLayer(DefaultLayerName)
	if !errors.Is(err, ErrDefaultLayerRemoval) {
		t.Errorf("default layer removed: %v", err)
	}
	_, err = ls.RemoveLayer("missing")
	if !errors.Is(err, ErrLayerNotFound) {
		t.Errorf("missing layer removed: %v", err)
	}

	err = ls.RenameLayer("background", DefaultLayerName, true)
	if !errors.Is(err, ErrDefaultLayerRemoval) {
		t.Errorf("default layer overwritten: %v", err)
	}
	err = ls.RenameLayer("background", DefaultLayerName, false)
	if !errors.Is(err, ErrLayerNameCollision) {
		t.Errorf("collision not detected: %v", err)
	}
	err = ls.RenameLayer("missing", "x", false)
	if !errors.Is(err, ErrLayerNotFound) {
		t.Errorf("missing layer renamed: %v", err)
	}

	err = ls.RenameLayer(DefaultLayerName, "foreground", false)
	if err != nil {
		t.Fatal(err)
	}
	if ls.Default().Name() != "foreground" {
		t.Errorf("default layer is %q", ls.Default().Name())
	}
	if d := cmp.Diff([]string{"background", "foreground"}, ls.Names()); d != "" {
		t.Errorf("names (-want +got):\n%s", d)
	}

	err = ls.SetDefault("background")
	if err != nil {
		t.Fatal(err)
	}
	if f.DefaultLayer() != bg {
		t.Error("default not changed")
	}
	err = ls.SetDefault("missing")
	if !errors.Is(err, ErrLayerNotFound) {
		t.Errorf("missing default: %v", err)
	}

	removed, err := ls.RemoveLayer("foreground")
	if err != nil {
		t.Fatal(err)
	}
	if removed.Name() != "foreground" || ls.Len() != 1 {
		t.Error("layer not removed")
	}
}

func TestLayerSetCopyEqual(t *testing.T) {
	ls := newDefaultLayerSet()
	bg, _ := ls.NewLayer("background")
	bg.NewGlyph("a")

	c := ls.Copy()
	if !c.Equal(ls) {
		t.Fatal("copy differs from original")
	}
	if c.Get("background") == bg || c.Get("background").Get("a") == bg.Get("a") {
		t.Error("copy shares layers with original")
	}
	if c.Default().Name() != DefaultLayerName {
		t.Error("default layer not copied")
	}

	c.SetDefault("background")
	if c.Equal(ls) {
		t.Error("different default layer not detected")
	}

	// the order of the layers matters
	other, err := NewLayerSet([]*Layer{bg.Copy(), NewLayer(DefaultLayerName)}, DefaultLayerName)
	if err != nil {
		t.Fatal(err)
	}
	if other.Equal(ls) {
		t.Error("different layer order not detected")
	}
}

func TestLayerOwnership(t *testing.T) {
	l := NewLayer("x")
	ls1, err := NewLayerSet([]*Layer{l}, "x")
	if err != nil {
		t.Fatal(err)
	}

	ls2 := New().Layers
	err = ls2.AddLayer(l)
	if !errors.Is(err, ErrLayerInUse) {
		t.Errorf("AddLayer of owned layer: %v", err)
	}
	_, err = NewLayerSet([]*Layer{l}, "x")
	if !errors.Is(err, ErrLayerInUse) {
		t.Errorf("NewLayerSet with owned layer: %v", err)
	}
	if ls2.Contains("x") || ls1.Default().Name() != "x" {
		t.Error("failed insertion changed a layer set")
	}

	bg, err := ls1.NewLayer("background")
	if err != nil {
		t.Fatal(err)
	}
	removed, err := ls1.RemoveLayer("background")
	if err != nil {
		t.Fatal(err)
	}
	if removed != bg {
		t.Fatal("wrong layer removed")
	}
	err = ls2.AddLayer(bg)
	if err != nil {
		t.Fatalf("removed layer cannot be reused: %v", err)
	}
	err = ls2.RenameLayer("background", "y", false)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"x"}, ls1.Names()); d != "" {
		t.Errorf("rename leaked into other set (-want +got):\n%s", d)
	}

	// a layer replaced by an overwriting rename is free again
	if _, err := ls2.NewLayer("z"); err != nil {
		t.Fatal(err)
	}
	replaced := ls2.Get("y")
	err = ls2.RenameLayer("z", "y", true)
	if err != nil {
		t.Fatal(err)
	}
	if err := ls1.AddLayer(replaced); err != nil {
		t.Errorf("replaced layer cannot be reused: %v", err)
	}
}
