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
	"iter"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/ufo/internal/ordered"
	"seehuhn.de/go/ufo/lib"
	"seehuhn.de/go/ufo/pen"
)

// Layer is a named collection of glyphs.  Glyphs are kept in insertion
// order.
type Layer struct {
	name   string
	glyphs ordered.Map[*Glyph]
	set    *LayerSet

	Color *Color
	Lib   *lib.Dict
}

// NewLayer allocates a new, empty layer which is not part of a layer set.
// A layer can be part of at most one layer set at a time.
func NewLayer(name string) *Layer {
	return &Layer{name: name, Lib: lib.NewDict()}
}

// Name returns the name of the layer.
func (l *Layer) Name() string {
	return l.name
}

// Len returns the number of glyphs in the layer.
func (l *Layer) Len() int {
	return l.glyphs.Len()
}

// Contains reports whether the layer has a glyph with the given name.
func (l *Layer) Contains(name string) bool {
	return l.glyphs.Contains(name)
}

// Get returns the glyph with the given name, or nil if there is no such
// glyph.
func (l *Layer) Get(name string) *Glyph {
	g, _ := l.glyphs.Get(name)
	return g
}

// Names returns the glyph names, in insertion order.
func (l *Layer) Names() []string {
	return l.glyphs.Keys()
}

// All iterates over the glyphs of the layer, in insertion order.
func (l *Layer) All() iter.Seq[*Glyph] {
	return func(yield func(*Glyph) bool) {
		for _, g := range l.glyphs.All() {
			if !yield(g) {
				return
			}
		}
	}
}

// NewGlyph creates a new, empty glyph and adds it to the layer.
func (l *Layer) NewGlyph(name string) (*Glyph, error) {
	if err := checkName("new glyph", name); err != nil {
		return nil, err
	}
	if l.glyphs.Contains(name) {
		return nil, &NameError{Op: "new glyph", Name: name, Err: ErrGlyphNameCollision}
	}
	g := NewGlyph(name)
	g.layer = l
	l.glyphs.Set(name, g)
	return g, nil
}

// AddGlyph adds g to the layer, under the glyph's own name.
// This is the same as InsertMove(g, "", false).
func (l *Layer) AddGlyph(g *Glyph) error {
	return l.InsertMove(g, "", false)
}

// InsertMove adds g to the layer.  If name is non-empty, the glyph is
// renamed to name.  Otherwise the glyph's own name is used.  If overwrite
// is false and the layer already has a glyph with this name,
// [ErrGlyphNameCollision] is returned.
//
// The glyph itself becomes part of the layer.  It must not be part of
// another layer.
func (l *Layer) InsertMove(g *Glyph, name string, overwrite bool) error {
	name, err := l.checkInsert(g, name, overwrite)
	if err != nil {
		return err
	}
	if g.layer != nil {
		return &NameError{Op: "insert glyph", Name: name, Err: ErrGlyphInUse}
	}
	g.name = name
	l.put(g)
	return nil
}

// InsertCopy adds a deep copy of g to the layer.  The arguments and errors
// are the same as for [Layer.InsertMove].  The glyph g is not modified.
func (l *Layer) InsertCopy(g *Glyph, name string, overwrite bool) (*Glyph, error) {
	name, err := l.checkInsert(g, name, overwrite)
	if err != nil {
		return nil, err
	}
	c := g.CopyAs(name)
	l.put(c)
	return c, nil
}

// SetGlyph adds g to the layer under its own name, replacing any existing
// glyph with the same name.
func (l *Layer) SetGlyph(g *Glyph) error {
	if l.Get(g.name) == g {
		return nil
	}
	return l.InsertMove(g, "", true)
}

func (l *Layer) checkInsert(g *Glyph, name string, overwrite bool) (string, error) {
	if name == "" {
		name = g.name
	}
	if name == "" {
		return "", &NameError{Op: "insert glyph", Name: name, Err: ErrUnnamedGlyph}
	}
	if err := checkName("insert glyph", name); err != nil {
		return "", err
	}
	if !overwrite && l.glyphs.Contains(name) {
		return "", &NameError{Op: "insert glyph", Name: name, Err: ErrGlyphNameCollision}
	}
	return name, nil
}

// put stores g under its name.  A glyph which is replaced is detached from
// the layer.
func (l *Layer) put(g *Glyph) {
	if old, ok := l.glyphs.Get(g.name); ok {
		old.layer = nil
	}
	g.layer = l
	l.glyphs.Set(g.name, g)
}

// RenameGlyph changes the name of a glyph.  The renamed glyph moves to the
// end of the layer.  Components which refer to the old name are not
// updated.  Renaming a glyph to its current name does nothing.
func (l *Layer) RenameGlyph(oldName, newName string, overwrite bool) error {
	if oldName == newName {
		if !l.glyphs.Contains(oldName) {
			return &NameError{Op: "rename glyph", Name: oldName, Err: ErrGlyphNotFound}
		}
		return nil
	}
	if !l.glyphs.Contains(oldName) {
		return &NameError{Op: "rename glyph", Name: oldName, Err: ErrGlyphNotFound}
	}
	if err := checkName("rename glyph", newName); err != nil {
		return err
	}
	if !overwrite && l.glyphs.Contains(newName) {
		return &NameError{Op: "rename glyph", Name: newName, Err: ErrGlyphNameCollision}
	}
	if old, ok := l.glyphs.Pop(newName); ok {
		old.layer = nil
	}
	g, _ := l.glyphs.Pop(oldName)
	g.name = newName
	l.put(g)
	return nil
}

// RemoveGlyph removes a glyph from the layer and returns it.  The removed
// glyph keeps its name and can be added to another layer.
func (l *Layer) RemoveGlyph(name string) (*Glyph, error) {
	g, ok := l.glyphs.Pop(name)
	if !ok {
		return nil, &NameError{Op: "remove glyph", Name: name, Err: ErrGlyphNotFound}
	}
	g.layer = nil
	return g, nil
}

// DrawGlyph draws the named glyph into p.  This implements the
// [pen.GlyphSet] interface, so that layers can be used to resolve
// components.
func (l *Layer) DrawGlyph(name string, p pen.Pen) error {
	g := l.Get(name)
	if g == nil {
		return &MissingGlyphError{Name: name}
	}
	return g.Draw(p)
}

// Bounds returns the union of the tight bounding boxes of all glyphs in the
// layer.
func (l *Layer) Bounds() (*rect.Rect, error) {
	return l.bounds(false)
}

// ControlBounds returns the union of the control bounding boxes of all
// glyphs in the layer.
func (l *Layer) ControlBounds() (*rect.Rect, error) {
	return l.bounds(true)
}

func (l *Layer) bounds(control bool) (*rect.Rect, error) {
	var res *rect.Rect
	for g := range l.All() {
		bbox, err := g.bounds(l, control)
		if err != nil {
			return nil, &NameError{Op: "glyph bounds", Name: g.name, Err: err}
		}
		res = pen.UnionBounds(res, bbox)
	}
	return res, nil
}

// Copy returns a deep copy of the layer.  The copy is not part of any
// layer set.
func (l *Layer) Copy() *Layer {
	res := &Layer{
		name:  l.name,
		Color: copyColor(l.Color),
		Lib:   l.Lib.Copy(),
	}
	for g := range l.All() {
		c := g.Copy()
		c.layer = res
		res.glyphs.Set(c.name, c)
	}
	return res
}

// Equal reports whether two layers have the same name, attributes and
// glyphs.  The order of the glyphs is not significant.
func (l *Layer) Equal(other *Layer) bool {
	if l == nil || other == nil {
		return l == other
	}
	if l.name != other.name ||
		l.Len() != other.Len() ||
		!colorEqual(l.Color, other.Color) ||
		!l.Lib.Equal(other.Lib) {
		return false
	}
	for g := range l.All() {
		if !g.Equal(other.Get(g.name)) {
			return false
		}
	}
	return true
}
