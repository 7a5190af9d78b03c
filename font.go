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
	"maps"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/ufo/lib"
)

// Font is a font in UFO format.
//
// The glyph methods of Font act on the default layer.
type Font struct {
	// Path is the location the font was loaded from or last saved to.
	Path string

	Layers *LayerSet

	Info       Info
	Guidelines []*Guideline
	Lib        *lib.Dict

	// GlyphOrder is the preferred order of glyphs.  It may contain names
	// which are not present in any layer.
	GlyphOrder []string

	// Groups maps group names to lists of glyph names.
	Groups map[string][]string

	// Kerning maps a first glyph or group name and a second glyph or group
	// name to a kerning value.
	Kerning map[string]map[string]float64

	// Features contains OpenType feature code in Adobe feature file syntax.
	Features string

	objectLibs map[string]*lib.Dict
}

// New allocates a new, empty font with a single layer.
func New() *Font {
	return NewWithLayers(newDefaultLayerSet())
}

// NewWithLayers allocates a new font which uses the given layers.
func NewWithLayers(layers *LayerSet) *Font {
	return &Font{
		Layers: layers,
		Info:   Info{Other: lib.NewDict()},
		Lib:    lib.NewDict(),
	}
}

// DefaultLayer returns the default layer of the font.
func (f *Font) DefaultLayer() *Layer {
	return f.Layers.Default()
}

// Glyph returns the glyph with the given name from the default layer, or
// nil if there is no such glyph.
func (f *Font) Glyph(name string) *Glyph {
	return f.DefaultLayer().Get(name)
}

// Contains reports whether the default layer has a glyph with the given
// name.
func (f *Font) Contains(name string) bool {
	return f.DefaultLayer().Contains(name)
}

// Len returns the number of glyphs in the default layer.
func (f *Font) Len() int {
	return f.DefaultLayer().Len()
}

// Names returns the glyph names of the default layer, in order.
func (f *Font) Names() []string {
	return f.DefaultLayer().Names()
}

// All iterates over the glyphs of the default layer.
func (f *Font) All() iter.Seq[*Glyph] {
	return f.DefaultLayer().All()
}

// NewGlyph creates a new, empty glyph in the default layer.
func (f *Font) NewGlyph(name string) (*Glyph, error) {
	return f.DefaultLayer().NewGlyph(name)
}

// AddGlyph adds g to the default layer.  An existing glyph with the same
// name is not replaced.
func (f *Font) AddGlyph(g *Glyph) error {
	return f.DefaultLayer().AddGlyph(g)
}

// SetGlyph adds g to the default layer, replacing any existing glyph with
// the same name.
func (f *Font) SetGlyph(g *Glyph) error {
	return f.DefaultLayer().SetGlyph(g)
}

// DeleteGlyph removes the named glyph from the default layer.
func (f *Font) DeleteGlyph(name string) error {
	_, err := f.DefaultLayer().RemoveGlyph(name)
	return err
}

// RenameGlyph renames a glyph in the default layer.
func (f *Font) RenameGlyph(oldName, newName string, overwrite bool) error {
	return f.DefaultLayer().RenameGlyph(oldName, newName, overwrite)
}

// NewLayer appends a new, empty layer to the font.
func (f *Font) NewLayer(name string) (*Layer, error) {
	return f.Layers.NewLayer(name)
}

// RenameLayer renames one of the layers of the font.
func (f *Font) RenameLayer(oldName, newName string, overwrite bool) error {
	return f.Layers.RenameLayer(oldName, newName, overwrite)
}

// AppendGuideline adds a font-wide guideline.
func (f *Font) AppendGuideline(g *Guideline) error {
	if err := g.Validate(); err != nil {
		return err
	}
	f.Guidelines = append(f.Guidelines, g)
	return nil
}

// Bounds returns the union of the tight bounding boxes of all glyphs in the
// default layer.
func (f *Font) Bounds() (*rect.Rect, error) {
	return f.DefaultLayer().Bounds()
}

// ControlBounds returns the union of the control bounding boxes of all
// glyphs in the default layer.
func (f *Font) ControlBounds() (*rect.Rect, error) {
	return f.DefaultLayer().ControlBounds()
}

// ObjectLib returns the lib of a font-wide guideline.  An identifier is
// assigned to obj, if it does not have one yet.  Changes to the returned
// dictionary are stored in the font.
func (f *Font) ObjectLib(obj LibObject) *lib.Dict {
	id := obj.EnsureIdentifier()
	if f.objectLibs == nil {
		f.objectLibs = make(map[string]*lib.Dict)
	}
	d, ok := f.objectLibs[id]
	if !ok {
		d = lib.NewDict()
		f.objectLibs[id] = d
	}
	return d
}

func (f *Font) liveIdentifiers() map[string]bool {
	ids := make(map[string]bool)
	for _, g := range f.Guidelines {
		if g.Identifier != "" {
			ids[g.Identifier] = true
		}
	}
	return ids
}

// Copy returns a deep copy of the font.
func (f *Font) Copy() *Font {
	res := &Font{
		Path:       f.Path,
		Layers:     f.Layers.Copy(),
		Info:       f.Info.Copy(),
		Lib:        f.Lib.Copy(),
		GlyphOrder: slices.Clone(f.GlyphOrder),
		Features:   f.Features,
	}
	if f.Guidelines != nil {
		res.Guidelines = make([]*Guideline, len(f.Guidelines))
		for i, g := range f.Guidelines {
			res.Guidelines[i] = g.Copy()
		}
	}
	if f.Groups != nil {
		res.Groups = make(map[string][]string, len(f.Groups))
		for name, members := range f.Groups {
			res.Groups[name] = slices.Clone(members)
		}
	}
	if f.Kerning != nil {
		res.Kerning = make(map[string]map[string]float64, len(f.Kerning))
		for first, row := range f.Kerning {
			res.Kerning[first] = maps.Clone(row)
		}
	}
	res.objectLibs = remapObjectLibs(f.objectLibs, res.liveIdentifiers())
	return res
}

// Equal reports whether two fonts contain the same data.  The Path field
// is not compared.
func (f *Font) Equal(other *Font) bool {
	if f == nil || other == nil {
		return f == other
	}
	if !f.Info.Equal(&other.Info) ||
		!slices.EqualFunc(f.Guidelines, other.Guidelines, (*Guideline).Equal) ||
		!libEqual(f.Lib, other.Lib, fontManagedKeys...) ||
		!slices.Equal(f.GlyphOrder, other.GlyphOrder) ||
		f.Features != other.Features {
		return false
	}
	if len(f.Groups) != len(other.Groups) {
		return false
	}
	for name, members := range f.Groups {
		otherMembers, ok := other.Groups[name]
		if !ok || !slices.Equal(members, otherMembers) {
			return false
		}
	}
	if !kerningEqual(f.Kerning, other.Kerning) {
		return false
	}
	if !f.Layers.Equal(other.Layers) {
		return false
	}
	return objectLibsEqual(
		pruneObjectLibs(f.objectLibs, f.liveIdentifiers()),
		pruneObjectLibs(other.objectLibs, other.liveIdentifiers()))
}

func kerningEqual(a, b map[string]map[string]float64) bool {
	count := func(m map[string]map[string]float64) int {
		n := 0
		for _, row := range m {
			n += len(row)
		}
		return n
	}
	if count(a) != count(b) {
		return false
	}
	for first, row := range a {
		for second, val := range row {
			otherVal, ok := b[first][second]
			if !ok || otherVal != val {
				return false
			}
		}
	}
	return true
}
