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
	"fmt"
	"iter"

	"seehuhn.de/go/ufo/internal/ordered"
)

// DefaultLayerName is the name of the default layer of a new font.
const DefaultLayerName = "public.default"

// LayerSet is the ordered collection of layers of a font.  Exactly one of
// the layers is the default layer.
type LayerSet struct {
	layers       ordered.Map[*Layer]
	defaultLayer *Layer
}

// NewLayerSet creates a layer set from a list of layers.  The layer called
// defaultName becomes the default layer.
func NewLayerSet(layers []*Layer, defaultName string) (*LayerSet, error) {
	if len(layers) == 0 {
		return nil, ErrEmptyLayerSet
	}
	ls := &LayerSet{}
	for i, l := range layers {
		if l == nil {
			return nil, fmt.Errorf("entry %d: %w", i, ErrTypeMismatch)
		}
		if ls.layers.Contains(l.name) {
			return nil, &NameError{Op: "new layer set", Name: l.name, Err: ErrDuplicateLayerName}
		}
		if l.set != nil {
			return nil, &NameError{Op: "new layer set", Name: l.name, Err: ErrLayerInUse}
		}
		ls.layers.Set(l.name, l)
	}
	def, ok := ls.layers.Get(defaultName)
	if !ok {
		return nil, &NameError{Op: "new layer set", Name: defaultName, Err: ErrNoDefaultLayer}
	}
	ls.defaultLayer = def
	for _, l := range layers {
		l.set = ls
	}
	return ls, nil
}

// newDefaultLayerSet returns a layer set with a single, empty layer.
func newDefaultLayerSet() *LayerSet {
	ls := &LayerSet{defaultLayer: NewLayer(DefaultLayerName)}
	ls.defaultLayer.set = ls
	ls.layers.Set(DefaultLayerName, ls.defaultLayer)
	return ls
}

// Default returns the default layer.
func (ls *LayerSet) Default() *Layer {
	return ls.defaultLayer
}

// Len returns the number of layers.
func (ls *LayerSet) Len() int {
	return ls.layers.Len()
}

// Contains reports whether there is a layer with the given name.
func (ls *LayerSet) Contains(name string) bool {
	return ls.layers.Contains(name)
}

// Get returns the layer with the given name, or nil if there is no such
// layer.
func (ls *LayerSet) Get(name string) *Layer {
	l, _ := ls.layers.Get(name)
	return l
}

// Names returns the layer names, in order.
func (ls *LayerSet) Names() []string {
	return ls.layers.Keys()
}

// All iterates over the layers, in order.
func (ls *LayerSet) All() iter.Seq[*Layer] {
	return func(yield func(*Layer) bool) {
		for _, l := range ls.layers.All() {
			if !yield(l) {
				return
			}
		}
	}
}

// NewLayer creates a new, empty layer at the end of the layer set.
func (ls *LayerSet) NewLayer(name string) (*Layer, error) {
	l := NewLayer(name)
	err := ls.AddLayer(l)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// AddLayer appends l to the layer set.  The layer must not be part of a
// layer set already.
func (ls *LayerSet) AddLayer(l *Layer) error {
	if err := checkName("add layer", l.name); err != nil {
		return err
	}
	if l.set != nil {
		return &NameError{Op: "add layer", Name: l.name, Err: ErrLayerInUse}
	}
	if ls.layers.Contains(l.name) {
		return &NameError{Op: "add layer", Name: l.name, Err: ErrLayerNameCollision}
	}
	l.set = ls
	ls.layers.Set(l.name, l)
	return nil
}

// RenameLayer changes the name of a layer.  The renamed layer moves to the
// end of the layer set and stays the default layer, if it was the default
// before.  With overwrite set, an existing layer called newName is replaced,
// unless it is the default layer.
func (ls *LayerSet) RenameLayer(oldName, newName string, overwrite bool) error {
	l, ok := ls.layers.Get(oldName)
	if !ok {
		return &NameError{Op: "rename layer", Name: oldName, Err: ErrLayerNotFound}
	}
	if oldName == newName {
		return nil
	}
	if err := checkName("rename layer", newName); err != nil {
		return err
	}
	if target, exists := ls.layers.Get(newName); exists {
		if !overwrite {
			return &NameError{Op: "rename layer", Name: newName, Err: ErrLayerNameCollision}
		}
		if target == ls.defaultLayer {
			return &NameError{Op: "rename layer", Name: newName, Err: ErrDefaultLayerRemoval}
		}
	}
	if target, ok := ls.layers.Pop(newName); ok {
		target.set = nil
	}
	ls.layers.Delete(oldName)
	l.name = newName
	ls.layers.Set(newName, l)
	return nil
}

// RemoveLayer removes a layer from the set and returns it.  The removed
// layer can be added to another layer set.  The default layer cannot be
// removed.
func (ls *LayerSet) RemoveLayer(name string) (*Layer, error) {
	l, ok := ls.layers.Get(name)
	if !ok {
		return nil, &NameError{Op: "remove layer", Name: name, Err: ErrLayerNotFound}
	}
	if l == ls.defaultLayer {
		return nil, &NameError{Op: "remove layer", Name: name, Err: ErrDefaultLayerRemoval}
	}
	ls.layers.Delete(name)
	l.set = nil
	return l, nil
}

// SetDefault makes the named layer the default layer.
func (ls *LayerSet) SetDefault(name string) error {
	l, ok := ls.layers.Get(name)
	if !ok {
		return &NameError{Op: "set default layer", Name: name, Err: ErrLayerNotFound}
	}
	ls.defaultLayer = l
	return nil
}

// Copy returns a deep copy of the layer set.
func (ls *LayerSet) Copy() *LayerSet {
	res := &LayerSet{}
	for l := range ls.All() {
		c := l.Copy()
		c.set = res
		if l == ls.defaultLayer {
			res.defaultLayer = c
		}
		res.layers.Set(c.name, c)
	}
	return res
}

// Equal reports whether two layer sets have equal layers in the same order
// and the same default layer.
func (ls *LayerSet) Equal(other *LayerSet) bool {
	if ls == nil || other == nil {
		return ls == other
	}
	if ls.defaultLayer.name != other.defaultLayer.name {
		return false
	}
	a := ls.layers.Values()
	b := other.layers.Values()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
