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

package lib

import (
	"iter"
	"strconv"
	"strings"

	"seehuhn.de/go/ufo/internal/ordered"
)

// Dict is a mapping from string keys to values.  Keys are kept in the order
// they were first inserted.
//
// A nil *Dict can be read from and behaves like an empty dictionary.
type Dict struct {
	m ordered.Map[Object]
}

// NewDict allocates a new, empty dictionary.
func NewDict() *Dict {
	return &Dict{}
}

// AsPlist implements the [Object] interface.
func (d *Dict) AsPlist() any {
	res := make(map[string]any, d.Len())
	for key, val := range d.All() {
		res[key] = val.AsPlist()
	}
	return res
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return d.m.Len()
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	if d == nil {
		return nil
	}
	return d.m.Keys()
}

// Get returns the value stored under key, or nil if the key is not present.
func (d *Dict) Get(key string) Object {
	if d == nil {
		return nil
	}
	val, _ := d.m.Get(key)
	return val
}

// Has reports whether key is present.
func (d *Dict) Has(key string) bool {
	if d == nil {
		return false
	}
	return d.m.Contains(key)
}

// Set stores val under key.  Setting a value to nil removes the key.
func (d *Dict) Set(key string, val Object) {
	if val == nil {
		d.Delete(key)
		return
	}
	d.m.Set(key, val)
}

// Delete removes key from the dictionary.
func (d *Dict) Delete(key string) {
	if d == nil {
		return
	}
	d.m.Delete(key)
}

// Pop removes key from the dictionary and returns the value which was stored
// under the key.
func (d *Dict) Pop(key string) Object {
	if d == nil {
		return nil
	}
	val, _ := d.m.Pop(key)
	return val
}

// All iterates over the entries in insertion order.
func (d *Dict) All() iter.Seq2[string, Object] {
	if d == nil {
		return func(yield func(string, Object) bool) {}
	}
	return d.m.All()
}

// Equal reports whether two dictionaries contain the same keys and values.
// The order of keys is not significant.  A nil dictionary is equal to an
// empty one.
func (d *Dict) Equal(other *Dict) bool {
	if d.Len() != other.Len() {
		return false
	}
	for key, val := range d.All() {
		if !other.Has(key) || !Equal(val, other.Get(key)) {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of the dictionary.
// The copy of a nil dictionary is a new, empty dictionary.
func (d *Dict) Copy() *Dict {
	res := NewDict()
	for key, val := range d.All() {
		res.m.Set(key, Copy(val))
	}
	return res
}

func (d *Dict) String() string {
	var parts []string
	for key, val := range d.All() {
		parts = append(parts, strconv.Quote(key)+": "+Format(val))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
