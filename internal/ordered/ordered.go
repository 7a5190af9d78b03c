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

// Package ordered implements a string-keyed map which remembers the order in
// which keys were inserted.
package ordered

import (
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Map is an insertion-ordered map from strings to values of type V.
// The zero value is an empty map, ready to use.
type Map[V any] struct {
	m *linkedhashmap.Map
}

// New allocates a new, empty map.
func New[V any]() *Map[V] {
	return &Map[V]{m: linkedhashmap.New()}
}

// Len returns the number of entries in the map.
func (m *Map[V]) Len() int {
	if m == nil || m.m == nil {
		return 0
	}
	return m.m.Size()
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	var zero V
	if m == nil || m.m == nil {
		return zero, false
	}
	val, ok := m.m.Get(key)
	if !ok {
		return zero, false
	}
	return val.(V), true
}

// Contains reports whether key is present in the map.
func (m *Map[V]) Contains(key string) bool {
	if m == nil || m.m == nil {
		return false
	}
	_, ok := m.m.Get(key)
	return ok
}

// Set stores val under key.  If the key is already present, the entry
// keeps its position.  Otherwise the new entry is appended at the end.
func (m *Map[V]) Set(key string, val V) {
	if m.m == nil {
		m.m = linkedhashmap.New()
	}
	m.m.Put(key, val)
}

// Delete removes key from the map and reports whether it was present.
func (m *Map[V]) Delete(key string) bool {
	if !m.Contains(key) {
		return false
	}
	m.m.Remove(key)
	return true
}

// Pop removes key from the map and returns the value which was stored
// under the key.
func (m *Map[V]) Pop(key string) (V, bool) {
	val, ok := m.Get(key)
	if ok {
		m.m.Remove(key)
	}
	return val, ok
}

// Keys returns the keys in insertion order.
func (m *Map[V]) Keys() []string {
	if m == nil || m.m == nil {
		return nil
	}
	raw := m.m.Keys()
	keys := make([]string, len(raw))
	for i, k := range raw {
		keys[i] = k.(string)
	}
	return keys
}

// Values returns the values in insertion order.
func (m *Map[V]) Values() []V {
	if m == nil || m.m == nil {
		return nil
	}
	raw := m.m.Values()
	vals := make([]V, len(raw))
	for i, v := range raw {
		vals[i] = v.(V)
	}
	return vals
}

// All iterates over the entries in insertion order.
//
// The set of keys is fixed when iteration starts.  Entries deleted during
// the iteration are skipped.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, key := range m.Keys() {
			val, ok := m.Get(key)
			if !ok {
				continue
			}
			if !yield(key, val) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of the map.
func (m *Map[V]) Clone() *Map[V] {
	res := New[V]()
	for key, val := range m.All() {
		res.Set(key, val)
	}
	return res
}
