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

	"seehuhn.de/go/ufo/lib"
)

// Keys of the font and glyph libs which are managed by this package.
const (
	objectLibsKey     = "public.objectLibs"
	glyphOrderKey     = "public.glyphOrder"
	verticalOriginKey = "public.verticalOrigin"
)

var (
	fontManagedKeys  = []string{objectLibsKey, glyphOrderKey}
	glyphManagedKeys = []string{objectLibsKey, verticalOriginKey}
)

// pruneObjectLibs returns the non-empty object libs of the objects
// identified by live.
func pruneObjectLibs(libs map[string]*lib.Dict, live map[string]bool) map[string]*lib.Dict {
	res := make(map[string]*lib.Dict)
	for id, d := range libs {
		if d.Len() > 0 && live[id] {
			res[id] = d
		}
	}
	return res
}

// remapObjectLibs copies the object libs of the objects identified by live.
// Since copied objects keep their identifiers, the entries of the copy are
// stored under the same keys as in the original, but share no data with it.
func remapObjectLibs(libs map[string]*lib.Dict, live map[string]bool) map[string]*lib.Dict {
	if len(libs) == 0 {
		return nil
	}
	res := make(map[string]*lib.Dict)
	for id, d := range libs {
		if live[id] {
			res[id] = d.Copy()
		}
	}
	return res
}

func objectLibsEqual(a, b map[string]*lib.Dict) bool {
	if len(a) != len(b) {
		return false
	}
	for id, d := range a {
		if !d.Equal(b[id]) {
			return false
		}
	}
	return true
}

// objectLibsToDict converts object libs into the form stored under the
// "public.objectLibs" key.  Entries are ordered as the identifiers in ids.
func objectLibsToDict(libs map[string]*lib.Dict, ids []string) *lib.Dict {
	res := lib.NewDict()
	for _, id := range ids {
		if d, ok := libs[id]; ok {
			res.Set(id, d.Copy())
		}
	}
	return res
}

// objectLibsFromLib removes the "public.objectLibs" key from d and returns
// its contents.
func objectLibsFromLib(d *lib.Dict) (map[string]*lib.Dict, error) {
	obj := d.Pop(objectLibsKey)
	if obj == nil {
		return nil, nil
	}
	table, ok := obj.(*lib.Dict)
	if !ok {
		return nil, errNotDict(objectLibsKey)
	}
	res := make(map[string]*lib.Dict, table.Len())
	for id, val := range table.All() {
		entry, ok := val.(*lib.Dict)
		if !ok {
			return nil, errNotDict(objectLibsKey + "/" + id)
		}
		res[id] = entry
	}
	return res, nil
}

// libEqual compares two libs, ignoring the given keys.
func libEqual(a, b *lib.Dict, skip ...string) bool {
	if len(skip) == 0 {
		return a.Equal(b)
	}
	strip := func(d *lib.Dict) *lib.Dict {
		if d.Len() == 0 {
			return d
		}
		needCopy := false
		for _, key := range skip {
			if d.Has(key) {
				needCopy = true
			}
		}
		if !needCopy {
			return d
		}
		res := lib.NewDict()
		for key, val := range d.All() {
			res.Set(key, val)
		}
		for _, key := range skip {
			res.Delete(key)
		}
		return res
	}
	return strip(a).Equal(strip(b))
}

func errNotDict(key string) error {
	return fmt.Errorf("lib key %q: %w", key, lib.ErrNotDict)
}
