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
	"seehuhn.de/go/ufo/lib"
	"seehuhn.de/go/ufo/optional"
)

// Info contains the font-wide metadata stored in fontinfo.plist.
//
// Frequently used entries are available as struct fields.  All other
// entries are kept in Other, using the key names of the UFO
// fontinfo.plist format.  The "guidelines" entry is represented by
// [Font.Guidelines].
type Info struct {
	FamilyName         string
	StyleName          string
	StyleMapFamilyName string
	StyleMapStyleName  string
	VersionMajor       optional.Int
	VersionMinor       optional.Int

	Copyright string
	Trademark string

	UnitsPerEm  optional.Float
	Descender   optional.Float
	XHeight     optional.Float
	CapHeight   optional.Float
	Ascender    optional.Float
	ItalicAngle optional.Float

	OpenTypeOS2WeightClass optional.Int
	PostscriptFontName     string
	PostscriptIsFixedPitch optional.Bool

	Note string

	Other *lib.Dict
}

type infoString struct {
	key string
	ptr func(*Info) *string
}

type infoFloat struct {
	key string
	ptr func(*Info) *optional.Float
}

type infoInt struct {
	key string
	ptr func(*Info) *optional.Int
}

var infoStrings = []infoString{
	{"familyName", func(i *Info) *string { return &i.FamilyName }},
	{"styleName", func(i *Info) *string { return &i.StyleName }},
	{"styleMapFamilyName", func(i *Info) *string { return &i.StyleMapFamilyName }},
	{"styleMapStyleName", func(i *Info) *string { return &i.StyleMapStyleName }},
	{"copyright", func(i *Info) *string { return &i.Copyright }},
	{"trademark", func(i *Info) *string { return &i.Trademark }},
	{"postscriptFontName", func(i *Info) *string { return &i.PostscriptFontName }},
	{"note", func(i *Info) *string { return &i.Note }},
}

var infoFloats = []infoFloat{
	{"unitsPerEm", func(i *Info) *optional.Float { return &i.UnitsPerEm }},
	{"descender", func(i *Info) *optional.Float { return &i.Descender }},
	{"xHeight", func(i *Info) *optional.Float { return &i.XHeight }},
	{"capHeight", func(i *Info) *optional.Float { return &i.CapHeight }},
	{"ascender", func(i *Info) *optional.Float { return &i.Ascender }},
	{"italicAngle", func(i *Info) *optional.Float { return &i.ItalicAngle }},
}

var infoInts = []infoInt{
	{"versionMajor", func(i *Info) *optional.Int { return &i.VersionMajor }},
	{"versionMinor", func(i *Info) *optional.Int { return &i.VersionMinor }},
	{"openTypeOS2WeightClass", func(i *Info) *optional.Int { return &i.OpenTypeOS2WeightClass }},
}

const (
	infoFixedPitchKey = "postscriptIsFixedPitch"
	infoGuidelinesKey = "guidelines"
)

// isInfoFieldKey reports whether key is stored in a struct field of Info
// or in Font.Guidelines, and thus must not be used in Info.Other.
func isInfoFieldKey(key string) bool {
	switch key {
	case infoFixedPitchKey, infoGuidelinesKey:
		return true
	}
	for _, e := range infoStrings {
		if e.key == key {
			return true
		}
	}
	for _, e := range infoFloats {
		if e.key == key {
			return true
		}
	}
	for _, e := range infoInts {
		if e.key == key {
			return true
		}
	}
	return false
}

// asDict converts the info into the form stored in fontinfo.plist.
// Guidelines are added by the caller.
func (info *Info) asDict() *lib.Dict {
	d := lib.NewDict()
	for _, e := range infoStrings {
		if s := *e.ptr(info); s != "" {
			d.Set(e.key, lib.String(s))
		}
	}
	for _, e := range infoInts {
		if x, ok := e.ptr(info).Get(); ok {
			d.Set(e.key, lib.Integer(x))
		}
	}
	for _, e := range infoFloats {
		if x, ok := e.ptr(info).Get(); ok {
			d.Set(e.key, number(x))
		}
	}
	if b, ok := info.PostscriptIsFixedPitch.Get(); ok {
		d.Set(infoFixedPitchKey, lib.Bool(b))
	}
	for key, val := range info.Other.All() {
		d.Set(key, lib.Copy(val))
	}
	return d
}

// setFromDict fills the info from the contents of fontinfo.plist.
// The "guidelines" entry is left in d.
func (info *Info) setFromDict(d *lib.Dict) error {
	*info = Info{}
	rest := d.Copy()
	for _, e := range infoStrings {
		obj := rest.Pop(e.key)
		if obj == nil {
			continue
		}
		s, ok := obj.(lib.String)
		if !ok {
			return errWrongType(e.key, "string")
		}
		*e.ptr(info) = string(s)
	}
	for _, e := range infoInts {
		obj := rest.Pop(e.key)
		if obj == nil {
			continue
		}
		x, ok := obj.(lib.Integer)
		if !ok {
			return errWrongType(e.key, "integer")
		}
		e.ptr(info).Set(int64(x))
	}
	for _, e := range infoFloats {
		obj := rest.Pop(e.key)
		if obj == nil {
			continue
		}
		x, ok := toFloat(obj)
		if !ok {
			return errWrongType(e.key, "number")
		}
		e.ptr(info).Set(x)
	}
	if obj := rest.Pop(infoFixedPitchKey); obj != nil {
		b, ok := obj.(lib.Bool)
		if !ok {
			return errWrongType(infoFixedPitchKey, "boolean")
		}
		info.PostscriptIsFixedPitch.Set(bool(b))
	}
	rest.Delete(infoGuidelinesKey)
	info.Other = rest
	return nil
}

// Equal reports whether two info records contain the same data.
func (info *Info) Equal(other *Info) bool {
	for _, e := range infoStrings {
		if *e.ptr(info) != *e.ptr(other) {
			return false
		}
	}
	for _, e := range infoInts {
		if !e.ptr(info).Equal(*e.ptr(other)) {
			return false
		}
	}
	for _, e := range infoFloats {
		if !e.ptr(info).Equal(*e.ptr(other)) {
			return false
		}
	}
	return info.PostscriptIsFixedPitch.Equal(other.PostscriptIsFixedPitch) &&
		info.Other.Equal(other.Other)
}

// Copy returns a deep copy of the info record.
func (info *Info) Copy() Info {
	res := *info
	res.Other = info.Other.Copy()
	return res
}

// number stores integral values as integers, and all other values as reals.
func number(x float64) lib.Object {
	if x == float64(int64(x)) {
		return lib.Integer(x)
	}
	return lib.Real(x)
}

func toFloat(obj lib.Object) (float64, bool) {
	switch x := obj.(type) {
	case lib.Integer:
		return float64(x), true
	case lib.Real:
		return float64(x), true
	}
	return 0, false
}
