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

// Package lib implements the keyed bags of arbitrary data which UFO fonts
// attach to fonts, layers, glyphs and individual outline objects.
//
// The values in a lib are restricted to the data types of property lists.
// These types implement the [Object] interface: [Array], [Bool], [Data],
// [Date], [*Dict], [Integer], [Real], and [String].
package lib

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Object represents a value which can be stored in a lib.
type Object interface {
	// AsPlist converts the object to the representation used by the
	// property list encoder.
	AsPlist() any
}

// Bool represents a boolean value.
type Bool bool

// AsPlist implements the [Object] interface.
func (x Bool) AsPlist() any { return bool(x) }

// Integer represents an integer value.
type Integer int64

// AsPlist implements the [Object] interface.
func (x Integer) AsPlist() any { return int64(x) }

// Real represents a floating point value.
type Real float64

// AsPlist implements the [Object] interface.
func (x Real) AsPlist() any { return float64(x) }

// String represents a text string.
type String string

// AsPlist implements the [Object] interface.
func (x String) AsPlist() any { return string(x) }

// Data represents binary data.
type Data []byte

// AsPlist implements the [Object] interface.
func (x Data) AsPlist() any { return []byte(x) }

// Date represents a point in time.
type Date time.Time

// AsPlist implements the [Object] interface.
func (x Date) AsPlist() any { return time.Time(x).UTC() }

// Array represents a list of values.
type Array []Object

// AsPlist implements the [Object] interface.
func (x Array) AsPlist() any {
	res := make([]any, len(x))
	for i, obj := range x {
		res[i] = obj.AsPlist()
	}
	return res
}

// Equal reports whether two objects have the same type and value.
// Dictionaries are compared as mappings, without regard to key order.
func Equal(a, b Object) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case Bool, Integer, Real, String:
		return a == b
	case Data:
		b, ok := b.(Data)
		return ok && bytes.Equal(a, b)
	case Date:
		b, ok := b.(Date)
		return ok && time.Time(a).Equal(time.Time(b))
	case Array:
		b, ok := b.(Array)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	case *Dict:
		b, ok := b.(*Dict)
		return ok && a.Equal(b)
	default:
		return false
	}
}

// Copy returns a deep copy of obj.
func Copy(obj Object) Object {
	switch obj := obj.(type) {
	case Data:
		return Data(bytes.Clone(obj))
	case Array:
		res := make(Array, len(obj))
		for i, elem := range obj {
			res[i] = Copy(elem)
		}
		return res
	case *Dict:
		return obj.Copy()
	default:
		return obj
	}
}

// Format returns a human readable, single line representation of obj.
func Format(obj Object) string {
	switch obj := obj.(type) {
	case nil:
		return "null"
	case Bool:
		return strconv.FormatBool(bool(obj))
	case Integer:
		return strconv.FormatInt(int64(obj), 10)
	case Real:
		return strconv.FormatFloat(float64(obj), 'g', -1, 64)
	case String:
		return strconv.Quote(string(obj))
	case Data:
		return fmt.Sprintf("<%d bytes>", len(obj))
	case Date:
		return time.Time(obj).UTC().Format(time.RFC3339)
	case Array:
		parts := make([]string, len(obj))
		for i, elem := range obj {
			parts[i] = Format(elem)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case *Dict:
		return obj.String()
	default:
		return fmt.Sprintf("%v", obj)
	}
}
