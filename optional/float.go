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

package optional

import "fmt"

// Float represents an optional floating point number.
//
// Glyph coordinates, margins and most font info metrics use this type.
type Float struct {
	isSet bool
	val   float64
}

// NewFloat creates a new Float with the given value.
func NewFloat(v float64) Float {
	var x Float
	x.Set(v)
	return x
}

// Get returns the value and whether it is set.
func (x Float) Get() (float64, bool) {
	return x.val, x.isSet
}

// IsSet reports whether a value is present.
func (x Float) IsSet() bool {
	return x.isSet
}

// Or returns the value if it is set, and def otherwise.
func (x Float) Or(def float64) float64 {
	if !x.isSet {
		return def
	}
	return x.val
}

// Set sets the value.
func (x *Float) Set(v float64) {
	x.isSet = true
	x.val = v
}

// Clear clears the value.
func (x *Float) Clear() {
	x.isSet = false
	x.val = 0
}

// Equal compares two Floats for equality.
func (x Float) Equal(other Float) bool {
	return x.isSet == other.isSet && x.val == other.val
}

// String formats the value, or returns "unset".
func (x Float) String() string {
	if !x.isSet {
		return "unset"
	}
	return fmt.Sprintf("%g", x.val)
}
