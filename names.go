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
	"unicode"

	"seehuhn.de/go/postscript/type1/names"
)

// checkName validates a glyph or layer name.  Names must be non-empty and
// must not contain control characters.
func checkName(op, name string) error {
	if name == "" {
		return &NameError{Op: op, Name: name, Err: ErrInvalidName}
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return &NameError{Op: op, Name: name, Err: ErrInvalidName}
		}
	}
	return nil
}

// AutoUnicodes returns the code point implied by the glyph name, following
// the Adobe Glyph List conventions.  Names like "A", "uni0041" and "u1F600"
// are recognized, and suffixes like ".sc" are ignored.  The result is nil if
// the name does not correspond to a single code point.
func (g *Glyph) AutoUnicodes() []rune {
	if g.name == "" || g.name == ".notdef" {
		return nil
	}
	rr := []rune(names.ToUnicode(g.name, ""))
	if len(rr) != 1 || rr[0] == unicode.ReplacementChar {
		return nil
	}
	return rr
}
