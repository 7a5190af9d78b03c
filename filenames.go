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
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const maxFileNameLength = 255

// clashDigits is the width of the counter used to resolve file name clashes.
const clashDigits = 15

const illegalFileNameChars = "\"*+/:<>?[\\]|"

var reservedFileNames = map[string]bool{
	"con": true, "prn": true, "aux": true, "clock$": true, "nul": true,
	"com1": true, "com2": true, "com3": true, "com4": true, "com5": true,
	"com6": true, "com7": true, "com8": true, "com9": true,
	"lpt1": true, "lpt2": true, "lpt3": true, "lpt4": true, "lpt5": true,
	"lpt6": true, "lpt7": true, "lpt8": true, "lpt9": true,
}

// fileNameSet records the file names used inside a directory.  Names are
// compared after Unicode normalization and case folding, so that the files
// can be stored on case-insensitive file systems.
type fileNameSet map[string]bool

func fileNameKey(name string) string {
	return strings.ToLower(norm.NFC.String(name))
}

func (s fileNameSet) add(name string) {
	s[fileNameKey(name)] = true
}

func (s fileNameSet) has(name string) bool {
	return s[fileNameKey(name)]
}

// userNameToFileName converts a glyph or layer name into a file name.
// Illegal characters are replaced by underscores, upper-case letters are
// followed by an underscore, and reserved names are prefixed with an
// underscore.  If the result clashes with a name in existing, a counter is
// appended.  The new name is added to existing.
func userNameToFileName(userName, prefix, suffix string, existing fileNameSet) string {
	var runes []rune
	for i, r := range userName {
		switch {
		case r < 0x20 || r == 0x7F || strings.ContainsRune(illegalFileNameChars, r):
			runes = append(runes, '_')
		case i == 0 && r == '.' && prefix == "":
			runes = append(runes, '_')
		case unicode.IsUpper(r):
			runes = append(runes, r, '_')
		default:
			runes = append(runes, r)
		}
	}

	parts := strings.Split(string(runes), ".")
	for i, part := range parts {
		if reservedFileNames[strings.ToLower(part)] {
			parts[i] = "_" + part
		}
	}
	name := []rune(strings.Join(parts, "."))

	avail := maxFileNameLength - len([]rune(prefix)) - len([]rune(suffix))
	if len(name) > avail {
		name = name[:avail]
	}

	full := prefix + string(name) + suffix
	if !existing.has(full) {
		existing.add(full)
		return full
	}

	if len(name) > avail-clashDigits {
		name = name[:avail-clashDigits]
	}
	for counter := 1; ; counter++ {
		full = fmt.Sprintf("%s%s%0*d%s", prefix, string(name), clashDigits, counter, suffix)
		if !existing.has(full) {
			existing.add(full)
			return full
		}
	}
}
