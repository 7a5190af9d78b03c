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

	"github.com/google/uuid"
)

// maxIdentifierLength is the maximal length of an identifier, in bytes.
const maxIdentifierLength = 100

// LibObject is implemented by all objects which can have an object lib:
// anchors, components, contours, guidelines and points.
type LibObject interface {
	// EnsureIdentifier returns the identifier of the object.  If the object
	// has no identifier yet, a new, random identifier is assigned first.
	EnsureIdentifier() string
}

func newIdentifier() string {
	return uuid.NewString()
}

func ensureIdentifier(id *string) string {
	if *id == "" {
		*id = newIdentifier()
	}
	return *id
}

// ValidIdentifier reports whether s can be used as an identifier.
// Identifiers consist of at most 100 characters in the range 0x20 to 0x7E.
func ValidIdentifier(s string) bool {
	if s == "" || len(s) > maxIdentifierLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// checkIdentifier validates an optional identifier.
func checkIdentifier(s string) error {
	if s != "" && !ValidIdentifier(s) {
		return fmt.Errorf("%w %q", ErrInvalidIdentifier, s)
	}
	return nil
}
