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

// Anchor is a named position in a glyph, used for attaching marks.
type Anchor struct {
	X, Y       float64
	Name       string
	Color      *Color
	Identifier string
}

// Move shifts the anchor by (dx, dy).
func (a *Anchor) Move(dx, dy float64) {
	a.X += dx
	a.Y += dy
}

// EnsureIdentifier implements the [LibObject] interface.
func (a *Anchor) EnsureIdentifier() string {
	return ensureIdentifier(&a.Identifier)
}

// Equal reports whether two anchors are the same.
func (a *Anchor) Equal(other *Anchor) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.X == other.X && a.Y == other.Y &&
		a.Name == other.Name &&
		colorEqual(a.Color, other.Color) &&
		a.Identifier == other.Identifier
}

// Copy returns a deep copy of the anchor.
func (a *Anchor) Copy() *Anchor {
	res := *a
	res.Color = copyColor(a.Color)
	return &res
}
