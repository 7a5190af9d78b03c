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

	"seehuhn.de/go/ufo/optional"
)

// Guideline is a reference line, in a glyph or for the whole font.
//
// A vertical guideline has only X set, a horizontal guideline has only Y
// set.  Other guidelines have X, Y and Angle set, where Angle is measured
// in degrees, counter-clockwise from the horizontal.
type Guideline struct {
	X, Y       optional.Float
	Angle      optional.Float
	Name       string
	Color      *Color
	Identifier string
}

// Validate checks that the combination of X, Y and Angle describes a line.
func (g *Guideline) Validate() error {
	x, y, angle := g.X.IsSet(), g.Y.IsSet(), g.Angle.IsSet()
	switch {
	case !x && !y:
		return fmt.Errorf("%w: neither x nor y is set", ErrInvalidGuideline)
	case angle && !(x && y):
		return fmt.Errorf("%w: angle needs both x and y", ErrInvalidGuideline)
	case x && y && !angle:
		return fmt.Errorf("%w: x and y need an angle", ErrInvalidGuideline)
	}
	if a, ok := g.Angle.Get(); ok && (a < 0 || a > 360) {
		return fmt.Errorf("%w: angle %g out of range", ErrInvalidGuideline, a)
	}
	return checkIdentifier(g.Identifier)
}

// Move shifts the guideline by (dx, dy).
func (g *Guideline) Move(dx, dy float64) {
	if x, ok := g.X.Get(); ok {
		g.X.Set(x + dx)
	}
	if y, ok := g.Y.Get(); ok {
		g.Y.Set(y + dy)
	}
}

// EnsureIdentifier implements the [LibObject] interface.
func (g *Guideline) EnsureIdentifier() string {
	return ensureIdentifier(&g.Identifier)
}

// Equal reports whether two guidelines are the same.
func (g *Guideline) Equal(other *Guideline) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.X.Equal(other.X) && g.Y.Equal(other.Y) && g.Angle.Equal(other.Angle) &&
		g.Name == other.Name &&
		colorEqual(g.Color, other.Color) &&
		g.Identifier == other.Identifier
}

// Copy returns a deep copy of the guideline.
func (g *Guideline) Copy() *Guideline {
	res := *g
	res.Color = copyColor(g.Color)
	return &res
}
