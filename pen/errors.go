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

package pen

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSegmentKind indicates a point type which is not one of
	// offcurve, move, line, curve, or qcurve.
	ErrInvalidSegmentKind = errors.New("invalid segment kind")

	// ErrInvalidContour indicates a violation of the pen protocol, for
	// example a LineTo without a preceding MoveTo.
	ErrInvalidContour = errors.New("invalid contour")

	// ErrLayerRequired is returned when a component must be resolved, but
	// no glyph set was supplied.
	ErrLayerRequired = errors.New("a layer is required to resolve components")

	// ErrMissingGlyph is the error wrapped by [MissingGlyphError].
	ErrMissingGlyph = errors.New("missing glyph")

	// ErrCyclicComponentReference is the error wrapped by
	// [CyclicComponentError].
	ErrCyclicComponentReference = errors.New("cyclic component reference")
)

// MissingGlyphError is returned when a component refers to a glyph which is
// not present in the glyph set.
type MissingGlyphError struct {
	Name string
}

func (err *MissingGlyphError) Error() string {
	return fmt.Sprintf("glyph %q not found", err.Name)
}

func (err *MissingGlyphError) Unwrap() error {
	return ErrMissingGlyph
}

// CyclicComponentError is returned when a glyph directly or indirectly uses
// itself as a component.  Chain lists the glyph names along the cycle.
type CyclicComponentError struct {
	Chain []string
}

func (err *CyclicComponentError) Error() string {
	return "cyclic component reference: " + strings.Join(err.Chain, " -> ")
}

func (err *CyclicComponentError) Unwrap() error {
	return ErrCyclicComponentReference
}
