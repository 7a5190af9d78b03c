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
	"errors"
	"fmt"

	"seehuhn.de/go/ufo/pen"
)

// Errors returned by the editing operations.
var (
	ErrEmptyLayerSet       = errors.New("a layer set needs at least one layer")
	ErrTypeMismatch        = errors.New("layer set entry is not a layer")
	ErrDuplicateLayerName  = errors.New("duplicate layer name")
	ErrNoDefaultLayer      = errors.New("default layer not found")
	ErrGlyphNameCollision  = errors.New("glyph name already exists")
	ErrLayerNameCollision  = errors.New("layer name already exists")
	ErrUnnamedGlyph        = errors.New("glyph has no name")
	ErrLayerNotFound       = errors.New("layer not found")
	ErrGlyphNotFound       = errors.New("glyph not found")
	ErrGlyphInUse          = errors.New("glyph already belongs to a layer")
	ErrLayerInUse          = errors.New("layer already belongs to a layer set")
	ErrDefaultLayerRemoval = errors.New("the default layer cannot be removed")
	ErrInvalidName         = errors.New("invalid name")
	ErrInvalidIdentifier   = errors.New("invalid identifier")
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	ErrInvalidGuideline    = errors.New("invalid guideline")
	ErrInvalidColor        = errors.New("invalid color")
	ErrReservedInfoKey     = errors.New("info key has a dedicated field")
)

// Errors returned by geometry queries.  These are shared with the pen
// package.
var (
	ErrLayerRequired            = pen.ErrLayerRequired
	ErrMissingGlyph             = pen.ErrMissingGlyph
	ErrCyclicComponentReference = pen.ErrCyclicComponentReference
	ErrInvalidSegmentKind       = pen.ErrInvalidSegmentKind
)

// MissingGlyphError is returned when a component refers to a glyph which is
// not in the layer used to resolve components.
type MissingGlyphError = pen.MissingGlyphError

// CyclicComponentError is returned when a glyph directly or indirectly uses
// itself as a component.
type CyclicComponentError = pen.CyclicComponentError

// NameError describes a failed operation on a named glyph or layer.
type NameError struct {
	Op   string // the operation, for example "rename glyph"
	Name string // the glyph or layer name which caused the failure
	Err  error
}

func (err *NameError) Error() string {
	return fmt.Sprintf("%s %q: %v", err.Op, err.Name, err.Err)
}

func (err *NameError) Unwrap() error {
	return err.Err
}

// FormatError is returned when a file inside a UFO cannot be parsed.
type FormatError struct {
	Path string
	Err  error
}

func (err *FormatError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "malformed UFO file " + err.Path + middle
}

func (err *FormatError) Unwrap() error {
	return err.Err
}
