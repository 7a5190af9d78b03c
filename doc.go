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

// Package ufo implements an in-memory model of fonts in the Unified Font
// Object (UFO) source format.
//
// A [Font] owns a [LayerSet], which in turn owns one or more [Layer]
// objects.  Layers map glyph names to [Glyph] objects.  A glyph consists of
// contours, components, anchors and guidelines, together with its metrics.
//
// Glyph outlines are built and read using the pen protocol from the
// [seehuhn.de/go/ufo/pen] package.  Bounding boxes and side-bearing margins
// are derived from the outlines.  Components are resolved by glyph name,
// through a layer supplied by the caller.
//
// Fonts, glyphs and layers can carry libs of arbitrary data.  In addition,
// individual anchors, components, contours, guidelines and points can be
// given their own libs via [Font.ObjectLib] and [Glyph.ObjectLib].  These
// are keyed by the identifier of the object.
//
// Fonts are read from disk using [Open] and written using [Font.Save].
//
// None of the types in this package are safe for concurrent use.
package ufo
