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

import "seehuhn.de/go/geom/matrix"

// Image refers to a background image for a glyph.  The image data is
// stored in the images directory of the UFO, under FileName.
type Image struct {
	FileName  string
	Transform matrix.Matrix
	Color     *Color
}

// Equal reports whether two images are the same.
func (im *Image) Equal(other *Image) bool {
	if im == nil || other == nil {
		return im == other
	}
	return im.FileName == other.FileName &&
		im.Transform == other.Transform &&
		colorEqual(im.Color, other.Color)
}

// Copy returns a deep copy of the image.
func (im *Image) Copy() *Image {
	if im == nil {
		return nil
	}
	res := *im
	res.Color = copyColor(im.Color)
	return &res
}
