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
	"strconv"
	"strings"
)

// Color is an RGBA color.  All components are in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// ParseColor parses a color in the "r,g,b,a" notation used by UFO files.
func ParseColor(s string) (*Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	var vals [4]float64
	for i, part := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || x < 0 || x > 1 {
			return nil, fmt.Errorf("%w %q", ErrInvalidColor, s)
		}
		vals[i] = x
	}
	return &Color{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}

// String returns the color in "r,g,b,a" notation.
func (c *Color) String() string {
	parts := []string{
		formatNumber(c.R), formatNumber(c.G), formatNumber(c.B), formatNumber(c.A),
	}
	return strings.Join(parts, ",")
}

func colorEqual(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func copyColor(c *Color) *Color {
	if c == nil {
		return nil
	}
	res := *c
	return &res
}

// formatNumber formats a coordinate without trailing zeros.
func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
