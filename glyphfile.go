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
	"maps"
	"slices"
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/ufo/internal/glif"
	"seehuhn.de/go/ufo/lib"
	"seehuhn.de/go/ufo/optional"
	"seehuhn.de/go/ufo/pen"
)

// glifFormat is the GLIF format version written by this package.
const glifFormat = "2"

var errGLIFVersion = errors.New("unsupported GLIF format")

// parseGlyph decodes the contents of a GLIF file.  The glyph is given the
// name under which it is listed in contents.plist.
func parseGlyph(data []byte, name string) (*Glyph, error) {
	x, err := glif.Parse(data)
	if err != nil {
		return nil, err
	}
	if x.Format != "1" && x.Format != "2" {
		return nil, fmt.Errorf("%w %q", errGLIFVersion, x.Format)
	}

	g := NewGlyph(name)
	if x.Advance != nil {
		g.Width, err = parseNumber(x.Advance.Width, 0)
		if err != nil {
			return nil, err
		}
		g.Height, err = parseNumber(x.Advance.Height, 0)
		if err != nil {
			return nil, err
		}
	}
	for _, u := range x.Unicodes {
		code, err := strconv.ParseUint(u.Hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("unicode %q: %w", u.Hex, err)
		}
		g.Unicodes = append(g.Unicodes, rune(code))
	}
	if x.Note != nil {
		g.Note = *x.Note
	}
	if x.Image != nil {
		g.Image, err = parseImage(x.Image)
		if err != nil {
			return nil, err
		}
	}
	for _, gl := range x.Guidelines {
		guide, err := parseGuideline(gl)
		if err != nil {
			return nil, err
		}
		g.Guidelines = append(g.Guidelines, guide)
	}
	for _, a := range x.Anchors {
		anchor, err := parseAnchor(a)
		if err != nil {
			return nil, err
		}
		g.Anchors = append(g.Anchors, anchor)
	}
	if x.Outline != nil {
		err = parseOutline(g, x.Outline, x.Format == "1")
		if err != nil {
			return nil, err
		}
	}
	if x.Lib != nil {
		err = parseGlyphLib(g, x.Lib)
		if err != nil {
			return nil, err
		}
	}

	err = g.checkIdentifiers()
	if err != nil {
		return nil, err
	}
	return g, nil
}

func parseOutline(g *Glyph, x *glif.Outline, format1 bool) error {
	for _, xc := range x.Contours {
		// In format 1, anchors are stored as single-point contours.
		if format1 && len(xc.Points) == 1 && xc.Points[0].Type == "move" && xc.Points[0].Name != "" {
			a, err := parseAnchor(glif.Anchor{X: xc.Points[0].X, Y: xc.Points[0].Y, Name: xc.Points[0].Name})
			if err != nil {
				return err
			}
			g.Anchors = append(g.Anchors, a)
			continue
		}

		c := &Contour{Identifier: xc.Identifier}
		for _, xp := range xc.Points {
			pt, err := parsePoint(xp)
			if err != nil {
				return err
			}
			c.Points = append(c.Points, pt)
		}
		g.Contours = append(g.Contours, c)
	}
	for _, xc := range x.Components {
		if xc.Base == "" {
			return errors.New("component without base glyph")
		}
		m, err := parseTransform(xc.Transform)
		if err != nil {
			return err
		}
		g.Components = append(g.Components, &Component{
			BaseGlyph:  xc.Base,
			Transform:  m,
			Identifier: xc.Identifier,
		})
	}
	return nil
}

func parsePoint(xp glif.Point) (*Point, error) {
	x, err := parseNumber(xp.X, 0)
	if err != nil {
		return nil, err
	}
	y, err := parseNumber(xp.Y, 0)
	if err != nil {
		return nil, err
	}
	tp, err := pen.ParsePointType(xp.Type)
	if err != nil {
		return nil, err
	}
	return &Point{
		X:          x,
		Y:          y,
		Type:       tp,
		Smooth:     xp.Smooth == "yes",
		Name:       xp.Name,
		Identifier: xp.Identifier,
	}, nil
}

func parseAnchor(xa glif.Anchor) (*Anchor, error) {
	x, err := parseNumber(xa.X, 0)
	if err != nil {
		return nil, err
	}
	y, err := parseNumber(xa.Y, 0)
	if err != nil {
		return nil, err
	}
	color, err := parseOptionalColor(xa.Color)
	if err != nil {
		return nil, err
	}
	return &Anchor{X: x, Y: y, Name: xa.Name, Color: color, Identifier: xa.Identifier}, nil
}

func parseGuideline(xg glif.Guideline) (*Guideline, error) {
	g := &Guideline{Name: xg.Name, Identifier: xg.Identifier}
	var err error
	for _, f := range []struct {
		s   string
		val *optional.Float
	}{{xg.X, &g.X}, {xg.Y, &g.Y}, {xg.Angle, &g.Angle}} {
		if f.s == "" {
			continue
		}
		x, err := parseNumber(f.s, 0)
		if err != nil {
			return nil, err
		}
		f.val.Set(x)
	}
	g.Color, err = parseOptionalColor(xg.Color)
	if err != nil {
		return nil, err
	}
	err = g.Validate()
	if err != nil {
		return nil, err
	}
	return g, nil
}

func parseImage(xi *glif.Image) (*Image, error) {
	if xi.FileName == "" {
		return nil, errors.New("image without file name")
	}
	m, err := parseTransform(xi.Transform)
	if err != nil {
		return nil, err
	}
	color, err := parseOptionalColor(xi.Color)
	if err != nil {
		return nil, err
	}
	return &Image{FileName: xi.FileName, Transform: m, Color: color}, nil
}

func parseGlyphLib(g *Glyph, x *glif.Lib) error {
	d, err := lib.ParseDict(x.PlistDocument())
	if err != nil {
		return err
	}
	if obj := d.Pop(verticalOriginKey); obj != nil {
		vo, ok := toFloat(obj)
		if !ok {
			return errWrongType(verticalOriginKey, "number")
		}
		g.VerticalOrigin.Set(vo)
	}
	g.objectLibs, err = objectLibsFromLib(d)
	if err != nil {
		return err
	}
	g.Lib = d
	return nil
}

// formatGlyph encodes a glyph as a GLIF file.
func formatGlyph(g *Glyph) ([]byte, error) {
	x := &glif.Glyph{Name: g.name, Format: glifFormat}
	if g.Width != 0 || g.Height != 0 {
		x.Advance = &glif.Advance{}
		if g.Width != 0 {
			x.Advance.Width = formatNumber(g.Width)
		}
		if g.Height != 0 {
			x.Advance.Height = formatNumber(g.Height)
		}
	}
	for _, r := range g.Unicodes {
		x.Unicodes = append(x.Unicodes, glif.Unicode{Hex: fmt.Sprintf("%04X", r)})
	}
	if g.Note != "" {
		note := g.Note
		x.Note = &note
	}
	if im := g.Image; im != nil {
		x.Image = &glif.Image{
			FileName:  im.FileName,
			Transform: formatTransform(im.Transform),
			Color:     formatOptionalColor(im.Color),
		}
	}
	for _, gl := range g.Guidelines {
		x.Guidelines = append(x.Guidelines, glif.Guideline{
			X:          formatOptional(gl.X),
			Y:          formatOptional(gl.Y),
			Angle:      formatOptional(gl.Angle),
			Name:       gl.Name,
			Color:      formatOptionalColor(gl.Color),
			Identifier: gl.Identifier,
		})
	}
	for _, a := range g.Anchors {
		x.Anchors = append(x.Anchors, glif.Anchor{
			X:          formatNumber(a.X),
			Y:          formatNumber(a.Y),
			Name:       a.Name,
			Color:      formatOptionalColor(a.Color),
			Identifier: a.Identifier,
		})
	}
	if len(g.Contours) > 0 || len(g.Components) > 0 {
		x.Outline = &glif.Outline{}
		for _, c := range g.Contours {
			xc := glif.Contour{Identifier: c.Identifier}
			for _, pt := range c.Points {
				xp := glif.Point{
					X:          formatNumber(pt.X),
					Y:          formatNumber(pt.Y),
					Name:       pt.Name,
					Identifier: pt.Identifier,
				}
				if !pt.Type.IsValid() {
					return nil, fmt.Errorf("%w %d", pen.ErrInvalidSegmentKind, pt.Type)
				}
				if pt.Type != pen.OffCurve {
					xp.Type = pt.Type.String()
				}
				if pt.Smooth {
					xp.Smooth = "yes"
				}
				xc.Points = append(xc.Points, xp)
			}
			x.Outline.Contours = append(x.Outline.Contours, xc)
		}
		for _, c := range g.Components {
			x.Outline.Components = append(x.Outline.Components, glif.Component{
				Base:       c.BaseGlyph,
				Transform:  formatTransform(c.Transform),
				Identifier: c.Identifier,
			})
		}
	}

	d := g.Lib.Copy()
	for _, key := range glyphManagedKeys {
		d.Delete(key)
	}
	if vo, ok := g.VerticalOrigin.Get(); ok {
		d.Set(verticalOriginKey, number(vo))
	}
	libs := pruneObjectLibs(g.objectLibs, g.liveIdentifiers())
	if len(libs) > 0 {
		d.Set(objectLibsKey, objectLibsToDict(libs, slices.Sorted(maps.Keys(libs))))
	}
	if d.Len() > 0 {
		doc, err := lib.MarshalXML(d)
		if err != nil {
			return nil, err
		}
		x.Lib, err = glif.LibFromPlist(doc)
		if err != nil {
			return nil, err
		}
	}

	return glif.Marshal(x)
}

// checkIdentifiers verifies that all identifiers used inside the glyph are
// valid and distinct.
func (g *Glyph) checkIdentifiers() error {
	seen := make(map[string]bool)
	check := func(id string) error {
		if id == "" {
			return nil
		}
		if err := checkIdentifier(id); err != nil {
			return err
		}
		if seen[id] {
			return fmt.Errorf("%w %q", ErrDuplicateIdentifier, id)
		}
		seen[id] = true
		return nil
	}
	for _, c := range g.Contours {
		if err := check(c.Identifier); err != nil {
			return err
		}
		for _, pt := range c.Points {
			if err := check(pt.Identifier); err != nil {
				return err
			}
		}
	}
	for _, c := range g.Components {
		if err := check(c.Identifier); err != nil {
			return err
		}
	}
	for _, a := range g.Anchors {
		if err := check(a.Identifier); err != nil {
			return err
		}
	}
	for _, gl := range g.Guidelines {
		if err := gl.Validate(); err != nil {
			return err
		}
		if err := check(gl.Identifier); err != nil {
			return err
		}
	}
	return nil
}

// parseNumber parses a numeric attribute.  Empty strings give def.
func parseNumber(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}

func formatOptional(x optional.Float) string {
	if v, ok := x.Get(); ok {
		return formatNumber(v)
	}
	return ""
}

func parseOptionalColor(s string) (*Color, error) {
	if s == "" {
		return nil, nil
	}
	return ParseColor(s)
}

func formatOptionalColor(c *Color) string {
	if c == nil {
		return ""
	}
	return c.String()
}

func parseTransform(t glif.Transform) (matrix.Matrix, error) {
	var m matrix.Matrix
	var err error
	fields := []string{t.XScale, t.XYScale, t.YXScale, t.YScale, t.XOffset, t.YOffset}
	for i, s := range fields {
		m[i], err = parseNumber(s, matrix.Identity[i])
		if err != nil {
			return m, err
		}
	}
	return m, nil
}

func formatTransform(m matrix.Matrix) glif.Transform {
	var fields [6]string
	for i, x := range m {
		if x != matrix.Identity[i] {
			fields[i] = formatNumber(x)
		}
	}
	return glif.Transform{
		XScale:  fields[0],
		XYScale: fields[1],
		YXScale: fields[2],
		YScale:  fields[3],
		XOffset: fields[4],
		YOffset: fields[5],
	}
}
