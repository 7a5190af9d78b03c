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

// Package glif describes the XML structure of GLIF files, the files which
// store individual glyphs of a UFO font.
//
// Numbers are kept as strings, so that callers control parsing and
// formatting.  The contents of the lib element are kept as raw XML.
package glif

import (
	"bytes"
	"encoding/xml"
	"errors"
)

// Glyph is the root element of a GLIF file.
type Glyph struct {
	XMLName     xml.Name    `xml:"glyph"`
	Name        string      `xml:"name,attr"`
	Format      string      `xml:"format,attr"`
	FormatMinor string      `xml:"formatMinor,attr,omitempty"`
	Advance     *Advance    `xml:"advance"`
	Unicodes    []Unicode   `xml:"unicode"`
	Note        *string     `xml:"note"`
	Image       *Image      `xml:"image"`
	Guidelines  []Guideline `xml:"guideline"`
	Anchors     []Anchor    `xml:"anchor"`
	Outline     *Outline    `xml:"outline"`
	Lib         *Lib        `xml:"lib"`
}

// Advance gives the advance width and height of a glyph.
type Advance struct {
	Width  string `xml:"width,attr,omitempty"`
	Height string `xml:"height,attr,omitempty"`
}

// Unicode is a code point, in hexadecimal.
type Unicode struct {
	Hex string `xml:"hex,attr"`
}

// Transform holds the attributes of an affine transformation.  Omitted
// attributes take their default values.
type Transform struct {
	XScale  string `xml:"xScale,attr,omitempty"`
	XYScale string `xml:"xyScale,attr,omitempty"`
	YXScale string `xml:"yxScale,attr,omitempty"`
	YScale  string `xml:"yScale,attr,omitempty"`
	XOffset string `xml:"xOffset,attr,omitempty"`
	YOffset string `xml:"yOffset,attr,omitempty"`
}

// Image refers to a background image.
type Image struct {
	FileName string `xml:"fileName,attr"`
	Transform
	Color string `xml:"color,attr,omitempty"`
}

// Guideline is a guideline of a glyph.
type Guideline struct {
	X          string `xml:"x,attr,omitempty"`
	Y          string `xml:"y,attr,omitempty"`
	Angle      string `xml:"angle,attr,omitempty"`
	Name       string `xml:"name,attr,omitempty"`
	Color      string `xml:"color,attr,omitempty"`
	Identifier string `xml:"identifier,attr,omitempty"`
}

// Anchor is an anchor of a glyph.
type Anchor struct {
	X          string `xml:"x,attr"`
	Y          string `xml:"y,attr"`
	Name       string `xml:"name,attr,omitempty"`
	Color      string `xml:"color,attr,omitempty"`
	Identifier string `xml:"identifier,attr,omitempty"`
}

// Outline contains the contours and components of a glyph.
type Outline struct {
	Contours   []Contour   `xml:"contour"`
	Components []Component `xml:"component"`
}

// Contour is a single contour.
type Contour struct {
	Identifier string  `xml:"identifier,attr,omitempty"`
	Points     []Point `xml:"point"`
}

// Point is a point of a contour.  An empty Type denotes an off-curve
// point.
type Point struct {
	X          string `xml:"x,attr"`
	Y          string `xml:"y,attr"`
	Type       string `xml:"type,attr,omitempty"`
	Smooth     string `xml:"smooth,attr,omitempty"`
	Name       string `xml:"name,attr,omitempty"`
	Identifier string `xml:"identifier,attr,omitempty"`
}

// Component refers to another glyph.
type Component struct {
	Base string `xml:"base,attr"`
	Transform
	Identifier string `xml:"identifier,attr,omitempty"`
}

// Lib holds the property list dictionary of the glyph lib as raw XML.
type Lib struct {
	Inner []byte `xml:",innerxml"`
}

var errNoGlyph = errors.New("missing glyph element")

// Parse decodes a GLIF file.
func Parse(data []byte) (*Glyph, error) {
	g := &Glyph{}
	err := xml.Unmarshal(data, g)
	if err != nil {
		return nil, err
	}
	if g.XMLName.Local != "glyph" {
		return nil, errNoGlyph
	}
	return g, nil
}

// Marshal encodes a GLIF file.
func Marshal(g *Glyph) ([]byte, error) {
	body, err := xml.MarshalIndent(g, "", "\t")
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// PlistDocument wraps the contents of a lib element into a property list
// document.
func (l *Lib) PlistDocument() []byte {
	buf := &bytes.Buffer{}
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	buf.WriteString(`<plist version="1.0">`)
	buf.Write(l.Inner)
	buf.WriteString("</plist>\n")
	return buf.Bytes()
}

// LibFromPlist extracts the top-level object from a property list document,
// for use as the contents of a lib element.
func LibFromPlist(doc []byte) (*Lib, error) {
	start := bytes.Index(doc, []byte("<plist"))
	if start < 0 {
		return nil, errors.New("not an XML property list")
	}
	gt := bytes.IndexByte(doc[start:], '>')
	end := bytes.LastIndex(doc, []byte("</plist>"))
	if gt < 0 || end < start+gt {
		return nil, errors.New("malformed XML property list")
	}
	inner := bytes.TrimSpace(doc[start+gt+1 : end])
	return &Lib{Inner: inner}, nil
}
