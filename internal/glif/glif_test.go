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

package glif

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<glyph name="A" format="2">
	<advance width="500"/>
	<unicode hex="0041"/>
	<anchor x="250" y="700" name="top"/>
	<outline>
		<contour identifier="c1">
			<point x="0" y="0" type="line"/>
			<point x="250" y="700" type="line" smooth="yes" name="apex"/>
			<point x="500" y="0" type="line"/>
		</contour>
		<component base="acute" xOffset="100"/>
	</outline>
	<lib>
		<dict>
			<key>com.example.flag</key>
			<true/>
		</dict>
	</lib>
</glyph>
`

func TestParse(t *testing.T) {
	g, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "A" || g.Format != "2" {
		t.Errorf("wrong header: %q %q", g.Name, g.Format)
	}
	if g.Advance == nil || g.Advance.Width != "500" || g.Advance.Height != "" {
		t.Errorf("wrong advance %v", g.Advance)
	}
	want := Contour{
		Identifier: "c1",
		Points: []Point{
			{X: "0", Y: "0", Type: "line"},
			{X: "250", Y: "700", Type: "line", Smooth: "yes", Name: "apex"},
			{X: "500", Y: "0", Type: "line"},
		},
	}
	if d := cmp.Diff([]Contour{want}, g.Outline.Contours); d != "" {
		t.Errorf("contours (-want +got):\n%s", d)
	}
	if len(g.Outline.Components) != 1 || g.Outline.Components[0].XOffset != "100" {
		t.Errorf("wrong components %v", g.Outline.Components)
	}
	doc := string(g.Lib.PlistDocument())
	if !strings.Contains(doc, "<key>com.example.flag</key>") {
		t.Errorf("lib contents lost:\n%s", doc)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	note := "a note"
	g := &Glyph{
		Name:     "a",
		Format:   "2",
		Advance:  &Advance{Width: "400", Height: "700"},
		Unicodes: []Unicode{{Hex: "0061"}},
		Note:     &note,
		Outline: &Outline{
			Contours: []Contour{{Points: []Point{{X: "1", Y: "2", Type: "move"}, {X: "3", Y: "4", Type: "line"}}}},
		},
	}
	data, err := Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	got.XMLName = g.XMLName
	if d := cmp.Diff(g, got); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}

func TestLibFromPlist(t *testing.T) {
	doc := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
	<dict>
		<key>x</key>
		<integer>1</integer>
	</dict>
</plist>
`)
	l, err := LibFromPlist(doc)
	if err != nil {
		t.Fatal(err)
	}
	got := string(l.Inner)
	if !strings.HasPrefix(got, "<dict>") || !strings.HasSuffix(got, "</dict>") {
		t.Errorf("unexpected lib contents %q", got)
	}

	_, err = LibFromPlist([]byte("<dict/>"))
	if err == nil {
		t.Error("missing plist element not detected")
	}
}
