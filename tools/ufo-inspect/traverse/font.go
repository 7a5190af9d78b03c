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

package traverse

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"seehuhn.de/go/ufo"
	"seehuhn.de/go/ufo/lib"
)

type infoCtx struct {
	f *ufo.Font
}

func (c *infoCtx) Show() error {
	info := &c.f.Info
	show := func(key string, val any) {
		fmt.Printf("%-24s %v\n", key+":", val)
	}
	for _, e := range []struct {
		key, val string
	}{
		{"familyName", info.FamilyName},
		{"styleName", info.StyleName},
		{"styleMapFamilyName", info.StyleMapFamilyName},
		{"styleMapStyleName", info.StyleMapStyleName},
		{"copyright", info.Copyright},
		{"trademark", info.Trademark},
		{"postscriptFontName", info.PostscriptFontName},
		{"note", info.Note},
	} {
		if e.val != "" {
			show(e.key, e.val)
		}
	}
	if major, ok := info.VersionMajor.Get(); ok {
		minor, _ := info.VersionMinor.Get()
		show("version", fmt.Sprintf("%d.%03d", major, minor))
	}
	if w, ok := info.OpenTypeOS2WeightClass.Get(); ok {
		show("openTypeOS2WeightClass", w)
	}
	for _, e := range []struct {
		key string
		val fmt.Stringer
	}{
		{"unitsPerEm", info.UnitsPerEm},
		{"ascender", info.Ascender},
		{"descender", info.Descender},
		{"xHeight", info.XHeight},
		{"capHeight", info.CapHeight},
		{"italicAngle", info.ItalicAngle},
	} {
		if s := e.val.String(); s != "unset" {
			show(e.key, s)
		}
	}
	if b, ok := info.PostscriptIsFixedPitch.Get(); ok {
		show("postscriptIsFixedPitch", b)
	}
	for key, val := range info.Other.All() {
		show(key, lib.Format(val))
	}
	for i, g := range c.f.Guidelines {
		fmt.Printf("guideline %d: x=%s y=%s angle=%s %s\n", i, g.X, g.Y, g.Angle, g.Name)
	}
	return nil
}

func (c *infoCtx) Next() []Step {
	return nil
}

type libCtx struct {
	d *lib.Dict
}

func (c *libCtx) Show() error {
	if c.d.Len() == 0 {
		fmt.Println("(empty lib)")
		return nil
	}
	for key, val := range c.d.All() {
		s := lib.Format(val)
		if len(s) > 60 {
			s = s[:57] + "..."
		}
		fmt.Printf("%s = %s\n", key, s)
	}
	return nil
}

func (c *libCtx) Next() []Step {
	if c.d.Len() == 0 {
		return nil
	}
	return []Step{{
		Match: regexp.MustCompile(`^.+$`),
		Desc:  "dictionary key",
		Next: func(key string) (Context, error) {
			sub, ok := c.d.Get(key).(*lib.Dict)
			if !ok {
				return nil, &KeyError{Key: key, Ctx: "lib"}
			}
			return &libCtx{d: sub}, nil
		},
	}}
}

type groupsCtx struct {
	groups map[string][]string
}

func (c *groupsCtx) Show() error {
	for _, name := range slices.Sorted(maps.Keys(c.groups)) {
		fmt.Printf("%s: %s\n", name, strings.Join(c.groups[name], " "))
	}
	return nil
}

func (c *groupsCtx) Next() []Step {
	return nil
}

type kerningCtx struct {
	kerning map[string]map[string]float64
}

func (c *kerningCtx) Show() error {
	for _, first := range slices.Sorted(maps.Keys(c.kerning)) {
		row := c.kerning[first]
		for _, second := range slices.Sorted(maps.Keys(row)) {
			fmt.Printf("%-20s %-20s %g\n", first, second, row[second])
		}
	}
	return nil
}

func (c *kerningCtx) Next() []Step {
	return nil
}
