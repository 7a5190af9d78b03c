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

// Package traverse implements the navigation through a UFO font for the
// ufo-inspect tool.
package traverse

import (
	"fmt"
	"regexp"
	"strings"

	"seehuhn.de/go/ufo"
)

type Context interface {
	// Show prints a textual description of the object to the standard output.
	Show() error

	// Next lists the steps which lead from this context to other contexts.
	Next() []Step
}

// Step represents an action which can be performed on a context to either move
// to a child object or to get a new view of the same object.
type Step struct {
	// Match is a regular expression which is used to select a step
	// from the key chosen by the user.
	Match *regexp.Regexp

	// Desc is a human-readable description of the step.
	// For keywords this should be enclosed in backticks, e.g. "`layers`".
	// Otherwise this should be a short description, e.g. "glyph name".
	Desc string

	// Next returns the next context reached by this step.
	// The caller must ensure that the key matches the Match regular expression.
	Next func(key string) (Context, error)
}

// KeyError is returned when a key does not select an object.
type KeyError struct {
	Key string
	Ctx string
}

func (err *KeyError) Error() string {
	return fmt.Sprintf("%s: no object for key %q", err.Ctx, err.Key)
}

// Root opens the UFO font at path and returns the top-level context.
func Root(path string) (Context, error) {
	f, err := ufo.Open(path)
	if err != nil {
		return nil, err
	}
	return &fontCtx{f: f}, nil
}

// Walk follows the given keys, starting from c.
func Walk(c Context, keys ...string) (Context, error) {
	for _, key := range keys {
		next, err := step(c, key)
		if err != nil {
			return nil, err
		}
		c = next
	}
	return c, nil
}

func step(c Context, key string) (Context, error) {
	for _, s := range c.Next() {
		if s.Match.MatchString(key) {
			return s.Next(key)
		}
	}
	return nil, &KeyError{Key: key, Ctx: fmt.Sprintf("%T", c)}
}

type fontCtx struct {
	f *ufo.Font
}

func (c *fontCtx) Show() error {
	f := c.f
	fmt.Println("path:", f.Path)
	if f.Info.FamilyName != "" || f.Info.StyleName != "" {
		fmt.Println("font:", f.Info.FamilyName, f.Info.StyleName)
	}
	if upem, ok := f.Info.UnitsPerEm.Get(); ok {
		fmt.Println("units per em:", upem)
	}
	fmt.Println("layers:", f.Layers.Len())
	fmt.Println("glyphs:", f.Len())
	if len(f.Guidelines) > 0 {
		fmt.Println("guidelines:", len(f.Guidelines))
	}
	if len(f.Groups) > 0 {
		fmt.Println("groups:", len(f.Groups))
	}
	if n := countPairs(f.Kerning); n > 0 {
		fmt.Println("kerning pairs:", n)
	}
	if f.Features != "" {
		fmt.Println("features:", len(f.Features), "bytes")
	}
	return nil
}

func (c *fontCtx) Next() []Step {
	return []Step{
		{
			Match: regexp.MustCompile(`^info$`),
			Desc:  "`info`",
			Next: func(key string) (Context, error) {
				return &infoCtx{f: c.f}, nil
			},
		},
		{
			Match: regexp.MustCompile(`^lib$`),
			Desc:  "`lib`",
			Next: func(key string) (Context, error) {
				return &libCtx{d: c.f.Lib}, nil
			},
		},
		{
			Match: regexp.MustCompile(`^groups$`),
			Desc:  "`groups`",
			Next: func(key string) (Context, error) {
				return &groupsCtx{groups: c.f.Groups}, nil
			},
		},
		{
			Match: regexp.MustCompile(`^kerning$`),
			Desc:  "`kerning`",
			Next: func(key string) (Context, error) {
				return &kerningCtx{kerning: c.f.Kerning}, nil
			},
		},
		{
			Match: regexp.MustCompile(`^layers$`),
			Desc:  "`layers`",
			Next: func(key string) (Context, error) {
				return &layerListCtx{ls: c.f.Layers}, nil
			},
		},
		{
			Match: regexp.MustCompile(`^glyph:.+$`),
			Desc:  "`glyph:` followed by a glyph name",
			Next: func(key string) (Context, error) {
				return c.glyph(strings.TrimPrefix(key, "glyph:"))
			},
		},
		{
			Match: regexp.MustCompile(`^.+$`),
			Desc:  "glyph name",
			Next:  c.glyph,
		},
	}
}

// glyph looks up a glyph in the default layer.
func (c *fontCtx) glyph(key string) (Context, error) {
	g := c.f.Glyph(key)
	if g == nil {
		return nil, &KeyError{Key: key, Ctx: "default layer"}
	}
	return &glyphCtx{layer: c.f.DefaultLayer(), g: g}, nil
}

func countPairs(kerning map[string]map[string]float64) int {
	n := 0
	for _, row := range kerning {
		n += len(row)
	}
	return n
}
