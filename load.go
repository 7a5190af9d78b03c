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
	"io/fs"
	"os"
	"path/filepath"

	"seehuhn.de/go/ufo/lib"
)

// Names of the files and directories inside a UFO.
const (
	metaInfoFile      = "metainfo.plist"
	fontInfoFile      = "fontinfo.plist"
	libFile           = "lib.plist"
	groupsFile        = "groups.plist"
	kerningFile       = "kerning.plist"
	featuresFile      = "features.fea"
	layerContentsFile = "layercontents.plist"
	contentsFile      = "contents.plist"
	layerInfoFile     = "layerinfo.plist"
	defaultGlyphsDir  = "glyphs"
	layerDirPrefix    = "glyphs."
)

var errMissingFile = errors.New("required file is missing")

// Open reads the UFO font stored in the directory path.
// UFO versions 2 and 3 can be read.
func Open(path string) (*Font, error) {
	r := &reader{root: path}

	meta, err := r.readDict(metaInfoFile)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		return nil, &FormatError{Path: r.path(metaInfoFile), Err: errMissingFile}
	}
	version, ok := meta.Get("formatVersion").(lib.Integer)
	if !ok || version < 2 || version > 3 {
		return nil, &FormatError{
			Path: r.path(metaInfoFile),
			Err:  fmt.Errorf("unsupported format version %s", lib.Format(meta.Get("formatVersion"))),
		}
	}
	tracer().Debugf("open %s: UFO version %d", path, version)

	f := &Font{
		Path: path,
		Info: Info{Other: lib.NewDict()},
		Lib:  lib.NewDict(),
	}

	err = r.readInfo(f)
	if err != nil {
		return nil, err
	}
	err = r.readLib(f)
	if err != nil {
		return nil, err
	}
	f.Groups, err = r.readGroups()
	if err != nil {
		return nil, err
	}
	f.Kerning, err = r.readKerning()
	if err != nil {
		return nil, err
	}
	features, err := os.ReadFile(r.path(featuresFile))
	if err == nil {
		f.Features = string(features)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	f.Layers, err = r.readLayers(version, f.GlyphOrder)
	if err != nil {
		return nil, err
	}

	if version < 3 && f.Groups != nil {
		glyphs := make(map[string]bool)
		for _, name := range f.Names() {
			glyphs[name] = true
		}
		f.Groups, f.Kerning = upconvertKerning(f.Groups, f.Kerning, glyphs)
		tracer().Debugf("open %s: converted kerning groups to UFO version 3", path)
	}
	return f, nil
}

type reader struct {
	root string
}

func (r *reader) path(rel string) string {
	return filepath.Join(r.root, rel)
}

// readObject reads a property list file.  If the file does not exist, the
// result is nil.
func (r *reader) readObject(rel string) (lib.Object, error) {
	data, err := os.ReadFile(r.path(rel))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	obj, err := lib.Parse(data)
	if err != nil {
		return nil, &FormatError{Path: r.path(rel), Err: err}
	}
	return obj, nil
}

// readDict reads a property list file which contains a dictionary.  If the
// file does not exist, the result is nil.
func (r *reader) readDict(rel string) (*lib.Dict, error) {
	obj, err := r.readObject(rel)
	if obj == nil || err != nil {
		return nil, err
	}
	d, ok := obj.(*lib.Dict)
	if !ok {
		return nil, &FormatError{Path: r.path(rel), Err: lib.ErrNotDict}
	}
	return d, nil
}

func (r *reader) readInfo(f *Font) error {
	d, err := r.readDict(fontInfoFile)
	if d == nil || err != nil {
		return err
	}
	fail := func(err error) error {
		return &FormatError{Path: r.path(fontInfoFile), Err: err}
	}
	err = f.Info.setFromDict(d)
	if err != nil {
		return fail(err)
	}

	obj := d.Get(infoGuidelinesKey)
	if obj == nil {
		return nil
	}
	arr, ok := obj.(lib.Array)
	if !ok {
		return fail(errWrongType(infoGuidelinesKey, "array"))
	}
	seen := make(map[string]bool)
	for _, elem := range arr {
		gd, ok := elem.(*lib.Dict)
		if !ok {
			return fail(errWrongType(infoGuidelinesKey, "array of dictionaries"))
		}
		g, err := guidelineFromDict(gd)
		if err != nil {
			return fail(err)
		}
		if id := g.Identifier; id != "" {
			if seen[id] {
				return fail(fmt.Errorf("%w %q", ErrDuplicateIdentifier, id))
			}
			seen[id] = true
		}
		f.Guidelines = append(f.Guidelines, g)
	}
	return nil
}

func (r *reader) readLib(f *Font) error {
	d, err := r.readDict(libFile)
	if d == nil || err != nil {
		return err
	}
	fail := func(err error) error {
		return &FormatError{Path: r.path(libFile), Err: err}
	}

	if obj := d.Pop(glyphOrderKey); obj != nil {
		names, ok := stringList(obj)
		if !ok {
			return fail(errWrongType(glyphOrderKey, "array of strings"))
		}
		f.GlyphOrder = names
	}
	f.objectLibs, err = objectLibsFromLib(d)
	if err != nil {
		return fail(err)
	}
	f.Lib = d
	return nil
}

func (r *reader) readGroups() (map[string][]string, error) {
	d, err := r.readDict(groupsFile)
	if d == nil || err != nil {
		return nil, err
	}
	groups := make(map[string][]string, d.Len())
	for name, obj := range d.All() {
		members, ok := stringList(obj)
		if !ok {
			return nil, &FormatError{
				Path: r.path(groupsFile),
				Err:  errWrongType(name, "array of strings"),
			}
		}
		groups[name] = members
	}
	return groups, nil
}

func (r *reader) readKerning() (map[string]map[string]float64, error) {
	d, err := r.readDict(kerningFile)
	if d == nil || err != nil {
		return nil, err
	}
	kerning := make(map[string]map[string]float64, d.Len())
	for first, obj := range d.All() {
		row, ok := obj.(*lib.Dict)
		if !ok {
			return nil, &FormatError{Path: r.path(kerningFile), Err: errWrongType(first, "dictionary")}
		}
		kerning[first] = make(map[string]float64, row.Len())
		for second, val := range row.All() {
			x, ok := toFloat(val)
			if !ok {
				return nil, &FormatError{
					Path: r.path(kerningFile),
					Err:  errWrongType(first+"/"+second, "number"),
				}
			}
			kerning[first][second] = x
		}
	}
	return kerning, nil
}

// readLayers reads all glyph layers.  Glyphs listed in order come first in
// each layer, the remaining glyphs follow in alphabetical order.
func (r *reader) readLayers(version lib.Integer, order []string) (*LayerSet, error) {
	type layerEntry struct {
		name, dir string
	}
	var entries []layerEntry

	if version < 3 {
		entries = append(entries, layerEntry{DefaultLayerName, defaultGlyphsDir})
	} else {
		obj, err := r.readObject(layerContentsFile)
		if err != nil {
			return nil, err
		}
		fail := func(err error) error {
			return &FormatError{Path: r.path(layerContentsFile), Err: err}
		}
		if obj == nil {
			return nil, fail(errMissingFile)
		}
		arr, ok := obj.(lib.Array)
		if !ok {
			return nil, fail(errors.New("not an array"))
		}
		for _, elem := range arr {
			pair, ok := stringList(elem)
			if !ok || len(pair) != 2 {
				return nil, fail(errors.New("malformed layer entry"))
			}
			entries = append(entries, layerEntry{pair[0], pair[1]})
		}
	}

	var layers []*Layer
	defaultName := ""
	for _, e := range entries {
		if e.dir == defaultGlyphsDir {
			defaultName = e.name
		}
		l, err := r.readLayer(e.name, e.dir, order)
		if err != nil {
			return nil, err
		}
		layers = append(layers, l)
	}
	if defaultName == "" {
		return nil, &FormatError{Path: r.path(layerContentsFile), Err: ErrNoDefaultLayer}
	}
	ls, err := NewLayerSet(layers, defaultName)
	if err != nil {
		return nil, &FormatError{Path: r.path(layerContentsFile), Err: err}
	}
	return ls, nil
}

func (r *reader) readLayer(name, dir string, order []string) (*Layer, error) {
	tracer().Debugf("read layer %q from %s", name, dir)

	contentsPath := filepath.Join(dir, contentsFile)
	contents, err := r.readDict(contentsPath)
	if err != nil {
		return nil, err
	}
	if contents == nil {
		return nil, &FormatError{Path: r.path(contentsPath), Err: errMissingFile}
	}

	glyphNames := make([]string, 0, contents.Len())
	seen := make(map[string]bool, contents.Len())
	for _, glyphName := range order {
		if contents.Has(glyphName) && !seen[glyphName] {
			glyphNames = append(glyphNames, glyphName)
			seen[glyphName] = true
		}
	}
	for _, glyphName := range contents.Keys() {
		if !seen[glyphName] {
			glyphNames = append(glyphNames, glyphName)
		}
	}

	l := NewLayer(name)
	for _, glyphName := range glyphNames {
		fileName, ok := contents.Get(glyphName).(lib.String)
		if !ok {
			return nil, &FormatError{Path: r.path(contentsPath), Err: errWrongType(glyphName, "string")}
		}
		glifPath := filepath.Join(dir, string(fileName))
		data, err := os.ReadFile(r.path(glifPath))
		if err != nil {
			return nil, err
		}
		g, err := parseGlyph(data, glyphName)
		if err != nil {
			return nil, &FormatError{Path: r.path(glifPath), Err: err}
		}
		err = l.AddGlyph(g)
		if err != nil {
			return nil, &FormatError{Path: r.path(contentsPath), Err: err}
		}
	}

	infoPath := filepath.Join(dir, layerInfoFile)
	info, err := r.readDict(infoPath)
	if err != nil {
		return nil, err
	}
	if info != nil {
		if obj := info.Get("color"); obj != nil {
			s, ok := obj.(lib.String)
			if !ok {
				return nil, &FormatError{Path: r.path(infoPath), Err: errWrongType("color", "string")}
			}
			l.Color, err = ParseColor(string(s))
			if err != nil {
				return nil, &FormatError{Path: r.path(infoPath), Err: err}
			}
		}
		if obj := info.Get("lib"); obj != nil {
			d, ok := obj.(*lib.Dict)
			if !ok {
				return nil, &FormatError{Path: r.path(infoPath), Err: errWrongType("lib", "dictionary")}
			}
			l.Lib = d
		}
	}
	return l, nil
}

// guidelineFromDict converts a guideline entry of fontinfo.plist.
func guidelineFromDict(d *lib.Dict) (*Guideline, error) {
	g := &Guideline{}
	for key, val := range d.All() {
		var err error
		switch key {
		case "x", "y", "angle":
			x, ok := toFloat(val)
			if !ok {
				return nil, errWrongType("guidelines/"+key, "number")
			}
			switch key {
			case "x":
				g.X.Set(x)
			case "y":
				g.Y.Set(x)
			default:
				g.Angle.Set(x)
			}
		case "name", "color", "identifier":
			s, ok := val.(lib.String)
			if !ok {
				return nil, errWrongType("guidelines/"+key, "string")
			}
			switch key {
			case "name":
				g.Name = string(s)
			case "color":
				g.Color, err = ParseColor(string(s))
			default:
				g.Identifier = string(s)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	err := g.Validate()
	if err != nil {
		return nil, err
	}
	return g, nil
}

// guidelineToDict converts a guideline to the form used in fontinfo.plist.
func guidelineToDict(g *Guideline) *lib.Dict {
	d := lib.NewDict()
	if x, ok := g.X.Get(); ok {
		d.Set("x", number(x))
	}
	if y, ok := g.Y.Get(); ok {
		d.Set("y", number(y))
	}
	if angle, ok := g.Angle.Get(); ok {
		d.Set("angle", number(angle))
	}
	if g.Name != "" {
		d.Set("name", lib.String(g.Name))
	}
	if g.Color != nil {
		d.Set("color", lib.String(g.Color.String()))
	}
	if g.Identifier != "" {
		d.Set("identifier", lib.String(g.Identifier))
	}
	return d
}

func stringList(obj lib.Object) ([]string, bool) {
	arr, ok := obj.(lib.Array)
	if !ok {
		return nil, false
	}
	res := make([]string, len(arr))
	for i, elem := range arr {
		s, ok := elem.(lib.String)
		if !ok {
			return nil, false
		}
		res[i] = string(s)
	}
	return res, true
}

func errWrongType(key, want string) error {
	return fmt.Errorf("key %q: expected %s", key, want)
}
