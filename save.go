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
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/ufo/lib"
)

const (
	creator           = "seehuhn.de/go/ufo"
	ufoFormatVersion  = 3
	filePermissions   = 0o644
	folderPermissions = 0o755
	tempDirPattern    = ".ufo-save-*"
	oldCopyPathSuffix = ".old"
)

// Save writes the font to the directory path, as a UFO version 3.
//
// The font is first written to a temporary directory next to path, which
// then replaces any existing directory at path.  On success, f.Path is set
// to path.
func (f *Font) Save(path string) error {
	path = filepath.Clean(path)
	err := f.validate()
	if err != nil {
		return err
	}

	tmp, err := os.MkdirTemp(filepath.Dir(path), tempDirPattern)
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)
	err = os.Chmod(tmp, folderPermissions)
	if err != nil {
		return err
	}

	w := &writer{root: tmp}
	err = w.writeFont(f)
	if err != nil {
		return err
	}

	old := ""
	if _, err := os.Stat(path); err == nil {
		old = tmp + oldCopyPathSuffix
		err = os.Rename(path, old)
		if err != nil {
			return err
		}
	}
	err = os.Rename(tmp, path)
	if err != nil {
		if old != "" {
			os.Rename(old, path)
		}
		return err
	}
	if old != "" {
		err = os.RemoveAll(old)
		if err != nil {
			return err
		}
	}

	tracer().Debugf("saved %d layers to %s", f.Layers.Len(), path)
	f.Path = path
	return nil
}

// validate checks the font for problems which would make the saved file
// unreadable.
func (f *Font) validate() error {
	for key := range f.Info.Other.All() {
		if isInfoFieldKey(key) {
			return fmt.Errorf("font info %q: %w", key, ErrReservedInfoKey)
		}
	}
	seen := make(map[string]bool)
	for i, g := range f.Guidelines {
		err := g.Validate()
		if err == nil && g.Identifier != "" {
			if seen[g.Identifier] {
				err = fmt.Errorf("%w %q", ErrDuplicateIdentifier, g.Identifier)
			}
			seen[g.Identifier] = true
		}
		if err != nil {
			return fmt.Errorf("font guideline %d: %w", i, err)
		}
	}
	for l := range f.Layers.All() {
		if err := checkName("save layer", l.name); err != nil {
			return err
		}
		for g := range l.All() {
			err := g.checkIdentifiers()
			if err != nil {
				return &NameError{Op: "save glyph", Name: g.name, Err: err}
			}
		}
	}
	return nil
}

type writer struct {
	root string
}

func (w *writer) writeFile(rel string, data []byte) error {
	return os.WriteFile(filepath.Join(w.root, rel), data, filePermissions)
}

func (w *writer) writeObject(rel string, obj lib.Object) error {
	data, err := lib.MarshalXML(obj)
	if err != nil {
		return fmt.Errorf("%s: %w", rel, err)
	}
	return w.writeFile(rel, data)
}

func (w *writer) writeFont(f *Font) error {
	meta := lib.NewDict()
	meta.Set("creator", lib.String(creator))
	meta.Set("formatVersion", lib.Integer(ufoFormatVersion))
	err := w.writeObject(metaInfoFile, meta)
	if err != nil {
		return err
	}

	info := f.Info.asDict()
	if len(f.Guidelines) > 0 {
		arr := make(lib.Array, len(f.Guidelines))
		for i, g := range f.Guidelines {
			arr[i] = guidelineToDict(g)
		}
		info.Set(infoGuidelinesKey, arr)
	}
	if info.Len() > 0 {
		err = w.writeObject(fontInfoFile, info)
		if err != nil {
			return err
		}
	}

	fontLib := f.Lib.Copy()
	for _, key := range fontManagedKeys {
		fontLib.Delete(key)
	}
	if len(f.GlyphOrder) > 0 {
		order := make(lib.Array, len(f.GlyphOrder))
		for i, name := range f.GlyphOrder {
			order[i] = lib.String(name)
		}
		fontLib.Set(glyphOrderKey, order)
	}
	libs := pruneObjectLibs(f.objectLibs, f.liveIdentifiers())
	if len(libs) > 0 {
		fontLib.Set(objectLibsKey, objectLibsToDict(libs, slices.Sorted(maps.Keys(libs))))
	}
	if fontLib.Len() > 0 {
		err = w.writeObject(libFile, fontLib)
		if err != nil {
			return err
		}
	}

	if len(f.Groups) > 0 {
		groups := lib.NewDict()
		for _, name := range slices.Sorted(maps.Keys(f.Groups)) {
			members := make(lib.Array, len(f.Groups[name]))
			for i, m := range f.Groups[name] {
				members[i] = lib.String(m)
			}
			groups.Set(name, members)
		}
		err = w.writeObject(groupsFile, groups)
		if err != nil {
			return err
		}
	}

	if len(f.Kerning) > 0 {
		kerning := lib.NewDict()
		for _, first := range slices.Sorted(maps.Keys(f.Kerning)) {
			row := lib.NewDict()
			for _, second := range slices.Sorted(maps.Keys(f.Kerning[first])) {
				row.Set(second, number(f.Kerning[first][second]))
			}
			kerning.Set(first, row)
		}
		err = w.writeObject(kerningFile, kerning)
		if err != nil {
			return err
		}
	}

	if f.Features != "" {
		err = w.writeFile(featuresFile, []byte(f.Features))
		if err != nil {
			return err
		}
	}

	return w.writeLayers(f.Layers)
}

// writeLayers writes all glyph layers.  The default layer is always stored
// in the "glyphs" directory.
func (w *writer) writeLayers(ls *LayerSet) error {
	dirNames := fileNameSet{}
	dirNames.add(defaultGlyphsDir)

	var contents lib.Array
	for l := range ls.All() {
		dir := defaultGlyphsDir
		if l != ls.Default() {
			dir = userNameToFileName(l.name, layerDirPrefix, "", dirNames)
		}
		contents = append(contents, lib.Array{lib.String(l.name), lib.String(dir)})

		err := w.writeLayer(l, dir)
		if err != nil {
			return err
		}
	}
	return w.writeObject(layerContentsFile, contents)
}

func (w *writer) writeLayer(l *Layer, dir string) error {
	tracer().Debugf("write layer %q to %s", l.name, dir)

	err := os.Mkdir(filepath.Join(w.root, dir), folderPermissions)
	if err != nil {
		return err
	}

	fileNames := fileNameSet{}
	contents := lib.NewDict()
	for g := range l.All() {
		fileName := userNameToFileName(g.name, "", ".glif", fileNames)
		contents.Set(g.name, lib.String(fileName))

		data, err := formatGlyph(g)
		if err != nil {
			return &NameError{Op: "save glyph", Name: g.name, Err: err}
		}
		err = w.writeFile(filepath.Join(dir, fileName), data)
		if err != nil {
			return err
		}
	}
	err = w.writeObject(filepath.Join(dir, contentsFile), contents)
	if err != nil {
		return err
	}

	info := lib.NewDict()
	if l.Color != nil {
		info.Set("color", lib.String(l.Color.String()))
	}
	if l.Lib.Len() > 0 {
		info.Set("lib", l.Lib.Copy())
	}
	if info.Len() > 0 {
		return w.writeObject(filepath.Join(dir, layerInfoFile), info)
	}
	return nil
}
