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

// Package buildinfo reports the version of the ufo command line tools.
package buildinfo

import (
	"runtime/debug"
)

// Info describes the module a tool was built from.
type Info struct {
	Path     string // module path
	Revision string // release version or abbreviated VCS revision
	Dirty    bool   // the working tree had local modifications
}

// Read extracts the module information embedded by the Go toolchain.
// The result is the zero Info if the binary carries no build information.
func Read() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}
	}
	res := Info{Path: bi.Main.Path}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		res.Revision = v
		return res
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			res.Revision = s.Value
		case "vcs.modified":
			res.Dirty = s.Value == "true"
		}
	}
	if len(res.Revision) > 8 {
		res.Revision = res.Revision[:8]
	}
	return res
}

// String returns the module path followed by the revision, or the empty
// string if the revision is unknown.
func (info Info) String() string {
	if info.Revision == "" {
		return ""
	}
	rev := info.Revision
	if info.Dirty {
		rev += "+dirty"
	}
	return info.Path + " " + rev
}

// Short returns a one-line version string for a tool, e.g.
// "ufo-inspect (seehuhn.de/go/ufo v0.1.0)".
func Short(toolName string) string {
	s := Read().String()
	if s == "" {
		return toolName
	}
	return toolName + " (" + s + ")"
}
