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

package pen

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// PathPen records an outline as a [path.Data].  Components are decomposed
// by drawing the base glyphs from Glyphs.
type PathPen struct {
	Glyphs GlyphSet
	Path   path.Data

	// Err records the first error encountered while resolving components.
	Err error

	resolver componentResolver
}

// MoveTo implements the [Pen] interface.
func (p *PathPen) MoveTo(pt vec.Vec2) {
	p.Path.Cmds = append(p.Path.Cmds, path.CmdMoveTo)
	p.Path.Coords = append(p.Path.Coords, pt)
}

// LineTo implements the [Pen] interface.
func (p *PathPen) LineTo(pt vec.Vec2) {
	p.Path.Cmds = append(p.Path.Cmds, path.CmdLineTo)
	p.Path.Coords = append(p.Path.Coords, pt)
}

// CurveTo implements the [Pen] interface.
func (p *PathPen) CurveTo(p1, p2, p3 vec.Vec2) {
	p.Path.Cmds = append(p.Path.Cmds, path.CmdCubeTo)
	p.Path.Coords = append(p.Path.Coords, p1, p2, p3)
}

// QCurveTo implements the [Pen] interface.
func (p *PathPen) QCurveTo(pts ...vec.Vec2) {
	if len(pts) == 1 {
		p.LineTo(pts[0])
		return
	}
	for _, seg := range quadSegments(pts) {
		p.Path.Cmds = append(p.Path.Cmds, path.CmdQuadTo)
		p.Path.Coords = append(p.Path.Coords, seg[0], seg[1])
	}
}

// ClosePath implements the [Pen] interface.
func (p *PathPen) ClosePath() {
	p.Path.Cmds = append(p.Path.Cmds, path.CmdClose)
}

// EndPath implements the [Pen] interface.
func (p *PathPen) EndPath() {}

// AddComponent implements the [Pen] interface.
func (p *PathPen) AddComponent(baseGlyph string, transform matrix.Matrix) {
	err := p.resolver.draw(p.Glyphs, p, baseGlyph, transform)
	if err != nil && p.Err == nil {
		p.Err = err
	}
}
