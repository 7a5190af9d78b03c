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
	"maps"
	"slices"
	"strconv"
	"strings"
)

const (
	kern1Prefix    = "public.kern1."
	kern2Prefix    = "public.kern2."
	legacyMMKLeft  = "@MMK_L_"
	legacyMMKRight = "@MMK_R_"
)

// upconvertKerning converts kerning groups from the informal conventions
// of UFO versions 1 and 2 to the "public.kern1." and "public.kern2."
// groups of version 3.  The old groups are kept and copies are added
// under the new names.  Kerning pairs are rewritten to use the new names.
//
// A group is converted for the first side if its name starts with "@MMK_L_"
// or if it is used as the first element of a kerning pair and is not also
// the name of a glyph in glyphs.  The second side is treated the same way.
func upconvertKerning(groups map[string][]string, kerning map[string]map[string]float64, glyphs map[string]bool) (map[string][]string, map[string]map[string]float64) {
	first := make(map[string]bool)
	second := make(map[string]bool)
	for name := range groups {
		if strings.HasPrefix(name, legacyMMKLeft) {
			first[name] = true
		} else if strings.HasPrefix(name, legacyMMKRight) {
			second[name] = true
		}
	}
	isGroup := func(name string) bool {
		_, ok := groups[name]
		return ok && !glyphs[name]
	}
	for left, row := range kerning {
		if isGroup(left) && !strings.HasPrefix(left, kern1Prefix) {
			first[left] = true
		}
		for right := range row {
			if isGroup(right) && !strings.HasPrefix(right, kern2Prefix) {
				second[right] = true
			}
		}
	}

	newGroups := maps.Clone(groups)
	if newGroups == nil {
		newGroups = make(map[string][]string)
	}
	rename := func(names map[string]bool, prefix, legacy string) map[string]string {
		res := make(map[string]string, len(names))
		for _, old := range slices.Sorted(maps.Keys(names)) {
			name := uniqueGroupName(prefix+strings.ReplaceAll(old, legacy, ""), newGroups)
			newGroups[name] = slices.Clone(groups[old])
			res[old] = name
		}
		return res
	}
	firstNames := rename(first, kern1Prefix, legacyMMKLeft)
	secondNames := rename(second, kern2Prefix, legacyMMKRight)

	if kerning == nil {
		return newGroups, nil
	}
	newKerning := make(map[string]map[string]float64, len(kerning))
	for left, row := range kerning {
		if name, ok := firstNames[left]; ok {
			left = name
		}
		newRow := make(map[string]float64, len(row))
		for right, val := range row {
			if name, ok := secondNames[right]; ok {
				right = name
			}
			newRow[right] = val
		}
		newKerning[left] = newRow
	}
	return newGroups, newKerning
}

// uniqueGroupName appends a number to name, if needed, to make it different
// from all existing group names.
func uniqueGroupName(name string, groups map[string][]string) string {
	if _, exists := groups[name]; !exists {
		return name
	}
	for i := 1; ; i++ {
		candidate := name + strconv.Itoa(i)
		if _, exists := groups[candidate]; !exists {
			return candidate
		}
	}
}
