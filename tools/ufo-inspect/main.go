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

// ufo-inspect shows the contents of a UFO font source.
package main

import (
	"flag"
	"fmt"
	"os"

	"seehuhn.de/go/ufo/tools/internal/buildinfo"
	"seehuhn.de/go/ufo/tools/ufo-inspect/traverse"
)

func main() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "ufo-inspect - show objects in a UFO font source\n")
		fmt.Fprintf(out, "%s\n\n", buildinfo.Short("ufo-inspect"))
		fmt.Fprintf(out, "Usage:\n")
		fmt.Fprintf(out, "  ufo-inspect [options] <font.ufo> <path>...\n\n")
		fmt.Fprintf(out, "The given path describes an object in the font,\n")
		fmt.Fprintf(out, "starting from the font itself.\n\n")
		fmt.Fprintf(out, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  ufo-inspect Font.ufo info\n")
		fmt.Fprintf(out, "  ufo-inspect Font.ufo layers public.background A\n")
		fmt.Fprintf(out, "  ufo-inspect Font.ufo Aacute lib\n")
		fmt.Fprintf(out, "  ufo-inspect Font.ufo glyph:info\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	err := showObject(flag.Args()...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func showObject(args ...string) error {
	obj, err := traverse.Root(args[0])
	if err != nil {
		return err
	}
	obj, err = traverse.Walk(obj, args[1:]...)
	if err != nil {
		return err
	}

	err = obj.Show()
	if err != nil {
		return err
	}

	steps := obj.Next()
	if len(steps) > 0 {
		fmt.Println("")
		fmt.Println("next:")
		for _, step := range steps {
			fmt.Printf("  • %s\n", step.Desc)
		}
	}
	return nil
}
