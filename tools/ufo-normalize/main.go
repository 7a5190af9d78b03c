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

// ufo-normalize reads a UFO font source and writes it back in canonical
// form, optionally cleaning up the font data on the way.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"

	"seehuhn.de/go/ufo"
	"seehuhn.de/go/ufo/tools/internal/buildinfo"
	"seehuhn.de/go/ufo/tools/internal/profile"
)

var (
	outArg     = flag.String("o", "", "write the result to `dir` instead of replacing the input")
	autoUniArg = flag.Bool("autounicodes", false, "derive missing code points from glyph names")
	orderArg   = flag.Bool("order", false, "complete the glyph order")
	roundArg   = flag.Bool("round", false, "round coordinates and metrics to integers")
	emptyArg   = flag.Bool("drop-empty-layers", false, "remove layers without glyphs")
	traceArg   = flag.String("trace", "Error", "trace level [Debug|Info|Error]")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

// tracer traces with key 'ufo.normalize'.
func tracer() tracing.Trace {
	return tracing.Select("ufo.normalize")
}

func main() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "ufo-normalize - rewrite a UFO font source in canonical form\n")
		fmt.Fprintf(out, "%s\n\n", buildinfo.Short("ufo-normalize"))
		fmt.Fprintf(out, "Usage:\n")
		fmt.Fprintf(out, "  ufo-normalize [options] <font.ufo>\n\n")
		fmt.Fprintf(out, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  ufo-normalize Font.ufo\n")
		fmt.Fprintf(out, "  ufo-normalize -autounicodes -order -o Clean.ufo Font.ufo\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	err := setupTracing(*traceArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.ufo":           level,
		"trace.ufo.normalize": level,
	}
	err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true))
	if err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func run(in string) error {
	prof, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		if err := prof.Stop(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}()

	f, err := ufo.Open(in)
	if err != nil {
		return err
	}

	opt := &options{
		AutoUnicodes:    *autoUniArg,
		CompleteOrder:   *orderArg,
		Round:           *roundArg,
		DropEmptyLayers: *emptyArg,
	}
	st, err := normalize(f, opt)
	if err != nil {
		return err
	}
	tracer().Infof("%s: %d code points added, %d glyphs ordered, %d glyphs rounded, %d layers dropped",
		in, st.Unicodes, st.Ordered, st.Rounded, st.DroppedLayers)

	out := *outArg
	if out == "" {
		out = in
	}
	return f.Save(out)
}
