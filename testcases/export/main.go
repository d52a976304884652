// seehuhn.de/go/stroke - convert stroked 2D paths into fillable outlines
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

// Command export writes all test cases, together with the stroke outlines
// computed for them, to testdata/testcases.json.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/stroke"
	"seehuhn.de/go/stroke/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string        `json:"name"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	CTM        []float64     `json:"ctm,omitempty"`
	Path       []jsonSegment `json:"path"`
	Op         string        `json:"op"`
	LineWidth  float64       `json:"line_width,omitempty"`
	LineCap    string        `json:"line_cap,omitempty"`
	LineJoin   string        `json:"line_join,omitempty"`
	MiterLimit float64       `json:"miter_limit,omitempty"`
	Outline    *jsonOutline  `json:"outline,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

// jsonOutline is the stroke outline, in user space.
type jsonOutline struct {
	Points   [][]float64 `json:"points"`
	Tags     []string    `json:"tags"`
	Contours []int       `json:"contours"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Path:   pathToJSON(tc.Path),
	}
	if !tc.CTM.IsZero() {
		jtc.CTM = tc.CTM[:]
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
	case testcases.Stroke:
		jtc.Op = "stroke"
		jtc.LineWidth = op.Width
		jtc.LineCap = op.Cap.String()
		jtc.LineJoin = op.Join.String()
		jtc.MiterLimit = op.MiterLimit

		style := stroke.Style{
			Width:      op.Width,
			Cap:        op.Cap,
			Join:       stroke.JoinFromPDF(op.Join),
			MiterLimit: op.MiterLimit,
		}
		o, err := stroke.Stroke(stroke.FromPath(tc.Path), style)
		if err != nil {
			return jtc, err
		}
		jtc.Outline = outlineToJSON(o)
	}
	return jtc, nil
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	coordIdx := 0
	for _, cmd := range p.Cmds {
		var seg jsonSegment
		n := 0
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd, n = "M", 1
		case path.CmdLineTo:
			seg.Cmd, n = "L", 1
		case path.CmdQuadTo:
			seg.Cmd, n = "Q", 2
		case path.CmdCubeTo:
			seg.Cmd, n = "C", 3
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		seg.Pts = make([][]float64, n)
		for i, pt := range p.Coords[coordIdx : coordIdx+n] {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		coordIdx += n
		segs = append(segs, seg)
	}
	return segs
}

func outlineToJSON(o *stroke.Outline) *jsonOutline {
	res := &jsonOutline{
		Points:   make([][]float64, len(o.Points)),
		Tags:     make([]string, len(o.Tags)),
		Contours: o.Contours,
	}
	for i, pt := range o.Points {
		res.Points[i] = []float64{pt.X, pt.Y}
	}
	for i, tag := range o.Tags {
		res.Tags[i] = tag.String()
	}
	return res
}
