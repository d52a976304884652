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

// Command genpdf generates reference images for the stroke tests.
//
// For every test case it writes two PDF files: one where the PDF viewer
// strokes the path, and one where the outline computed by the stroker is
// filled.  Both are rendered to PNGs using Ghostscript, so that they can be
// compared.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/stroke"
	"seehuhn.de/go/stroke/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			outline, err := strokeOutline(tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			variants := []struct {
				suffix string
				path   *path.Data
				op     testcases.Operation
			}{
				{"", tc.Path, tc.Op},
				{"_outline", outline, testcases.Fill{}},
			}
			for _, v := range variants {
				pdfPath := filepath.Join(refDir, name+v.suffix+".pdf")
				pngPath := filepath.Join(refDir, name+v.suffix+".png")

				if err := generatePDF(tc, v.path, v.op, pdfPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

// strokeOutline returns the path to fill in order to paint the test case.
func strokeOutline(tc testcases.TestCase) (*path.Data, error) {
	op, ok := tc.Op.(testcases.Stroke)
	if !ok {
		return tc.Path, nil
	}
	style := stroke.Style{
		Width:      op.Width,
		Cap:        op.Cap,
		Join:       stroke.JoinFromPDF(op.Join),
		MiterLimit: op.MiterLimit,
	}
	return stroke.StrokePath(tc.Path, style)
}

func generatePDF(tc testcases.TestCase, p *path.Data, op testcases.Operation, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, so that gray values are coverage values
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	if !tc.CTM.IsZero() && tc.CTM != matrix.Identity {
		page.Transform(tc.CTM)
	}

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))

	// Set stroke parameters before path construction (PDF requirement)
	if op, ok := op.(testcases.Stroke); ok {
		page.SetLineWidth(op.Width)
		page.SetLineCap(op.Cap)
		page.SetLineJoin(op.Join)
		page.SetMiterLimit(op.MiterLimit)
	}

	// PDF has no quadratic segments
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}

	switch op.(type) {
	case testcases.Fill:
		page.Fill()
	case testcases.Stroke:
		page.Stroke()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
