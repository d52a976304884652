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

// Package stroke converts stroked 2D paths into fillable outlines.
//
// A [Stroker] takes a path, given either segment by segment or as an
// [Outline], together with a line width, cap style, join style and miter
// limit.  It produces two borders, the offset curves to the right and to the
// left of the path.  Filled with the nonzero winding rule, the exported
// borders cover exactly the area which would be painted by stroking the
// path.  Open subpaths become a single contour which runs along one side,
// around the end cap, back along the other side and around the start cap.
// Closed subpaths become two contours with opposite orientation.
//
// Curves are approximated by subdividing them until each piece turns by
// less than a fixed angle, and then offsetting the control points of each
// piece.  Round joins and caps use cubic Bézier arcs.
//
// The stroker does not implement dashing.
package stroke

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"image"

	"golang.org/x/image/vector"

	"seehuhn.de/go/stroke/testcases"
)

// RenderExample renders a test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Each byte represents coverage from 0 (transparent) to 255 (opaque).
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) error {
	o := FromPath(tc.Path)

	if op, ok := tc.Op.(testcases.Stroke); ok {
		style := Style{
			Width:      op.Width,
			Cap:        op.Cap,
			Join:       JoinFromPDF(op.Join),
			MiterLimit: op.MiterLimit,
		}
		var err error
		o, err = Stroke(o, style)
		if err != nil {
			return err
		}
	}

	// Strokes are computed in user space, so that the CTM also applies to
	// the pen.
	if !tc.CTM.IsZero() {
		o.Transform(tc.CTM)
	}

	z := vector.NewRasterizer(width, height)
	if err := o.Rasterize(z); err != nil {
		return err
	}

	// vector.Rasterizer ignores the stride when drawing the full image
	// into an Alpha mask, so rows are copied from a packed image.
	dst := &image.Alpha{
		Pix:    buf,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}
	if stride != width {
		dst = image.NewAlpha(image.Rect(0, 0, width, height))
	}
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	if stride != width {
		for y := range height {
			copy(buf[y*stride:y*stride+width], dst.Pix[y*width:(y+1)*width])
		}
	}
	return nil
}
