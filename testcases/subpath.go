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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var subpathCases = []TestCase{
	{
		Name:   "square_miter",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     butt(8, graphics.LineJoinMiter),
	},
	{
		Name:   "square_bevel",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     butt(8, graphics.LineJoinBevel),
	},
	{
		Name:   "square_round",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     butt(8, graphics.LineJoinRound),
	},
	{
		// the same square, but the last side is drawn explicitly
		Name:   "square_explicit_close",
		Path:   explicitRectangle(16, 16, 48, 48).Close(),
		Width:  64,
		Height: 64,
		Op:     butt(8, graphics.LineJoinMiter),
	},
	{
		// the same square without ClosePath, so that the first corner
		// gets caps instead of a join
		Name:   "square_open",
		Path:   explicitRectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     square(8, graphics.LineJoinMiter),
	},
	{
		Name:   "triangle_closed",
		Path:   triangle(32, 8, 56, 52, 8, 52),
		Width:  64,
		Height: 64,
		Op:     butt(4, graphics.LineJoinMiter),
	},
	{
		Name:   "two_triangles",
		Path:   twoTriangles(20, 32, 44, 32, 10),
		Width:  64,
		Height: 64,
		Op:     butt(3, graphics.LineJoinRound),
	},
	{
		Name:   "mixed_open_closed",
		Path:   mixedSubpaths(),
		Width:  64,
		Height: 64,
		Op:     round(4),
	},
	{
		Name:   "close_then_line",
		Path:   closeThenLine(),
		Width:  64,
		Height: 64,
		Op:     butt(4, graphics.LineJoinMiter),
	},
}

// rectangle builds a closed axis-aligned rectangle.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// explicitRectangle builds a rectangle where the last side ends exactly at
// the start point.  The path is left open.
func explicitRectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		LineTo(pt(x1, y1))
}

// triangle builds a closed triangle.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx1, cy1-size)).
		LineTo(pt(cx1+size, cy1+size)).
		LineTo(pt(cx1-size, cy1+size)).
		Close().
		MoveTo(pt(cx2, cy2-size)).
		LineTo(pt(cx2+size, cy2+size)).
		LineTo(pt(cx2-size, cy2+size)).
		Close()
}

// mixedSubpaths builds an open polyline, a closed curve and a single line.
func mixedSubpaths() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(8, 8)).
		LineTo(pt(24, 20)).
		LineTo(pt(40, 8)).
		MoveTo(pt(32, 28)).
		QuadTo(pt(56, 28), pt(56, 44)).
		QuadTo(pt(32, 60), pt(32, 28)).
		Close().
		MoveTo(pt(8, 56)).
		LineTo(pt(20, 32))
}

// closeThenLine draws a segment directly after ClosePath, which starts a
// new subpath at the start of the closed one.
func closeThenLine() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(16, 16)).
		LineTo(pt(48, 16)).
		LineTo(pt(32, 40)).
		Close().
		LineTo(pt(16, 56))
}
