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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var strokeCases = []TestCase{
	// Section 1: Caps on straight lines
	{
		Name:   "line_butt",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Op:     butt(8, graphics.LineJoinMiter),
	},
	{
		Name:   "line_round",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Op:     round(8),
	},
	{
		Name:   "line_square",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Op:     square(8, graphics.LineJoinMiter),
	},
	{
		Name:   "line_diagonal_butt",
		Path:   line(12, 52, 52, 12),
		Width:  64,
		Height: 64,
		Op:     butt(6, graphics.LineJoinMiter),
	},
	{
		Name:   "line_diagonal_square",
		Path:   line(16, 48, 48, 16),
		Width:  64,
		Height: 64,
		Op:     square(6, graphics.LineJoinMiter),
	},
	{
		Name:   "line_vertical_round",
		Path:   line(32, 10, 32, 54),
		Width:  64,
		Height: 64,
		Op:     round(10),
	},
	{
		Name:   "line_hairline",
		Path:   horizontalLine(10, 32.5, 54),
		Width:  64,
		Height: 64,
		Op:     butt(1, graphics.LineJoinMiter),
	},
	{
		Name:   "line_short_round",
		Path:   horizontalLine(31, 32, 33),
		Width:  64,
		Height: 64,
		Op:     round(16),
	},

	// Section 2: Polylines
	{
		Name:   "polyline_butt",
		Path:   polyline(8, 48, 24, 16, 40, 48, 56, 16),
		Width:  64,
		Height: 64,
		Op:     butt(4, graphics.LineJoinMiter),
	},
	{
		Name:   "polyline_square_bevel",
		Path:   polyline(8, 48, 24, 16, 40, 48, 56, 16),
		Width:  64,
		Height: 64,
		Op:     square(4, graphics.LineJoinBevel),
	},
	{
		Name:   "polyline_collinear",
		Path:   polyline(8, 32, 20, 32, 44, 32, 56, 32),
		Width:  64,
		Height: 64,
		Op:     butt(6, graphics.LineJoinMiter),
	},
	{
		Name:   "polyline_reversal_round",
		Path:   polyline(10, 32, 54, 32, 20, 32),
		Width:  64,
		Height: 64,
		Op:     round(6),
	},
	{
		Name:   "polyline_reversal_square",
		Path:   polyline(10, 32, 54, 32, 20, 32),
		Width:  64,
		Height: 64,
		Op:     square(6, graphics.LineJoinMiter),
	},
	{
		Name:   "star_open",
		Path:   openStar(32, 32, 24),
		Width:  64,
		Height: 64,
		Op:     butt(2, graphics.LineJoinMiter),
	},
}

// horizontalLine builds a horizontal line segment.
func horizontalLine(x1, y, x2 float64) *path.Data {
	return line(x1, y, x2, y)
}

// line builds a single line segment.
func line(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2))
}

// polyline builds an open path through the given x, y coordinate pairs.
func polyline(coords ...float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(coords[0], coords[1]))
	for i := 2; i+1 < len(coords); i += 2 {
		p = p.LineTo(pt(coords[i], coords[i+1]))
	}
	return p
}

// openStar builds a five-pointed star as an open path, so that the first
// and last point coincide without a ClosePath.
func openStar(cx, cy, r float64) *path.Data {
	p := &path.Data{}
	for i := 0; i <= 5; i++ {
		angle := -math.Pi/2 + float64(2*i%5)*2*math.Pi/5
		q := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if i == 0 {
			p = p.MoveTo(q)
		} else {
			p = p.LineTo(q)
		}
	}
	return p
}
