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

var joinCases = []TestCase{
	// Section 1: The three PDF join styles at a right angle
	{
		Name:   "corner_miter",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     butt(6, graphics.LineJoinMiter),
	},
	{
		Name:   "corner_round",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     butt(6, graphics.LineJoinRound),
	},
	{
		Name:   "corner_bevel",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     butt(6, graphics.LineJoinBevel),
	},
	{
		Name:   "corner_right_angle_miter",
		Path:   corner(12, 52, 12, 12, 52, 12),
		Width:  64,
		Height: 64,
		Op:     butt(8, graphics.LineJoinMiter),
	},

	// Section 2: Miter limit
	{
		// 30° corner: the miter length ratio is 1/sin(15°) ≈ 3.86
		Name:   "miter_limit_above",
		Path:   cornerAngle(32, 16, 30),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 4,
		},
	},
	{
		Name:   "miter_limit_below",
		Path:   cornerAngle(32, 16, 30),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 3.8,
		},
	},
	{
		Name:   "miter_limit_one",
		Path:   corner(12, 52, 12, 12, 52, 12),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      8,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 1,
		},
	},

	// Section 3: Sharp and shallow turns
	{
		Name:   "sharp_miter",
		Path:   cornerAngle(32, 24, 10),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      3,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 20,
		},
	},
	{
		Name:   "sharp_round",
		Path:   cornerAngle(32, 24, 10),
		Width:  64,
		Height: 64,
		Op:     butt(3, graphics.LineJoinRound),
	},
	{
		Name:   "shallow_miter",
		Path:   cornerAngle(32, 24, 170),
		Width:  64,
		Height: 64,
		Op:     butt(6, graphics.LineJoinMiter),
	},
	{
		Name:   "short_segments_inside",
		Path:   polyline(10, 40, 30, 40, 31, 38, 54, 38),
		Width:  64,
		Height: 64,
		Op:     butt(10, graphics.LineJoinMiter),
	},
}

// corner builds a path with two line segments meeting at a corner.
func corner(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3))
}

// cornerAngle builds a corner with its tip at (cx, cy), pointing up, where
// the two arms enclose the given angle (in degrees).  The arms have length
// 30.
func cornerAngle(cx, cy, angleDeg float64) *path.Data {
	const length = 30
	half := angleDeg / 2 * math.Pi / 180
	dx := length * math.Sin(half)
	dy := length * math.Cos(half)
	return corner(cx-dx, cy+dy, cx, cy, cx+dx, cy+dy)
}
