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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var ctmCases = []TestCase{
	// Section 1: Uniform scaling
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Width:  128,
		Height: 128,
		Op:     butt(2, graphics.LineJoinMiter),
		CTM:    matrix.Scale(2, 2).Translate(44, 44),
	},
	{
		Name:   "scale_half",
		Path:   rectangle(0, 0, 80, 80),
		Width:  64,
		Height: 64,
		Op:     butt(8, graphics.LineJoinBevel),
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
	},

	// Section 2: Rotation
	{
		Name:   "rotate_45deg",
		Path:   horizontalLine(-20, 0, 20),
		Width:  64,
		Height: 64,
		Op:     square(6, graphics.LineJoinMiter),
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "round_join_rotated",
		Path:   cornerCentered(0, 0, math.Pi/3),
		Width:  64,
		Height: 64,
		Op:     butt(6, graphics.LineJoinRound),
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},

	// Section 3: Non-uniform transformations transform the pen
	{
		Name:   "round_cap_nonuniform",
		Path:   horizontalLine(-20, 0, 20),
		Width:  128,
		Height: 64,
		Op:     round(8),
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:   "circle_to_ellipse",
		Path:   circle(0, 0, 12),
		Width:  128,
		Height: 64,
		Op:     butt(4, graphics.LineJoinMiter),
		CTM:    matrix.Scale(4, 2).Translate(64, 32),
	},
	{
		Name:   "shear_horizontal",
		Path:   rectangle(-12, -12, 12, 12),
		Width:  64,
		Height: 64,
		Op:     butt(4, graphics.LineJoinMiter),
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 32, 32},
	},
}

// cornerCentered creates a corner path with its tip at (cx, cy), where the
// two arms of length 20 enclose the given angle.
func cornerCentered(cx, cy float64, angle float64) *path.Data {
	const length = 20.0
	halfAngle := angle / 2

	dx := length * math.Cos(halfAngle)
	dy := length * math.Sin(halfAngle)
	return corner(cx-dx, cy-dy, cx, cy, cx+dx, cy-dy)
}
