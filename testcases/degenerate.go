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

// degenerateCases contain zero-length segments and curves which collapse
// to a point.  A viewer may draw caps for some of these, but the stroker
// only generates geometry for segments of non-zero length.
var degenerateCases = []TestCase{
	{
		Name:   "lone_moveto",
		Path:   (&path.Data{}).MoveTo(pt(32, 32)),
		Width:  64,
		Height: 64,
		Op:     round(8),
	},
	{
		Name:   "repeated_point",
		Path:   polyline(10, 32, 32, 32, 32, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     butt(6, graphics.LineJoinMiter),
	},
	{
		Name:   "cubic_collapsed",
		Path:   polyline(10, 32, 32, 32).CubeTo(pt(32, 32), pt(32, 32), pt(32, 32)).LineTo(pt(32, 54)),
		Width:  64,
		Height: 64,
		Op:     butt(6, graphics.LineJoinMiter),
	},
	{
		Name:   "quadratic_control_on_start",
		Path:   quadraticCurveOpen(10, 32, 10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     butt(6, graphics.LineJoinMiter),
	},
	{
		Name:   "cubic_controls_on_ends",
		Path:   cubicCurveOpen(10, 40, 10, 40, 54, 24, 54, 24),
		Width:  64,
		Height: 64,
		Op:     butt(6, graphics.LineJoinMiter),
	},
	{
		Name:   "tiny_segments",
		Path:   polyline(10, 32, 10.01, 32, 10.02, 32.01, 54, 32),
		Width:  64,
		Height: 64,
		Op:     butt(6, graphics.LineJoinMiter),
	},
}
