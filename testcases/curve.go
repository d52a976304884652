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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	// Section 1: Quadratic Bezier
	{
		Name:   "quadratic",
		Path:   quadraticCurveOpen(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     round(4),
	},
	{
		Name:   "quadratic_shallow",
		Path:   quadraticCurveOpen(10, 32, 32, 28, 54, 32), // control point near chord
		Width:  64,
		Height: 64,
		Op:     butt(6, graphics.LineJoinMiter),
	},
	{
		Name:   "quadratic_deep",
		Path:   quadraticCurveOpen(10, 50, 32, 2, 54, 50), // control point far from chord
		Width:  64,
		Height: 64,
		Op:     butt(4, graphics.LineJoinMiter),
	},
	{
		Name:   "quadratic_closed",
		Path:   quadraticCurve(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     butt(3, graphics.LineJoinMiter),
	},
	{
		Name:   "quadratic_s_shape",
		Path:   sCurveQuadratic(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     square(3, graphics.LineJoinBevel),
	},

	// Section 2: Cubic Bezier
	{
		Name:   "cubic",
		Path:   cubicCurveOpen(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     round(4),
	},
	{
		Name:   "cubic_scurve",
		Path:   cubicCurveOpen(10, 50, 10, 10, 54, 54, 54, 14), // S-curve with inflection
		Width:  64,
		Height: 64,
		Op:     round(4),
	},
	{
		Name:   "cubic_loop",
		Path:   cubicCurveOpen(10, 32, 60, 5, 4, 59, 54, 32), // self-intersecting loop
		Width:  64,
		Height: 64,
		Op:     butt(3, graphics.LineJoinMiter),
	},
	{
		Name:   "cubic_cusp",
		Path:   cubicCurveOpen(10, 50, 54, 10, 10, 10, 54, 50), // cusp (control points crossed)
		Width:  64,
		Height: 64,
		Op:     butt(3, graphics.LineJoinMiter),
	},
	{
		Name:   "cubic_nearly_straight",
		Path:   cubicCurveOpen(10, 32, 24, 31, 40, 31, 54, 32),
		Width:  64,
		Height: 64,
		Op:     square(6, graphics.LineJoinMiter),
	},
	{
		Name:   "cubic_closed_bevel",
		Path:   cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     butt(4, graphics.LineJoinBevel),
	},

	// Section 3: Circles and arcs
	{
		Name:   "circle",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     butt(3, graphics.LineJoinRound),
	},
	{
		Name:   "circle_miter",
		Path:   circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     butt(6, graphics.LineJoinMiter),
	},
	{
		Name:   "circle_small",
		Path:   circle(32, 32, 3),
		Width:  64,
		Height: 64,
		Op:     butt(2, graphics.LineJoinRound),
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 14),
		Width:  64,
		Height: 64,
		Op:     butt(4, graphics.LineJoinMiter),
	},
	{
		Name:   "pie",
		Path:   pie(32, 32, 25, 3),
		Width:  64,
		Height: 64,
		Op:     butt(4, graphics.LineJoinMiter),
	},
	{
		Name:   "line_then_curve",
		Path:   lineThenCurve(),
		Width:  64,
		Height: 64,
		Op:     butt(4, graphics.LineJoinMiter),
	},
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return quadraticCurveOpen(x1, y1, cx, cy, x2, y2).Close()
}

// quadraticCurveOpen builds an open path with a quadratic Bezier curve.
func quadraticCurveOpen(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2))
}

// cubicCurve builds a closed shape with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return cubicCurveOpen(x1, y1, c1x, c1y, c2x, c2y, x2, y2).Close()
}

// cubicCurveOpen builds an open path with a cubic Bezier curve.
func cubicCurveOpen(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}

// sCurveQuadratic builds an open S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)).
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2))
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

// pie builds a closed pie slice covering the given number of quadrants,
// starting at the right and turning counter-clockwise on the screen.
func pie(cx, cy, r float64, quadrants int) *path.Data {
	k := r * kappa

	p := (&path.Data{}).
		MoveTo(pt(cx, cy)).
		LineTo(pt(cx+r, cy))
	if quadrants >= 1 {
		p = p.CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r))
	}
	if quadrants >= 2 {
		p = p.CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy))
	}
	if quadrants >= 3 {
		p = p.CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r))
	}
	return p.Close()
}

// lineThenCurve builds an open path where a curve starts with a sharp turn
// relative to the preceding line.
func lineThenCurve() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(8, 56)).
		LineTo(pt(32, 56)).
		QuadTo(pt(56, 56), pt(56, 32)).
		CubeTo(pt(56, 8), pt(32, 8), pt(32, 32))
}
