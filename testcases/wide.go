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

// wideCases use stroke widths which are large compared to the curvature
// of the path, so that offset curves fold back on themselves.
var wideCases = []TestCase{
	{
		Name:   "thick_tight_curve",
		Path:   tightCurve(32, 32, 12),
		Width:  64,
		Height: 64,
		Op:     round(10),
	},
	{
		Name:   "thick_tight_curve_butt",
		Path:   tightCurve(32, 32, 12),
		Width:  64,
		Height: 64,
		Op:     butt(16, graphics.LineJoinMiter),
	},
	{
		Name:   "thick_quadratic_butt",
		Path:   quadraticCurveOpen(12, 48, 32, 8, 52, 48),
		Width:  64,
		Height: 64,
		Op:     butt(20, graphics.LineJoinMiter),
	},
	{
		Name:   "thick_cubic_bevel",
		Path:   cubicCurveOpen(12, 48, 20, 16, 44, 16, 52, 48),
		Width:  64,
		Height: 64,
		Op:     butt(24, graphics.LineJoinBevel),
	},
	{
		Name:   "thick_small_circle",
		Path:   circle(32, 32, 6),
		Width:  64,
		Height: 64,
		Op:     butt(16, graphics.LineJoinMiter),
	},
	{
		Name:   "zigzag_thick",
		Path:   zigzagPath(10, 32, 54, 20),
		Width:  64,
		Height: 64,
		Op:     round(8),
	},
	{
		Name:   "zigzag_thick_miter",
		Path:   zigzagPath(10, 32, 54, 20),
		Width:  64,
		Height: 64,
		Op:     butt(8, graphics.LineJoinMiter),
	},
	{
		Name:   "spiral_overlap",
		Path:   spiralPath(32, 32, 5, 25, 3),
		Width:  64,
		Height: 64,
		Op:     round(4),
	},
}

// tightCurve builds a U-shaped curve where the inner radius is small
// relative to stroke width, causing the inner edge to cross.
func tightCurve(cx, cy, size float64) *path.Data {
	r := size
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx-r, cy-size)).
		LineTo(pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		LineTo(pt(cx+r, cy-size))
}

// zigzagPath builds a zigzag pattern where adjacent thick strokes overlap.
func zigzagPath(x1, cy, x2, amplitude float64) *path.Data {
	const segments = 5
	segWidth := (x2 - x1) / segments

	p := (&path.Data{}).MoveTo(pt(x1, cy))
	for i := 1; i <= segments; i++ {
		x := x1 + float64(i)*segWidth
		y := cy + amplitude
		if i%2 == 1 {
			y = cy - amplitude
		}
		p = p.LineTo(pt(x, y))
	}
	return p
}

// spiralPath builds an Archimedean spiral from line segments.
func spiralPath(cx, cy, rMin, rMax float64, turns float64) *path.Data {
	steps := max(int(turns*32), 8) // 32 segments per turn

	totalAngle := turns * 2 * math.Pi
	rGrowth := (rMax - rMin) / totalAngle

	p := (&path.Data{}).MoveTo(pt(cx+rMin, cy))
	for i := 1; i <= steps; i++ {
		angle := float64(i) / float64(steps) * totalAngle
		r := rMin + rGrowth*angle
		p = p.LineTo(pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return p
}
