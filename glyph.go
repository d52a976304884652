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

package stroke

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/vec"
)

// FromSegments converts the outline of a glyph, as returned by
// [sfnt.Font.LoadGlyph], into an Outline.  Glyph contours are closed.
//
// The coordinates are in pixels, with the y-axis pointing down.
func FromSegments(segs sfnt.Segments) *Outline {
	o := &Outline{}
	inContour := false
	endContour := func() {
		if inContour {
			o.Contours = append(o.Contours, len(o.Points)-1)
			o.Open = append(o.Open, false)
		}
	}

	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			endContour()
			o.Points = append(o.Points, fromFixed(seg.Args[0]))
			o.Tags = append(o.Tags, OnCurve)
			inContour = true
		case sfnt.SegmentOpLineTo:
			o.Points = append(o.Points, fromFixed(seg.Args[0]))
			o.Tags = append(o.Tags, OnCurve)
		case sfnt.SegmentOpQuadTo:
			o.Points = append(o.Points, fromFixed(seg.Args[0]), fromFixed(seg.Args[1]))
			o.Tags = append(o.Tags, QuadControl, OnCurve)
		case sfnt.SegmentOpCubeTo:
			o.Points = append(o.Points,
				fromFixed(seg.Args[0]), fromFixed(seg.Args[1]), fromFixed(seg.Args[2]))
			o.Tags = append(o.Tags, CubicControl, CubicControl, OnCurve)
		}
	}
	endContour()

	return o
}

func fromFixed(p fixed.Point26_6) vec.Vec2 {
	return vec.Vec2{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}
