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
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// defaultMiterLimit is the PDF default miter limit.
const defaultMiterLimit = 10

// LineJoin describes the geometry at corners of a stroked path.
type LineJoin uint8

const (
	// JoinMiter extends the outer edges until they meet.  If the miter
	// would exceed the miter limit, a bevel join is used instead.
	JoinMiter LineJoin = iota

	// JoinRound adds a circular arc around the corner.
	JoinRound

	// JoinBevel connects the outer edges by a straight line.
	JoinBevel

	// JoinMiterVariable is like JoinMiter, but miters exceeding the limit
	// are cut off at the limit distance instead of being replaced by a
	// bevel.
	JoinMiterVariable
)

func (j LineJoin) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	case JoinMiterVariable:
		return "miter-variable"
	default:
		return fmt.Sprintf("LineJoin(%d)", uint8(j))
	}
}

// JoinFromPDF converts a PDF line join style.
// Unknown values map to JoinMiter.
func JoinFromPDF(j graphics.LineJoinStyle) LineJoin {
	switch j {
	case graphics.LineJoinRound:
		return JoinRound
	case graphics.LineJoinBevel:
		return JoinBevel
	default:
		return JoinMiter
	}
}

// Style collects the parameters for stroking a path.
type Style struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       LineJoin
	MiterLimit float64
}

// DefaultStyle returns the PDF default stroke style: width 1, butt caps,
// miter joins and miter limit 10.
func DefaultStyle() Style {
	return Style{
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       JoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Stroke returns the fillable outline of the stroke of o.
// The result is best filled using the nonzero winding rule.
func Stroke(o *Outline, style Style) (*Outline, error) {
	s := NewStroker()
	s.SetStyle(style)
	return s.stroke(o)
}

// StrokePath is like Stroke, but operates on paths.
func StrokePath(p *path.Data, style Style) (*path.Data, error) {
	res, err := Stroke(FromPath(p), style)
	if err != nil {
		return nil, err
	}
	return res.ToPath()
}

func (s *Stroker) stroke(o *Outline) (*Outline, error) {
	if err := s.ParseOutline(o); err != nil {
		return nil, err
	}

	numPoints, numContours, err := s.GetCounts()
	if err != nil {
		return nil, err
	}

	res := &Outline{
		Points:   make([]vec.Vec2, 0, numPoints),
		Tags:     make([]PointTag, 0, numPoints),
		Contours: make([]int, 0, numContours),
		Open:     make([]bool, 0, numContours),
	}
	if err := s.Export(res); err != nil {
		return nil, err
	}

	Logger().Debug("stroked outline",
		"contours", len(o.Contours),
		"width", 2*s.radius,
		"cap", s.lineCap,
		"join", s.lineJoin,
		"points", numPoints,
		"strokeContours", numContours)
	return res, nil
}
