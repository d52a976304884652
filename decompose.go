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

	"seehuhn.de/go/geom/vec"
)

// Sink receives the segments of a path, one subpath at a time.
// The Stroker implements this interface.
type Sink interface {
	BeginSubPath(p vec.Vec2, open bool) error
	LineTo(p vec.Vec2) error
	ConicTo(control, p vec.Vec2) error
	CubicTo(control1, control2, p vec.Vec2) error
	EndSubPath() error
}

// Decompose checks the outline and then sends every contour with at least
// two points to sink.  Processing stops at the first error.
//
// Runs of quadratic control points are split at their implied on-curve
// midpoints.  A contour which starts at a quadratic control point starts at
// its last point instead, if that is on the curve, and otherwise at the
// midpoint between its last and first point.
func (o *Outline) Decompose(sink Sink) error {
	if err := o.Check(); err != nil {
		return err
	}

	first := 0
	for i, last := range o.Contours {
		if last > first {
			err := o.decomposeContour(sink, first, last, o.IsOpen(i))
			if err != nil {
				return err
			}
		}
		first = last + 1
	}
	return nil
}

type decomposeState int

const (
	awaitingPoint decomposeState = iota
	inConicRun
	inCubicRun
)

func (o *Outline) decomposeContour(sink Sink, first, last int, open bool) error {
	pts := o.Points
	tags := o.Tags

	start := pts[first]
	limit := last // index of the last point to visit
	pos := first  // index of the most recently consumed point

	switch tags[first] {
	case CubicControl:
		return fmt.Errorf("%w: contour starts with a cubic control point at index %d",
			ErrInvalidOutline, first)
	case QuadControl:
		if tags[last] == OnCurve {
			start = pts[last]
			limit--
		} else {
			start = vec.Middle(pts[first], pts[last])
		}
		pos--
	}

	if err := sink.BeginSubPath(start, open); err != nil {
		return err
	}

	state := awaitingPoint
	var control vec.Vec2
	for {
		var err error
		switch state {
		case awaitingPoint:
			if pos >= limit {
				return sink.EndSubPath()
			}
			pos++
			switch tags[pos] {
			case OnCurve:
				err = sink.LineTo(pts[pos])
			case QuadControl:
				control = pts[pos]
				state = inConicRun
			default:
				state = inCubicRun
			}

		case inConicRun:
			if pos >= limit {
				if err := sink.ConicTo(control, start); err != nil {
					return err
				}
				return sink.EndSubPath()
			}
			pos++
			p := pts[pos]
			switch tags[pos] {
			case OnCurve:
				err = sink.ConicTo(control, p)
				state = awaitingPoint
			case QuadControl:
				err = sink.ConicTo(control, vec.Middle(control, p))
				control = p
			default:
				return fmt.Errorf("%w: cubic control point at index %d follows a quadratic one",
					ErrInvalidOutline, pos)
			}

		case inCubicRun:
			if pos+1 > limit || tags[pos+1] != CubicControl {
				return fmt.Errorf("%w: unpaired cubic control point at index %d",
					ErrInvalidOutline, pos)
			}
			c1, c2 := pts[pos], pts[pos+1]
			pos += 2
			if pos > limit {
				if err := sink.CubicTo(c1, c2, start); err != nil {
					return err
				}
				return sink.EndSubPath()
			}
			err = sink.CubicTo(c1, c2, pts[pos])
			state = awaitingPoint
		}
		if err != nil {
			return err
		}
	}
}

// ParseOutline rewinds the stroker and then strokes all contours of o.
// The result can be retrieved using GetCounts and Export.
func (s *Stroker) ParseOutline(o *Outline) error {
	s.Rewind()
	err := o.Decompose(s)
	if err != nil {
		Logger().Debug("stroking outline failed", "error", err)
	}
	return err
}
