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
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// borderTag describes the role of a point in a border.
type borderTag uint8

const (
	tagOn    borderTag = 1 << iota // on-curve point
	tagCubic                       // cubic control point (quadratic if neither bit is set)
	tagBegin                       // first point of a contour
	tagEnd                         // last point of a contour

	tagBeginEnd = tagBegin | tagEnd
)

// arcCubicAngle is the largest sweep approximated by a single cubic.
const arcCubicAngle = anglePi / 2

// border is one side of a stroke.
//
// Points are only ever appended, except that a "movable" last point can be
// replaced by the next lineTo call, and that close may drop the final point
// of a contour.  All access is by index, so the slices can be reallocated
// at any time.
type border struct {
	points []vec.Vec2
	tags   []borderTag

	// movable is set if the last on-curve point can still be relocated.
	movable bool

	// start is the index of the first point of the open contour,
	// or -1 if no contour is open.
	start int

	// valid is set by counts, once the contour tags have been checked.
	valid bool

	// maxPoints limits the number of points.  Zero means no limit.
	maxPoints int
}

func (b *border) init() {
	b.start = -1
}

// reset removes all points but keeps the allocated memory.
func (b *border) reset() {
	b.points = b.points[:0]
	b.tags = b.tags[:0]
	b.movable = false
	b.start = -1
	b.valid = false
}

// grow makes room for n more points.  If this would exceed maxPoints, the
// border is left unchanged and ErrTooManyPoints is returned.
func (b *border) grow(n int) error {
	need := len(b.points) + n
	if b.maxPoints > 0 && need > b.maxPoints {
		return fmt.Errorf("%w: %d points needed, limit is %d",
			ErrTooManyPoints, need, b.maxPoints)
	}
	if need <= cap(b.points) && need <= cap(b.tags) {
		return nil
	}

	newCap := min(cap(b.points), cap(b.tags))
	for newCap < need {
		newCap += newCap>>1 + 16
	}
	if b.maxPoints > 0 {
		newCap = min(newCap, b.maxPoints)
	}

	points := make([]vec.Vec2, len(b.points), newCap)
	copy(points, b.points)
	tags := make([]borderTag, len(b.tags), newCap)
	copy(tags, b.tags)
	b.points = points
	b.tags = tags

	Logger().Debug("stroke border grown", "points", need, "capacity", newCap)
	return nil
}

// lastPoint returns the most recently added point.
// The border must not be empty.
func (b *border) lastPoint() vec.Vec2 {
	return b.points[len(b.points)-1]
}

// moveTo starts a new contour at p, closing the current one if needed.
func (b *border) moveTo(p vec.Vec2) error {
	if b.start >= 0 {
		b.close(false)
	}
	b.start = len(b.points)
	b.movable = false
	return b.lineTo(p, false)
}

// lineTo adds a straight piece ending at p.
//
// If the border is movable, the last point is replaced by p.  Otherwise, p
// is ignored if it is within smallDistance of the last point.  The movable
// argument determines whether the next call may relocate p.
func (b *border) lineTo(p vec.Vec2, movable bool) error {
	if b.movable {
		b.points[len(b.points)-1] = p
	} else {
		n := len(b.points)
		if n > 0 && n > b.start && isSmall(b.points[n-1].Sub(p)) {
			return nil
		}
		if err := b.grow(1); err != nil {
			return err
		}
		b.points = append(b.points, p)
		b.tags = append(b.tags, tagOn)
	}
	b.movable = movable
	return nil
}

// conicTo adds a quadratic Bézier piece.
func (b *border) conicTo(control, p vec.Vec2) error {
	err := b.grow(2)
	if err == nil {
		b.points = append(b.points, control, p)
		b.tags = append(b.tags, 0, tagOn)
	}
	b.movable = false
	return err
}

// cubicTo adds a cubic Bézier piece.
func (b *border) cubicTo(control1, control2, p vec.Vec2) error {
	err := b.grow(3)
	if err == nil {
		b.points = append(b.points, control1, control2, p)
		b.tags = append(b.tags, tagCubic, tagCubic, tagOn)
	}
	b.movable = false
	return err
}

// arcTo adds a circular arc around center, starting at angle start and
// turning by sweep.  The arc is split into pieces of at most a quarter turn,
// each approximated by a cubic Bézier curve.  The current point must already
// be the start of the arc.
func (b *border) arcTo(center vec.Vec2, radius, start, sweep float64) error {
	arcs := 1
	for math.Abs(sweep) > arcCubicAngle*float64(arcs) {
		arcs++
	}

	coef := math.Tan(sweep / float64(4*arcs))
	coef += coef / 3

	a0 := fromPolar(radius, start)
	a1 := vec.Vec2{X: -a0.Y * coef, Y: a0.X * coef}
	a0 = a0.Add(center)
	a1 = a1.Add(a0)

	for i := 1; i <= arcs; i++ {
		a3 := fromPolar(radius, start+float64(i)*sweep/float64(arcs))
		a2 := vec.Vec2{X: a3.Y * coef, Y: -a3.X * coef}
		a3 = a3.Add(center)
		a2 = a2.Add(a3)
		if err := b.cubicTo(a1, a2, a3); err != nil {
			return err
		}
		a1 = a3.Sub(a2).Add(a3)
	}
	return nil
}

// close finishes the open contour.
//
// Contours with fewer than two points are discarded.  Otherwise the last
// point takes the place of the first one, and if reverse is set, the order
// of the remaining points is reversed.
func (b *border) close(reverse bool) {
	start := b.start
	count := len(b.points)

	if start < 0 {
		// no open contour
	} else if count <= start+1 {
		b.points = b.points[:start]
		b.tags = b.tags[:start]
	} else {
		count--
		b.points[start] = b.points[count]
		b.points = b.points[:count]
		b.tags = b.tags[:count]

		if reverse {
			slices.Reverse(b.points[start+1 : count])
			slices.Reverse(b.tags[start+1 : count])
		}

		b.tags[start] |= tagBegin
		b.tags[count-1] |= tagEnd
	}

	b.start = -1
	b.movable = false
}

// counts checks that every point belongs to exactly one contour and returns
// the number of points and contours.
func (b *border) counts() (numPoints, numContours int, err error) {
	inContour := false
	for i, tag := range b.tags {
		if tag&tagBegin != 0 {
			if inContour {
				return 0, 0, fmt.Errorf("%w: nested contour at border point %d",
					ErrInvalidOutline, i)
			}
			inContour = true
		} else if !inContour {
			return 0, 0, fmt.Errorf("%w: border point %d is outside any contour",
				ErrInvalidOutline, i)
		}
		if tag&tagEnd != 0 {
			inContour = false
			numContours++
		}
	}
	if inContour {
		return 0, 0, fmt.Errorf("%w: unterminated contour in border", ErrInvalidOutline)
	}

	b.valid = true
	return len(b.points), numContours, nil
}

// export appends the points and contours of the border to o.
func (b *border) export(o *Outline) {
	base := len(o.Points)
	o.Points = append(o.Points, b.points...)
	for i, tag := range b.tags {
		switch {
		case tag&tagOn != 0:
			o.Tags = append(o.Tags, OnCurve)
		case tag&tagCubic != 0:
			o.Tags = append(o.Tags, CubicControl)
		default:
			o.Tags = append(o.Tags, QuadControl)
		}
		if tag&tagEnd != 0 {
			o.Contours = append(o.Contours, base+i)
			o.Open = append(o.Open, false)
		}
	}
}
