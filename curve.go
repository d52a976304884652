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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Maximal turn of the tangent within one offset piece.
const (
	smallConicThreshold = anglePi / 6
	smallCubicThreshold = anglePi / 8
)

// Sizes of the subdivision stacks.  A piece is accepted without further
// tests once its index in the stack reaches the limit, which bounds the
// recursion depth.
const (
	conicStackSize  = 34
	conicStackLimit = 30
	cubicStackSize  = 37
	cubicStackLimit = 32
)

// conicSplit halves the quadratic Bézier base[0:3] in place.
// The pieces are stored in reverse order: base[2:5] is the first half,
// base[0:3] the second half.
func conicSplit(base []vec.Vec2) {
	_ = base[4]

	base[4] = base[2]
	a := base[0].Add(base[1])
	b := base[1].Add(base[2])
	base[3] = b.Mul(0.5)
	base[2] = a.Add(b).Mul(0.25)
	base[1] = a.Mul(0.5)
}

// conicIsSmallEnough checks whether the quadratic base[0:3] (end point first)
// turns by less than smallConicThreshold.  The in and out arguments supply
// the angles to use when the piece has degenerated to a point; the updated
// entry and exit angles are returned.
func conicIsSmallEnough(base []vec.Vec2, in, out float64) (float64, float64, bool) {
	d1 := base[1].Sub(base[2])
	d2 := base[0].Sub(base[1])
	close1 := isSmall(d1)
	close2 := isSmall(d2)

	switch {
	case close1 && close2:
		// keep the previous angles
	case close1:
		in = atan2(d2)
		out = in
	case close2:
		in = atan2(d1)
		out = in
	default:
		in = atan2(d1)
		out = atan2(d2)
	}

	theta := math.Abs(angleDiff(in, out))
	return in, out, theta < smallConicThreshold
}

// cubicSplit halves the cubic Bézier base[0:4] in place.
// The pieces are stored in reverse order: base[3:7] is the first half,
// base[0:4] the second half.
func cubicSplit(base []vec.Vec2) {
	_ = base[6]

	base[6] = base[3]
	a := base[0].Add(base[1])
	b := base[1].Add(base[2])
	c := base[2].Add(base[3])
	base[5] = c.Mul(0.5)
	c = c.Add(b)
	base[4] = c.Mul(0.25)
	base[1] = a.Mul(0.5)
	a = a.Add(b)
	base[2] = a.Mul(0.25)
	base[3] = a.Add(c).Mul(0.125)
}

// cubicIsSmallEnough checks whether the cubic base[0:4] (end point first)
// turns by less than smallCubicThreshold between consecutive chords.
// The in, mid and out arguments supply the angles to use when the piece has
// degenerated to a point.
func cubicIsSmallEnough(base []vec.Vec2, in, mid, out float64) (float64, float64, float64, bool) {
	d1 := base[2].Sub(base[3])
	d2 := base[1].Sub(base[2])
	d3 := base[0].Sub(base[1])
	close1 := isSmall(d1)
	close2 := isSmall(d2)
	close3 := isSmall(d3)

	switch {
	case close1 && close2 && close3:
		// keep the previous angles
	case close1 && close2:
		in = atan2(d3)
		mid, out = in, in
	case close1 && close3:
		in = atan2(d2)
		mid, out = in, in
	case close1:
		in = atan2(d2)
		mid = in
		out = atan2(d3)
	case close2 && close3:
		in = atan2(d1)
		mid, out = in, in
	case close2:
		in = atan2(d1)
		out = atan2(d3)
		mid = angleMean(in, out)
	case close3:
		in = atan2(d1)
		mid = atan2(d2)
		out = mid
	default:
		in = atan2(d1)
		mid = atan2(d2)
		out = atan2(d3)
	}

	theta1 := math.Abs(angleDiff(in, mid))
	theta2 := math.Abs(angleDiff(mid, out))
	ok := theta1 < smallCubicThreshold && theta2 < smallCubicThreshold
	return in, mid, out, ok
}
