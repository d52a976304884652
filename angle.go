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

// Angles are measured in radians, counter-clockwise from the positive x-axis.
const (
	anglePi  = math.Pi
	anglePi2 = math.Pi / 2
	angle2Pi = 2 * math.Pi
)

// halfTurnEpsilon is the tolerance used where the stroker needs to recognise
// an exact half turn (or a quarter turn for half angles).  Without it, float
// rounding could flip the direction of a 180° arc.
const halfTurnEpsilon = 1e-9

// smallDistance is the size below which a coordinate difference is treated
// as zero.  This corresponds to two units in 26.6 fixed point.
const smallDistance = 1.0 / 32

// angleDiff returns the signed turn from a1 to a2, normalized to (-π, π].
// A half turn is always reported as +π.
func angleDiff(a1, a2 float64) float64 {
	delta := math.Mod(a2-a1, angle2Pi)
	if delta <= -anglePi {
		delta += angle2Pi
	} else if delta > anglePi {
		delta -= angle2Pi
	}
	return delta
}

// angleMean returns the angle halfway along the shortest turn from a1 to a2.
func angleMean(a1, a2 float64) float64 {
	return a1 + angleDiff(a1, a2)/2
}

// isHalfTurn reports whether the turn angle is ±π, up to rounding.
func isHalfTurn(turn float64) bool {
	return math.Abs(math.Abs(turn)-anglePi) < halfTurnEpsilon
}

// isQuarterTurn reports whether the angle is ±π/2, up to rounding.
func isQuarterTurn(theta float64) bool {
	return math.Abs(math.Abs(theta)-anglePi2) < halfTurnEpsilon
}

// atan2 returns the direction of v.  The zero vector has direction 0.
func atan2(v vec.Vec2) float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return math.Atan2(v.Y, v.X)
}

// fromPolar returns the vector with the given length and direction.
func fromPolar(length, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle)
	return vec.Vec2{X: length * cos, Y: length * sin}
}

// unit returns the unit vector pointing in the given direction.
func unit(angle float64) vec.Vec2 {
	return fromPolar(1, angle)
}

// mulDiv computes a*b/c.  Division by zero yields 0.
func mulDiv(a, b, c float64) float64 {
	if c == 0 {
		return 0
	}
	return a * b / c
}

// isSmall reports whether both components of v are below smallDistance.
func isSmall(v vec.Vec2) bool {
	return v.X > -smallDistance && v.X < smallDistance &&
		v.Y > -smallDistance && v.Y < smallDistance
}

// sideToRotate gives the rotation from the direction of travel to the
// offset direction of the given border: +π/2 for border 0, -π/2 for border 1.
func sideToRotate(side int) float64 {
	return anglePi2 - float64(side)*anglePi
}
