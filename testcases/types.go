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

// Package testcases collects paths and stroke styles which are used to
// test the stroker, to generate reference images and to benchmark.
//
// This package does not depend on the stroker itself, so that the
// reference data can be generated independently.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   *path.Data    // the geometry to render, in user space
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // fill or stroke
	CTM    matrix.Matrix // user space to device space (zero-value means identity)
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// Fill fills the path using the nonzero winding rule.
type Fill struct{}

func (Fill) isOperation() {}

// Stroke strokes the path.
// Stroking is done in user space, so that the CTM also transforms the pen.
type Stroke struct {
	Width      float64                // line width (>0)
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // miter limit (>=1)
}

func (Stroke) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// butt, round and square are the stroke styles used by most test cases.
func butt(width float64, join graphics.LineJoinStyle) Stroke {
	return Stroke{Width: width, Cap: graphics.LineCapButt, Join: join, MiterLimit: 10}
}

func round(width float64) Stroke {
	return Stroke{Width: width, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound, MiterLimit: 10}
}

func square(width float64, join graphics.LineJoinStyle) Stroke {
	return Stroke{Width: width, Cap: graphics.LineCapSquare, Join: join, MiterLimit: 10}
}
