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
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"
)

// Rasterize adds all contours of the outline to z.
// Open contours are closed by a straight line, as for filling.
//
// The stroke outlines generated by this package must be rasterized with
// the nonzero winding rule, which is what [vector.Rasterizer] implements.
func (o *Outline) Rasterize(z *vector.Rasterizer) error {
	return o.Decompose(rasterSink{z})
}

type rasterSink struct {
	z *vector.Rasterizer
}

func (r rasterSink) BeginSubPath(p vec.Vec2, _ bool) error {
	r.z.MoveTo(float32(p.X), float32(p.Y))
	return nil
}

func (r rasterSink) LineTo(p vec.Vec2) error {
	r.z.LineTo(float32(p.X), float32(p.Y))
	return nil
}

func (r rasterSink) ConicTo(c, p vec.Vec2) error {
	r.z.QuadTo(float32(c.X), float32(c.Y), float32(p.X), float32(p.Y))
	return nil
}

func (r rasterSink) CubicTo(c1, c2, p vec.Vec2) error {
	r.z.CubeTo(float32(c1.X), float32(c1.Y),
		float32(c2.X), float32(c2.Y),
		float32(p.X), float32(p.Y))
	return nil
}

func (r rasterSink) EndSubPath() error {
	r.z.ClosePath()
	return nil
}
