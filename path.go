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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FromPath converts a path into an outline.
//
// Subpaths ending in a ClosePath command become closed contours, all other
// subpaths become open contours.  A segment following a ClosePath starts a
// new subpath at the start point of the closed one.
func FromPath(p *path.Data) *Outline {
	o := &Outline{}

	inContour := false
	var start vec.Vec2
	endContour := func(open bool) {
		if inContour {
			o.Contours = append(o.Contours, len(o.Points)-1)
			o.Open = append(o.Open, open)
			inContour = false
		}
	}
	add := func(tag PointTag, pts ...vec.Vec2) {
		if !inContour {
			o.Points = append(o.Points, start)
			o.Tags = append(o.Tags, OnCurve)
			inContour = true
		}
		for _, pt := range pts {
			o.Points = append(o.Points, pt)
			o.Tags = append(o.Tags, tag)
		}
		o.Tags[len(o.Tags)-1] = OnCurve
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			endContour(true)
			start = p.Coords[coordIdx]
			o.Points = append(o.Points, start)
			o.Tags = append(o.Tags, OnCurve)
			inContour = true
			coordIdx++
		case path.CmdLineTo:
			add(OnCurve, p.Coords[coordIdx])
			coordIdx++
		case path.CmdQuadTo:
			add(QuadControl, p.Coords[coordIdx:coordIdx+2]...)
			coordIdx += 2
		case path.CmdCubeTo:
			add(CubicControl, p.Coords[coordIdx:coordIdx+3]...)
			coordIdx += 3
		case path.CmdClose:
			endContour(false)
		}
	}
	endContour(true)

	return o
}

// ToPath converts the outline into a path.
// Contours with fewer than two points are omitted.
// Malformed outlines give an error wrapping ErrInvalidOutline.
func (o *Outline) ToPath() (*path.Data, error) {
	b := &pathBuilder{p: &path.Data{}}
	if err := o.Decompose(b); err != nil {
		return nil, err
	}
	return b.p, nil
}

// pathBuilder is a Sink which records the segments as a path.
type pathBuilder struct {
	p    *path.Data
	open bool
}

func (b *pathBuilder) BeginSubPath(p vec.Vec2, open bool) error {
	b.p.MoveTo(p)
	b.open = open
	return nil
}

func (b *pathBuilder) LineTo(p vec.Vec2) error {
	b.p.LineTo(p)
	return nil
}

func (b *pathBuilder) ConicTo(control, p vec.Vec2) error {
	b.p.QuadTo(control, p)
	return nil
}

func (b *pathBuilder) CubicTo(control1, control2, p vec.Vec2) error {
	b.p.CubeTo(control1, control2, p)
	return nil
}

func (b *pathBuilder) EndSubPath() error {
	if !b.open {
		b.p.Close()
	}
	return nil
}
