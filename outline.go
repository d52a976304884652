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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// PointTag classifies the points of an Outline.
type PointTag uint8

const (
	// OnCurve marks a point which lies on the path.
	OnCurve PointTag = iota

	// QuadControl marks the control point of a quadratic Bézier segment.
	// Two consecutive quadratic control points imply an on-curve point
	// half-way between them.
	QuadControl

	// CubicControl marks one of the two control points of a cubic Bézier
	// segment.
	CubicControl
)

func (t PointTag) String() string {
	switch t {
	case OnCurve:
		return "on"
	case QuadControl:
		return "quad"
	case CubicControl:
		return "cubic"
	default:
		return fmt.Sprintf("PointTag(%d)", uint8(t))
	}
}

// Outline is a path in the flat representation used for font glyphs.
//
// Contour i consists of the points from Contours[i-1]+1 to Contours[i]
// (inclusive), where the first contour starts at index 0.
type Outline struct {
	Points []vec.Vec2
	Tags   []PointTag

	// Contours holds the index of the last point of each contour.
	Contours []int

	// Open indicates which contours are open.  If Open is nil, all contours
	// are closed.
	Open []bool
}

// IsOpen reports whether contour i is open.
func (o *Outline) IsOpen(i int) bool {
	return i < len(o.Open) && o.Open[i]
}

// Check verifies the structure of the outline.
// The empty outline is valid.
func (o *Outline) Check() error {
	if len(o.Tags) != len(o.Points) {
		return fmt.Errorf("%w: %d points but %d tags",
			ErrInvalidOutline, len(o.Points), len(o.Tags))
	}
	if o.Open != nil && len(o.Open) != len(o.Contours) {
		return fmt.Errorf("%w: %d contours but %d open flags",
			ErrInvalidOutline, len(o.Contours), len(o.Open))
	}
	if len(o.Points) == 0 && len(o.Contours) == 0 {
		return nil
	}
	if len(o.Points) == 0 || len(o.Contours) == 0 {
		return fmt.Errorf("%w: %d points in %d contours",
			ErrInvalidOutline, len(o.Points), len(o.Contours))
	}

	prev := -1
	for i, end := range o.Contours {
		if end <= prev || end >= len(o.Points) {
			return fmt.Errorf("%w: contour %d ends at invalid index %d",
				ErrInvalidOutline, i, end)
		}
		prev = end
	}
	if prev != len(o.Points)-1 {
		return fmt.Errorf("%w: %d points after the last contour",
			ErrInvalidOutline, len(o.Points)-1-prev)
	}

	for i, tag := range o.Tags {
		if tag > CubicControl {
			return fmt.Errorf("%w: point %d has invalid tag %d",
				ErrInvalidOutline, i, tag)
		}
	}
	return nil
}

// BBox returns the bounding box of all points, including control points.
// The result contains the path, but may be larger than its exact bounding
// box.  The empty outline gives the zero rectangle.
func (o *Outline) BBox() rect.Rect {
	if len(o.Points) == 0 {
		return rect.Rect{}
	}
	bbox := rect.Rect{
		LLx: math.Inf(1),
		LLy: math.Inf(1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	for _, p := range o.Points {
		bbox.LLx = min(bbox.LLx, p.X)
		bbox.LLy = min(bbox.LLy, p.Y)
		bbox.URx = max(bbox.URx, p.X)
		bbox.URy = max(bbox.URy, p.Y)
	}
	return bbox
}

// Reset removes all contours, keeping the allocated memory.
func (o *Outline) Reset() {
	o.Points = o.Points[:0]
	o.Tags = o.Tags[:0]
	o.Contours = o.Contours[:0]
	if o.Open != nil {
		o.Open = o.Open[:0]
	}
}

// Clone returns a deep copy of the outline.
func (o *Outline) Clone() *Outline {
	return &Outline{
		Points:   slices.Clone(o.Points),
		Tags:     slices.Clone(o.Tags),
		Contours: slices.Clone(o.Contours),
		Open:     slices.Clone(o.Open),
	}
}

// Transform applies the affine transformation m to all points, in place.
func (o *Outline) Transform(m matrix.Matrix) {
	for i, p := range o.Points {
		o.Points[i].X, o.Points[i].Y = m.Apply(p.X, p.Y)
	}
}

// fillOpen makes Open explicit, so that contours can be appended.
func (o *Outline) fillOpen() {
	for len(o.Open) < len(o.Contours) {
		o.Open = append(o.Open, false)
	}
}
