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
	"errors"
	"image"
	"math"
	"reflect"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// polyline returns an outline with a single contour through the given
// on-curve points.
func polyline(open bool, pts ...vec.Vec2) *Outline {
	o := &Outline{
		Points:   pts,
		Tags:     make([]PointTag, len(pts)),
		Contours: []int{len(pts) - 1},
		Open:     []bool{open},
	}
	return o
}

func square(x, y, size float64) *Outline {
	return polyline(false,
		vec.Vec2{X: x, Y: y},
		vec.Vec2{X: x + size, Y: y},
		vec.Vec2{X: x + size, Y: y + size},
		vec.Vec2{X: x, Y: y + size})
}

// contour returns the points of contour i.
func contour(o *Outline, i int) []vec.Vec2 {
	first := 0
	if i > 0 {
		first = o.Contours[i-1] + 1
	}
	return o.Points[first : o.Contours[i]+1]
}

func bboxOf(pts []vec.Vec2) rect.Rect {
	return (&Outline{Points: pts}).BBox()
}

func rectClose(a, b rect.Rect) bool {
	const eps = 1e-9
	return math.Abs(a.LLx-b.LLx) < eps && math.Abs(a.LLy-b.LLy) < eps &&
		math.Abs(a.URx-b.URx) < eps && math.Abs(a.URy-b.URy) < eps
}

// coverage rasterizes o and returns the painted area.
func coverage(t *testing.T, o *Outline, width, height int) float64 {
	t.Helper()
	z := vector.NewRasterizer(width, height)
	if err := o.Rasterize(z); err != nil {
		t.Fatal(err)
	}
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	total := 0
	for _, c := range dst.Pix {
		total += int(c)
	}
	return float64(total) / 255
}

func mustStroke(t *testing.T, o *Outline, style Style) *Outline {
	t.Helper()
	res, err := Stroke(o, style)
	if err != nil {
		t.Fatal(err)
	}
	if err := res.Check(); err != nil {
		t.Fatalf("invalid stroke outline: %v", err)
	}
	return res
}

func TestSquareMiter(t *testing.T) {
	s := NewStroker()
	s.Set(1, graphics.LineCapButt, JoinMiter, 10)
	if err := s.ParseOutline(square(0, 0, 10)); err != nil {
		t.Fatal(err)
	}

	numPoints, numContours, err := s.GetCounts()
	if err != nil {
		t.Fatal(err)
	}
	if numPoints != 8 || numContours != 2 {
		t.Fatalf("got %d points in %d contours, want 8 in 2", numPoints, numContours)
	}

	o := &Outline{}
	if err := s.Export(o); err != nil {
		t.Fatal(err)
	}

	inner := bboxOf(contour(o, 0))
	outer := bboxOf(contour(o, 1))
	if !rectClose(inner, rect.Rect{LLx: 1, LLy: 1, URx: 9, URy: 9}) {
		t.Errorf("inner contour has bbox %v", inner)
	}
	if !rectClose(outer, rect.Rect{LLx: -1, LLy: -1, URx: 11, URy: 11}) {
		t.Errorf("outer contour has bbox %v", outer)
	}
	if !rectClose(o.BBox(), outer) {
		t.Errorf("outline has bbox %v", o.BBox())
	}
}

func TestSquareBevel(t *testing.T) {
	o := mustStroke(t, square(0, 0, 10), Style{Width: 2, Join: JoinBevel, MiterLimit: 10})
	if len(o.Contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(o.Contours))
	}
	if n := len(contour(o, 0)); n != 4 {
		t.Errorf("inner contour has %d points, want 4", n)
	}
	if n := len(contour(o, 1)); n != 8 {
		t.Errorf("outer contour has %d points, want 8", n)
	}
}

func TestClosedContourOrientation(t *testing.T) {
	// the two contours of a closed subpath have opposite orientation
	for _, join := range []LineJoin{JoinMiter, JoinBevel, JoinRound} {
		o := mustStroke(t, square(0, 0, 10), Style{Width: 2, Join: join, MiterLimit: 10})
		a0 := signedArea(contour(o, 0))
		a1 := signedArea(contour(o, 1))
		if a0*a1 >= 0 {
			t.Errorf("%s: contour areas %g and %g", join, a0, a1)
		}
	}
}

// signedArea computes the area of the polygon through the given points,
// ignoring the curve geometry.
func signedArea(pts []vec.Vec2) float64 {
	area := 0.0
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

func TestOpenSubPathContours(t *testing.T) {
	s := NewStroker()
	s.BeginSubPath(vec.Vec2{X: 0, Y: 0}, true)
	s.LineTo(vec.Vec2{X: 10, Y: 0})
	s.LineTo(vec.Vec2{X: 10, Y: 10})
	if err := s.EndSubPath(); err != nil {
		t.Fatal(err)
	}

	_, right, err := s.GetBorderCounts(BorderRight)
	if err != nil {
		t.Fatal(err)
	}
	_, left, err := s.GetBorderCounts(BorderLeft)
	if err != nil {
		t.Fatal(err)
	}
	if right != 1 || left != 0 {
		t.Errorf("got %d right and %d left contours, want 1 and 0", right, left)
	}
}

func TestButtLinePolygon(t *testing.T) {
	o := mustStroke(t, polyline(true, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}),
		Style{Width: 2, Cap: graphics.LineCapButt})
	if len(o.Contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(o.Contours))
	}
	if a := math.Abs(signedArea(o.Points)); math.Abs(a-20) > 1e-9 {
		t.Errorf("area = %g, want 20", a)
	}
	if !rectClose(o.BBox(), rect.Rect{LLx: 0, LLy: -1, URx: 10, URy: 1}) {
		t.Errorf("bbox = %v", o.BBox())
	}
}

func TestSquareCapBBox(t *testing.T) {
	o := mustStroke(t, polyline(true, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}),
		Style{Width: 2, Cap: graphics.LineCapSquare})
	if !rectClose(o.BBox(), rect.Rect{LLx: -1, LLy: -1, URx: 11, URy: 1}) {
		t.Errorf("bbox = %v", o.BBox())
	}
}

func TestMiterLimitFallback(t *testing.T) {
	// The arms enclose about 30°, so the miter length is about 3.88 times
	// the stroke radius.
	corner := polyline(true,
		vec.Vec2{X: -8, Y: 30},
		vec.Vec2{X: 0, Y: 0},
		vec.Vec2{X: 8, Y: 30})
	miterRatio := math.Hypot(8, 30) / 8

	miter := mustStroke(t, corner, Style{Width: 2, Join: JoinMiter, MiterLimit: 2})
	bevel := mustStroke(t, corner, Style{Width: 2, Join: JoinBevel, MiterLimit: 2})
	if !reflect.DeepEqual(miter, bevel) {
		t.Errorf("miter beyond limit differs from bevel:\n%v\n%v", miter, bevel)
	}

	// tip is the distance by which the stroke extends beyond the corner
	tip := func(o *Outline) float64 {
		res := math.Inf(-1)
		for _, p := range o.Points {
			res = max(res, -p.Y)
		}
		return res
	}

	full := mustStroke(t, corner, Style{Width: 2, Join: JoinMiter, MiterLimit: 5})
	if d := tip(full); math.Abs(d-miterRatio) > 1e-9 {
		t.Errorf("miter tip at %g, want %g", d, miterRatio)
	}
	if d := tip(bevel); d >= 1 {
		t.Errorf("bevel extends to %g", d)
	}

	clipped := mustStroke(t, corner, Style{Width: 2, Join: JoinMiterVariable, MiterLimit: 2})
	if d := tip(clipped); math.Abs(d-2) > 1e-9 {
		t.Errorf("clipped miter extends to %g, want 2", d)
	}
	// the first clip point replaces the end of the incoming offset line
	if len(clipped.Points) != len(bevel.Points) {
		t.Errorf("clipped miter has %d points, bevel has %d",
			len(clipped.Points), len(bevel.Points))
	}
}

func TestSetClampsMiterLimit(t *testing.T) {
	s := NewStroker()
	s.Set(2, graphics.LineCapRound, JoinRound, 0.25)
	if s.miterLimit != 1 {
		t.Errorf("miter limit = %g, want 1", s.miterLimit)
	}
	if s.radius != 2 || s.lineCap != graphics.LineCapRound || s.lineJoin != JoinRound {
		t.Errorf("wrong parameters %g %v %v", s.radius, s.lineCap, s.lineJoin)
	}
}

func TestLoneMoveTo(t *testing.T) {
	s := NewStroker()
	s.BeginSubPath(vec.Vec2{X: 5, Y: 5}, true)
	if err := s.EndSubPath(); err != nil {
		t.Fatal(err)
	}
	s.BeginSubPath(vec.Vec2{X: 7, Y: 5}, false)
	if err := s.EndSubPath(); err != nil {
		t.Fatal(err)
	}

	numPoints, numContours, err := s.GetCounts()
	if err != nil {
		t.Fatal(err)
	}
	if numPoints != 0 || numContours != 0 {
		t.Errorf("got %d points in %d contours", numPoints, numContours)
	}

	// single point contours in an outline are skipped
	o := &Outline{
		Points:   []vec.Vec2{{X: 5, Y: 5}},
		Tags:     []PointTag{OnCurve},
		Contours: []int{0},
	}
	res := mustStroke(t, o, Style{Width: 4, Cap: graphics.LineCapRound, Join: JoinRound})
	if len(res.Points) != 0 || len(res.Contours) != 0 {
		t.Errorf("got %d points in %d contours", len(res.Points), len(res.Contours))
	}
}

func TestDuplicateLineTo(t *testing.T) {
	s := NewStroker()
	s.Set(1, graphics.LineCapButt, JoinMiter, 10)
	s.BeginSubPath(vec.Vec2{X: 0, Y: 0}, true)
	s.LineTo(vec.Vec2{X: 10, Y: 0})
	n0, n1 := len(s.borders[0].points), len(s.borders[1].points)

	s.LineTo(vec.Vec2{X: 10, Y: 0})
	if len(s.borders[0].points) != n0 || len(s.borders[1].points) != n1 {
		t.Error("repeated point added geometry")
	}

	// a tiny collinear piece moves the end point instead of adding one
	s.LineTo(vec.Vec2{X: 10.01, Y: 0})
	if len(s.borders[0].points) != n0 || len(s.borders[1].points) != n1 {
		t.Error("tiny segment added geometry")
	}
	if err := s.EndSubPath(); err != nil {
		t.Fatal(err)
	}
}

func TestDegenerateCurve(t *testing.T) {
	s := NewStroker()
	s.Set(1, graphics.LineCapButt, JoinMiter, 10)
	s.BeginSubPath(vec.Vec2{X: 0, Y: 0}, true)
	s.LineTo(vec.Vec2{X: 10, Y: 0})
	n0, n1 := len(s.borders[0].points), len(s.borders[1].points)

	end := vec.Vec2{X: 10.01, Y: 0.01}
	if err := s.ConicTo(vec.Vec2{X: 10, Y: 0.01}, end); err != nil {
		t.Fatal(err)
	}
	if len(s.borders[0].points) != n0 || len(s.borders[1].points) != n1 {
		t.Error("degenerate conic added geometry")
	}
	if s.center != end {
		t.Errorf("center = %v, want %v", s.center, end)
	}

	end = vec.Vec2{X: 10.02, Y: 0}
	if err := s.CubicTo(vec.Vec2{X: 10, Y: 0.02}, vec.Vec2{X: 10.03, Y: 0}, end); err != nil {
		t.Fatal(err)
	}
	if len(s.borders[0].points) != n0 || len(s.borders[1].points) != n1 {
		t.Error("degenerate cubic added geometry")
	}
	if s.center != end {
		t.Errorf("center = %v, want %v", s.center, end)
	}
}

func TestCurveOffset(t *testing.T) {
	// A quarter circle of radius 10, stroked with radius 1, gives offset
	// curves close to the circles of radius 9 and 11.
	const k = 0.5522847498307936 * 10
	o := &Outline{
		Points: []vec.Vec2{
			{X: 10, Y: 0}, {X: 10, Y: k}, {X: k, Y: 10}, {X: 0, Y: 10},
		},
		Tags:     []PointTag{OnCurve, CubicControl, CubicControl, OnCurve},
		Contours: []int{3},
		Open:     []bool{true},
	}
	res := mustStroke(t, o, Style{Width: 2, Cap: graphics.LineCapButt, Join: JoinRound})

	for i, p := range res.Points {
		if res.Tags[i] != OnCurve {
			continue
		}
		r := p.Length()
		if math.Abs(r-9) > 0.01 && math.Abs(r-11) > 0.01 {
			t.Errorf("point %d at distance %g from the center", i, r)
		}
	}
}

func TestExportIdempotent(t *testing.T) {
	in := &Outline{
		Points: []vec.Vec2{
			{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 30, Y: 10}, {X: 20, Y: 20},
			{X: 40, Y: 40}, {X: 50, Y: 30}, {X: 60, Y: 40}, {X: 50, Y: 50},
		},
		Tags: []PointTag{
			OnCurve, OnCurve, QuadControl, OnCurve,
			OnCurve, CubicControl, CubicControl, OnCurve,
		},
		Contours: []int{3, 7},
		Open:     []bool{false, true},
	}

	s := NewStroker()
	s.Set(3, graphics.LineCapSquare, JoinMiter, 4)
	if err := s.ParseOutline(in); err != nil {
		t.Fatal(err)
	}

	all := &Outline{}
	if err := s.Export(all); err != nil {
		t.Fatal(err)
	}
	numPoints, numContours, err := s.GetCounts()
	if err != nil {
		t.Fatal(err)
	}
	if len(all.Points) != numPoints || len(all.Contours) != numContours {
		t.Errorf("exported %d points in %d contours, counted %d in %d",
			len(all.Points), len(all.Contours), numPoints, numContours)
	}

	perSide := &Outline{}
	totalPoints, totalContours := 0, 0
	for _, side := range []BorderSide{BorderRight, BorderLeft} {
		p, c, err := s.GetBorderCounts(side)
		if err != nil {
			t.Fatal(err)
		}
		totalPoints += p
		totalContours += c
		if err := s.ExportBorder(side, perSide); err != nil {
			t.Fatal(err)
		}
	}
	if totalPoints != numPoints || totalContours != numContours {
		t.Errorf("per side counts %d/%d, total %d/%d",
			totalPoints, totalContours, numPoints, numContours)
	}
	if !reflect.DeepEqual(all, perSide) {
		t.Error("exports differ")
	}

	again := &Outline{}
	if err := s.Export(again); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(all, again) {
		t.Error("second export differs")
	}
}

func TestInvalidBorderSide(t *testing.T) {
	s := NewStroker()
	if _, _, err := s.GetBorderCounts(2); !errors.Is(err, ErrInvalidSide) {
		t.Errorf("got %v, want ErrInvalidSide", err)
	}
	if err := s.ExportBorder(-1, &Outline{}); !errors.Is(err, ErrInvalidSide) {
		t.Errorf("got %v, want ErrInvalidSide", err)
	}
}

func TestTooManyPoints(t *testing.T) {
	s := NewStroker()
	s.MaxPoints = 5
	s.Set(2, graphics.LineCapRound, JoinRound, 10)
	err := s.ParseOutline(square(0, 0, 20))
	if !errors.Is(err, ErrTooManyPoints) {
		t.Errorf("got %v, want ErrTooManyPoints", err)
	}

	// without the limit, the stroker can be reused
	s.MaxPoints = 0
	if err := s.ParseOutline(square(0, 0, 20)); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.GetCounts(); err != nil {
		t.Error(err)
	}
}

func TestMaxPointsAfterUnlimitedUse(t *testing.T) {
	circle := makeCircle(50, 50, 40)

	s := NewStroker()
	s.Set(1, graphics.LineCapButt, JoinRound, 10)
	if err := s.ParseOutline(circle); err != nil {
		t.Fatal(err)
	}
	numPoints, _, err := s.GetBorderCounts(BorderRight)
	if err != nil {
		t.Fatal(err)
	}
	if numPoints <= 5 {
		t.Fatalf("only %d points in the right border", numPoints)
	}

	// the borders keep their capacity, but the limit must still apply
	s.MaxPoints = 5
	s.Rewind()
	err = s.ParseOutline(circle)
	if !errors.Is(err, ErrTooManyPoints) {
		t.Errorf("got %v, want ErrTooManyPoints", err)
	}
	for side, b := range s.borders {
		if len(b.points) > 5 {
			t.Errorf("border %d has %d points", side, len(b.points))
		}
	}
}

func TestRewind(t *testing.T) {
	s := NewStroker()
	s.Set(2, graphics.LineCapRound, JoinRound, 10)

	first := &Outline{}
	second := &Outline{}
	for _, o := range []*Outline{first, second} {
		if err := s.ParseOutline(square(5, 5, 20)); err != nil {
			t.Fatal(err)
		}
		if err := s.Export(o); err != nil {
			t.Fatal(err)
		}
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("stroking twice gives different results")
	}

	s.Rewind()
	numPoints, numContours, err := s.GetCounts()
	if err != nil || numPoints != 0 || numContours != 0 {
		t.Errorf("after rewind: %d points, %d contours, %v", numPoints, numContours, err)
	}
}

func TestStrokeArea(t *testing.T) {
	line := polyline(true, vec.Vec2{X: 12, Y: 32}, vec.Vec2{X: 52, Y: 32})
	sq := square(17, 17, 30)
	const k = 0.5522847498307936 * 20
	circle := &Outline{
		Points: []vec.Vec2{
			{X: 52, Y: 32},
			{X: 52, Y: 32 + k}, {X: 32 + k, Y: 52}, {X: 32, Y: 52},
			{X: 32 - k, Y: 52}, {X: 12, Y: 32 + k}, {X: 12, Y: 32},
			{X: 12, Y: 32 - k}, {X: 32 - k, Y: 12}, {X: 32, Y: 12},
			{X: 32 + k, Y: 12}, {X: 52, Y: 32 - k},
		},
		Tags: []PointTag{
			OnCurve,
			CubicControl, CubicControl, OnCurve,
			CubicControl, CubicControl, OnCurve,
			CubicControl, CubicControl, OnCurve,
			CubicControl, CubicControl,
		},
		Contours: []int{11},
	}

	cases := []struct {
		name  string
		in    *Outline
		style Style
		area  float64
	}{
		{"butt", line, Style{Width: 8, Cap: graphics.LineCapButt}, 40 * 8},
		{"square", line, Style{Width: 8, Cap: graphics.LineCapSquare}, 48 * 8},
		{"round", line, Style{Width: 8, Cap: graphics.LineCapRound}, 40*8 + 16*math.Pi},
		{"miter", sq, Style{Width: 6, Join: JoinMiter, MiterLimit: 10}, 36*36 - 24*24},
		{"bevel", sq, Style{Width: 6, Join: JoinBevel}, 36*36 - 24*24 - 4*4.5},
		{"round join", sq, Style{Width: 6, Join: JoinRound}, 36*36 - 24*24 - 4*(9-9*math.Pi/4)},
		{"miter limit", sq, Style{Width: 6, Join: JoinMiter, MiterLimit: 1.2}, 36*36 - 24*24 - 4*4.5},
		{"circle", circle, Style{Width: 4, Join: JoinRound}, math.Pi * (22*22 - 18*18)},
		{"circle miter", circle, Style{Width: 4, Join: JoinMiter, MiterLimit: 10}, math.Pi * (22*22 - 18*18)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := mustStroke(t, c.in, c.style)
			area := coverage(t, o, 64, 64)
			if math.Abs(area-c.area) > 0.01*c.area {
				t.Errorf("area = %g, want %g", area, c.area)
			}
		})
	}
}

func TestWideStrokes(t *testing.T) {
	// A wide stroke around a sharp bend must give a valid outline which
	// covers the curve, for all join styles.
	in := &Outline{
		Points:   []vec.Vec2{{X: 12, Y: 48}, {X: 32, Y: 8}, {X: 52, Y: 48}},
		Tags:     []PointTag{OnCurve, QuadControl, OnCurve},
		Contours: []int{2},
		Open:     []bool{true},
	}
	for _, join := range []LineJoin{JoinMiter, JoinBevel, JoinRound} {
		o := mustStroke(t, in, Style{Width: 20, Cap: graphics.LineCapButt, Join: join, MiterLimit: 10})
		if len(o.Contours) != 1 {
			t.Errorf("%s: got %d contours, want 1", join, len(o.Contours))
		}
		area := coverage(t, o, 64, 64)
		if area < 500 || area > 64*64 {
			t.Errorf("%s: implausible area %g", join, area)
		}
	}
}

func TestWideStrokeCorrection(t *testing.T) {
	// A tight cubic turn, stroked much wider than its radius of curvature.
	strokeCubic := func(correct bool) int {
		s := NewStroker()
		s.Set(10, graphics.LineCapButt, JoinMiter, 4)
		if err := s.BeginSubPath(vec.Vec2{X: 0, Y: 0}, true); err != nil {
			t.Fatal(err)
		}
		if !s.handleWideStrokes {
			t.Fatal("wide stroke handling not enabled for miter joins")
		}
		s.handleWideStrokes = correct
		err := s.CubicTo(vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 2}, vec.Vec2{X: 0, Y: 2})
		if err != nil {
			t.Fatal(err)
		}
		if err := s.EndSubPath(); err != nil {
			t.Fatal(err)
		}
		numPoints, numContours, err := s.GetCounts()
		if err != nil {
			t.Fatal(err)
		}
		if numContours != 1 {
			t.Errorf("got %d contours, want 1", numContours)
		}
		return numPoints
	}

	with := strokeCubic(true)
	without := strokeCubic(false)
	if with <= without {
		t.Errorf("correction added no loops: %d points with, %d without", with, without)
	}
}

func TestWideStrokeLoop(t *testing.T) {
	// The offset piece from start to end runs against the original piece
	// from (0,0) to (10,0).  The line from start towards (0,0) meets the
	// line from end towards (10,0) at (30/7, 20/7).
	pieceStart := vec.Vec2{X: 0, Y: 0}
	pieceEnd := vec.Vec2{X: 10, Y: 0}
	start := vec.Vec2{X: 6, Y: 4}
	end := vec.Vec2{X: 2, Y: 4}

	loop, ok := wideStrokeLoop(0, start, end, pieceStart, pieceEnd)
	if !ok {
		t.Fatal("reversed offset piece not detected")
	}
	want := vec.Vec2{X: 30.0 / 7, Y: 20.0 / 7}
	if loop.Sub(want).Length() > 1e-9 {
		t.Errorf("loop point %v, want %v", loop, want)
	}

	// an offset piece running in the same direction needs no loop
	_, ok = wideStrokeLoop(0, end, start, pieceStart, pieceEnd)
	if ok {
		t.Error("forward offset piece treated as reversed")
	}
}

func TestJoinFromPDF(t *testing.T) {
	cases := []struct {
		in   graphics.LineJoinStyle
		want LineJoin
	}{
		{graphics.LineJoinMiter, JoinMiter},
		{graphics.LineJoinRound, JoinRound},
		{graphics.LineJoinBevel, JoinBevel},
	}
	for _, c := range cases {
		if got := JoinFromPDF(c.in); got != c.want {
			t.Errorf("JoinFromPDF(%v) = %v, want %v", c.in, got, c.want)
		}
	}
	if s := JoinMiterVariable.String(); s != "miter-variable" {
		t.Errorf("JoinMiterVariable.String() = %q", s)
	}
}
