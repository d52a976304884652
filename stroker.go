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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var (
	// ErrInvalidOutline indicates a malformed input outline, or a border
	// whose contours are not properly terminated.
	ErrInvalidOutline = errors.New("stroke: invalid outline")

	// ErrInvalidSide indicates a BorderSide other than BorderRight and
	// BorderLeft.
	ErrInvalidSide = errors.New("stroke: invalid border side")

	// ErrTooManyPoints indicates that a border would have grown beyond
	// Stroker.MaxPoints.
	ErrTooManyPoints = errors.New("stroke: too many points")
)

// BorderSide selects one of the two borders of a stroke.
// In a y-down coordinate system, the right border lies to the right of the
// direction of travel.
type BorderSide int

const (
	BorderRight BorderSide = 0
	BorderLeft  BorderSide = 1
)

// maxInsideTheta is the largest half turn for which the inner border is
// computed as the intersection of the two offset lines (89.6°).
const maxInsideTheta = 89.609375 * math.Pi / 180

// minVariableMiterTheta is the smallest half turn for which a variable
// miter join is clipped.
const minVariableMiterTheta = 57.0 / 65536 * math.Pi / 180

// Stroker converts paths into the outlines of their strokes.
//
// A Stroker is created once and can be reused for many paths.  The
// internal buffers grow as needed but are never shrunk, so that steady-state
// use does not allocate.  A Stroker must not be used concurrently from
// several goroutines.
type Stroker struct {
	// MaxPoints limits the number of points in each border.
	// Zero means no limit.
	MaxPoints int

	radius     float64
	lineCap    graphics.LineCapStyle
	lineJoin   LineJoin
	savedJoin  LineJoin
	miterLimit float64

	angleIn    float64 // direction of the previous segment
	angleOut   float64 // direction of the next segment
	center     vec.Vec2
	lineLength float64 // length of the most recent straight segment

	firstPoint        bool
	subpathOpen       bool
	subpathAngle      float64
	subpathStart      vec.Vec2
	subpathLineLength float64
	handleWideStrokes bool

	borders [2]border

	// bezStack holds the pieces of the curve currently being subdivided.
	bezStack [cubicStackSize]vec.Vec2
}

// NewStroker allocates a new Stroker with radius 0.5 (line width 1),
// butt caps, miter joins and miter limit 10.
func NewStroker() *Stroker {
	s := &Stroker{}
	s.borders[0].init()
	s.borders[1].init()
	s.Set(0.5, graphics.LineCapButt, JoinMiter, defaultMiterLimit)
	return s
}

// Set sets the stroke parameters and rewinds the stroker.
// The radius is half the line width.  Miter limits below 1 are raised to 1.
func (s *Stroker) Set(radius float64, lineCap graphics.LineCapStyle, lineJoin LineJoin, miterLimit float64) {
	s.radius = radius
	s.lineCap = lineCap
	s.lineJoin = lineJoin
	s.savedJoin = lineJoin
	s.miterLimit = max(miterLimit, 1)
	s.Rewind()
}

// SetStyle sets the stroke parameters from a Style and rewinds the stroker.
func (s *Stroker) SetStyle(style Style) {
	s.Set(style.Width/2, style.Cap, style.Join, style.MiterLimit)
}

// Rewind discards all generated geometry, keeping the stroke parameters
// and the allocated memory.
func (s *Stroker) Rewind() {
	for i := range s.borders {
		s.borders[i].reset()
		s.borders[i].maxPoints = s.MaxPoints
	}
}

// BeginSubPath starts a new subpath at p.
// If open is false, the subpath is closed by EndSubPath.
func (s *Stroker) BeginSubPath(p vec.Vec2, open bool) error {
	s.firstPoint = true
	s.center = p
	s.subpathOpen = open

	// Round joins, and caps other than butt caps, hide the artifacts of
	// offset curves doubling back.
	s.handleWideStrokes = s.lineJoin != JoinRound ||
		(s.subpathOpen && s.lineCap == graphics.LineCapButt)

	s.subpathStart = p
	s.angleIn = 0
	for i := range s.borders {
		s.borders[i].maxPoints = s.MaxPoints
	}
	return nil
}

// LineTo adds a straight segment from the current point to p.
// Zero-length segments are ignored.
func (s *Stroker) LineTo(p vec.Vec2) error {
	delta := p.Sub(s.center)
	if delta.X == 0 && delta.Y == 0 {
		return nil
	}

	lineLength := delta.Length()
	angle := atan2(delta)
	delta = fromPolar(s.radius, angle+anglePi2)

	if s.firstPoint {
		if err := s.startSubPath(angle, lineLength); err != nil {
			return err
		}
	} else {
		s.angleOut = angle
		if err := s.processCorner(lineLength); err != nil {
			return err
		}
	}

	for side := range s.borders {
		b := &s.borders[side]
		if err := b.lineTo(p.Add(delta), true); err != nil {
			return err
		}
		delta = delta.Mul(-1)
	}

	s.angleIn = angle
	s.center = p
	s.lineLength = lineLength
	return nil
}

// ConicTo adds a quadratic Bézier segment with the given control point,
// ending at p.  Segments where all points coincide only move the current
// point.
func (s *Stroker) ConicTo(control, p vec.Vec2) error {
	if isSmall(s.center.Sub(control)) && isSmall(control.Sub(p)) {
		s.center = p
		return nil
	}

	stack := &s.bezStack
	stack[0] = p
	stack[1] = control
	stack[2] = s.center

	firstArc := true
	arc := 0
	for arc >= 0 {
		base := stack[arc:]
		angleIn, angleOut := s.angleIn, s.angleIn

		if arc < conicStackLimit {
			var small bool
			angleIn, angleOut, small = conicIsSmallEnough(base, angleIn, angleOut)
			if !small {
				if s.firstPoint {
					s.angleIn = angleIn
				}
				conicSplit(base)
				arc += 2
				continue
			}
		}

		if err := s.curveCorner(&firstArc, angleIn, base[2], smallConicThreshold); err != nil {
			return err
		}

		theta := angleDiff(angleIn, angleOut) / 2
		phi := angleIn + theta
		length := s.radius / math.Cos(theta)

		var alpha0 float64
		if s.handleWideStrokes {
			alpha0 = atan2(base[0].Sub(base[2]))
		}

		for side := range s.borders {
			b := &s.borders[side]
			rotate := sideToRotate(side)

			ctrl := fromPolar(length, phi+rotate).Add(base[1])
			end := fromPolar(s.radius, angleOut+rotate).Add(base[0])

			if s.handleWideStrokes {
				start := b.lastPoint()
				if loop, ok := wideStrokeLoop(alpha0, start, end, base[2], base[0]); ok {
					err := s.insertLoop(b, loop, end, func() error {
						return b.conicTo(ctrl, start)
					})
					if err != nil {
						return err
					}
					continue
				}
			}

			if err := b.conicTo(ctrl, end); err != nil {
				return err
			}
		}

		arc -= 2
		s.angleIn = angleOut
	}

	s.center = p
	return nil
}

// CubicTo adds a cubic Bézier segment with the given control points,
// ending at p.  Segments where all points coincide only move the current
// point.
func (s *Stroker) CubicTo(control1, control2, p vec.Vec2) error {
	if isSmall(s.center.Sub(control1)) &&
		isSmall(control1.Sub(control2)) &&
		isSmall(control2.Sub(p)) {
		s.center = p
		return nil
	}

	stack := &s.bezStack
	stack[0] = p
	stack[1] = control2
	stack[2] = control1
	stack[3] = s.center

	firstArc := true
	arc := 0
	for arc >= 0 {
		base := stack[arc:]
		angleIn, angleMid, angleOut := s.angleIn, s.angleIn, s.angleIn

		if arc < cubicStackLimit {
			var small bool
			angleIn, angleMid, angleOut, small = cubicIsSmallEnough(base, angleIn, angleMid, angleOut)
			if !small {
				if s.firstPoint {
					s.angleIn = angleIn
				}
				cubicSplit(base)
				arc += 3
				continue
			}
		}

		if err := s.curveCorner(&firstArc, angleIn, base[3], smallCubicThreshold); err != nil {
			return err
		}

		theta1 := angleDiff(angleIn, angleMid) / 2
		theta2 := angleDiff(angleMid, angleOut) / 2
		phi1 := angleMean(angleIn, angleMid)
		phi2 := angleMean(angleMid, angleOut)
		length1 := s.radius / math.Cos(theta1)
		length2 := s.radius / math.Cos(theta2)

		var alpha0 float64
		if s.handleWideStrokes {
			alpha0 = atan2(base[0].Sub(base[3]))
		}

		for side := range s.borders {
			b := &s.borders[side]
			rotate := sideToRotate(side)

			ctrl1 := fromPolar(length1, phi1+rotate).Add(base[2])
			ctrl2 := fromPolar(length2, phi2+rotate).Add(base[1])
			end := fromPolar(s.radius, angleOut+rotate).Add(base[0])

			if s.handleWideStrokes {
				start := b.lastPoint()
				if loop, ok := wideStrokeLoop(alpha0, start, end, base[3], base[0]); ok {
					err := s.insertLoop(b, loop, end, func() error {
						return b.cubicTo(ctrl2, ctrl1, start)
					})
					if err != nil {
						return err
					}
					continue
				}
			}

			if err := b.cubicTo(ctrl1, ctrl2, end); err != nil {
				return err
			}
		}

		arc -= 3
		s.angleIn = angleOut
	}

	s.center = p
	return nil
}

// curveCorner emits the geometry needed before an offset curve piece which
// starts at pieceStart with direction angleIn.
//
// For the first piece of a curve this is either the start of the subpath
// or a regular join.  Later pieces only get a round join if the direction
// changes noticeably between pieces.
func (s *Stroker) curveCorner(firstArc *bool, angleIn float64, pieceStart vec.Vec2, threshold float64) error {
	if *firstArc {
		*firstArc = false
		if s.firstPoint {
			return s.startSubPath(angleIn, 0)
		}
		s.angleOut = angleIn
		return s.processCorner(0)
	}

	if math.Abs(angleDiff(s.angleIn, angleIn)) > threshold/4 {
		s.center = pieceStart
		s.angleOut = angleIn
		s.lineJoin = JoinRound
		err := s.processCorner(0)
		s.lineJoin = s.savedJoin
		return err
	}
	return nil
}

// wideStrokeLoop checks whether an offset piece from start to end runs
// against the direction of the original piece from pieceStart to pieceEnd
// (with direction alpha0).  If so, it returns the point where the line
// from start towards pieceStart meets the line from end towards pieceEnd,
// computed with the law of sines.
//
// This is a heuristic: the quarter turn threshold does not guarantee that
// the resulting outline is free of self-intersections.
func wideStrokeLoop(alpha0 float64, start, end, pieceStart, pieceEnd vec.Vec2) (vec.Vec2, bool) {
	alpha1 := atan2(end.Sub(start))
	if math.Abs(angleDiff(alpha0, alpha1)) <= anglePi/2 {
		return vec.Vec2{}, false
	}

	beta := atan2(pieceStart.Sub(start))
	gamma := atan2(pieceEnd.Sub(end))
	blen := end.Sub(start).Length()
	sinA := math.Abs(math.Sin(alpha1 - gamma))
	sinB := math.Abs(math.Sin(beta - gamma))
	alen := mulDiv(blen, sinA, sinB)

	return fromPolar(alen, beta).Add(start), true
}

// insertLoop adds the corrective geometry for an offset piece which doubles
// back: a line to the intersection point, a line to the end of the piece,
// the piece traversed backwards (emitted by reversed), and a line back to
// the end of the piece.
func (s *Stroker) insertLoop(b *border, loop, end vec.Vec2, reversed func() error) error {
	b.movable = false
	if err := b.lineTo(loop, false); err != nil {
		return err
	}
	if err := b.lineTo(end, false); err != nil {
		return err
	}
	if err := reversed(); err != nil {
		return err
	}
	return b.lineTo(end, false)
}

// EndSubPath finishes the current subpath.  Open subpaths get caps at both
// ends and are turned into a single contour on the right border.  Closed
// subpaths get a final join and become one contour on each border, with
// opposite orientations.
//
// If no segment was added since BeginSubPath, EndSubPath does nothing.
func (s *Stroker) EndSubPath() error {
	if s.firstPoint {
		return nil
	}

	if s.subpathOpen {
		right := &s.borders[BorderRight]

		if err := s.cap(s.angleIn, 0); err != nil {
			return err
		}
		if err := s.addReverseLeft(true); err != nil {
			return err
		}

		s.center = s.subpathStart
		if err := s.cap(s.subpathAngle+anglePi, 0); err != nil {
			return err
		}

		right.close(false)
		return nil
	}

	if s.center != s.subpathStart {
		if err := s.LineTo(s.subpathStart); err != nil {
			return err
		}
	}

	s.angleOut = s.subpathAngle
	turn := angleDiff(s.angleIn, s.angleOut)
	if turn != 0 {
		insideSide := 0
		if turn < 0 {
			insideSide = 1
		}
		if err := s.inside(insideSide, s.subpathLineLength); err != nil {
			return err
		}
		if err := s.outside(1-insideSide, s.subpathLineLength); err != nil {
			return err
		}
	}

	s.borders[BorderRight].close(false)
	s.borders[BorderLeft].close(true)
	return nil
}

// startSubPath emits the first points of both borders, at distance radius
// to either side of the current point.
func (s *Stroker) startSubPath(startAngle, lineLength float64) error {
	delta := fromPolar(s.radius, startAngle+anglePi2)

	if err := s.borders[0].moveTo(s.center.Add(delta)); err != nil {
		return err
	}
	if err := s.borders[1].moveTo(s.center.Sub(delta)); err != nil {
		return err
	}

	s.subpathAngle = startAngle
	s.firstPoint = false
	s.subpathLineLength = lineLength
	return nil
}

// processCorner emits the join between the incoming direction angleIn and
// the outgoing direction angleOut at the current point.  The lineLength is
// the length of the outgoing segment, or 0 if it is a curve.
func (s *Stroker) processCorner(lineLength float64) error {
	turn := angleDiff(s.angleIn, s.angleOut)
	if turn == 0 {
		return nil
	}

	// the border on the side the path turns towards is the inside
	insideSide := 0
	if turn < 0 {
		insideSide = 1
	}

	if err := s.inside(insideSide, lineLength); err != nil {
		return err
	}
	return s.outside(1-insideSide, lineLength)
}

// inside emits the inner side of a corner.  If both adjacent segments are
// long enough, the two offset lines are joined at their intersection.
// Otherwise the border goes straight to the start of the next offset line.
func (s *Stroker) inside(side int, lineLength float64) error {
	b := &s.borders[side]
	rotate := sideToRotate(side)
	theta := angleDiff(s.angleIn, s.angleOut) / 2

	var sigma vec.Vec2
	intersect := false
	if b.movable && lineLength != 0 && math.Abs(theta) <= maxInsideTheta {
		sigma = unit(theta)
		minLength := math.Abs(mulDiv(s.radius, sigma.Y, sigma.X))
		intersect = minLength != 0 &&
			s.lineLength >= minLength && lineLength >= minLength
	}

	var delta vec.Vec2
	if !intersect {
		delta = fromPolar(s.radius, s.angleOut+rotate).Add(s.center)
		b.movable = false
	} else {
		// the last point is still movable and gets replaced
		phi := s.angleIn + theta + rotate
		length := s.radius / sigma.X
		delta = fromPolar(length, phi).Add(s.center)
	}

	return b.lineTo(delta, false)
}

// outside emits the join geometry on the outer side of a corner.
func (s *Stroker) outside(side int, lineLength float64) error {
	if s.lineJoin == JoinRound {
		return s.arcTo(side)
	}

	b := &s.borders[side]
	rotate := sideToRotate(side)
	bevel := s.lineJoin == JoinBevel
	fixedBevel := s.lineJoin != JoinMiterVariable

	var theta, phi float64
	var sigma vec.Vec2
	if !bevel {
		theta = angleDiff(s.angleIn, s.angleOut) / 2
		if isQuarterTurn(theta) {
			theta = -rotate
		}
		phi = s.angleIn + theta + rotate

		// The miter length is radius/cos(theta), which is within the
		// limit iff miterLimit*cos(theta) >= 1.
		sigma = fromPolar(s.miterLimit, theta)
		if sigma.X < 1 {
			if fixedBevel || math.Abs(theta) > minVariableMiterTheta {
				bevel = true
			}
		}
	}

	if bevel {
		if fixedBevel {
			delta := fromPolar(s.radius, s.angleOut+rotate).Add(s.center)
			b.movable = false
			return b.lineTo(delta, false)
		}

		// variable miter: cut the miter off at the limit
		middle := fromPolar(s.radius*s.miterLimit, phi)
		coef := (1 - sigma.X) / sigma.Y
		delta := vec.Vec2{X: middle.Y * coef, Y: -middle.X * coef}
		middle = middle.Add(s.center)
		delta = delta.Add(middle)
		if err := b.lineTo(delta, false); err != nil {
			return err
		}

		delta = middle.Sub(delta).Add(middle)
		if err := b.lineTo(delta, false); err != nil {
			return err
		}
	} else {
		length := mulDiv(s.radius, s.miterLimit, sigma.X)
		delta := fromPolar(length, phi).Add(s.center)
		if err := b.lineTo(delta, false); err != nil {
			return err
		}
	}

	if lineLength == 0 {
		// curves don't start with a line piece, so add the start of the
		// offset curve explicitly
		delta := fromPolar(s.radius, s.angleOut+rotate).Add(s.center)
		return b.lineTo(delta, false)
	}
	return nil
}

// arcTo emits a round join on the given border, turning from angleIn to
// angleOut around the current point.
func (s *Stroker) arcTo(side int) error {
	rotate := sideToRotate(side)
	total := angleDiff(s.angleIn, s.angleOut)
	if isHalfTurn(total) {
		total = -rotate * 2
	}
	return s.arc(side, s.angleIn+rotate, total)
}

// arc emits a circular arc with the stroke radius around the current point.
func (s *Stroker) arc(side int, start, sweep float64) error {
	b := &s.borders[side]
	err := b.arcTo(s.center, s.radius, start, sweep)
	b.movable = false
	return err
}

// cap emits a line cap at the current point on the given border.
// The angle is the outward direction of the path at the end point.
func (s *Stroker) cap(angle float64, side int) error {
	if s.lineCap == graphics.LineCapRound {
		s.angleIn = angle
		s.angleOut = angle + anglePi
		rotate := sideToRotate(side)
		return s.arc(side, angle+rotate, -2*rotate)
	}

	b := &s.borders[side]
	middle := fromPolar(s.radius, angle)
	var delta vec.Vec2
	if side != 0 {
		delta = vec.Vec2{X: middle.Y, Y: -middle.X}
	} else {
		delta = vec.Vec2{X: -middle.Y, Y: middle.X}
	}

	if s.lineCap == graphics.LineCapSquare {
		middle = middle.Add(s.center)
	} else {
		middle = s.center
	}

	delta = delta.Add(middle)
	if err := b.lineTo(delta, false); err != nil {
		return err
	}
	delta = middle.Sub(delta).Add(middle)
	return b.lineTo(delta, false)
}

// addReverseLeft moves the points of the open contour on the left border,
// in reverse order, to the end of the right border.
func (s *Stroker) addReverseLeft(open bool) error {
	right := &s.borders[BorderRight]
	left := &s.borders[BorderLeft]

	newPoints := len(left.points) - left.start
	if newPoints <= 0 {
		return nil
	}
	if err := right.grow(newPoints); err != nil {
		return err
	}

	for i := len(left.points) - 1; i >= left.start; i-- {
		tag := left.tags[i]
		if open {
			tag &^= tagBeginEnd
		} else if t := tag & tagBeginEnd; t == tagBegin || t == tagEnd {
			tag ^= tagBeginEnd
		}
		right.points = append(right.points, left.points[i])
		right.tags = append(right.tags, tag)
	}

	left.points = left.points[:left.start]
	left.tags = left.tags[:left.start]
	right.movable = false
	left.movable = false
	return nil
}

// GetBorderCounts returns the number of points and contours of one border.
// The border is checked for consistency; malformed borders give
// ErrInvalidOutline.
func (s *Stroker) GetBorderCounts(side BorderSide) (numPoints, numContours int, err error) {
	if side != BorderRight && side != BorderLeft {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidSide, side)
	}
	return s.borders[side].counts()
}

// GetCounts returns the total number of points and contours of both
// borders.
func (s *Stroker) GetCounts() (numPoints, numContours int, err error) {
	p0, c0, err := s.borders[0].counts()
	if err != nil {
		return 0, 0, err
	}
	p1, c1, err := s.borders[1].counts()
	if err != nil {
		return 0, 0, err
	}
	return p0 + p1, c0 + c1, nil
}

// ExportBorder appends one border to o.
//
// The caller can size o using GetBorderCounts, to avoid allocations.
// If the border has not been checked by a call to GetBorderCounts or
// GetCounts, this is done now.
func (s *Stroker) ExportBorder(side BorderSide, o *Outline) error {
	if side != BorderRight && side != BorderLeft {
		return fmt.Errorf("%w: %d", ErrInvalidSide, side)
	}
	b := &s.borders[side]
	if !b.valid {
		if _, _, err := b.counts(); err != nil {
			return err
		}
	}
	o.fillOpen()
	b.export(o)
	return nil
}

// Export appends the right border and then the left border to o.
func (s *Stroker) Export(o *Outline) error {
	if err := s.ExportBorder(BorderRight, o); err != nil {
		return err
	}
	return s.ExportBorder(BorderLeft, o)
}
