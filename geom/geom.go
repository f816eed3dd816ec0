// Package geom holds small 2-D vector geometry helpers: vectors, lines,
// rays and segments, with containment and distance under a fixed epsilon.
package geom

import (
	"fmt"
	"math"
)

// Epsilon bounds how far a point may sit from a carrier to still count as on it.
const Epsilon = 1e-7

// Vector is a 2-D vector, also used as a point.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y}
}

func (v Vector) Scale(k float64) Vector {
	return Vector{v.X * k, v.Y * k}
}

// Dot is the scalar product.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross is the z-component of the cross product.
func (v Vector) Cross(o Vector) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Norm is the euclidean length.
func (v Vector) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Unit returns the vector scaled to length one.
func (v Vector) Unit() Vector {
	return v.Scale(1 / v.Norm())
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(%v, %v)", v.X, v.Y)
}

// Line is the infinite line through two distinct points P0 and P1.
// The coefficients of ax+by+c=0 are cached at construction.
type Line struct {
	P0, P1  Vector
	a, b, c float64
}

// NewLine builds the line through p0 and p1.
func NewLine(p0, p1 Vector) Line {
	return Line{
		P0: p0,
		P1: p1,
		a:  p1.Y - p0.Y,
		b:  p0.X - p1.X,
		c:  p0.X*(p0.Y-p1.Y) + p0.Y*(p1.X-p0.X),
	}
}

func (l Line) substitute(p Vector) float64 {
	return l.a*p.X + l.b*p.Y + l.c
}

// Contains reports whether p lies on the line.
func (l Line) Contains(p Vector) bool {
	return math.Abs(l.substitute(p)) < Epsilon
}

// Project returns the closest point to p on the line.
func (l Line) Project(p Vector) Vector {
	ab := l.P1.Sub(l.P0)
	ap := p.Sub(l.P0)
	return ab.Unit().Scale(ab.Dot(ap) / ab.Norm()).Add(l.P0)
}

// Distance returns how far p is from the line.
func (l Line) Distance(p Vector) float64 {
	return p.Sub(l.Project(p)).Norm()
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%v, %v)", l.P0, l.P1)
}

// Ray starts at P0 and passes through P1.
type Ray struct {
	Line
}

// NewRay builds the ray from p0 through p1.
func NewRay(p0, p1 Vector) Ray {
	return Ray{NewLine(p0, p1)}
}

// Contains reports whether p lies on the ray.
func (r Ray) Contains(p Vector) bool {
	return r.Line.Contains(p) && p.Sub(r.P0).Dot(r.P1.Sub(r.P0)) > -Epsilon
}

// Distance returns how far p is from the ray: the perpendicular distance if
// the projection lands on the ray, otherwise the distance to its start.
func (r Ray) Distance(p Vector) float64 {
	if proj := r.Project(p); r.Contains(proj) {
		return p.Sub(proj).Norm()
	}
	return p.Sub(r.P0).Norm()
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(%v, %v)", r.P0, r.P1)
}

// Segment joins P0 and P1.
type Segment struct {
	Line
}

// NewSegment builds the segment between p0 and p1.
func NewSegment(p0, p1 Vector) Segment {
	return Segment{NewLine(p0, p1)}
}

// Contains reports whether p lies on the segment.
func (s Segment) Contains(p Vector) bool {
	return NewRay(s.P0, s.P1).Contains(p) && NewRay(s.P1, s.P0).Contains(p)
}

// Distance returns how far p is from the segment: the perpendicular distance
// if the projection lands inside, otherwise the distance to the closer end.
func (s Segment) Distance(p Vector) float64 {
	if proj := s.Project(p); s.Contains(proj) {
		return p.Sub(proj).Norm()
	}
	return math.Min(p.Sub(s.P0).Norm(), p.Sub(s.P1).Norm())
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment(%v, %v)", s.P0, s.P1)
}
