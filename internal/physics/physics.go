// Package physics provides vector helpers, circular bodies and collision tests.
//
// Vectors are r2.Point values in screen space: X grows to the right and Y
// grows downward.
package physics

import (
	"math"

	"github.com/golang/geo/r2"
)

// Up is the reference orientation of a rotation of zero degrees.
var Up = r2.Point{X: 0, Y: -1}

// Rotate returns v rotated by the given angle in degrees. Positive angles
// turn clockwise on a y-down screen.
func Rotate(v r2.Point, degrees float64) r2.Point {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return r2.Point{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Forward returns the unit facing vector for a rotation in degrees.
func Forward(rotation float64) r2.Point {
	return Rotate(Up, rotation)
}

// AngleBetween returns the signed angle in degrees that turns from a to b,
// in the same sense as Rotate.
func AngleBetween(a, b r2.Point) float64 {
	return math.Atan2(a.Cross(b), a.Dot(b)) * 180 / math.Pi
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b r2.Point) float64 {
	return a.Sub(b).Norm()
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b r2.Point) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// CirclesTouch reports whether two circles overlap or touch. The boundary is
// inclusive: circles exactly r1+r2 apart collide.
func CirclesTouch(c1 r2.Point, radius1 float64, c2 r2.Point, radius2 float64) bool {
	return Distance(c1, c2) <= radius1+radius2
}

// Field returns the play area rectangle with its top-left corner at the origin.
func Field(width, height float64) r2.Rect {
	return r2.RectFromPoints(r2.Point{}, r2.Point{X: width, Y: height})
}
