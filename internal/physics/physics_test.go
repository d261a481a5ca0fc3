package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

const epsilon = 1e-9

func approxPoint(a, b r2.Point) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name     string
		v        r2.Point
		degrees  float64
		expected r2.Point
	}{
		{"zero", Up, 0, Up},
		{"quarter_clockwise", Up, 90, r2.Point{X: 1, Y: 0}},
		{"quarter_counter_clockwise", Up, -90, r2.Point{X: -1, Y: 0}},
		{"half_turn", Up, 180, r2.Point{X: 0, Y: 1}},
		{"full_turn", r2.Point{X: 3, Y: 4}, 360, r2.Point{X: 3, Y: 4}},
		{"unbounded_angle", Up, 450, r2.Point{X: 1, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotate(tt.v, tt.degrees)
			if !approxPoint(got, tt.expected) {
				t.Errorf("Rotate(%v, %v) = %v, want %v", tt.v, tt.degrees, got, tt.expected)
			}
		})
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := r2.Point{X: 3, Y: -4}
	for _, deg := range []float64{-50, -20, 13, 20, 50, 271} {
		if got := Rotate(v, deg).Norm(); math.Abs(got-5) > epsilon {
			t.Errorf("|Rotate(v, %v)| = %v, want 5", deg, got)
		}
	}
}

func TestAngleBetween(t *testing.T) {
	for _, deg := range []float64{-50, -20, 0, 20, 35, 50} {
		v := r2.Point{X: 2, Y: 7}
		got := AngleBetween(v, Rotate(v, deg))
		if math.Abs(got-deg) > 1e-6 {
			t.Errorf("AngleBetween(v, Rotate(v, %v)) = %v", deg, got)
		}
	}
}

func TestDistance(t *testing.T) {
	a := r2.Point{X: 1, Y: 1}
	b := r2.Point{X: 4, Y: 5}
	if got := Distance(a, b); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
	if got := DistanceSquared(a, b); got != 25 {
		t.Errorf("DistanceSquared() = %v, want 25", got)
	}
}

func TestNewBody(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		ok     bool
	}{
		{"positive", 5, true},
		{"tiny", 1e-9, true},
		{"zero", 0, false},
		{"negative", -1, false},
		{"nan", math.NaN(), false},
		{"inf", math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBody(r2.Point{}, r2.Point{}, tt.radius)
			if tt.ok && err != nil {
				t.Errorf("NewBody(radius=%v) error = %v", tt.radius, err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidRadius) {
				t.Errorf("NewBody(radius=%v) error = %v, want ErrInvalidRadius", tt.radius, err)
			}
		})
	}
}

func TestBodyAdvance(t *testing.T) {
	tests := []struct {
		name     string
		position r2.Point
		velocity r2.Point
		dt       float64
	}{
		{"stationary", r2.Point{X: 10, Y: 10}, r2.Point{}, 1},
		{"one_second", r2.Point{X: 0, Y: 0}, r2.Point{X: 3, Y: -4}, 1},
		{"fraction", r2.Point{X: 100.5, Y: 7.25}, r2.Point{X: -33.3, Y: 12.1}, 0.016},
		{"zero_dt", r2.Point{X: 1, Y: 2}, r2.Point{X: 50, Y: 50}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Body{Position: tt.position, Velocity: tt.velocity, Radius: 1}
			b.Advance(tt.dt)
			want := r2.Point{
				X: tt.position.X + tt.velocity.X*tt.dt,
				Y: tt.position.Y + tt.velocity.Y*tt.dt,
			}
			if b.Position != want {
				t.Errorf("Advance(%v) position = %v, want %v", tt.dt, b.Position, want)
			}
			if b.Velocity != tt.velocity {
				t.Errorf("Advance changed velocity to %v", b.Velocity)
			}
		})
	}
}

func TestBodyIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Body
		expected bool
	}{
		{
			name:     "overlapping",
			a:        Body{Position: r2.Point{X: 0, Y: 0}, Radius: 5},
			b:        Body{Position: r2.Point{X: 3, Y: 0}, Radius: 5},
			expected: true,
		},
		{
			name:     "touching_exactly",
			a:        Body{Position: r2.Point{X: 0, Y: 0}, Radius: 2},
			b:        Body{Position: r2.Point{X: 3, Y: 4}, Radius: 3},
			expected: true,
		},
		{
			name:     "just_apart",
			a:        Body{Position: r2.Point{X: 0, Y: 0}, Radius: 2},
			b:        Body{Position: r2.Point{X: 3, Y: 4}, Radius: 2.999},
			expected: false,
		},
		{
			name:     "same_center",
			a:        Body{Position: r2.Point{X: 7, Y: 7}, Radius: 1},
			b:        Body{Position: r2.Point{X: 7, Y: 7}, Radius: 1},
			expected: true,
		},
		{
			name:     "far",
			a:        Body{Position: r2.Point{X: -100, Y: 0}, Radius: 10},
			b:        Body{Position: r2.Point{X: 100, Y: 0}, Radius: 10},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.expected {
				t.Errorf("a.Intersects(b) = %v, want %v", got, tt.expected)
			}
			if got := tt.b.Intersects(tt.a); got != tt.expected {
				t.Errorf("b.Intersects(a) = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBodyIntersectsSymmetric(t *testing.T) {
	points := []r2.Point{{X: 0.1, Y: 0.7}, {X: -13.3, Y: 4.4}, {X: 1e3, Y: -2e2}, {X: 5.5, Y: 5.5}}
	radii := []float64{0.3, 4.7, 11, 600}
	for _, pa := range points {
		for _, pb := range points {
			for _, ra := range radii {
				for _, rb := range radii {
					a := Body{Position: pa, Radius: ra}
					b := Body{Position: pb, Radius: rb}
					if a.Intersects(b) != b.Intersects(a) {
						t.Fatalf("Intersects not symmetric for %+v and %+v", a, b)
					}
				}
			}
		}
	}
}

func TestField(t *testing.T) {
	f := Field(1280, 720)
	if c := f.Center(); c != (r2.Point{X: 640, Y: 360}) {
		t.Errorf("Center() = %v, want (640, 360)", c)
	}
	if !f.ContainsPoint(r2.Point{X: 0, Y: 720}) {
		t.Error("field should contain its corner")
	}
	if f.ContainsPoint(r2.Point{X: -0.1, Y: 10}) {
		t.Error("field should not contain a point left of it")
	}
}
