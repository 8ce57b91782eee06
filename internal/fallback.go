package internal

import (
	"github.com/pkg/errors"
)

// What to do when four points turn out to be coplanar. The sphere is not
// determined, but the points still describe a circle (exactly, when they are
// concyclic, approximately otherwise).
type FallbackPolicy int

const (
	// Use the circle through the first three points.
	FallbackFirstTriple FallbackPolicy = iota
	// Use the circle through the three points spanning the largest triangle.
	// This is the best conditioned of the four choices.
	FallbackBestTriple
	// Give up on circles and use the mean of all four points.
	FallbackAverage
)

func (p FallbackPolicy) String() string {
	switch p {
	case FallbackFirstTriple:
		return "first"
	case FallbackBestTriple:
		return "best"
	case FallbackAverage:
		return "average"
	}
	return "unknown"
}

func ParseFallbackPolicy(s string) (FallbackPolicy, error) {
	for _, p := range []FallbackPolicy{FallbackFirstTriple, FallbackBestTriple, FallbackAverage} {
		if p.String() == s {
			return p, nil
		}
	}
	return FallbackFirstTriple, errors.Errorf("invalid fallback policy %q", s)
}

// Solution is a circumcenter together with the recoverable degeneracies that
// were hit on the way to it, in the order they happened.
type Solution struct {
	Center   Point
	Warnings []error
}

// Circumcenter of three or four points, applying the fallback policy when four
// points are coplanar. A returned error means there is no usable point at all.
func Circumcenter(points PointSet, policy FallbackPolicy) (Solution, error) {
	switch len(points) {
	case 3:
		center, err := Circumcenter3D(points[0], points[1], points[2])
		return solutionFrom(center, err)
	case 4:
		center, err := Circumcenter4D(points[0], points[1], points[2], points[3])
		if err == nil {
			return Solution{Center: center}, nil
		}
		if !errors.Is(err, ErrCoplanar) {
			return Solution{}, err
		}
		solution, err := policy.apply(points)
		if err != nil {
			return Solution{}, degeneratef(Singular, "points are coplanar and the %s fallback failed: %v", policy, err)
		}
		solution.Warnings = append([]error{ErrCoplanar}, solution.Warnings...)
		return solution, nil
	}
	return Solution{}, errors.Errorf("need 3 or 4 points, got %d", len(points))
}

func (p FallbackPolicy) apply(points PointSet) (Solution, error) {
	switch p {
	case FallbackFirstTriple:
		return solutionFrom(Circumcenter3D(points[0], points[1], points[2]))
	case FallbackBestTriple:
		t := bestTriple(points)
		return solutionFrom(Circumcenter3D(t[0], t[1], t[2]))
	case FallbackAverage:
		return Solution{Center: Mean(points...)}, nil
	}
	fatalf("invalid fallback policy %d", int(p))
	return Solution{}, nil
}

func solutionFrom(center Point, err error) (Solution, error) {
	if err == nil {
		return Solution{Center: center}, nil
	}
	if d, ok := err.(*DegenerateError); ok && d.Recoverable() {
		return Solution{Center: center, Warnings: []error{err}}, nil
	}
	return Solution{}, err
}

// The triple of points spanning the largest triangle. Ties go to the earlier
// triple, so a square keeps its first three points.
func bestTriple(points PointSet) [3]Point {
	var best [3]Point
	bestArea := -1.0
	n := len(points)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				area := points[j].Sub(points[i]).Cross(points[k].Sub(points[i])).Len()
				if area > bestArea && !Equal(area, bestArea) {
					bestArea = area
					best = [3]Point{points[i], points[j], points[k]}
				}
			}
		}
	}
	return best
}
