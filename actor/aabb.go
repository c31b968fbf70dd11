package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// AABBFromPoint returns a degenerate box containing only the given point.
func AABBFromPoint(point mgl64.Vec3) AABB {
	return AABB{Min: point, Max: point}
}

// ContainsPoint checks if a point is inside the box, boundaries included.
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two boxes overlap on all three axes.
func (a AABB) Overlaps(other AABB) bool {
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// Center returns the midpoint of the box.
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Extend grows the box to contain the given point.
func (a AABB) Extend(point mgl64.Vec3) AABB {
	return AABB{
		Min: mgl64.Vec3{
			math.Min(a.Min.X(), point.X()),
			math.Min(a.Min.Y(), point.Y()),
			math.Min(a.Min.Z(), point.Z()),
		},
		Max: mgl64.Vec3{
			math.Max(a.Max.X(), point.X()),
			math.Max(a.Max.Y(), point.Y()),
			math.Max(a.Max.Z(), point.Z()),
		},
	}
}

// Union returns the smallest box containing both boxes.
func (a AABB) Union(other AABB) AABB {
	return a.Extend(other.Min).Extend(other.Max)
}
