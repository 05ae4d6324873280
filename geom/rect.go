package geom

import "math"

// Rect2 is an axis-aligned bounding rectangle in plane-frame coordinates.
type Rect2 struct {
	Min Point2D
	Max Point2D
}

// Extend returns the rectangle grown to cover p.
func (r Rect2) Extend(p Point2D) Rect2 {
	r.Min.X = math.Min(r.Min.X, p.X)
	r.Min.Y = math.Min(r.Min.Y, p.Y)
	r.Max.X = math.Max(r.Max.X, p.X)
	r.Max.Y = math.Max(r.Max.Y, p.Y)
	return r
}

// BoundRect2 returns the tight bounds of pts. ok is false when pts is empty,
// in which case the rectangle is the zero value.
func BoundRect2(pts []Point2D) (r Rect2, ok bool) {
	if len(pts) == 0 {
		return Rect2{}, false
	}
	r = Rect2{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r = r.Extend(p)
	}
	return r, true
}

// Rect3 is an axis-aligned bounding box in survey coordinates.
type Rect3 struct {
	Min Point3D
	Max Point3D
}

// Extend returns the box grown to cover p.
func (r Rect3) Extend(p Point3D) Rect3 {
	r.Min.X = math.Min(r.Min.X, p.X)
	r.Min.Y = math.Min(r.Min.Y, p.Y)
	r.Min.Z = math.Min(r.Min.Z, p.Z)
	r.Max.X = math.Max(r.Max.X, p.X)
	r.Max.Y = math.Max(r.Max.Y, p.Y)
	r.Max.Z = math.Max(r.Max.Z, p.Z)
	return r
}

// BoundRect3 returns the tight bounds of pts. ok is false when pts is empty.
func BoundRect3(pts []Point3D) (r Rect3, ok bool) {
	if len(pts) == 0 {
		return Rect3{}, false
	}
	r = Rect3{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r = r.Extend(p)
	}
	return r, true
}
