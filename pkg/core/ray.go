package core

// Ray is a parametric ray: origin + t*direction, with an optional time
// sample in [0,1] for future motion-blur use. The constructors below
// normalize Direction; a Ray built as a struct literal keeps whatever
// direction it is given.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
}

// NewRay creates a ray with direction normalized at construction.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// NewRayAt creates a ray with an explicit time sample.
func NewRayAt(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize(), Time: time}
}

// NewRayTo creates a ray from origin toward target.
func NewRayTo(origin, target Vec3) Ray {
	return NewRay(origin, target.Subtract(origin))
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Offset returns a copy of the ray whose origin has been nudged along n
// by eps, used to push shadow and secondary ray origins off the
// surface they were spawned from, avoiding self-intersection.
func (r Ray) Offset(n Vec3, eps float64) Ray {
	r.Origin = r.Origin.Add(n.Multiply(eps))
	return r
}
