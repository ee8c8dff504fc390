package core

import "sort"

// leafThreshold is the primitive count at or below which a BVH node
// becomes a leaf.
const leafThreshold = 4

// bvhNode is a node in the bounding volume hierarchy. Leaf nodes carry
// primitive indices into the BVH's Shapes slice; internal nodes carry
// child pointers.
type bvhNode struct {
	Bounds   BBox
	Left     *bvhNode
	Right    *bvhNode
	Prims    []int // indices into BVH.Shapes, nil for internal nodes
}

// BVH is a bounding volume hierarchy over a slice of Shape, used both
// as a per-mesh BLAS (Shapes = triangles, object space) and as the
// scene TLAS (Shapes = top-level shapes, world space bounds) per spec
// §4.3.
type BVH struct {
	Shapes   []Shape
	Vertices []Vec3
	root     *bvhNode

	// WorldCenter/WorldRadius bound the finite geometry of the scene,
	// used by infinite lights and environment sampling that need a
	// notion of "how big is the scene".
	WorldCenter Vec3
	WorldRadius float64
}

// NewBVH builds a BVH over shapes, whose bounding boxes are computed
// against the shared vertex cache. applyTransform should be true when
// building a scene TLAS (shapes report world-space bounds) and false
// when building a per-mesh BLAS (triangles report object-space
// bounds).
func NewBVH(shapes []Shape, vertices []Vec3, applyTransform bool) *BVH {
	bvh := &BVH{Shapes: shapes, Vertices: vertices}
	if len(shapes) == 0 {
		return bvh
	}

	bounds := make([]BBox, len(shapes))
	indices := make([]int, len(shapes))
	for i, s := range shapes {
		bounds[i] = s.BoundingBox(vertices, applyTransform)
		indices[i] = i
	}

	bvh.root = buildNode(indices, bounds)
	bvh.WorldCenter, bvh.WorldRadius = finiteWorldBounds(bounds)
	return bvh
}

// buildNode recursively partitions indices (indexing into bounds) via
// median split on the longest axis of the centroid bounding box,
// falling back to an equal-count split by sorted centroid when the
// median split is degenerate.
func buildNode(indices []int, bounds []BBox) *bvhNode {
	nodeBounds := EmptyBBox()
	centroidBounds := EmptyBBox()
	for _, i := range indices {
		nodeBounds = nodeBounds.Union(bounds[i])
		centroidBounds = centroidBounds.UnionPoint(bounds[i].Center())
	}

	if len(indices) <= leafThreshold {
		return &bvhNode{Bounds: nodeBounds, Prims: indices}
	}

	axis := centroidBounds.LongestAxis()
	if centroidBounds.Size().Axis(axis) <= 0 {
		return &bvhNode{Bounds: nodeBounds, Prims: indices}
	}

	mid := centroidBounds.Center().Axis(axis)

	var left, right []int
	for _, i := range indices {
		if bounds[i].Center().Axis(axis) < mid {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	if len(left) == 0 || len(right) == 0 {
		// Degenerate median split (e.g. many coincident centroids):
		// fall back to an equal-count split by sorted centroid.
		sorted := make([]int, len(indices))
		copy(sorted, indices)
		sort.Slice(sorted, func(a, b int) bool {
			return bounds[sorted[a]].Center().Axis(axis) < bounds[sorted[b]].Center().Axis(axis)
		})
		half := len(sorted) / 2
		left, right = sorted[:half], sorted[half:]
		if len(left) == 0 || len(right) == 0 {
			return &bvhNode{Bounds: nodeBounds, Prims: indices}
		}
	}

	return &bvhNode{
		Bounds: nodeBounds,
		Left:   buildNode(left, bounds),
		Right:  buildNode(right, bounds),
	}
}

// Intersect traverses the BVH iteratively with an explicit stack (spec
// §4.3 "Traversal"), returning the closest hit within tInterval.
func (bvh *BVH) Intersect(ray Ray, tInterval Interval) (*HitRecord, bool) {
	if bvh.root == nil {
		return nil, false
	}

	var closest *HitRecord
	closestT := tInterval.Max
	stack := make([]*bvhNode, 0, 64)
	stack = append(stack, bvh.root)

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !node.Bounds.Intersects(ray, NewInterval(tInterval.Min, closestT)) {
			continue
		}

		if node.Prims != nil {
			for _, idx := range node.Prims {
				if hit, ok := bvh.Shapes[idx].Intersect(ray, NewInterval(tInterval.Min, closestT), bvh.Vertices); ok {
					closest = hit
					closestT = hit.T
				}
			}
			continue
		}

		// Push far child first so the near child is visited (popped)
		// first; "near" is approximated by bounding-box center
		// distance to the ray origin, cheap and good enough to prune
		// effectively in practice.
		if node.Left != nil && node.Right != nil {
			leftDist := node.Left.Bounds.Center().Subtract(ray.Origin).LengthSquared()
			rightDist := node.Right.Bounds.Center().Subtract(ray.Origin).LengthSquared()
			if leftDist < rightDist {
				stack = append(stack, node.Right, node.Left)
			} else {
				stack = append(stack, node.Left, node.Right)
			}
		} else if node.Left != nil {
			stack = append(stack, node.Left)
		} else if node.Right != nil {
			stack = append(stack, node.Right)
		}
	}

	return closest, closest != nil
}

// AnyHit reports whether any shape intersects the ray within
// tInterval, stopping at the first hit found; used for shadow-ray
// occlusion tests where only visibility, not the closest hit, matters
func (bvh *BVH) AnyHit(ray Ray, tInterval Interval) bool {
	if bvh.root == nil {
		return false
	}
	stack := make([]*bvhNode, 0, 64)
	stack = append(stack, bvh.root)
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !node.Bounds.Intersects(ray, tInterval) {
			continue
		}
		if node.Prims != nil {
			for _, idx := range node.Prims {
				if _, ok := bvh.Shapes[idx].Intersect(ray, tInterval, bvh.Vertices); ok {
					return true
				}
			}
			continue
		}
		if node.Left != nil {
			stack = append(stack, node.Left)
		}
		if node.Right != nil {
			stack = append(stack, node.Right)
		}
	}
	return false
}

// finiteWorldBounds unions the bounds of all shapes whose extent is
// "reasonable" (skipping near-infinite planes) to get a usable scene
// radius for infinite lights and environment sampling.
func finiteWorldBounds(bounds []BBox) (Vec3, float64) {
	finite := EmptyBBox()
	has := false
	for _, b := range bounds {
		size := b.Size()
		if size.X > 1e5 || size.Y > 1e5 || size.Z > 1e5 {
			continue
		}
		finite = finite.Union(b)
		has = true
	}
	if !has {
		return Vec3{}, 0
	}
	center := finite.Center()
	return center, finite.Max.Subtract(center).Length()
}
