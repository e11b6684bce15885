package geometry

import "math"

// ConvexHull computes the convex hull of a set of points using Graham scan.
// Returns the points forming the convex hull in counter-clockwise order.
func ConvexHull(points []Point2D) []Point2D {
	if len(points) < 3 {
		return points
	}

	// Make a copy to avoid modifying the input
	pts := make([]Point2D, len(points))
	copy(pts, points)

	// Find the point with lowest y (and leftmost if tied)
	lowest := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].Y < pts[lowest].Y ||
			(pts[i].Y == pts[lowest].Y && pts[i].X < pts[lowest].X) {
			lowest = i
		}
	}

	// Swap to front
	pts[0], pts[lowest] = pts[lowest], pts[0]
	pivot := pts[0]

	// Sort by polar angle with respect to pivot
	sorted := make([]Point2D, len(pts)-1)
	copy(sorted, pts[1:])

	for i := 0; i < len(sorted)-1; i++ {
		for j := i + 1; j < len(sorted); j++ {
			cross := crossProduct(pivot, sorted[i], sorted[j])
			if cross < 0 || (cross == 0 && distSq(pivot, sorted[i]) > distSq(pivot, sorted[j])) {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}

	// Build hull
	hull := []Point2D{pivot}
	for _, p := range sorted {
		for len(hull) > 1 && crossProduct(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull
}

// MinAreaRect computes the minimum-area oriented bounding rectangle of a
// point set using rotating calipers over the convex hull. The minimal
// rectangle always has one side collinear with a hull edge, so it suffices
// to test the box aligned with each edge and keep the smallest.
func MinAreaRect(points []Point2D) RotatedRect {
	if len(points) == 0 {
		return RotatedRect{}
	}
	if len(points) == 1 {
		return RotatedRect{Center: points[0]}
	}

	hull := ConvexHull(points)
	if len(hull) < 2 {
		return RotatedRect{Center: hull[0]}
	}

	best := RotatedRect{}
	bestArea := math.Inf(1)
	n := len(hull)

	for i := 0; i < n; i++ {
		p1 := hull[i]
		edge := hull[(i+1)%n].Sub(p1)
		length := math.Hypot(edge.X, edge.Y)
		if length == 0 {
			continue
		}
		ux, uy := edge.X/length, edge.Y/length

		// Project every hull point onto the edge axis and its perpendicular
		minU, maxU := math.Inf(1), math.Inf(-1)
		minV, maxV := math.Inf(1), math.Inf(-1)
		for _, p := range hull {
			d := p.Sub(p1)
			u := d.X*ux + d.Y*uy
			v := -d.X*uy + d.Y*ux
			minU = math.Min(minU, u)
			maxU = math.Max(maxU, u)
			minV = math.Min(minV, v)
			maxV = math.Max(maxV, v)
		}

		w := maxU - minU
		h := maxV - minV
		if area := w * h; area < bestArea {
			bestArea = area
			cu := (minU + maxU) / 2
			cv := (minV + maxV) / 2
			best = RotatedRect{
				Center: Point2D{
					X: p1.X + cu*ux - cv*uy,
					Y: p1.Y + cu*uy + cv*ux,
				},
				Width:  w,
				Height: h,
				Angle:  math.Atan2(uy, ux),
			}
		}
	}

	// A fully collinear point set still yields a zero-height box aligned
	// with the segment.
	return best
}

// PolygonLength returns the total length of the closed polyline through the
// given vertices.
func PolygonLength(vertices []Point2D) float64 {
	if len(vertices) < 2 {
		return 0
	}
	var total float64
	for i := range vertices {
		total += vertices[i].Distance(vertices[(i+1)%len(vertices)])
	}
	return total
}

// PointInPolygon tests if a point is inside a polygon using ray casting.
func PointInPolygon(p Point2D, polygon []Point2D) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	n := len(polygon)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi, pj := polygon[i], polygon[j]

		if ((pi.Y > p.Y) != (pj.Y > p.Y)) &&
			(p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X) {
			inside = !inside
		}
	}

	return inside
}

// crossProduct computes the cross product of vectors OA and OB.
func crossProduct(o, a, b Point2D) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// distSq computes the squared distance between two points.
func distSq(a, b Point2D) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}
