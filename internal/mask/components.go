package mask

import (
	"woundlens/pkg/geometry"
)

// Component is one 8-connected region of set pixels.
type Component struct {
	Points []geometry.PointInt
}

// Area returns the number of pixels in the component.
func (c *Component) Area() int {
	return len(c.Points)
}

// eightDirs are the 8-connected neighbor offsets, clockwise from east.
var eightDirs = [8]geometry.PointInt{
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1},
	{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
}

// Components returns all 8-connected components of the mask via BFS,
// in raster order of their first pixel.
func (m *Mask) Components() []Component {
	visited := make([]bool, len(m.Pix))
	var components []Component

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := y*m.Width + x
			if m.Pix[idx] == 0 || visited[idx] {
				continue
			}

			// BFS flood fill from this seed
			visited[idx] = true
			queue := []geometry.PointInt{{X: x, Y: y}}
			var points []geometry.PointInt

			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				points = append(points, cur)

				for _, d := range eightDirs {
					nx, ny := cur.X+d.X, cur.Y+d.Y
					if nx < 0 || nx >= m.Width || ny < 0 || ny >= m.Height {
						continue
					}
					nidx := ny*m.Width + nx
					if m.Pix[nidx] == 0 || visited[nidx] {
						continue
					}
					visited[nidx] = true
					queue = append(queue, geometry.PointInt{X: nx, Y: ny})
				}
			}

			components = append(components, Component{Points: points})
		}
	}

	return components
}

// LargestComponent returns the component with the most pixels, or nil for
// an empty mask. Ties resolve to the earlier component in raster order, so
// the result is deterministic.
func (m *Mask) LargestComponent() *Component {
	components := m.Components()
	if len(components) == 0 {
		return nil
	}
	largest := 0
	for i := 1; i < len(components); i++ {
		if components[i].Area() > components[largest].Area() {
			largest = i
		}
	}
	return &components[largest]
}

// KeepLargestComponent returns a copy of the mask containing only its
// largest connected component. An empty mask returns an empty copy.
func (m *Mask) KeepLargestComponent() *Mask {
	out := New(m.Width, m.Height)
	out.Confidence = m.Confidence
	comp := m.LargestComponent()
	if comp == nil {
		return out
	}
	for _, p := range comp.Points {
		out.Pix[p.Y*out.Width+p.X] = 255
	}
	return out
}

// TraceBoundary walks the outer boundary of the component containing the
// first set pixel in raster order, using Moore-neighbor tracing (clockwise
// in image coordinates), and returns the boundary pixels in order. Callers
// measuring a wound should reduce the mask with KeepLargestComponent first.
// Returns nil for an empty mask.
func (m *Mask) TraceBoundary() []geometry.PointInt {
	start, ok := m.firstSetPixel()
	if !ok {
		return nil
	}

	contour := []geometry.PointInt{start}

	// Walk clockwise; after moving in direction d, resume the neighbor
	// search two steps counter-clockwise of d so the background stays on
	// the walker's left.
	cur := start
	prevDir := 6 // as if the start pixel was entered heading north
	maxSteps := 4 * len(m.Pix)

	for steps := 0; steps < maxSteps; steps++ {
		found := -1
		for i := 0; i < 8; i++ {
			d := (prevDir + 6 + i) % 8
			if m.At(cur.X+eightDirs[d].X, cur.Y+eightDirs[d].Y) {
				found = d
				break
			}
		}
		if found < 0 {
			// Isolated single pixel
			break
		}

		next := geometry.PointInt{
			X: cur.X + eightDirs[found].X,
			Y: cur.Y + eightDirs[found].Y,
		}
		if next == start {
			break
		}
		contour = append(contour, next)
		cur = next
		prevDir = found
	}

	return contour
}

// BoundaryLength returns the arc length of the traced boundary, counting
// diagonal steps as sqrt(2). A single-pixel or empty mask has length 0.
func (m *Mask) BoundaryLength() float64 {
	contour := m.TraceBoundary()
	if len(contour) < 2 {
		return 0
	}
	pts := make([]geometry.Point2D, len(contour))
	for i, p := range contour {
		pts[i] = p.ToFloat()
	}
	return geometry.PolygonLength(pts)
}

// firstSetPixel returns the first set pixel in raster order.
func (m *Mask) firstSetPixel() (geometry.PointInt, bool) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Pix[y*m.Width+x] != 0 {
				return geometry.PointInt{X: x, Y: y}, true
			}
		}
	}
	return geometry.PointInt{}, false
}
