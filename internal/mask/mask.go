// Package mask provides the binary segmentation mask value type and
// pixel-level analysis helpers (connected components, boundary tracing).
package mask

import (
	"woundlens/pkg/geometry"
)

// Mask is a binary grid marking which pixels are classified as wound
// tissue, plus the confidence of the segmentation that produced it.
// Pixels are stored row-major, 0 = background, 255 = wound.
type Mask struct {
	Width      int
	Height     int
	Pix        []uint8
	Confidence float64
}

// New creates an empty mask of the given dimensions.
func New(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// FromBytes creates a mask from a row-major single-channel pixel buffer.
// Any non-zero byte is treated as a wound pixel. The buffer is copied.
func FromBytes(width, height int, data []uint8) *Mask {
	m := New(width, height)
	n := len(data)
	if n > len(m.Pix) {
		n = len(m.Pix)
	}
	for i := 0; i < n; i++ {
		if data[i] != 0 {
			m.Pix[i] = 255
		}
	}
	return m
}

// At reports whether the pixel at (x, y) is set. Out-of-bounds
// coordinates are background.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.Pix[y*m.Width+x] != 0
}

// Set marks or clears the pixel at (x, y). Out-of-bounds writes are ignored.
func (m *Mask) Set(x, y int, on bool) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	if on {
		m.Pix[y*m.Width+x] = 255
	} else {
		m.Pix[y*m.Width+x] = 0
	}
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	count := 0
	for _, p := range m.Pix {
		if p != 0 {
			count++
		}
	}
	return count
}

// Empty reports whether no pixel is set.
func (m *Mask) Empty() bool {
	return m.Count() == 0
}

// CoverageRatio returns the fraction of the frame covered by set pixels.
func (m *Mask) CoverageRatio() float64 {
	total := m.Width * m.Height
	if total <= 0 {
		return 0
	}
	return float64(m.Count()) / float64(total)
}

// Points returns the coordinates of all set pixels in raster order.
func (m *Mask) Points() []geometry.PointInt {
	pts := make([]geometry.PointInt, 0, 64)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Pix[y*m.Width+x] != 0 {
				pts = append(pts, geometry.PointInt{X: x, Y: y})
			}
		}
	}
	return pts
}
