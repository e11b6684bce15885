package mask

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// blockMask builds a w x h mask with a filled rectangle at (x0, y0).
func blockMask(w, h, x0, y0, bw, bh int) *Mask {
	m := New(w, h)
	for y := y0; y < y0+bh; y++ {
		for x := x0; x < x0+bw; x++ {
			m.Set(x, y, true)
		}
	}
	return m
}

func TestMask_SetAndCount(t *testing.T) {
	m := New(10, 10)
	require.True(t, m.Empty())
	require.Equal(t, 0.0, m.CoverageRatio())

	m.Set(3, 4, true)
	m.Set(3, 4, true) // idempotent
	m.Set(9, 9, true)
	require.Equal(t, 2, m.Count())
	require.True(t, m.At(3, 4))
	require.False(t, m.At(4, 3))

	m.Set(3, 4, false)
	require.Equal(t, 1, m.Count())
}

func TestMask_OutOfBoundsIsBackground(t *testing.T) {
	m := New(5, 5)
	m.Set(-1, 2, true)
	m.Set(2, 17, true)
	require.True(t, m.Empty())
	require.False(t, m.At(-1, 2))
	require.False(t, m.At(5, 0))
}

func TestFromBytes_NormalizesNonZero(t *testing.T) {
	m := FromBytes(3, 1, []uint8{0, 1, 200})
	require.Equal(t, 2, m.Count())
	require.Equal(t, uint8(255), m.Pix[1])
}

func TestComponents_SeparatesBlobs(t *testing.T) {
	m := New(20, 20)
	// 3x3 blob and a distant 2x2 blob
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			m.Set(x, y, true)
		}
	}
	for y := 10; y <= 11; y++ {
		for x := 14; x <= 15; x++ {
			m.Set(x, y, true)
		}
	}

	components := m.Components()
	require.Len(t, components, 2)

	largest := m.LargestComponent()
	require.NotNil(t, largest)
	require.Equal(t, 9, largest.Area())
}

func TestComponents_DiagonalPixelsConnect(t *testing.T) {
	m := New(5, 5)
	m.Set(1, 1, true)
	m.Set(2, 2, true)
	m.Set(3, 3, true)
	require.Len(t, m.Components(), 1)
}

func TestKeepLargestComponent(t *testing.T) {
	m := blockMask(20, 20, 2, 2, 4, 4)
	m.Set(15, 15, true) // stray artifact pixel
	m.Confidence = 0.9

	reduced := m.KeepLargestComponent()
	require.Equal(t, 16, reduced.Count())
	require.False(t, reduced.At(15, 15))
	require.Equal(t, 0.9, reduced.Confidence)
	// original untouched
	require.Equal(t, 17, m.Count())
}

func TestKeepLargestComponent_Empty(t *testing.T) {
	reduced := New(4, 4).KeepLargestComponent()
	require.True(t, reduced.Empty())
	require.Equal(t, 0.0, reduced.Confidence)
}

func TestTraceBoundary_Block(t *testing.T) {
	m := blockMask(5, 5, 1, 1, 3, 3)
	contour := m.TraceBoundary()
	// every pixel of a 3x3 block except the center is boundary
	require.Len(t, contour, 8)
	for _, p := range contour {
		require.True(t, m.At(p.X, p.Y))
	}
}

func TestTraceBoundary_SinglePixel(t *testing.T) {
	m := New(3, 3)
	m.Set(1, 1, true)
	contour := m.TraceBoundary()
	require.Len(t, contour, 1)
	require.Equal(t, 0.0, m.BoundaryLength())
}

func TestTraceBoundary_Empty(t *testing.T) {
	require.Nil(t, New(3, 3).TraceBoundary())
}

func TestBoundaryLength_Rectangle(t *testing.T) {
	// 10x5 block: the clockwise walk over boundary pixels covers
	// 2*(10+5)-4 = 26 axis-aligned unit steps
	m := blockMask(20, 20, 2, 3, 10, 5)
	require.InDelta(t, 26.0, m.BoundaryLength(), 1e-9)
}
