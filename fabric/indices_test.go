package fabric_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/plus3/spacefabric/fabric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineIndices(t *testing.T) {
	m, err := fabric.Create(3, 2, 1)
	require.NoError(t, err)

	want := []uint32{
		0, 1, 2, 3, 4, 5, // horizontal
		0, 2, 2, 4, // column 0
		1, 3, 3, 5, // column 1
	}
	if diff := cmp.Diff(want, m.LineIndices()); diff != "" {
		t.Errorf("line indices mismatch (-want +got):\n%s", diff)
	}

	var pairs int
	m.EachLine(func(a, b uint32) { pairs++ })
	assert.Equal(t, len(want)/2, pairs)
}

func TestIndexCounts(t *testing.T) {
	for _, dims := range [][2]int{{2, 2}, {4, 7}, {20, 20}} {
		rows, cols := dims[0], dims[1]
		m, err := fabric.Create(rows, cols, 0.1)
		require.NoError(t, err)

		lines := m.LineIndices()
		tris := m.TriangleIndices()
		assert.Len(t, lines, 2*(rows*(cols-1)+cols*(rows-1)))
		assert.Len(t, tris, 6*(rows-1)*(cols-1))

		for _, idx := range append(lines, tris...) {
			assert.Less(t, int(idx), m.Len())
		}
	}
}

func TestIndicesAreCopies(t *testing.T) {
	m, err := fabric.Create(2, 2, 1)
	require.NoError(t, err)

	tris := m.TriangleIndices()
	assert.Equal(t, []uint32{0, 2, 1, 1, 2, 3}, tris)
	tris[0] = 7
	assert.Equal(t, uint32(0), m.TriangleIndices()[0])
}
