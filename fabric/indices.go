package fabric

// LineIndices returns index pairs for the grid lines: every horizontal segment
// row by row, then every vertical segment column by column.
func (m *Mesh) LineIndices() []uint32 {
	out := make([]uint32, len(m.lines))
	copy(out, m.lines)
	return out
}

// TriangleIndices returns two triangles per grid cell, for renderers that fill
// the fabric instead of stroking it.
func (m *Mesh) TriangleIndices() []uint32 {
	out := make([]uint32, len(m.triangles))
	copy(out, m.triangles)
	return out
}

// EachLine calls fn with the vertex indices of every grid line segment.
func (m *Mesh) EachLine(fn func(a, b uint32)) {
	for i := 0; i+1 < len(m.lines); i += 2 {
		fn(m.lines[i], m.lines[i+1])
	}
}

func lineIndices(rows, cols int) []uint32 {
	out := make([]uint32, 0, 2*(rows*(cols-1)+cols*(rows-1)))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols-1; c++ {
			start := uint32(r*cols + c)
			out = append(out, start, start+1)
		}
	}
	for c := 0; c < cols; c++ {
		for r := 0; r < rows-1; r++ {
			start := uint32(r*cols + c)
			out = append(out, start, start+uint32(cols))
		}
	}
	return out
}

func triangleIndices(rows, cols int) []uint32 {
	out := make([]uint32, 0, 6*(rows-1)*(cols-1))
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			tl := uint32(r*cols + c)
			tr := tl + 1
			bl := tl + uint32(cols)
			br := bl + 1
			out = append(out, tl, bl, tr, tr, bl, br)
		}
	}
	return out
}
