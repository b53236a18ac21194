// SPDX-License-Identifier: MIT

// Package: shortpaths/floydwarshall
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) over any core.Digraph with deterministic loop order.
//   - Serves as the O(V³) baseline that johnson is checked and benchmarked against.
//
// Contract:
//   - Infinite means "no path"; the diagonal starts at 0 (or a cheaper self-loop).
//   - A negative diagonal entry after the closure means a negative cycle.

// Package floydwarshall computes all-pairs shortest paths on a dense table.
package floydwarshall

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortpaths/core"
	"github.com/katalvlaran/shortpaths/distance"
)

var (
	// ErrNilGraph indicates that a nil graph was passed to FloydWarshall.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrIndexOutOfRange indicates a query outside [0, Len()).
	ErrIndexOutOfRange = errors.New("floydwarshall: index out of range")
)

// Matrix is a row-major |V|×|V| distance table.
type Matrix struct {
	n    int
	data []distance.Distance
}

// Len returns the matrix order.
func (m *Matrix) Len() int { return m.n }

// At returns the distance i→j. Entries are meaningless when
// HasNegativeCycle is true.
func (m *Matrix) At(i, j core.VertexID) (distance.Distance, error) {
	if i < 0 || int(i) >= m.n || j < 0 || int(j) >= m.n {
		return distance.Infinite(), fmt.Errorf("%w: (%d,%d) in %dx%d", ErrIndexOutOfRange, i, j, m.n, m.n)
	}

	return m.data[int(i)*m.n+int(j)], nil
}

// HasNegativeCycle reports whether some vertex reaches itself at negative cost.
// Complexity: O(V).
func (m *Matrix) HasNegativeCycle() bool {
	zero := distance.Finite(0)
	for i := 0; i < m.n; i++ {
		if m.data[i*m.n+i].Less(zero) {
			return true
		}
	}

	return false
}

// FloydWarshall builds the distance table of g and closes it in place.
//
// Loop order is fixed (k → i → j) and only strict improvements are written.
// Complexity: Time O(V³ + E), Space O(V²).
func FloydWarshall(g core.Digraph) (*Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	arcs, err := core.Snapshot(g)
	if err != nil {
		return nil, fmt.Errorf("floydwarshall: %w", err)
	}

	// 1) Initialise: 0 on the diagonal, arcs where present, Infinite elsewhere.
	n := g.VertexCount()
	m := &Matrix{n: n, data: make([]distance.Distance, n*n)}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = distance.Finite(0)
	}
	for _, e := range arcs {
		idx := int(e.From)*n + int(e.To)
		m.data[idx] = distance.Min(m.data[idx], distance.Finite(e.Weight))
	}

	// 2) Close.
	data := m.data
	var ik, cand distance.Distance
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik = data[i*n+k]
			if ik.IsInfinite() {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				cand = ik.Add(data[baseK+j])
				if cand.Less(data[baseI+j]) {
					data[baseI+j] = cand
				}
			}
		}
	}

	return m, nil
}
