// Package layout computes grid geometry and batch partitioning for collages.
package layout

import "math"

// GridPlan is the number of rows and columns a group of images is arranged in.
type GridPlan struct {
	Rows int
	Cols int
}

// Capacity returns the number of cells the grid provides.
func (g GridPlan) Capacity() int {
	return g.Rows * g.Cols
}

// PlanGrid returns a near-square grid able to hold n images.
//
// The first candidate is cols = ceil(sqrt(n)), rows = ceil(n/cols); if that
// undershoots, cols is incremented until rows*cols >= n. The result is the
// first plan found by this search, not a globally minimal one.
func PlanGrid(n int) GridPlan {
	if n <= 0 {
		return GridPlan{}
	}

	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := int(math.Ceil(float64(n) / float64(cols)))

	for rows*cols < n {
		cols++
	}

	return GridPlan{Rows: rows, Cols: cols}
}
