// Package assignment solves the minimum-cost bipartite assignment problem
// (the Hungarian algorithm) for the heuristic.MinMatching lower bound. No
// assignment-problem package appears anywhere in the retrieved reference
// corpus, so this is implemented directly against the standard library
// (see DESIGN.md for the per-dependency justification).
package assignment

import "math"

const inf = math.MaxInt32

// Solve returns the minimum-cost perfect assignment of a square cost
// matrix: rowToCol[i] is the column assigned to row i, and total is the
// sum of the assigned costs. Costs must be non-negative.
//
// Rectangular matrices are solved by Solve via zero-padding to a square
// shape; padding cells cost zero, so they never distort total and
// rowToCol entries that land in padding are simply ignored by callers
// that only care about the original rows.
func Solve(cost [][]int) (rowToCol []int, total int) {
	rows := len(cost)
	if rows == 0 {
		return nil, 0
	}
	cols := len(cost[0])
	n := rows
	if cols > n {
		n = cols
	}

	padded := make([][]int, n)
	for i := 0; i < n; i++ {
		padded[i] = make([]int, n)
		for j := 0; j < n; j++ {
			if i < rows && j < cols {
				padded[i][j] = cost[i][j]
			}
		}
	}

	full := solveSquare(padded)
	rowToCol = full[:rows]
	for i := 0; i < rows; i++ {
		if rowToCol[i] < cols {
			total += cost[i][rowToCol[i]]
		}
	}
	return rowToCol, total
}

// solveSquare is the classic O(n^3) primal-dual (Kuhn-Munkres) algorithm
// over an n x n matrix, 1-indexed internally to match the textbook
// derivation; p[j] is the row currently matched to column j.
func solveSquare(a [][]int) []int {
	n := len(a)
	u := make([]int, n+1)
	v := make([]int, n+1)
	p := make([]int, n+1)
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]int, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = inf
		}
		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := a[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	result := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			result[p[j]-1] = j - 1
		}
	}
	return result
}
