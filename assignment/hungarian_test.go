package assignment

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSolve(t *testing.T) {
	Convey("Given a square cost matrix", t, func() {
		cost := [][]int{
			{4, 1, 3},
			{2, 0, 5},
			{3, 2, 2},
		}

		Convey("Solve finds the minimum-cost perfect assignment", func() {
			_, total := Solve(cost)
			So(total, ShouldEqual, 5)
		})
	})

	Convey("Given a rectangular cost matrix with more goals than boxes", t, func() {
		cost := [][]int{
			{1, 9, 9},
			{9, 1, 9},
		}

		Convey("Solve pads with zero-cost cells and still returns one column per real row", func() {
			rowToCol, total := Solve(cost)
			So(total, ShouldEqual, 2)
			So(len(rowToCol), ShouldEqual, 2)
		})
	})

	Convey("Given the 2x2 identity-cost matrix", t, func() {
		cost := [][]int{
			{0, 1},
			{1, 0},
		}

		Convey("the optimal assignment costs nothing", func() {
			_, total := Solve(cost)
			So(total, ShouldEqual, 0)
		})
	})

	Convey("Given a single box and a single goal", t, func() {
		Convey("Solve assigns the only possible pair", func() {
			rowToCol, total := Solve([][]int{{7}})
			So(total, ShouldEqual, 7)
			So(rowToCol[0], ShouldEqual, 0)
		})
	})

	Convey("Given an empty cost matrix", t, func() {
		Convey("Solve returns a zero-cost empty assignment", func() {
			rowToCol, total := Solve(nil)
			So(rowToCol, ShouldBeNil)
			So(total, ShouldEqual, 0)
			So(math.IsNaN(float64(total)), ShouldBeFalse)
		})
	})
}
