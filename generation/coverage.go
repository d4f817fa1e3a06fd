package generation

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"
)

type cell struct {
	col, row int
}

// ValidateCoverage checks that leaves tile canvas with no gaps and no overlaps.
// It samples the center of every unit cell, so it is exact for the integer
// split positions the partitioner produces.
func ValidateCoverage(canvas Rect, leaves []Rect) error {
	claimed := mapset.New[cell]()

	for _, leaf := range leaves {
		if !canvas.ContainsRect(leaf) {
			return fmt.Errorf("%w: leaf %v outside canvas %v", ErrCoverage, leaf, canvas)
		}

		firstCol := int(math.Floor(leaf.X))
		firstRow := int(math.Floor(leaf.Y))
		for row := firstRow; float64(row)+0.5 < leaf.Bottom(); row++ {
			for col := firstCol; float64(col)+0.5 < leaf.Right(); col++ {
				if !leaf.ContainsPoint(Vec{X: float64(col) + 0.5, Y: float64(row) + 0.5}) {
					continue
				}
				c := cell{col: col, row: row}
				if claimed.Has(c) {
					return fmt.Errorf("%w: cell (%d,%d) covered twice", ErrCoverage, col, row)
				}
				claimed.Put(c)
			}
		}
	}

	want := 0
	for row := int(math.Floor(canvas.Y)); float64(row)+0.5 < canvas.Bottom(); row++ {
		for col := int(math.Floor(canvas.X)); float64(col)+0.5 < canvas.Right(); col++ {
			if canvas.ContainsPoint(Vec{X: float64(col) + 0.5, Y: float64(row) + 0.5}) {
				want++
			}
		}
	}
	if claimed.Size() != want {
		return fmt.Errorf("%w: %d of %d cells covered", ErrCoverage, claimed.Size(), want)
	}
	return nil
}
