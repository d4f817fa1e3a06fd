package generation

import "github.com/zyedidia/generic/mapset"

// Regions counts the 4-connected groups of non-empty tiles. A dungeon whose
// corridors reach every room has exactly one region.
func (m TileMatrix) Regions() int {
	visited := mapset.New[cell]()
	regions := 0

	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			start := cell{col: col, row: row}
			if m.At(col, row) == TileNone || visited.Has(start) {
				continue
			}
			regions++
			m.floodFill(start, &visited)
		}
	}
	return regions
}

// floodFill marks every non-empty tile connected to start
func (m TileMatrix) floodFill(start cell, visited *mapset.Set[cell]) {
	queue := []cell{start}
	visited.Put(start)

	// Four principal directions
	dirs := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, dir := range dirs {
			next := cell{col: curr.col + dir[0], row: curr.row + dir[1]}
			if m.At(next.col, next.row) == TileNone || visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
}
