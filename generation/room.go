package generation

import (
	"math"

	"dangian/geometry"
)

// Room represents a room carved inside one leaf partition
type Room struct {
	Rect Rect `json:"rect"`
	// Partition is the leaf rectangle the room was carved from
	Partition Rect `json:"partition"`
}

// newRoom insets the leaf's top-left corner by up to a third of its size and
// then shrinks the remaining width and height by up to a third again.
func newRoom(leaf Rect, rng RandomSource) Room {
	insetX := math.Min(DiscardableFloat(rng, 0, math.Floor(leaf.W/3)), math.Max(leaf.W, 0))
	insetY := math.Min(DiscardableFloat(rng, 0, math.Floor(leaf.H/3)), math.Max(leaf.H, 0))

	room := geometry.Rect(leaf.X+insetX, leaf.Y+insetY, leaf.W-insetX, leaf.H-insetY)
	room.W -= math.Min(DiscardableFloat(rng, 0, room.W/3), room.W)
	room.H -= math.Min(DiscardableFloat(rng, 0, room.H/3), room.H)
	room.W = math.Max(room.W, 0)
	room.H = math.Max(room.H, 0)

	return Room{Rect: room, Partition: leaf}
}

// snapRoom aligns the room to the tile grid without letting it grow
func snapRoom(room Rect, tileSize float64) Rect {
	if trim := math.Mod(room.X, tileSize); trim != 0 {
		shift := tileSize - trim
		if trim < 0 {
			shift = -trim
		}
		room.X += shift
		room.W -= shift
	}
	if trim := math.Mod(room.Y, tileSize); trim != 0 {
		shift := tileSize - trim
		if trim < 0 {
			shift = -trim
		}
		room.Y += shift
		room.H -= shift
	}

	room.W = math.Max(room.W-math.Mod(math.Max(room.W, 0), tileSize), 0)
	room.H = math.Max(room.H-math.Mod(math.Max(room.H, 0), tileSize), 0)
	return room
}
