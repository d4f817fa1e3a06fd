package generation

import (
	"fmt"
	"math"

	"dangian/geometry"
)

// Options configures a dungeon build
type Options struct {
	// Iterations is the depth of the partition tree
	Iterations int
	// Size is the canvas width and height
	Size Vec
	// TileSize is the side of one grid cell
	TileSize float64
	// RatioToDiscard is the minimum child aspect ratio per split axis.
	// The zero value disables rejection.
	RatioToDiscard Vec
	// SnapToTiles aligns rooms and corridors to the tile grid
	SnapToTiles bool
	// PathWidth is the corridor thickness. Zero means one tile when snapping, 1 otherwise.
	PathWidth float64
	// MaxSplitAttempts caps rejected splits before giving up
	MaxSplitAttempts int
}

// Limits on what a single build may allocate
const (
	// MaxIterations bounds the partition tree at 2^MaxIterations leaves
	MaxIterations = 20
	// MaxTileCells bounds the cells of the rasterized tile matrix
	MaxTileCells = 1 << 22
)

// DefaultOptions returns the demo configuration over a 640x480 canvas
func DefaultOptions() Options {
	return Options{
		Iterations:       4,
		Size:             geometry.Pt(640.0, 480.0),
		TileSize:         5,
		RatioToDiscard:   geometry.Pt(0.45, 0.45),
		SnapToTiles:      true,
		MaxSplitAttempts: 1000,
	}
}

// Validate reports the first invalid field
func (o Options) Validate() error {
	switch {
	case o.Iterations < 0 || o.Iterations > MaxIterations:
		return fmt.Errorf("%w: iterations %d outside [0,%d]", ErrInvalidOptions, o.Iterations, MaxIterations)
	case !finite(o.Size.X) || !finite(o.Size.Y) || o.Size.X <= 0 || o.Size.Y <= 0:
		return fmt.Errorf("%w: size %vx%v must be positive", ErrInvalidOptions, o.Size.X, o.Size.Y)
	case !finite(o.TileSize) || o.TileSize <= 0:
		return fmt.Errorf("%w: tile size %v must be positive", ErrInvalidOptions, o.TileSize)
	case math.Ceil(o.Size.X/o.TileSize)*math.Ceil(o.Size.Y/o.TileSize) > MaxTileCells:
		return fmt.Errorf("%w: %vx%v at tile size %v exceeds %d tiles", ErrInvalidOptions, o.Size.X, o.Size.Y, o.TileSize, MaxTileCells)
	case !finite(o.RatioToDiscard.X) || !finite(o.RatioToDiscard.Y):
		return fmt.Errorf("%w: ratio %v must be finite", ErrInvalidOptions, o.RatioToDiscard)
	case o.RatioToDiscard.X < 0 || o.RatioToDiscard.X > 1 || o.RatioToDiscard.Y < 0 || o.RatioToDiscard.Y > 1:
		return fmt.Errorf("%w: ratio %v outside [0,1]", ErrInvalidOptions, o.RatioToDiscard)
	case !finite(o.PathWidth) || o.PathWidth < 0:
		return fmt.Errorf("%w: path width %v < 0", ErrInvalidOptions, o.PathWidth)
	case o.MaxSplitAttempts < 1:
		return fmt.Errorf("%w: max split attempts %d < 1", ErrInvalidOptions, o.MaxSplitAttempts)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (o Options) pathWidth() float64 {
	if o.PathWidth > 0 {
		return o.PathWidth
	}
	if o.SnapToTiles {
		return o.TileSize
	}
	return 1
}

// Dungeon is a generated layout: the partition tree, one room per leaf and one
// corridor per internal node.
type Dungeon struct {
	options Options
	canvas  Rect
	tree    *PartitionNode
	rooms   []Room
	paths   []Path
}

// NewDungeon partitions the canvas, carves rooms and joins siblings with corridors
func NewDungeon(options Options, rng RandomSource) (*Dungeon, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	d := &Dungeon{
		options: options,
		canvas:  geometry.Rect(0, 0, options.Size.X, options.Size.Y),
	}

	partitioner := NewPartitioner(rng, options.RatioToDiscard, options.MaxSplitAttempts)
	tree, err := partitioner.SplitRectangle(d.canvas, options.Iterations)
	if err != nil {
		return nil, fmt.Errorf("split canvas %v: %w", d.canvas, err)
	}
	d.tree = tree

	d.generateRooms(rng)
	d.generatePaths(d.tree)
	return d, nil
}

// generateRooms carves one room per leaf, in leaf order
func (d *Dungeon) generateRooms(rng RandomSource) {
	leaves := d.tree.Leaves()
	d.rooms = make([]Room, 0, len(leaves))
	for _, leaf := range leaves {
		room := newRoom(leaf, rng)
		if d.options.SnapToTiles {
			room.Rect = snapRoom(room.Rect, d.options.TileSize)
		}
		d.rooms = append(d.rooms, room)
	}
}

// generatePaths adds the node's corridor before descending left then right
func (d *Dungeon) generatePaths(node *PartitionNode) {
	if node.Left == nil || node.Right == nil {
		return
	}

	path := NewPath(node.Left.Rect, node.Right.Rect, d.options.pathWidth())
	if d.options.SnapToTiles {
		snapPath(&path, d.options.TileSize)
	}
	d.paths = append(d.paths, path)

	d.generatePaths(node.Left)
	d.generatePaths(node.Right)
}

// Options returns the options the dungeon was built with
func (d *Dungeon) Options() Options {
	return d.options
}

// Canvas returns the full area that was partitioned
func (d *Dungeon) Canvas() Rect {
	return d.canvas
}

// TileSize returns the grid cell size
func (d *Dungeon) TileSize() float64 {
	return d.options.TileSize
}

// RatioToDiscard returns the aspect-ratio threshold used while splitting
func (d *Dungeon) RatioToDiscard() Vec {
	return d.options.RatioToDiscard
}

// Tree returns the partition tree root. The tree belongs to the dungeon.
func (d *Dungeon) Tree() *PartitionNode {
	return d.tree
}

// Leaves returns the final partitions from left to right
func (d *Dungeon) Leaves() []Rect {
	return d.tree.Leaves()
}

// Rooms returns a copy of the rooms in leaf order
func (d *Dungeon) Rooms() []Room {
	return append([]Room(nil), d.rooms...)
}

// Paths returns a copy of the corridors in pre-order
func (d *Dungeon) Paths() []Path {
	return append([]Path(nil), d.paths...)
}

// GenerateTileMatrix rasterises the layout. Corridors are drawn first and rooms
// overwrite them, so a cell inside both is TileRoom.
func (d *Dungeon) GenerateTileMatrix() TileMatrix {
	matrix := NewTileMatrix(d.canvas, d.options.TileSize)
	for _, path := range d.paths {
		matrix.Fill(path.Rect(), TilePath)
	}
	for _, room := range d.rooms {
		matrix.Fill(room.Rect, TileRoom)
	}
	return matrix
}

// Layout is the renderer-facing view of a dungeon
type Layout struct {
	Canvas   Rect    `json:"canvas"`
	TileSize float64 `json:"tileSize"`
	Rooms    []Rect  `json:"rooms"`
	Paths    []Rect  `json:"paths"`
}

// Layout flattens rooms and corridors into plain rectangles
func (d *Dungeon) Layout() Layout {
	layout := Layout{
		Canvas:   d.canvas,
		TileSize: d.options.TileSize,
		Rooms:    make([]Rect, 0, len(d.rooms)),
		Paths:    make([]Rect, 0, len(d.paths)),
	}
	for _, room := range d.rooms {
		layout.Rooms = append(layout.Rooms, room.Rect)
	}
	for _, path := range d.paths {
		layout.Paths = append(layout.Paths, path.Rect())
	}
	return layout
}
