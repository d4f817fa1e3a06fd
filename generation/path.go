package generation

import (
	"math"

	"dangian/geometry"
)

// Orientation is the long axis of a corridor
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Path is a straight corridor joining the centers of two sibling partitions.
//
// Centers sharing a Y coordinate give a horizontal strip, anything else gives a
// vertical strip anchored on the first center's X. Diagonally offset centers are
// therefore not joined end to end; BSP siblings always share one axis so the
// generator never hits that case.
type Path struct {
	rect        Rect
	width       float64
	orientation Orientation
}

// NewPath builds the corridor between the centers of one and two
func NewPath(one, two Rect, width float64) Path {
	centerOne := one.Center()
	centerTwo := two.Center()
	distance := centerOne.Distance(centerTwo)
	half := width / 2

	if centerOne.Y == centerTwo.Y {
		lower := math.Min(centerOne.X, centerTwo.X)
		return Path{
			rect:        geometry.Rect(lower, centerOne.Y-half, distance, width),
			width:       width,
			orientation: Horizontal,
		}
	}

	lower := math.Min(centerOne.Y, centerTwo.Y)
	return Path{
		rect:        geometry.Rect(centerOne.X-half, lower, width, distance),
		width:       width,
		orientation: Vertical,
	}
}

// Rect returns the corridor rectangle
func (p Path) Rect() Rect {
	return p.rect
}

// Width returns the corridor thickness
func (p Path) Width() float64 {
	return p.width
}

// Orientation returns the corridor's long axis
func (p Path) Orientation() Orientation {
	return p.orientation
}

// Translate moves the corridor
func (p *Path) Translate(offset Vec) {
	p.rect = p.rect.Translate(offset)
}

// Grow adds size to the corridor's width and height
func (p *Path) Grow(size Vec) {
	p.rect.W += size.X
	p.rect.H += size.Y
}

// SetWidth changes the corridor thickness keeping it centered on its long axis
func (p *Path) SetWidth(width float64) {
	if p.width == width {
		return
	}

	delta := p.width/2 - width/2
	if p.orientation == Horizontal {
		p.rect.Y += delta
		p.rect.H = width
	} else {
		p.rect.X += delta
		p.rect.W = width
	}
	p.width = width
}

// snapPath rounds the corridor position and its length to the nearest tile
func snapPath(p *Path, tileSize float64) {
	half := tileSize / 2

	p.Translate(Vec{X: nearestTileOffset(p.rect.X, tileSize, half)})
	p.Translate(Vec{Y: nearestTileOffset(p.rect.Y, tileSize, half)})

	if p.orientation == Horizontal {
		p.Grow(Vec{X: nearestTileOffset(p.rect.W, tileSize, half)})
	} else {
		p.Grow(Vec{Y: nearestTileOffset(p.rect.H, tileSize, half)})
	}
}

// nearestTileOffset returns the adjustment that moves v onto the closest multiple of tileSize
func nearestTileOffset(v, tileSize, half float64) float64 {
	rem := math.Mod(v, tileSize)
	if rem < 0 {
		rem += tileSize
	}
	if rem > half {
		return tileSize - rem
	}
	return -rem
}
