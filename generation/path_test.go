package generation

import (
	"math"
	"testing"

	"dangian/geometry"
)

func TestNewPathOrientation(t *testing.T) {
	left := geometry.Rect(0.0, 0.0, 100.0, 100.0)

	tests := []struct {
		name        string
		other       Rect
		want        Rect
		orientation Orientation
	}{
		{
			name:        "shared y",
			other:       geometry.Rect(100.0, 0.0, 100.0, 100.0),
			want:        geometry.Rect(50.0, 45.0, 100.0, 10.0),
			orientation: Horizontal,
		},
		{
			name:        "shared x",
			other:       geometry.Rect(0.0, 100.0, 100.0, 60.0),
			want:        geometry.Rect(45.0, 50.0, 10.0, 80.0),
			orientation: Vertical,
		},
		{
			name:        "diagonal falls back to vertical",
			other:       geometry.Rect(100.0, 100.0, 100.0, 100.0),
			want:        geometry.Rect(45.0, 50.0, 10.0, math.Sqrt(2)*100),
			orientation: Vertical,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath(left, tt.other, 10)
			got := p.Rect()
			if !approxEqual(got.X, tt.want.X) || !approxEqual(got.Y, tt.want.Y) ||
				!approxEqual(got.W, tt.want.W) || !approxEqual(got.H, tt.want.H) {
				t.Errorf("Rect = %v, want %v", got, tt.want)
			}
			if p.Orientation() != tt.orientation {
				t.Errorf("Orientation = %v, want %v", p.Orientation(), tt.orientation)
			}
			if p.Width() != 10 {
				t.Errorf("Width = %v, want 10", p.Width())
			}
		})
	}
}

func TestNewPathIsSymmetric(t *testing.T) {
	a := geometry.Rect(0.0, 0.0, 100.0, 100.0)
	b := geometry.Rect(100.0, 0.0, 60.0, 100.0)
	if NewPath(a, b, 4).Rect() != NewPath(b, a, 4).Rect() {
		t.Errorf("horizontal path depends on argument order: %v vs %v",
			NewPath(a, b, 4).Rect(), NewPath(b, a, 4).Rect())
	}
}

func TestPathSetWidthKeepsCenterLine(t *testing.T) {
	horizontal := NewPath(geometry.Rect(0.0, 0.0, 100.0, 100.0), geometry.Rect(100.0, 0.0, 100.0, 100.0), 10)
	horizontal.SetWidth(4)
	if want := geometry.Rect(50.0, 48.0, 100.0, 4.0); horizontal.Rect() != want {
		t.Errorf("horizontal after SetWidth = %v, want %v", horizontal.Rect(), want)
	}
	if horizontal.Rect().Center().Y != 50 {
		t.Errorf("horizontal center y = %v, want 50", horizontal.Rect().Center().Y)
	}

	vertical := NewPath(geometry.Rect(0.0, 0.0, 100.0, 100.0), geometry.Rect(0.0, 100.0, 100.0, 100.0), 2)
	vertical.SetWidth(8)
	if want := geometry.Rect(46.0, 50.0, 8.0, 100.0); vertical.Rect() != want {
		t.Errorf("vertical after SetWidth = %v, want %v", vertical.Rect(), want)
	}
	if vertical.Width() != 8 {
		t.Errorf("Width = %v, want 8", vertical.Width())
	}

	before := vertical.Rect()
	vertical.SetWidth(8)
	if vertical.Rect() != before {
		t.Errorf("SetWidth with same width moved the path: %v -> %v", before, vertical.Rect())
	}
}

func TestPathTranslateAndGrow(t *testing.T) {
	p := NewPath(geometry.Rect(0.0, 0.0, 10.0, 10.0), geometry.Rect(10.0, 0.0, 10.0, 10.0), 2)
	p.Translate(geometry.Pt(1.0, 2.0))
	p.Grow(geometry.Pt(3.0, 0.0))
	if want := geometry.Rect(6.0, 6.0, 13.0, 2.0); p.Rect() != want {
		t.Errorf("Rect = %v, want %v", p.Rect(), want)
	}
}

func TestSnapPath(t *testing.T) {
	p := Path{rect: geometry.Rect(47.0, 45.0, 96.0, 10.0), width: 10, orientation: Horizontal}
	snapPath(&p, 10)
	if want := geometry.Rect(50.0, 40.0, 100.0, 10.0); p.Rect() != want {
		t.Errorf("snapped = %v, want %v", p.Rect(), want)
	}

	v := Path{rect: geometry.Rect(22.0, 31.0, 10.0, 43.0), width: 10, orientation: Vertical}
	snapPath(&v, 10)
	if want := geometry.Rect(20.0, 30.0, 10.0, 40.0); v.Rect() != want {
		t.Errorf("snapped = %v, want %v", v.Rect(), want)
	}
}

func TestNearestTileOffset(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{0, 0},
		{3, -3},
		{5, -5},
		{6, 4},
		{20, 0},
		{-2, 2},
	}
	for _, tt := range tests {
		if got := nearestTileOffset(tt.v, 10, 5); got != tt.want {
			t.Errorf("nearestTileOffset(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
