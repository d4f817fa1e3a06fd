package generation

import (
	"testing"

	"dangian/geometry"
)

func TestNewRoomInsetAndShrink(t *testing.T) {
	src := &scriptedSource{reals: []float64{0.5}}
	leaf := geometry.Rect(0.0, 0.0, 90.0, 60.0)

	room := newRoom(leaf, src)

	// inset x floor(0.5*31)=15, inset y floor(0.5*21)=10,
	// shrink w floor(0.5*26)=13, shrink h floor(0.5*(50/3+1))=8
	if want := geometry.Rect(15.0, 10.0, 62.0, 42.0); room.Rect != want {
		t.Errorf("room = %v, want %v", room.Rect, want)
	}
	if room.Partition != leaf {
		t.Errorf("Partition = %v, want %v", room.Partition, leaf)
	}
}

func TestNewRoomStaysInsideLeaf(t *testing.T) {
	rng := NewSeededRandom(12)
	leaves := []Rect{
		geometry.Rect(0.0, 0.0, 90.0, 60.0),
		geometry.Rect(13.0, 7.0, 3.0, 2.0),
		geometry.Rect(5.0, 5.0, 1.0, 1.0),
		geometry.Rect(5.0, 5.0, 0.5, 0.0),
	}
	for _, leaf := range leaves {
		for i := 0; i < 200; i++ {
			room := newRoom(leaf, rng)
			if !leaf.ContainsRect(room.Rect) {
				t.Fatalf("room %v escapes leaf %v", room.Rect, leaf)
			}
			if room.Rect.W < 0 || room.Rect.H < 0 {
				t.Fatalf("negative room size %v", room.Rect)
			}
		}
	}
}

func TestSnapRoom(t *testing.T) {
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"unaligned corner", geometry.Rect(3.0, 7.0, 20.0, 20.0), geometry.Rect(5.0, 10.0, 15.0, 15.0)},
		{"aligned corner", geometry.Rect(10.0, 10.0, 12.0, 5.0), geometry.Rect(10.0, 10.0, 10.0, 5.0)},
		{"too small", geometry.Rect(1.0, 1.0, 3.0, 3.0), geometry.Rect(5.0, 5.0, 0.0, 0.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := snapRoom(tt.in, 5); got != tt.want {
				t.Errorf("snapRoom(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
