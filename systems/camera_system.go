package systems

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"dangian/config"
	"dangian/generation"
	"dangian/geometry"
)

// CameraSystem handles panning and zooming of the dungeon view.
// A world point w is drawn at screen position (X + w.X*Zoom, Y + w.Y*Zoom).
type CameraSystem struct {
	// X and Y are the screen-space translation of the world origin
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom)
	Zoom float64

	MinZoom      float64
	MaxZoom      float64
	ZoomStep     float64
	ZoomDuration float32 // seconds; zero applies zoom immediately

	dragging bool
	dragLast geometry.Point[float64]

	zoomTween    *gween.Tween
	targetZoom   float64
	anchorScreen geometry.Point[float64]
	anchorWorld  geometry.Point[float64]

	events *EventManager
}

// NewCameraSystem creates a camera with the configured zoom limits
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{
		Zoom:         1,
		targetZoom:   1,
		MinZoom:      config.ZoomMin,
		MaxZoom:      config.ZoomMax,
		ZoomStep:     config.ZoomStep,
		ZoomDuration: config.ZoomDuration,
	}
}

// SetEventManager publishes CameraUpdateEvents on em
func (s *CameraSystem) SetEventManager(em *EventManager) {
	s.events = em
}

// Update advances the zoom animation by dt seconds
func (s *CameraSystem) Update(dt float32) {
	if s.zoomTween == nil {
		return
	}

	value, done := s.zoomTween.Update(dt)
	if done {
		s.zoomTween = nil
		s.applyZoom(s.targetZoom)
		s.emitUpdate()
		return
	}
	s.applyZoom(float64(value))
}

// BeginDrag starts panning from the given screen position
func (s *CameraSystem) BeginDrag(screenX, screenY float64) {
	s.dragging = true
	s.dragLast = geometry.Pt(screenX, screenY)
}

// DragTo moves the view so the point grabbed in BeginDrag follows the cursor
func (s *CameraSystem) DragTo(screenX, screenY float64) {
	if !s.dragging {
		return
	}
	delta := geometry.Pt(screenX, screenY).Sub(s.dragLast)
	s.dragLast = geometry.Pt(screenX, screenY)

	s.X += delta.X
	s.Y += delta.Y
	// a running zoom animation keeps its anchor under the moved view
	s.anchorScreen = s.anchorScreen.Add(delta)
}

// EndDrag stops panning
func (s *CameraSystem) EndDrag() {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.emitUpdate()
}

// Dragging reports whether a pan is in progress
func (s *CameraSystem) Dragging() bool {
	return s.dragging
}

// ZoomAt changes the zoom by notches steps keeping the world point under
// (screenX, screenY) fixed on screen. Positive notches zoom in.
func (s *CameraSystem) ZoomAt(screenX, screenY float64, notches int) {
	target := s.clampZoom(s.targetZoom + float64(notches)*s.ZoomStep)
	if target == s.targetZoom {
		return
	}

	s.anchorScreen = geometry.Pt(screenX, screenY)
	s.anchorWorld = s.ScreenToWorld(screenX, screenY)
	s.targetZoom = target

	if s.ZoomDuration <= 0 {
		s.zoomTween = nil
		s.applyZoom(target)
		s.emitUpdate()
		return
	}
	s.zoomTween = gween.New(float32(s.Zoom), float32(target), s.ZoomDuration, ease.OutQuad)
}

// TargetZoom returns the zoom the camera is animating towards
func (s *CameraSystem) TargetZoom() float64 {
	return s.targetZoom
}

// Reset restores the identity view
func (s *CameraSystem) Reset() {
	s.X, s.Y = 0, 0
	s.Zoom, s.targetZoom = 1, 1
	s.zoomTween = nil
	s.dragging = false
	s.emitUpdate()
}

// CenterOn translates the view so canvas is centered in a viewport of the given size
func (s *CameraSystem) CenterOn(canvas generation.Rect, viewportW, viewportH int) {
	center := canvas.Center()
	s.X = float64(viewportW)/2 - center.X*s.Zoom
	s.Y = float64(viewportH)/2 - center.Y*s.Zoom
}

// WorldToScreen converts world coordinates to screen coordinates
func (s *CameraSystem) WorldToScreen(worldX, worldY float64) (screenX, screenY float64) {
	return s.X + worldX*s.Zoom, s.Y + worldY*s.Zoom
}

// ScreenToWorld converts screen coordinates to world coordinates
func (s *CameraSystem) ScreenToWorld(screenX, screenY float64) geometry.Point[float64] {
	return geometry.Pt((screenX-s.X)/s.Zoom, (screenY-s.Y)/s.Zoom)
}

// RectToScreen converts a world rectangle to screen space
func (s *CameraSystem) RectToScreen(r generation.Rect) generation.Rect {
	x, y := s.WorldToScreen(r.X, r.Y)
	return geometry.Rect(x, y, r.W*s.Zoom, r.H*s.Zoom)
}

// IsVisible checks if a world rectangle overlaps a viewport of the given size
func (s *CameraSystem) IsVisible(r generation.Rect, viewportW, viewportH int) bool {
	viewport := geometry.Rect(0, 0, float64(viewportW), float64(viewportH))
	screen := s.RectToScreen(r)
	// zero-thickness rectangles still count when they touch the viewport
	screen.W = math.Max(screen.W, 1)
	screen.H = math.Max(screen.H, 1)
	return viewport.Intersects(screen)
}

func (s *CameraSystem) applyZoom(zoom float64) {
	s.Zoom = zoom
	s.X = s.anchorScreen.X - s.anchorWorld.X*zoom
	s.Y = s.anchorScreen.Y - s.anchorWorld.Y*zoom
}

func (s *CameraSystem) clampZoom(zoom float64) float64 {
	// round away float drift from repeated steps
	zoom = math.Round(zoom*1000) / 1000
	return math.Min(math.Max(zoom, s.MinZoom), s.MaxZoom)
}

func (s *CameraSystem) emitUpdate() {
	if s.events == nil {
		return
	}
	s.events.Emit(CameraUpdateEvent{X: s.X, Y: s.Y, Zoom: s.Zoom})
}
