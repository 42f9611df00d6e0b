// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerPhase is the state of the tracked pointer in the current frame.
type PointerPhase int

const (
	// PointerIdle means no button or touch is down. X/Y is the hover position.
	PointerIdle PointerPhase = iota
	// PointerPressed means the pointer went down this frame.
	PointerPressed
	// PointerHeld means the pointer is still down.
	PointerHeld
	// PointerReleased means the pointer went up this frame. X/Y is the last
	// known position.
	PointerReleased
)

// PointerEvent is the per-frame result of PointerTracker.
type PointerEvent struct {
	Phase   PointerPhase
	X, Y    int
	IsTouch bool
}

// TouchSample is one active touch.
type TouchSample struct {
	ID   ebiten.TouchID
	X, Y int
}

// PointerSample is the raw input of one frame.
type PointerSample struct {
	MousePressed   bool
	MouseX, MouseY int
	Touches        []TouchSample
}

// SamplePointer polls the mouse and all active touches.
func SamplePointer() PointerSample {
	s := PointerSample{
		MousePressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		s.Touches = append(s.Touches, TouchSample{ID: id, X: x, Y: y})
	}
	return s
}

// WheelNotch returns the vertical wheel movement of this frame:
// +1 up, -1 down, 0 none.
func WheelNotch() int {
	_, dy := ebiten.Wheel()
	switch {
	case dy > 0:
		return 1
	case dy < 0:
		return -1
	}
	return 0
}

// PointerTracker folds mouse and touch input into a single pointer.
//
// Touch wins over the mouse. Once a gesture starts, only the touch that
// started it is followed; other touches are ignored until it ends.
type PointerTracker struct {
	active  bool
	isTouch bool
	touchID ebiten.TouchID
	lastX   int
	lastY   int
}

// NewPointerTracker creates an idle tracker.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{touchID: -1}
}

// Update samples ebiten input and advances the tracker by one frame.
func (pt *PointerTracker) Update() PointerEvent {
	return pt.Step(SamplePointer())
}

// Step advances the tracker with an explicit sample.
func (pt *PointerTracker) Step(s PointerSample) PointerEvent {
	if !pt.active {
		if len(s.Touches) > 0 {
			t := s.Touches[0]
			pt.active, pt.isTouch, pt.touchID = true, true, t.ID
			pt.lastX, pt.lastY = t.X, t.Y
			return PointerEvent{Phase: PointerPressed, X: t.X, Y: t.Y, IsTouch: true}
		}
		if s.MousePressed {
			pt.active, pt.isTouch, pt.touchID = true, false, -1
			pt.lastX, pt.lastY = s.MouseX, s.MouseY
			return PointerEvent{Phase: PointerPressed, X: s.MouseX, Y: s.MouseY}
		}
		return PointerEvent{Phase: PointerIdle, X: s.MouseX, Y: s.MouseY}
	}

	if pt.isTouch {
		for _, t := range s.Touches {
			if t.ID == pt.touchID {
				pt.lastX, pt.lastY = t.X, t.Y
				return PointerEvent{Phase: PointerHeld, X: t.X, Y: t.Y, IsTouch: true}
			}
		}
		// Lifted touches have no position; report the last one seen.
		ev := PointerEvent{Phase: PointerReleased, X: pt.lastX, Y: pt.lastY, IsTouch: true}
		pt.Reset()
		return ev
	}

	if s.MousePressed {
		pt.lastX, pt.lastY = s.MouseX, s.MouseY
		return PointerEvent{Phase: PointerHeld, X: s.MouseX, Y: s.MouseY}
	}
	pt.Reset()
	return PointerEvent{Phase: PointerReleased, X: s.MouseX, Y: s.MouseY}
}

// Active reports whether a gesture is in progress.
func (pt *PointerTracker) Active() bool {
	return pt.active
}

// Reset forgets the current gesture.
func (pt *PointerTracker) Reset() {
	*pt = PointerTracker{touchID: -1}
}
