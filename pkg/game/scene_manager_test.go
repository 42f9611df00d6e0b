package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// closingScene additionally implements Closer.
type closingScene struct {
	MockScene
	closed int
}

func (c *closingScene) Close() {
	c.closed++
}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected current scene to be nil initially")
	}
}

func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.GetCurrentScene() != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	// Should not panic
	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(1, 1))
	sm.Close()
}

func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Draw(ebiten.NewImage(10, 10))

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

func TestSceneManagerClosesScenes(t *testing.T) {
	sm := NewSceneManager()
	first := &closingScene{}
	second := &closingScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(second)
	if first.closed != 1 {
		t.Errorf("previous scene closed %d times, want 1", first.closed)
	}
	if second.closed != 0 {
		t.Errorf("active scene closed early")
	}

	sm.Close()
	if second.closed != 1 {
		t.Errorf("active scene closed %d times, want 1", second.closed)
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Close should clear the current scene")
	}

	// A second Close is a no-op.
	sm.Close()
	if second.closed != 1 {
		t.Errorf("scene closed again after manager Close")
	}
}
