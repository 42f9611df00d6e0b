package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the application (the bouquet editor).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，用于在程序退出前等待场景的后台任务结束
//
// 实现此接口的场景会在以下时机被调用 Close()：
//   - 窗口关闭，RunGame 返回之后
//   - 切换到其他场景之前
type Closer interface {
	Close()
}
