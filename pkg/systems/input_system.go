package systems

import (
	"github.com/archit-roy/interactive-bouquet/pkg/bouquet"
	"github.com/archit-roy/interactive-bouquet/pkg/config"
	"github.com/archit-roy/interactive-bouquet/pkg/utils"
)

// InputSystem 处理所有指针输入（鼠标、触摸、滚轮）并分发
//
// 分发顺序：
//   - 按钮（目录缩略图、工具栏）
//   - 文字输入框（焦点切换）
//   - 画布：窗口坐标转换为画布坐标后交给编辑器（拖拽、滚轮缩放）
//
// 一次手势（按下到抬起）只归属于按下时命中的目标。
// 在画布上开始的拖拽，指针移出画布即结束。
type InputSystem struct {
	editor    *bouquet.Editor
	buttons   *ButtonSystem
	textInput *TextInputSystem
	tracker   *utils.PointerTracker

	canvasGesture bool // 当前手势是否在画布上开始
}

// NewInputSystem 创建一个新的输入系统
func NewInputSystem(editor *bouquet.Editor, buttons *ButtonSystem, textInput *TextInputSystem) *InputSystem {
	return &InputSystem{
		editor:    editor,
		buttons:   buttons,
		textInput: textInput,
		tracker:   utils.NewPointerTracker(),
	}
}

// Update 采集本帧输入并分发
func (s *InputSystem) Update(deltaTime float64) {
	ev := s.tracker.Update()
	s.HandlePointer(ev)
	if !ev.IsTouch {
		s.HandleWheel(ev.X, ev.Y, utils.WheelNotch())
	}
}

// HandlePointer 分发一帧的指针事件
func (s *InputSystem) HandlePointer(ev utils.PointerEvent) {
	onButton := s.buttons.Update(ev)

	switch ev.Phase {
	case utils.PointerPressed:
		focused := s.textInput.Focus(ev)
		if onButton || focused {
			return
		}
		cx, cy := config.WindowToCanvas(float64(ev.X), float64(ev.Y))
		if !config.InCanvas(cx, cy) {
			return
		}
		s.canvasGesture = true
		s.editor.PointerDown(cx, cy)

	case utils.PointerHeld:
		if !s.canvasGesture {
			return
		}
		cx, cy := config.WindowToCanvas(float64(ev.X), float64(ev.Y))
		if !config.InCanvas(cx, cy) {
			// 指针离开画布，结束拖拽
			s.endCanvasGesture()
			return
		}
		s.editor.PointerMove(cx, cy)

	case utils.PointerReleased:
		if s.canvasGesture {
			s.endCanvasGesture()
		}
	}
}

// HandleWheel 处理滚轮：notch > 0 放大，notch < 0 缩小
func (s *InputSystem) HandleWheel(x, y, notch int) {
	if notch == 0 {
		return
	}
	cx, cy := config.WindowToCanvas(float64(x), float64(y))
	if !config.InCanvas(cx, cy) {
		return
	}

	dir := bouquet.WheelUp
	if notch < 0 {
		dir = bouquet.WheelDown
	}
	s.editor.Wheel(cx, cy, dir)
}

func (s *InputSystem) endCanvasGesture() {
	s.canvasGesture = false
	if s.editor.Dragged() != 0 {
		s.editor.PointerUp()
	}
}
