package systems

import (
	"log"
	"unicode"

	"github.com/archit-roy/interactive-bouquet/pkg/components"
	"github.com/archit-roy/interactive-bouquet/pkg/ecs"
	"github.com/archit-roy/interactive-bouquet/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyInput 一帧内与文本编辑相关的键盘输入
type keyInput struct {
	Chars     []rune
	Backspace bool
	Delete    bool
	Left      bool
	Right     bool
	Home      bool
	End       bool
}

// TextInputSystem 文本输入系统
// 处理文本输入框的焦点、键盘输入、光标闪烁等逻辑
//
// 每次内容变化后调用 TextInputComponent.OnChange。
type TextInputSystem struct {
	entityManager *ecs.EntityManager
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager) *TextInputSystem {
	return &TextInputSystem{
		entityManager: em,
	}
}

// Focus 根据指针按下位置切换焦点
// 按在某个输入框内时聚焦该输入框并返回 true，按在其他地方时取消所有焦点
func (s *TextInputSystem) Focus(ev utils.PointerEvent) bool {
	if ev.Phase != utils.PointerPressed {
		return false
	}
	x, y := float64(ev.X), float64(ev.Y)
	hit := false

	entities := ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		inside := x >= pos.X && x < pos.X+input.Width && y >= pos.Y && y < pos.Y+input.Height
		if inside && !hit {
			hit = true
			if !input.IsFocused {
				input.IsFocused = true
				input.CursorPosition = len([]rune(input.Text))
			}
			input.CursorBlinkTimer = 0
			input.CursorVisible = true
			continue
		}
		input.IsFocused = false
	}
	return hit
}

// Update 更新文本输入系统
func (s *TextInputSystem) Update(deltaTime float64) {
	var keys *keyInput

	entities := ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager)
	for _, entityID := range entities {
		input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		// 只处理获得焦点的输入框
		if !input.IsFocused {
			input.CursorVisible = false
			continue
		}

		s.updateCursorBlink(input, deltaTime)

		if keys == nil {
			k := pollKeys()
			keys = &k
		}
		s.applyKeys(input, *keys)
	}
}

// updateCursorBlink 更新光标闪烁状态
func (s *TextInputSystem) updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	const blinkInterval = 0.5 // 光标闪烁间隔（秒）

	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= blinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// pollKeys 读取本帧键盘输入
// 使用 KeyPressDuration 支持按住连续删除和移动：第1帧立即响应，之后每隔3帧响应一次
func pollKeys() keyInput {
	return keyInput{
		Chars:     ebiten.AppendInputChars(nil),
		Backspace: repeating(ebiten.KeyBackspace),
		Delete:    repeating(ebiten.KeyDelete),
		Left:      repeating(ebiten.KeyArrowLeft),
		Right:     repeating(ebiten.KeyArrowRight),
		Home:      inpututil.IsKeyJustPressed(ebiten.KeyHome),
		End:       inpututil.IsKeyJustPressed(ebiten.KeyEnd),
	}
}

func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%3 == 0)
}

// applyKeys 把一帧的键盘输入应用到输入框，内容变化时触发 OnChange
func (s *TextInputSystem) applyKeys(input *components.TextInputComponent, keys keyInput) {
	before := input.Text
	touched := false

	if len(keys.Chars) > 0 {
		s.insertText(input, keys.Chars)
		touched = true
	}
	if keys.Backspace {
		s.deleteCharBefore(input)
		touched = true
	}
	if keys.Delete {
		s.deleteCharAfter(input)
		touched = true
	}
	if keys.Left {
		s.moveCursorLeft(input)
		touched = true
	}
	if keys.Right {
		s.moveCursorRight(input)
		touched = true
	}
	if keys.Home {
		input.CursorPosition = 0
		touched = true
	}
	if keys.End {
		input.CursorPosition = len([]rune(input.Text))
		touched = true
	}

	if touched {
		// 有输入时光标应该可见
		input.CursorBlinkTimer = 0
		input.CursorVisible = true
	}

	if input.Text != before && input.OnChange != nil {
		input.OnChange(input.Text)
	}
}

// insertText 在光标位置插入文本
// 控制字符被过滤，超出 MaxLength 的部分被截断
func (s *TextInputSystem) insertText(input *components.TextInputComponent, chars []rune) {
	filtered := make([]rune, 0, len(chars))
	for _, r := range chars {
		if unicode.IsPrint(r) {
			filtered = append(filtered, r)
		}
	}

	runes := []rune(input.Text)
	if input.MaxLength > 0 {
		room := input.MaxLength - len(runes)
		if room <= 0 {
			log.Printf("[TextInputSystem] Max length reached (%d runes)", input.MaxLength)
			return
		}
		if len(filtered) > room {
			filtered = filtered[:room]
		}
	}
	if len(filtered) == 0 {
		return
	}

	pos := min(max(input.CursorPosition, 0), len(runes))
	result := make([]rune, 0, len(runes)+len(filtered))
	result = append(result, runes[:pos]...)
	result = append(result, filtered...)
	result = append(result, runes[pos:]...)

	input.Text = string(result)
	input.CursorPosition = pos + len(filtered)
}

// deleteCharBefore 删除光标前的字符（退格）
func (s *TextInputSystem) deleteCharBefore(input *components.TextInputComponent) {
	if input.CursorPosition == 0 {
		return
	}

	runes := []rune(input.Text)
	before := runes[:input.CursorPosition-1]
	after := runes[input.CursorPosition:]

	input.Text = string(append(before, after...))
	input.CursorPosition--
}

// deleteCharAfter 删除光标后的字符（Delete键）
func (s *TextInputSystem) deleteCharAfter(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	if input.CursorPosition >= len(runes) {
		return
	}

	before := runes[:input.CursorPosition]
	after := runes[input.CursorPosition+1:]

	input.Text = string(append(before, after...))
}

// moveCursorLeft 光标左移
func (s *TextInputSystem) moveCursorLeft(input *components.TextInputComponent) {
	if input.CursorPosition > 0 {
		input.CursorPosition--
	}
}

// moveCursorRight 光标右移
func (s *TextInputSystem) moveCursorRight(input *components.TextInputComponent) {
	if input.CursorPosition < len([]rune(input.Text)) {
		input.CursorPosition++
	}
}
