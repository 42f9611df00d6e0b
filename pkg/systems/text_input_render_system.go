package systems

import (
	"image/color"

	"github.com/archit-roy/interactive-bouquet/pkg/components"
	"github.com/archit-roy/interactive-bouquet/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	inputBackgroundColor  = color.RGBA{30, 32, 46, 255}
	inputBorderColor      = color.RGBA{110, 116, 150, 255}
	inputFocusBorderColor = color.RGBA{230, 190, 90, 255}
	inputTextColor        = color.RGBA{245, 245, 245, 255}
	inputPlaceholderColor = color.RGBA{150, 150, 150, 255}
)

// TextInputRenderSystem 文本输入框渲染系统
// 负责绘制输入框边框、背景、文本和光标
type TextInputRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewTextInputRenderSystem 创建文本输入框渲染系统
func NewTextInputRenderSystem(em *ecs.EntityManager) *TextInputRenderSystem {
	return &TextInputRenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有文本输入框
func (s *TextInputRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		s.DrawInputBox(screen, input, pos)
	}
}

// DrawInputBox 绘制单个输入框
func (s *TextInputRenderSystem) DrawInputBox(screen *ebiten.Image, input *components.TextInputComponent, pos *components.PositionComponent) {
	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(input.Width), float32(input.Height)

	// 1. 背景和边框
	vector.DrawFilledRect(screen, x, y, w, h, inputBackgroundColor, true)
	border := inputBorderColor
	if input.IsFocused {
		border = inputFocusBorderColor
	}
	vector.StrokeRect(screen, x, y, w, h, 1, border, true)

	// 2. 文本或占位符
	textX := pos.X + input.PaddingLeft
	textY := pos.Y + input.Height/2 // 垂直居中

	if input.Text == "" && input.Placeholder != "" && !input.IsFocused {
		s.drawText(screen, input.Font, input.Placeholder, textX, textY, inputPlaceholderColor)
	} else if input.Text != "" {
		s.drawText(screen, input.Font, input.Text, textX, textY, inputTextColor)
	}

	// 3. 光标（闪烁的竖线）
	if input.IsFocused && input.CursorVisible {
		s.drawCursor(screen, input, textX, textY)
	}
}

// drawText 绘制文本（垂直居中对齐）
func (s *TextInputRenderSystem) drawText(screen *ebiten.Image, font *text.GoTextFace, txt string, x, y float64, clr color.Color) {
	if font == nil || txt == "" {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignCenter

	text.Draw(screen, txt, font, op)
}

// drawCursor 绘制光标
func (s *TextInputRenderSystem) drawCursor(screen *ebiten.Image, input *components.TextInputComponent, textX, textY float64) {
	if input.Font == nil {
		return
	}

	// 光标在第 N 个字符后面
	runes := []rune(input.Text)
	cursor := min(max(input.CursorPosition, 0), len(runes))

	var textWidth float64
	if cursor > 0 {
		textWidth, _ = text.Measure(string(runes[:cursor]), input.Font, 0)
	}

	cursorX := float32(textX + textWidth)
	top := float32(textY - input.Height/4)
	bottom := float32(textY + input.Height/4)
	vector.StrokeLine(screen, cursorX, top, cursorX, bottom, 2, inputTextColor, true)
}
