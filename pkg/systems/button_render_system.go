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
	buttonNormalColor   = color.RGBA{72, 78, 110, 255}
	buttonHoverColor    = color.RGBA{96, 104, 146, 255}
	buttonPressedColor  = color.RGBA{52, 56, 82, 255}
	buttonDisabledColor = color.RGBA{60, 62, 74, 255}
	buttonTextColor     = color.RGBA{240, 240, 240, 255}
	buttonTextDisabled  = color.RGBA{130, 130, 140, 255}
	thumbnailFrameColor = color.RGBA{255, 255, 255, 90}
	thumbnailHoverColor = color.RGBA{255, 255, 255, 230}
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有按钮实体（文字按钮和缩略图按钮）
//
// 职责：
//   - 渲染按钮背景（根据状态选择颜色）
//   - 渲染按钮文字（自动居中）
//   - 渲染缩略图（等比缩放到按钮框内）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	switch button.Type {
	case components.ButtonTypeThumbnail:
		s.drawThumbnail(screen, button, pos.X, pos.Y)
	default:
		s.drawLabelButton(screen, button, pos.X, pos.Y)
	}
}

// drawLabelButton 渲染文字按钮
func (s *ButtonRenderSystem) drawLabelButton(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	bg := buttonNormalColor
	switch button.State {
	case components.UIHovered:
		bg = buttonHoverColor
	case components.UIClicked:
		bg = buttonPressedColor
	case components.UIDisabled:
		bg = buttonDisabledColor
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), bg, true)

	if button.Text == "" || button.Font == nil {
		return
	}

	clr := buttonTextColor
	if button.State == components.UIDisabled {
		clr = buttonTextDisabled
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter   // 水平居中
	op.LayoutOptions.SecondaryAlign = text.AlignCenter // 垂直居中
	op.GeoM.Translate(x+button.Width/2, y+button.Height/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, button.Text, button.Font, op)
}

// drawThumbnail 渲染缩略图按钮
// 图片未加载完成时只绘制边框
func (s *ButtonRenderSystem) drawThumbnail(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	if button.Image != nil {
		b := button.Image.Bounds()
		iw, ih := float64(b.Dx()), float64(b.Dy())
		scale := min(button.Width/iw, button.Height/ih)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+(button.Width-iw*scale)/2, y+(button.Height-ih*scale)/2)
		if button.State == components.UIClicked {
			op.ColorScale.Scale(0.8, 0.8, 0.8, 1)
		}
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(button.Image, op)
	}

	frame := thumbnailFrameColor
	if button.State == components.UIHovered || button.State == components.UIClicked {
		frame = thumbnailHoverColor
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), 1, frame, true)
}
