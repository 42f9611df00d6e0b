package systems

import (
	"image/color"
	"math"

	"github.com/archit-roy/interactive-bouquet/pkg/bouquet"
	"github.com/archit-roy/interactive-bouquet/pkg/config"
	"github.com/archit-roy/interactive-bouquet/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var dragOutlineColor = color.RGBA{230, 230, 230, 230} // 白色 90% 不透明（预乘）

// RenderSystem 管理画布（花束构图区域）的渲染
//
// 职责范围：
//   - 离屏画布：只在编辑器标记为脏时重绘，每帧把画布贴到屏幕上
//   - 绘制顺序：花朵（按列表顺序，从后到前）→ 花瓶（带投影）→ 文字
//   - 正在拖拽的花朵绘制白色描边
//
// 不包括：
//   - 侧边栏 UI（按钮、输入框）由专门的渲染系统处理
//
// 画布同时作为导出 PNG 的来源（见 Canvas）。
type RenderSystem struct {
	editor       *bouquet.Editor
	canvas       *ebiten.Image
	background   color.Color
	captionColor color.Color
	captionFont  *text.GoTextFace
	repaints     int // 重绘次数（调试用）
}

// NewRenderSystem 创建一个新的画布渲染系统
//
// 参数：
//   - editor: 花束编辑器，提供模型和脏标记
//   - captionFont: 文字字体（18px）
//   - background: 画布背景色
//   - captionColor: 文字颜色
func NewRenderSystem(editor *bouquet.Editor, captionFont *text.GoTextFace, background, captionColor color.Color) *RenderSystem {
	return &RenderSystem{
		editor:       editor,
		canvas:       ebiten.NewImage(config.CanvasWidth, config.CanvasHeight),
		background:   background,
		captionColor: captionColor,
		captionFont:  captionFont,
	}
}

// Canvas 返回构图画布（导出时读取像素）
func (s *RenderSystem) Canvas() *ebiten.Image {
	return s.canvas
}

// Repaints 返回画布被重绘的次数
func (s *RenderSystem) Repaints() int {
	return s.repaints
}

// Draw 在需要时重绘画布，然后把画布绘制到屏幕的画布位置
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.Flush()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(config.CanvasX, config.CanvasY)
	screen.DrawImage(s.canvas, op)
}

// Flush 如果编辑器标记为脏则立即重绘画布
// 脏标记在重绘前清除，重绘期间发生的修改会触发下一次重绘
func (s *RenderSystem) Flush() bool {
	if !s.editor.ConsumeDirty() {
		return false
	}
	s.repaint()
	return true
}

// repaint 按固定顺序重绘整个画布
func (s *RenderSystem) repaint() {
	s.repaints++
	s.canvas.Fill(s.background)

	model := s.editor.Model()
	dragged := s.editor.Dragged()

	for _, f := range model.Flowers() {
		s.drawFlower(f, f.ID == dragged)
	}
	if vase, ok := model.Vase(); ok {
		s.drawVase(vase)
	}
	s.drawCaption(model.Caption())
}

// drawFlower 绘制一朵花：以几何中心为原点缩放
// 图片尚未加载时跳过图片，但仍绘制拖拽描边
func (s *RenderSystem) drawFlower(f bouquet.Sprite, dragged bool) {
	if f.Image != nil {
		b := f.Image.Bounds()
		x, y, w, h := FlowerDrawRect(f)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
		op.GeoM.Translate(x, y)
		op.Filter = ebiten.FilterLinear
		s.canvas.DrawImage(f.Image, op)
	}

	if dragged {
		x, y, w, h := OutlineRect(f)
		vector.StrokeRect(s.canvas, float32(x), float32(y), float32(w), float32(h),
			float32(config.DragOutlineWidth*f.Scale), dragOutlineColor, true)
	}
}

// drawVase 绘制花瓶和投影
// 投影用多层偏移的半透明黑色剪影近似模糊效果
func (s *RenderSystem) drawVase(v bouquet.Sprite) {
	if v.Image == nil {
		return
	}
	b := v.Image.Bounds()
	sx, sy := v.Width/float64(b.Dx()), v.Height/float64(b.Dy())

	for _, off := range shadowOffsets() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(v.X+off[0], v.Y+off[1])
		op.ColorScale.Scale(0, 0, 0, float32(off[2]))
		op.Filter = ebiten.FilterLinear
		s.canvas.DrawImage(v.Image, op)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(v.X, v.Y)
	op.Filter = ebiten.FilterLinear
	s.canvas.DrawImage(v.Image, op)
}

// drawCaption 绘制文字：水平居中，基线位于 CaptionY
func (s *RenderSystem) drawCaption(caption string) {
	if caption == "" || s.captionFont == nil {
		return
	}

	x := utils.CenteredTextX(caption, s.captionFont, 0, config.CanvasWidth)
	m := s.captionFont.Metrics()

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, config.CaptionY-m.HAscent)
	op.ColorScale.ScaleWithColor(s.captionColor)
	text.Draw(s.canvas, caption, s.captionFont, op)
}

// OutlineRect 返回拖拽描边的矩形（画布坐标）
// 描边在花朵框外 DragOutlinePadding 处，与花朵一起绕中心缩放
func OutlineRect(f bouquet.Sprite) (x, y, w, h float64) {
	cx, cy := f.X+f.Width/2, f.Y+f.Height/2
	w = (f.Width + 2*config.DragOutlinePadding) * f.Scale
	h = (f.Height + 2*config.DragOutlinePadding) * f.Scale
	return cx - w/2, cy - h/2, w, h
}

// FlowerDrawRect 返回花朵实际绘制的矩形（画布坐标）
func FlowerDrawRect(f bouquet.Sprite) (x, y, w, h float64) {
	cx, cy := f.X+f.Width/2, f.Y+f.Height/2
	w, h = f.Width*f.Scale, f.Height*f.Scale
	return cx - w/2, cy - h/2, w, h
}

// shadowOffsets 返回投影各层的 (dx, dy, alpha)
// 三圈、每圈八个方向，总体不透明度约为 VaseShadowAlpha
func shadowOffsets() [][3]float64 {
	const rings, directions = 3, 8
	alpha := config.VaseShadowAlpha / (rings * directions / 2)

	offsets := make([][3]float64, 0, rings*directions)
	for r := 1; r <= rings; r++ {
		radius := config.VaseShadowBlur / 2 * float64(r) / rings
		for d := 0; d < directions; d++ {
			angle := 2 * math.Pi * float64(d) / directions
			offsets = append(offsets, [3]float64{
				radius * math.Cos(angle),
				radius * math.Sin(angle),
				alpha,
			})
		}
	}
	return offsets
}
