package systems

import (
	"image/color"

	"github.com/archit-roy/interactive-bouquet/pkg/components"
	"github.com/archit-roy/interactive-bouquet/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// toastDuration 提示从出现到完全消失的时间（秒）
	toastDuration = 2.5
)

var (
	toastTextColor  = color.RGBA{240, 240, 240, 255}
	toastErrorColor = color.RGBA{255, 120, 110, 255}
)

// ToastSystem 状态提示系统
// 显示一行短暂的提示文字（如导出结果），随后淡出并销毁实体
//
// 同一时间只保留一条提示，新提示会替换旧提示。
type ToastSystem struct {
	entityManager *ecs.EntityManager
	font          *text.GoTextFace
}

// NewToastSystem 创建状态提示系统
func NewToastSystem(em *ecs.EntityManager, font *text.GoTextFace) *ToastSystem {
	return &ToastSystem{
		entityManager: em,
		font:          font,
	}
}

// Show 在 (x, y) 显示一条提示
func (s *ToastSystem) Show(message string, isError bool, x, y float64) ecs.EntityID {
	for _, id := range ecs.GetEntitiesWith1[*components.ToastComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()

	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.ToastComponent{
		Text:  message,
		Alpha: 1,
		Fade:  gween.New(1, 0, toastDuration, ease.InQuart),
		Error: isError,
	})
	s.entityManager.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	return id
}

// Update 推进淡出动画，动画结束的提示被销毁
func (s *ToastSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ToastComponent](s.entityManager) {
		toast, _ := ecs.GetComponent[*components.ToastComponent](s.entityManager, id)
		if toast.Fade == nil {
			s.entityManager.DestroyEntity(id)
			continue
		}

		alpha, finished := toast.Fade.Update(float32(deltaTime))
		toast.Alpha = alpha
		if finished {
			s.entityManager.DestroyEntity(id)
		}
	}
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制所有提示
func (s *ToastSystem) Draw(screen *ebiten.Image) {
	if s.font == nil {
		return
	}

	entities := ecs.GetEntitiesWith2[*components.ToastComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		toast, _ := ecs.GetComponent[*components.ToastComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if toast.Alpha <= 0 || toast.Text == "" {
			continue
		}

		clr := toastTextColor
		if toast.Error {
			clr = toastErrorColor
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(pos.X, pos.Y)
		op.ColorScale.ScaleWithColor(clr)
		op.ColorScale.ScaleAlpha(toast.Alpha)
		text.Draw(screen, toast.Text, s.font, op)
	}
}
