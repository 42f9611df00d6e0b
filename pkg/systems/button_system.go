package systems

import (
	"github.com/archit-roy/interactive-bouquet/pkg/components"
	"github.com/archit-roy/interactive-bouquet/pkg/ecs"
	"github.com/archit-roy/interactive-bouquet/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的悬停、按下、点击等交互逻辑
//
// 职责：
//   - 每帧通过 IsEnabled 刷新按钮可用状态
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测点击（在同一按钮上按下并释放时触发 OnClick 回调）
//
// 指针事件由 InputSystem 统一采集后传入，鼠标和触摸走同一条路径。
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	pressed       ecs.EntityID // 当前按下的按钮，0 表示没有
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 根据本帧指针事件更新按钮状态并触发回调
// 返回该事件是否属于按钮（按下发生在按钮上，或正在按住按钮）
func (s *ButtonSystem) Update(ev utils.PointerEvent) bool {
	x, y := float64(ev.X), float64(ev.Y)
	consumed := false
	var clicked func()

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if button.IsEnabled != nil {
			button.Enabled = button.IsEnabled()
		}

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			if s.pressed == entityID {
				s.pressed = 0
			}
			continue
		}

		isHovered := s.isPointerInButton(x, y, pos.X, pos.Y, button.Width, button.Height)

		switch ev.Phase {
		case utils.PointerPressed:
			if isHovered {
				s.pressed = entityID
				button.State = components.UIClicked
				consumed = true
				continue
			}
		case utils.PointerHeld:
			if s.pressed == entityID {
				consumed = true
				if isHovered {
					button.State = components.UIClicked
				} else {
					button.State = components.UINormal
				}
				continue
			}
		case utils.PointerReleased:
			if s.pressed == entityID {
				consumed = true
				if isHovered {
					clicked = button.OnClick
				}
			}
		}

		// 触摸没有悬停的概念，抬起后恢复正常状态
		if isHovered && !ev.IsTouch {
			button.State = components.UIHovered
		} else {
			button.State = components.UINormal
		}
	}

	if ev.Phase == utils.PointerReleased {
		s.pressed = 0
	}

	// 回调放在遍历之后执行，回调中可能会增删实体
	if clicked != nil {
		clicked()
	}
	return consumed
}

// isPointerInButton 检测指针是否在按钮范围内
func (s *ButtonSystem) isPointerInButton(px, py, buttonX, buttonY, buttonWidth, buttonHeight float64) bool {
	return px >= buttonX &&
		px < buttonX+buttonWidth &&
		py >= buttonY &&
		py < buttonY+buttonHeight
}
