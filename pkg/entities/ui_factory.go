package entities

import (
	"github.com/archit-roy/interactive-bouquet/pkg/bouquet"
	"github.com/archit-roy/interactive-bouquet/pkg/components"
	"github.com/archit-roy/interactive-bouquet/pkg/config"
	"github.com/archit-roy/interactive-bouquet/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewCatalogThumbnail 创建目录缩略图按钮实体
// 图片通过 resolver 异步加载，加载完成前按钮只显示边框
//
// 参数：
//   - em: 实体管理器
//   - resolver: 图片解析器
//   - item: 目录条目（名称和资源路径）
//   - x, y: 按钮位置（窗口坐标）
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewCatalogThumbnail(
	em *ecs.EntityManager,
	resolver bouquet.ImageResolver,
	item config.CatalogItem,
	x, y float64,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	button := &components.ButtonComponent{
		Type:    components.ButtonTypeThumbnail,
		Text:    item.Name,
		Width:   config.ThumbnailSize,
		Height:  config.ThumbnailSize,
		State:   components.UINormal,
		Enabled: true,
		OnClick: onClick,
	}
	ecs.AddComponent(em, entity, button)

	if resolver != nil {
		resolver.Resolve(item.Path, func(img *ebiten.Image) {
			if em.Exists(entity) {
				button.Image = img
			}
		})
	}
	return entity
}

// NewCatalogRow 为一组目录条目创建缩略图，从 rowY 开始按行排列
// onSelect 收到被点击条目的资源路径
func NewCatalogRow(
	em *ecs.EntityManager,
	resolver bouquet.ImageResolver,
	items []config.CatalogItem,
	rowY float64,
	onSelect func(path string),
) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(items))
	for i, item := range items {
		path := item.Path
		x, y := config.ThumbnailPosition(i, rowY)
		ids = append(ids, NewCatalogThumbnail(em, resolver, item, x, y, func() {
			onSelect(path)
		}))
	}
	return ids
}

// NewToolbarButton 创建工具栏文字按钮实体
//
// 参数：
//   - em: 实体管理器
//   - font: 按钮文字字体
//   - label: 按钮文字
//   - index: 工具栏中的位置（从左到右，从 0 开始）
//   - isEnabled: 每帧查询的可用状态，nil 表示始终可用
//   - onClick: 点击回调函数
func NewToolbarButton(
	em *ecs.EntityManager,
	font *text.GoTextFace,
	label string,
	index int,
	isEnabled func() bool,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()

	x := config.PanelX + float64(index)*(config.ToolbarButtonW+config.ToolbarGap)
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: config.ToolbarY})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Type:      components.ButtonTypeLabel,
		Text:      label,
		Font:      font,
		Width:     config.ToolbarButtonW,
		Height:    config.ToolbarButtonH,
		State:     components.UINormal,
		Enabled:   isEnabled == nil || isEnabled(),
		IsEnabled: isEnabled,
		OnClick:   onClick,
	})
	return entity
}

// NewCaptionField 创建文字输入框实体
// 每次内容变化都会调用 onChange
func NewCaptionField(
	em *ecs.EntityManager,
	font *text.GoTextFace,
	onChange func(text string),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: config.PanelX,
		Y: config.CaptionFieldY,
	})
	ecs.AddComponent(em, entity, &components.TextInputComponent{
		Width:       config.CaptionFieldWidth,
		Height:      config.CaptionFieldHeight,
		Font:        font,
		MaxLength:   config.CaptionMaxLength,
		Placeholder: "Write a message...",
		PaddingLeft: 8,
		OnChange:    onChange,
	})
	return entity
}
