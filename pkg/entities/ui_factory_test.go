package entities

import (
	"testing"

	"github.com/archit-roy/interactive-bouquet/pkg/components"
	"github.com/archit-roy/interactive-bouquet/pkg/config"
	"github.com/archit-roy/interactive-bouquet/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// stubResolver 记录请求，手动完成
type stubResolver struct {
	done map[string]func(*ebiten.Image)
}

func (r *stubResolver) Resolve(path string, done func(*ebiten.Image)) {
	if r.done == nil {
		r.done = make(map[string]func(*ebiten.Image))
	}
	r.done[path] = done
}

func TestNewCatalogThumbnail(t *testing.T) {
	em := ecs.NewEntityManager()
	r := &stubResolver{}
	clicked := false
	item := config.CatalogItem{Name: "rose", Path: "assets/flowers/rose.png"}

	id := NewCatalogThumbnail(em, r, item, 16, 36, func() { clicked = true })

	button, ok := ecs.GetComponent[*components.ButtonComponent](em, id)
	if !ok {
		t.Fatal("缩略图应有 ButtonComponent")
	}
	if button.Type != components.ButtonTypeThumbnail || button.Image != nil {
		t.Error("缩略图应在加载前没有图片")
	}
	if button.Width != config.ThumbnailSize || button.Height != config.ThumbnailSize {
		t.Errorf("Unexpected size %vx%v", button.Width, button.Height)
	}

	img := ebiten.NewImage(4, 4)
	r.done[item.Path](img)
	if button.Image != img {
		t.Error("加载完成后应设置图片")
	}

	button.OnClick()
	if !clicked {
		t.Error("OnClick 应调用回调")
	}
}

func TestNewCatalogThumbnailDestroyedBeforeLoad(t *testing.T) {
	em := ecs.NewEntityManager()
	r := &stubResolver{}
	item := config.CatalogItem{Name: "vase1", Path: "assets/vases/vase1.png"}

	id := NewCatalogThumbnail(em, r, item, 0, 0, nil)
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
	em.DestroyEntity(id)
	em.RemoveMarkedEntities()

	r.done[item.Path](ebiten.NewImage(4, 4))
	if button.Image != nil {
		t.Error("实体销毁后不应再设置图片")
	}
}

func TestNewCatalogRow(t *testing.T) {
	em := ecs.NewEntityManager()
	items := []config.CatalogItem{
		{Name: "a", Path: "assets/flowers/a.png"},
		{Name: "b", Path: "assets/flowers/b.png"},
		{Name: "c", Path: "assets/flowers/c.png"},
		{Name: "d", Path: "assets/flowers/d.png"},
		{Name: "e", Path: "assets/flowers/e.png"},
	}

	var selected []string
	ids := NewCatalogRow(em, nil, items, config.FlowerThumbsY, func(path string) {
		selected = append(selected, path)
	})
	if len(ids) != len(items) {
		t.Fatalf("Expected %d thumbnails, got %d", len(items), len(ids))
	}

	// 第五个缩略图换到第二行
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, ids[4])
	if pos.X != config.PanelX || pos.Y != config.FlowerThumbsY+config.ThumbnailSize+config.ThumbnailGap {
		t.Errorf("Unexpected wrap position (%v,%v)", pos.X, pos.Y)
	}

	for _, id := range ids {
		button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
		button.OnClick()
	}
	if len(selected) != 5 || selected[0] != "assets/flowers/a.png" || selected[4] != "assets/flowers/e.png" {
		t.Errorf("Unexpected selections %v", selected)
	}
}

func TestNewToolbarButton(t *testing.T) {
	em := ecs.NewEntityManager()
	enabled := false
	id := NewToolbarButton(em, nil, "Redo", 1, func() bool { return enabled }, func() {})

	button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if button.Enabled {
		t.Error("初始状态应取自 isEnabled")
	}
	if pos.X != config.PanelX+config.ToolbarButtonW+config.ToolbarGap || pos.Y != config.ToolbarY {
		t.Errorf("Unexpected position (%v,%v)", pos.X, pos.Y)
	}

	always := NewToolbarButton(em, nil, "Save", 2, nil, func() {})
	saveButton, _ := ecs.GetComponent[*components.ButtonComponent](em, always)
	if !saveButton.Enabled {
		t.Error("isEnabled 为 nil 时按钮应始终可用")
	}
}

func TestNewCaptionField(t *testing.T) {
	em := ecs.NewEntityManager()
	var got string
	id := NewCaptionField(em, nil, func(text string) { got = text })

	input, ok := ecs.GetComponent[*components.TextInputComponent](em, id)
	if !ok {
		t.Fatal("输入框应有 TextInputComponent")
	}
	if input.MaxLength != config.CaptionMaxLength {
		t.Errorf("Expected max length %d, got %d", config.CaptionMaxLength, input.MaxLength)
	}
	input.OnChange("hello")
	if got != "hello" {
		t.Errorf("Expected onChange to receive hello, got %q", got)
	}
}
