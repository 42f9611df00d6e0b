package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/archit-roy/interactive-bouquet/pkg/bouquet"
	"github.com/archit-roy/interactive-bouquet/pkg/config"
	"github.com/archit-roy/interactive-bouquet/pkg/ecs"
	"github.com/archit-roy/interactive-bouquet/pkg/entities"
	"github.com/archit-roy/interactive-bouquet/pkg/game"
	"github.com/archit-roy/interactive-bouquet/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	panelColor = color.RGBA{R: 0x24, G: 0x27, B: 0x38, A: 0xff}
	labelColor = color.RGBA{R: 0xd8, G: 0xdc, B: 0xe8, A: 0xff}
)

// EditorScene 是花束编辑器的唯一场景
//
// 左侧面板：花朵和花瓶目录、标题输入框、撤销/重做/保存按钮
// 右侧：画布（由 RenderSystem 绘制）
//
// 每帧顺序：
//  1. ResourceManager.Pump / ExportManager.Pump（交付异步结果）
//  2. 输入分发（按钮、输入框、画布）
//  3. 文字输入、提示淡出
type EditorScene struct {
	resourceManager *game.ResourceManager
	exporter        *game.ExportManager
	catalog         *config.CatalogConfig
	editor          *bouquet.Editor
	entityManager   *ecs.EntityManager
	uiFont          *text.GoTextFace

	inputSystem           *systems.InputSystem
	buttonSystem          *systems.ButtonSystem
	textInputSystem       *systems.TextInputSystem
	renderSystem          *systems.RenderSystem
	buttonRenderSystem    *systems.ButtonRenderSystem
	textInputRenderSystem *systems.TextInputRenderSystem
	toastSystem           *systems.ToastSystem

	flowerButtons []ecs.EntityID
	vaseButtons   []ecs.EntityID
	captionField  ecs.EntityID
	undoButton    ecs.EntityID
	redoButton    ecs.EntityID
	saveButton    ecs.EntityID
}

// NewEditorScene 创建编辑器场景
//
// 参数：
//   - rm: 资源管理器，同时作为编辑器的图片解析器
//   - exporter: 导出管理器
//   - catalog: 目录配置
//   - rng: 新花朵位置的随机源，nil 时使用默认随机源
//
// 返回：
//   - 场景实例，字体加载失败时返回错误
func NewEditorScene(rm *game.ResourceManager, exporter *game.ExportManager, catalog *config.CatalogConfig, rng *rand.Rand) (*EditorScene, error) {
	uiFont, err := rm.LoadFont(config.UIFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load UI font: %w", err)
	}
	captionFont, err := rm.LoadFont(config.CaptionFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load caption font: %w", err)
	}

	scene := &EditorScene{
		resourceManager: rm,
		exporter:        exporter,
		catalog:         catalog,
		uiFont:          uiFont,
		entityManager:   ecs.NewEntityManager(),
	}
	scene.editor = bouquet.NewEditor(bouquet.Options{Resolver: rm, Rand: rng})

	scene.buttonSystem = systems.NewButtonSystem(scene.entityManager)
	scene.textInputSystem = systems.NewTextInputSystem(scene.entityManager)
	scene.inputSystem = systems.NewInputSystem(scene.editor, scene.buttonSystem, scene.textInputSystem)
	scene.renderSystem = systems.NewRenderSystem(scene.editor, captionFont, catalog.BackgroundColor(), catalog.CaptionColor())
	scene.buttonRenderSystem = systems.NewButtonRenderSystem(scene.entityManager)
	scene.textInputRenderSystem = systems.NewTextInputRenderSystem(scene.entityManager)
	scene.toastSystem = systems.NewToastSystem(scene.entityManager, uiFont)

	scene.createPanel()
	log.Printf("[EditorScene] Initialized with %d flowers, %d vases", len(catalog.Flowers), len(catalog.Vases))
	return scene, nil
}

// createPanel 创建左侧面板的全部 UI 实体
func (s *EditorScene) createPanel() {
	em := s.entityManager

	s.flowerButtons = entities.NewCatalogRow(em, s.resourceManager, s.catalog.Flowers, config.FlowerThumbsY, func(path string) {
		s.editor.AddFlower(path)
	})
	s.vaseButtons = entities.NewCatalogRow(em, s.resourceManager, s.catalog.Vases, config.VaseThumbsY, func(path string) {
		s.editor.SelectVase(path)
	})

	s.captionField = entities.NewCaptionField(em, s.uiFont, s.editor.SetCaption)

	s.undoButton = entities.NewToolbarButton(em, s.uiFont, "Undo", 0, s.editor.CanUndo, func() {
		s.editor.Undo()
	})
	s.redoButton = entities.NewToolbarButton(em, s.uiFont, "Redo", 1, s.editor.CanRedo, func() {
		s.editor.Redo()
	})
	s.saveButton = entities.NewToolbarButton(em, s.uiFont, "Save", 2, func() bool {
		return !s.exporter.Busy()
	}, s.Save)
}

// Editor 返回场景持有的编辑器
func (s *EditorScene) Editor() *bouquet.Editor {
	return s.editor
}

// Save 导出当前画布为 bouquet.png，结果以提示文字显示
func (s *EditorScene) Save() {
	if s.exporter.Busy() {
		return
	}
	// 导出的必须是最新画面
	s.renderSystem.Flush()
	s.exporter.Export(s.renderSystem.Canvas(), s.onExported)
}

func (s *EditorScene) onExported(result game.ExportResult) {
	s.toastSystem.Show(exportMessage(result), result.Err != nil, config.PanelX, config.ToastY)
}

// exportMessage 生成导出结果的提示文字
func exportMessage(result game.ExportResult) string {
	switch {
	case result.Err != nil:
		return "Save failed: " + result.Err.Error()
	case result.Path != "":
		return "Saved " + result.Path
	default:
		return "Saved " + config.ExportFileName
	}
}

// Update 更新场景逻辑
func (s *EditorScene) Update(deltaTime float64) {
	s.resourceManager.Pump()
	s.exporter.Pump()

	s.inputSystem.Update(deltaTime)
	s.textInputSystem.Update(deltaTime)
	s.toastSystem.Update(deltaTime)
}

// Draw 绘制面板和画布
func (s *EditorScene) Draw(screen *ebiten.Image) {
	screen.Fill(panelColor)

	s.drawLabel(screen, "Flowers", config.FlowerLabelY)
	s.drawLabel(screen, "Vases", config.VaseLabelY)
	s.drawLabel(screen, "Caption", config.CaptionLabelY)

	s.buttonRenderSystem.Draw(screen)
	s.textInputRenderSystem.Draw(screen)
	s.renderSystem.Draw(screen)
	s.toastSystem.Draw(screen)
}

func (s *EditorScene) drawLabel(screen *ebiten.Image, label string, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(config.PanelX, y)
	op.ColorScale.ScaleWithColor(labelColor)
	text.Draw(screen, label, s.uiFont, op)
}

// Close 等待进行中的导出完成，并交付其结果
func (s *EditorScene) Close() {
	s.exporter.Wait()
	s.exporter.Pump()
}
