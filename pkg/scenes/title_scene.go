package scenes

import (
	"log"

	"github.com/decker502/tennis/pkg/config"
	"github.com/decker502/tennis/pkg/ecs"
	"github.com/decker502/tennis/pkg/entities"
	"github.com/decker502/tennis/pkg/game"
	"github.com/decker502/tennis/pkg/intro"
	"github.com/decker502/tennis/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// TitleScene 标题屏幕
//
// 黑色背景上主标题从屏幕外落下，停顿后显示副标题，保持一段时间后切换到主菜单。
// 每次进入 Title 状态都会创建新实例（序列器不会重置）。
type TitleScene struct {
	sceneManager *game.SceneManager

	entityManager *ecs.EntityManager
	resources     *ecs.ScreenResources
	entities      entities.TitleEntities

	revealSystem *systems.TitleRevealSystem
	renderSystem *systems.TextRenderSystem

	exited bool
}

// NewTitleScene 创建标题场景
//
// 参数:
//   - sm: 场景管理器，序列完成后通过它请求切换到 MainMenu
//   - fm: 字体管理器（测试中可以为 nil，只是不能绘制）
//   - cfg: 开场序列配置
func NewTitleScene(sm *game.SceneManager, fm *game.FontManager, cfg config.SequenceConfig) (*TitleScene, error) {
	seq, err := intro.NewIntroSequencer(cfg)
	if err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	res := ecs.NewScreenResources(em)
	ids := entities.NewTitleEntities(res, cfg)

	scene := &TitleScene{
		sceneManager:  sm,
		entityManager: em,
		resources:     res,
		entities:      ids,
		revealSystem:  systems.NewTitleRevealSystem(em, seq, ids.Title, ids.Subtitle),
		renderSystem:  systems.NewTextRenderSystem(em, fm),
	}

	scene.revealSystem.SetCompleteCallback(scene.onSequenceComplete)

	log.Printf("[TitleScene] 创建标题场景 (总时长 %.2fs, 缓动 %s)", cfg.TotalDuration(), cfg.Easing)
	return scene, nil
}

// NewTitleSceneFactory 返回 Title 状态的场景工厂
//
// configFn 在每次进入 Title 时调用，热重载后的配置因此只影响下一个实例。
// 配置无效时记录日志并回退到默认配置。
func NewTitleSceneFactory(fm *game.FontManager, configFn func() config.SequenceConfig) game.SceneFactory {
	return func(sm *game.SceneManager) game.Scene {
		scene, err := NewTitleScene(sm, fm, configFn())
		if err != nil {
			log.Printf("[TitleScene] 配置无效，使用默认配置: %v", err)
			scene, _ = NewTitleScene(sm, fm, config.DefaultSequenceConfig())
		}
		return scene
	}
}

// onSequenceComplete 序列完成，请求进入主菜单
func (s *TitleScene) onSequenceComplete() {
	if s.sceneManager == nil {
		return
	}
	s.sceneManager.RequestState(game.StateMainMenu)
}

// Update 推进标题序列
func (s *TitleScene) Update(deltaTime float64) {
	if s.exited {
		return
	}
	s.revealSystem.Update(deltaTime)
}

// Draw 绘制黑色背景和可见文本
func (s *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.renderSystem.Draw(screen)
}

// Exit 销毁本屏幕创建的所有实体
func (s *TitleScene) Exit() {
	if s.exited {
		return
	}
	s.exited = true
	s.resources.Release()
	log.Printf("[TitleScene] 退出，已释放标题实体")
}

// Sequencer 返回开场序列器（调试覆盖层使用）
func (s *TitleScene) Sequencer() *intro.IntroSequencer {
	return s.revealSystem.Sequencer()
}

// Entities 返回主标题和副标题实体
func (s *TitleScene) Entities() entities.TitleEntities {
	return s.entities
}

// EntityManager 返回本屏幕的实体管理器
func (s *TitleScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}
