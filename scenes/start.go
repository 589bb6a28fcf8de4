package scenes

import (
	"sync"

	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartScene is the title screen. Any click or key press opens the level
// select.
type StartScene struct {
	ecs     *ecs.ECS
	changer SceneChanger
	once    sync.Once
}

func NewStartScene(sc SceneChanger) *StartScene {
	return &StartScene{changer: sc}
}

func (s *StartScene) Update() {
	s.once.Do(s.build)
	s.ecs.Update()
}

func (s *StartScene) Draw(screen *ebiten.Image) {
	clearScreen(screen)
	if s.ecs != nil {
		s.ecs.Draw(screen)
	}
}

func (s *StartScene) build() {
	s.ecs = ecs.NewECS(donburi.NewWorld())

	s.ecs.AddSystem(systems.UpdateAudio)
	s.ecs.AddSystem(systems.UpdateInput)
	s.ecs.AddSystem(systems.NewUpdateMenu(func() {
		s.changer.ChangeScene(NewLevelSelectScene(s.changer))
	}))

	s.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
