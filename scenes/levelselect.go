package scenes

import (
	"sync"

	"github.com/automoto/ninja-platformer/assets"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/systems"
	"github.com/automoto/ninja-platformer/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelSelectScene lists the level roster. Each level unlocks once the one
// before it has been completed.
type LevelSelectScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	selectUI     *ui.LevelSelectUI
	roster       []cfg.LevelDef
	once         sync.Once

	selected     int
	shouldGoBack bool
}

func NewLevelSelectScene(sc SceneChanger) *LevelSelectScene {
	return &LevelSelectScene{sceneChanger: sc, selected: -1}
}

func (s *LevelSelectScene) Update() {
	s.once.Do(s.configure)

	s.ecsWorld.Update()
	s.selectUI.Update()

	if s.shouldGoBack {
		s.sceneChanger.ChangeScene(NewStartScene(s.sceneChanger))
		return
	}

	if s.selected >= 0 {
		i := s.selected
		s.selected = -1
		systems.PlayUISound(cfg.SoundMenuSelect)
		s.sceneChanger.ChangeScene(NewPlatformerScene(s.sceneChanger, s.roster, i))
	}
}

func (s *LevelSelectScene) Draw(screen *ebiten.Image) {
	clearScreen(screen)

	if s.ecsWorld == nil || s.selectUI == nil {
		return
	}
	s.selectUI.UI.Draw(screen)
}

func (s *LevelSelectScene) configure() {
	s.ecsWorld = ecs.NewECS(donburi.NewWorld())
	s.ecsWorld.AddSystem(systems.UpdateAudio)

	roster, err := assets.LoadLevelRoster()
	if err != nil {
		panic("failed to load level roster: " + err.Error())
	}
	s.roster = roster

	entries := make([]ui.LevelEntry, len(roster))
	for i, def := range roster {
		entries[i] = ui.LevelEntry{
			Title:     def.Title,
			Unlocked:  systems.IsLevelUnlocked(roster, i),
			Completed: systems.IsLevelCompleted(def.Name),
		}
	}
	log.Debug().Int("levels", len(roster)).Msg("level select")

	s.selectUI = ui.NewLevelSelectUI(entries, assets.Checkmark(),
		func(index int) { s.selected = index },
		func() { s.shouldGoBack = true },
	)
}
