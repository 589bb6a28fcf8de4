package scenes

import (
	"math/rand"
	"path/filepath"
	"sync"

	"github.com/automoto/ninja-platformer/assets"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/systems"
	"github.com/automoto/ninja-platformer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene plays one level of the roster. Dying or editing the level
// file on disk rebuilds the level from its definition.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	roster       []cfg.LevelDef
	levelIndex   int
	rng          *rand.Rand
	watcher      *cfg.LevelWatcher
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger, roster []cfg.LevelDef, levelIndex int) *PlatformerScene {
	return &PlatformerScene{
		sceneChanger: sc,
		roster:       roster,
		levelIndex:   levelIndex,
		rng:          rand.New(rand.NewSource(rand.Int63())),
	}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.IrisClosed(ps.ecs) {
		log.Info().Str("level", ps.def().Name).Msg("resetting level")
		ps.load()
		return
	}

	if systems.GetOrCreatePause(ps.ecs).QuitRequested {
		ps.leave()
		return
	}

	if systems.GetOrCreateLevelComplete(ps.ecs).Finished {
		ps.leave()
		return
	}

	if ps.watcher != nil {
		changed, err := ps.watcher.Poll()
		if err != nil {
			log.Warn().Err(err).Msg("level watcher")
		}
		if changed {
			log.Info().Str("level", ps.def().Name).Msg("level file changed, reloading")
			ps.load()
		}
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	clearScreen(screen)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) def() cfg.LevelDef {
	return ps.roster[ps.levelIndex]
}

func (ps *PlatformerScene) leave() {
	systems.FadeOutMusic()
	if ps.watcher != nil {
		_ = ps.watcher.Close()
	}
	ps.sceneChanger.ChangeScene(NewLevelSelectScene(ps.sceneChanger))
}

func (ps *PlatformerScene) configure() {
	// Preload assets to avoid a hitch on first use
	systems.PreloadAllSFX()
	assets.PreloadAllAnimations()

	if err := assets.LoadShaders(); err != nil {
		panic("failed to load shaders: " + err.Error())
	}

	if dir := cfg.Debug.LevelDir; dir != "" {
		levelDir := filepath.Join(dir, filepath.Dir(ps.def().Tilemap))
		w, err := cfg.NewLevelWatcher(dir, levelDir)
		if err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("could not watch level directory")
		} else {
			ps.watcher = w
		}
	}

	ps.load()
}

// load discards all per-level state and builds it again from the level
// definition.
func (ps *PlatformerScene) load() {
	def := ps.def()
	lvl, err := assets.LoadLevel(def)
	if err != nil {
		panic("failed to load level " + def.Name + ": " + err.Error())
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems, skipped while paused
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateClouds))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateLeaves))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.ResolveContactDamage))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.CleanupRosters))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateIris))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateLevelComplete))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawLeaves)
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawEnemies)
	ecs.AddRenderer(cfg.Default, systems.DrawProjectiles)
	ecs.AddRenderer(cfg.Default, systems.DrawHealthBars)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawLevelComplete)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)
	ecs.AddRenderer(cfg.Default, systems.DrawIris)

	factory.PopulateLevel(ecs, def, ps.levelIndex, lvl, ps.rng)
	ps.ecs = ecs

	systems.PlayMusic(cfg.Sound.LevelMusic)
	log.Info().
		Str("level", def.Name).
		Int("enemies", len(lvl.EnemySpawns)).
		Int("bosses", len(lvl.BossSpawns)).
		Msg("level loaded")
}
