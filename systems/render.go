package systems

import (
	"math"

	"github.com/automoto/ninja-platformer/assets"
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// drawSprite blits img with its top-left corner at x, y, mirrored
// horizontally when flip is set.
func drawSprite(screen, img *ebiten.Image, x, y float64, flip bool) {
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	if flip {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	drawOp.GeoM.Translate(math.Round(x), math.Round(y))
	screen.DrawImage(img, drawOp)
}

// drawActor draws an actor's frame at its position minus the scroll plus the
// animation offset.
func drawActor(ecs *ecs.ECS, screen *ebiten.Image, e *donburi.Entry) {
	o := components.Object.Get(e)
	anim := components.Animation.Get(e)
	if anim.Current == nil {
		return
	}
	scrollX, scrollY := cameraScroll(ecs)
	img := assets.AnimationImage(anim.Key(), anim.Current)
	drawSprite(screen, img, o.X-scrollX+anim.OffsetX, o.Y-scrollY+anim.OffsetY, anim.Flip)
}

func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	if entry, ok := firstPlayer(ecs); ok {
		drawActor(ecs, screen, entry)
	}
}

func DrawEnemies(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		drawActor(ecs, screen, e)
	})
}

// DrawProjectiles draws each star centred on its hitbox.
func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	scrollX, scrollY := cameraScroll(ecs)
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		img := assets.AnimationImage(anim.Key(), anim.Current)
		cx, cy := components.Object.Get(e).Rect().Center()
		b := img.Bounds()
		drawSprite(screen, img, cx-scrollX-float64(b.Dx())/2, cy-scrollY-float64(b.Dy())/2, false)
	})
}

// DrawHealthBars draws a two-layer bar above every hurt actor.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	scrollX, scrollY := cameraScroll(ecs)
	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		hp := components.Health.Get(e)
		if hp.Current >= hp.Max {
			return
		}
		o := components.Object.Get(e)

		w := cfg.UI.EntityBarWidth
		x := o.X + o.W/2 - w/2 - scrollX
		y := o.Y - cfg.UI.EntityBarGap - cfg.UI.EntityBarHeight - scrollY

		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(cfg.UI.EntityBarHeight), cfg.UI.HealthBarBgColor, false)
		vector.FillRect(screen, float32(x), float32(y), float32(w*hp.Ratio()), float32(cfg.UI.EntityBarHeight), cfg.UI.HealthBarFgColor, false)
	})
}

// DrawDebug outlines hitboxes, ladders and leaf spawners when NINJA_DEBUG=1.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}
	scrollX, scrollY := cameraScroll(ecs)

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		clr := cfg.UI.DebugHitboxColor
		if e.HasComponent(components.Projectile) {
			clr = cfg.UI.DebugProjectileColor
		}
		vector.StrokeRect(screen, float32(o.X-scrollX), float32(o.Y-scrollY), float32(o.W), float32(o.H), 1, clr, false)
	})

	if level, ok := currentLevel(ecs); ok {
		for _, r := range level.Ladders {
			vector.StrokeRect(screen, float32(r.X-scrollX), float32(r.Y-scrollY), float32(r.W), float32(r.H), 1, cfg.Magenta, false)
		}
		for _, r := range level.LeafSpawners {
			vector.StrokeRect(screen, float32(r.X-scrollX), float32(r.Y-scrollY), float32(r.W), float32(r.H), 1, cfg.Green, false)
		}
	}
}
