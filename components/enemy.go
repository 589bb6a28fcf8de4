package components

import (
	"github.com/automoto/ninja-platformer/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "enemy" or "boss"
	TypeConfig *config.EnemyTypeConfig // cached reference to type configuration

	KnockbackX float64 // decays every frame, added to the movement intent
	KnockbackY float64
	IntentX    float64 // AI intent of the current frame

	ContactCooldown int // frames until contact damage can land again
	AttackCooldown  int // frames until the next ranged attack
	DodgeCooldown   int // frames until the next dodge hop

	Defeated bool // queued for removal from the roster
}

var Enemy = donburi.NewComponentType[EnemyData]()
