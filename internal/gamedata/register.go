package gamedata

import (
	"assetcreator/internal/catalog"
	"assetcreator/internal/domain"
	"assetcreator/internal/gamedata/builtin"
)

func init() {
	Register(catalog.Default)
}

// Register adds every game data type to r
func Register(r *catalog.Registry) {
	catalog.Register[Definition](r, catalog.AsAbstract())

	catalog.Register[EnemyConfig](r, catalog.WithMenuName("Characters/Enemy Config"))
	catalog.Register[EnemyWave](r)
	catalog.Register[PlayerStats](r, catalog.WithMenuName("Characters/Player Stats"))
	catalog.Register[ItemDefinition](r, catalog.WithMenuName("Items/Item"), catalog.WithFileName("New Item"))
	catalog.Register[LootTable](r, catalog.WithFileName("Loot/Table"))
	catalog.Register[DialogueLine](r)
	catalog.Register[AudioCue](r, catalog.WithMenuName("Audio/Cue"))
	catalog.Register[LevelSettings](r)

	catalog.Register[InspectorLayout](r, catalog.WithCapabilities(domain.CapabilityEditor))
	catalog.Register[SceneViewPreferences](r, catalog.WithCapabilities(domain.CapabilityWindow))
	catalog.Register[AnimatorState](r, catalog.WithCapabilities(domain.CapabilityStateMachine))
	catalog.Register[CutsceneMarker](r, catalog.WithCapabilities(domain.CapabilityTimeline))
	catalog.Register[Curve[float64]](r)

	builtin.Register(r)
}
