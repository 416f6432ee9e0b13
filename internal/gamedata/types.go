// Package gamedata declares the data object types authors can create.
package gamedata

// Definition is the common base of every definition asset
type Definition struct {
	ID          string `toml:"id"`
	DisplayName string `toml:"display_name"`
	Description string `toml:"description"`
}

type EnemyConfig struct {
	Definition
	Health      int      `toml:"health"`
	Damage      int      `toml:"damage"`
	MoveSpeed   float64  `toml:"move_speed"`
	Resistances []string `toml:"resistances"`
}

type EnemyWave struct {
	Enemies  []string `toml:"enemies"`
	Count    int      `toml:"count"`
	Interval float64  `toml:"interval_seconds"`
}

type PlayerStats struct {
	MaxHealth int     `toml:"max_health"`
	Stamina   int     `toml:"stamina"`
	WalkSpeed float64 `toml:"walk_speed"`
	RunSpeed  float64 `toml:"run_speed"`
}

type ItemDefinition struct {
	Definition
	StackSize int    `toml:"stack_size"`
	Rarity    string `toml:"rarity"`
	Value     int    `toml:"value"`
}

type LootEntry struct {
	Item   string  `toml:"item"`
	Weight float64 `toml:"weight"`
}

type LootTable struct {
	Rolls   int         `toml:"rolls"`
	Entries []LootEntry `toml:"entries"`
}

type DialogueLine struct {
	Speaker string `toml:"speaker"`
	Text    string `toml:"text"`
	Voice   string `toml:"voice_clip"`
}

type AudioCue struct {
	Clips  []string `toml:"clips"`
	Volume float64  `toml:"volume"`
	Pitch  float64  `toml:"pitch"`
	Loop   bool     `toml:"loop"`
}

type LevelSettings struct {
	Scene      string  `toml:"scene"`
	TimeLimit  int     `toml:"time_limit_seconds"`
	Gravity    float64 `toml:"gravity"`
	MusicCueID string  `toml:"music_cue"`
}

// Editor-side types. They are registered so tooling can refer to them but
// the default filter keeps them out of the catalog.

type InspectorLayout struct {
	Sections []string `toml:"sections"`
}

type SceneViewPreferences struct {
	GridSize float64 `toml:"grid_size"`
}

type AnimatorState struct {
	Clip  string  `toml:"clip"`
	Speed float64 `toml:"speed"`
}

type CutsceneMarker struct {
	Time float64 `toml:"time"`
}

// Curve is generic and therefore never offered directly
type Curve[T any] struct {
	Keys []T `toml:"keys"`
}
