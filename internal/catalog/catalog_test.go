package catalog

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetcreator/internal/domain"
)

type EnemyConfig struct {
	Health int
}

type PlayerStats struct {
	Speed float64
}

type LootTable struct{}

type InspectorLayout struct{}

type BaseDefinition struct{}

type Box[T any] struct {
	Value T
}

type hiddenSettings struct{}

func testRegistry() *Registry {
	r := NewRegistry()
	Register[EnemyConfig](r)
	Register[*PlayerStats](r, WithMenuName("Characters/Player Stats"))
	Register[LootTable](r, WithFileName("Loot/Default"))
	Register[InspectorLayout](r, WithCapabilities(domain.CapabilityEditor))
	Register[BaseDefinition](r, AsAbstract())
	Register[Box[int]](r)
	Register[hiddenSettings](r)
	return r
}

func TestRegisterNamesAndFactory(t *testing.T) {
	r := NewRegistry()
	info := Register[*EnemyConfig](r)

	assert.Equal(t, "assetcreator/internal/catalog.EnemyConfig", info.FullName)
	assert.Equal(t, "EnemyConfig", info.ShortName)

	obj := info.New()
	cfg, ok := obj.(*EnemyConfig)
	require.True(t, ok)
	assert.Zero(t, cfg.Health)
	assert.Equal(t, 1, r.Len())

	// registering again replaces
	Register[EnemyConfig](r, WithMenuName("Enemy"))
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, "Enemy", r.Types()[0].MenuName)
}

func TestEntryFileStem(t *testing.T) {
	r := testRegistry()
	entries := Build(r, DefaultFilter())

	loot, ok := Lookup(entries, "assetcreator/internal/catalog.LootTable")
	require.True(t, ok)
	assert.Equal(t, "Loot_Default", loot.FileStem)
	assert.Equal(t, "Loot_Default.asset", loot.FileName())

	enemy, ok := Lookup(entries, "assetcreator/internal/catalog.EnemyConfig")
	require.True(t, ok)
	assert.Equal(t, "EnemyConfig.asset", enemy.FileName())
}

func TestBuildFiltersAndSorts(t *testing.T) {
	entries := Build(testRegistry(), DefaultFilter())

	var got []string
	for _, e := range entries {
		got = append(got, e.DisplayName())
	}
	assert.Equal(t, []string{
		"Characters/Player Stats",
		"assetcreator/internal/catalog.EnemyConfig",
		"assetcreator/internal/catalog.LootTable",
	}, got)
}

func TestFilterExcludeNames(t *testing.T) {
	f := DefaultFilter()
	f.ExcludeNames = []string{"**/catalog.Loot*"}
	require.NoError(t, f.Validate())

	entries := Build(testRegistry(), f)
	_, ok := Lookup(entries, "assetcreator/internal/catalog.LootTable")
	assert.False(t, ok)
	assert.Len(t, entries, 2)

	f.ExcludeNames = []string{"[unclosed"}
	assert.Error(t, f.Validate())
}

func TestFilterWithoutTagsKeepsEditorTypes(t *testing.T) {
	entries := Build(testRegistry(), Filter{})
	_, ok := Lookup(entries, "assetcreator/internal/catalog.InspectorLayout")
	assert.True(t, ok)
}

func TestSortIsOrdinal(t *testing.T) {
	entries := []domain.CatalogEntry{
		{Name: "b"},
		{Name: "B"},
		{Name: "a", DisplayLabel: "Z"},
		{Name: "_"},
	}
	SortEntries(entries)

	var got []string
	for _, e := range entries {
		got = append(got, e.DisplayName())
	}
	assert.Equal(t, []string{"B", "Z", "_", "b"}, got)
}

func TestProviderBuildsOnce(t *testing.T) {
	var calls atomic.Int32
	p := NewProvider(func() []domain.CatalogEntry {
		calls.Add(1)
		return []domain.CatalogEntry{{Name: "x.A"}, {Name: "x.B"}}
	})

	built := 0
	p.OnBuilt(func(count int) { built = count })

	var wg sync.WaitGroup
	results := make([][]domain.CatalogEntry, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.Entries()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 2, built)
	for _, r := range results {
		require.Len(t, r, 2)
		assert.Same(t, &results[0][0], &r[0])
	}
}

func TestProviderIsLazy(t *testing.T) {
	calls := 0
	p := NewProvider(func() []domain.CatalogEntry {
		calls++
		return nil
	})
	assert.Zero(t, calls)

	assert.Empty(t, p.Entries())
	assert.Empty(t, p.Entries())
	assert.Equal(t, 1, calls)
}

func TestLookupShort(t *testing.T) {
	entries := Build(testRegistry(), DefaultFilter())

	e, ok := LookupShort(entries, "EnemyConfig")
	require.True(t, ok)
	assert.Equal(t, "assetcreator/internal/catalog.EnemyConfig", e.Name)

	_, ok = LookupShort(entries, "InspectorLayout")
	assert.False(t, ok)

	static := Static([]domain.CatalogEntry{{Name: "a.Dup"}, {Name: "b.Dup"}})()
	_, ok = LookupShort(static, "Dup")
	assert.False(t, ok)
}
