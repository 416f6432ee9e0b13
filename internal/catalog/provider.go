package catalog

import (
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	"assetcreator/internal/domain"
)

// BuildFunc produces the ordered catalog
type BuildFunc func() []domain.CatalogEntry

// Build returns the entries of r allowed by f, sorted by display name
// (ordinal, case-sensitive).
func Build(r *Registry, f Filter) []domain.CatalogEntry {
	var entries []domain.CatalogEntry
	for _, t := range r.Types() {
		if !f.Allows(t) {
			continue
		}
		entries = append(entries, t.Entry())
	}
	SortEntries(entries)
	return entries
}

// SortEntries orders entries by display name, byte-wise
func SortEntries(entries []domain.CatalogEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DisplayName() < entries[j].DisplayName()
	})
}

// BuildFor returns a BuildFunc bound to r and f
func BuildFor(r *Registry, f Filter) BuildFunc {
	return func() []domain.CatalogEntry {
		return Build(r, f)
	}
}

// Static returns a BuildFunc that yields a fixed list
func Static(entries []domain.CatalogEntry) BuildFunc {
	return func() []domain.CatalogEntry {
		return entries
	}
}

// Provider builds the catalog once, on first use, and shares it with every
// reader. The returned slice must be treated as read-only.
type Provider struct {
	build   BuildFunc
	once    sync.Once
	entries []domain.CatalogEntry
	onBuilt func(count int)
}

// NewProvider creates a provider around build
func NewProvider(build BuildFunc) *Provider {
	return &Provider{build: build}
}

// OnBuilt registers a callback fired once, after the build completes
func (p *Provider) OnBuilt(fn func(count int)) {
	p.onBuilt = fn
}

// Entries returns the catalog, building it on the first call
func (p *Provider) Entries() []domain.CatalogEntry {
	p.once.Do(func() {
		p.entries = p.build()
		log.Infof("Catalog built with %d entries", len(p.entries))
		if p.onBuilt != nil {
			p.onBuilt(len(p.entries))
		}
	})
	return p.entries
}

// Lookup finds an entry by identifying name
func Lookup(entries []domain.CatalogEntry, name string) (domain.CatalogEntry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return domain.CatalogEntry{}, false
}

// LookupShort finds an entry by identifying name, or failing that by the
// unqualified type name when that is unambiguous.
func LookupShort(entries []domain.CatalogEntry, name string) (domain.CatalogEntry, bool) {
	if e, ok := Lookup(entries, name); ok {
		return e, true
	}

	var found domain.CatalogEntry
	count := 0
	for _, e := range entries {
		if t, ok := e.Type.(TypeInfo); ok && t.ShortName == name {
			found = e
			count++
		}
	}
	return found, count == 1
}
