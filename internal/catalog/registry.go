package catalog

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"assetcreator/internal/domain"
)

// TypeInfo describes one registered type
type TypeInfo struct {
	FullName     string // import path qualified name, e.g. "assetcreator/internal/gamedata.EnemyConfig"
	ShortName    string // Go type name
	MenuName     string // optional display label
	FileName     string // optional file stem override
	Abstract     bool   // registered for reference only, never offered for creation
	Capabilities []domain.Capability

	rtype reflect.Type
}

// New returns a pointer to a new zero value of the type
func (t TypeInfo) New() any {
	return reflect.New(t.rtype).Interface()
}

// ReflectType returns the registered type
func (t TypeInfo) ReflectType() reflect.Type {
	return t.rtype
}

// HasCapability reports whether the type carries c
func (t TypeInfo) HasCapability(c domain.Capability) bool {
	for _, have := range t.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// Option customises a registration
type Option func(*TypeInfo)

// WithMenuName sets the display label
func WithMenuName(name string) Option {
	return func(t *TypeInfo) { t.MenuName = name }
}

// WithFileName overrides the output file stem
func WithFileName(name string) Option {
	return func(t *TypeInfo) { t.FileName = name }
}

// WithCapabilities tags the type
func WithCapabilities(caps ...domain.Capability) Option {
	return func(t *TypeInfo) { t.Capabilities = append(t.Capabilities, caps...) }
}

// AsAbstract marks the type as not directly creatable
func AsAbstract() Option {
	return func(t *TypeInfo) { t.Abstract = true }
}

// Registry holds every type known to the process
type Registry struct {
	mu    sync.RWMutex
	types map[string]TypeInfo
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]TypeInfo)}
}

// Default is the process-wide registry populated from init functions
var Default = NewRegistry()

// Register adds T to r. Registering the same type twice replaces the
// previous registration.
func Register[T any](r *Registry, opts ...Option) TypeInfo {
	rtype := reflect.TypeFor[T]()
	for rtype.Kind() == reflect.Pointer {
		rtype = rtype.Elem()
	}

	info := TypeInfo{
		FullName:  qualifiedName(rtype),
		ShortName: rtype.Name(),
		rtype:     rtype,
	}
	for _, opt := range opts {
		opt(&info)
	}

	r.add(info)
	return info
}

func (r *Registry) add(info TypeInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[info.FullName] = info
}

// Types returns all registrations ordered by full name
func (r *Registry) Types() []TypeInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]TypeInfo, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FullName < out[j].FullName
	})
	return out
}

// Len returns the number of registered types
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

func qualifiedName(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.String()
	}
	return fmt.Sprintf("%s.%s", t.PkgPath(), t.Name())
}

// Entry converts a registration into a catalog entry
func (t TypeInfo) Entry() domain.CatalogEntry {
	stem := t.ShortName
	if t.FileName != "" {
		stem = strings.ReplaceAll(t.FileName, "/", "_")
	}
	return domain.CatalogEntry{
		Name:         t.FullName,
		DisplayLabel: t.MenuName,
		FileStem:     stem,
		Type:         t,
	}
}
