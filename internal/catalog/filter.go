package catalog

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"assetcreator/internal/domain"
)

// Filter decides which registered types are offered for creation
type Filter struct {
	// ExcludeTags drops any type carrying one of these capabilities
	ExcludeTags []domain.Capability
	// ExcludeNames drops types whose full name matches one of these
	// doublestar patterns, e.g. "**/builtin.*"
	ExcludeNames []string
}

// DefaultFilter excludes the editor-side capabilities
func DefaultFilter() Filter {
	return Filter{
		ExcludeTags: []domain.Capability{
			domain.CapabilityEditor,
			domain.CapabilityWindow,
			domain.CapabilityStateMachine,
			domain.CapabilityTimeline,
		},
	}
}

// Validate checks the name patterns
func (f Filter) Validate() error {
	for _, pattern := range f.ExcludeNames {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}

// Allows reports whether t may appear in the catalog
func (f Filter) Allows(t TypeInfo) bool {
	if !isExported(t.ShortName) {
		return false
	}
	if t.Abstract || strings.Contains(t.ShortName, "[") {
		return false
	}
	for _, tag := range f.ExcludeTags {
		if t.HasCapability(tag) {
			return false
		}
	}
	for _, pattern := range f.ExcludeNames {
		if ok, err := doublestar.Match(pattern, t.FullName); err == nil && ok {
			return false
		}
	}
	return true
}

func isExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
