// Package builtin holds framework types that live in the registry but are
// hidden from authors by the default name filter.
package builtin

import "assetcreator/internal/catalog"

type ProjectSettings struct {
	CompanyName string `toml:"company_name"`
	ProductName string `toml:"product_name"`
}

type InputActions struct {
	Maps []string `toml:"maps"`
}

// Register adds the builtin types to r
func Register(r *catalog.Registry) {
	catalog.Register[ProjectSettings](r)
	catalog.Register[InputActions](r)
}
