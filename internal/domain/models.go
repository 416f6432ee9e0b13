package domain

import "reflect"

// AssetExtension is appended to every file stem when an asset is written
const AssetExtension = ".asset"

// Capability is a marker attached to a registered type. Capabilities replace
// base-type checks when deciding which types may be offered for creation.
type Capability string

// Well-known capabilities
const (
	CapabilityEditor       Capability = "editor"
	CapabilityWindow       Capability = "window"
	CapabilityStateMachine Capability = "state-machine"
	CapabilityTimeline     Capability = "timeline-marker"
)

// TypeHandle is the creatable type behind a catalog entry
type TypeHandle interface {
	// New returns a fresh, zero-configured instance of the type
	New() any
	// ReflectType returns the underlying Go type (never a pointer)
	ReflectType() reflect.Type
}

// CatalogEntry represents one type that can be instantiated
type CatalogEntry struct {
	Name         string // fully qualified identifying name, unique within the catalog
	DisplayLabel string // optional menu label
	FileStem     string // output file name without extension
	Type         TypeHandle
}

// DisplayName returns the label shown to the user
func (e CatalogEntry) DisplayName() string {
	if e.DisplayLabel != "" {
		return e.DisplayLabel
	}
	return e.Name
}

// FileName returns the file name the asset is written to
func (e CatalogEntry) FileName() string {
	return e.FileStem + AssetExtension
}
