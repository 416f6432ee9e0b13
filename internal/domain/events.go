package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogBuilt    EventType = "CatalogBuilt"
	EventQueryChanged    EventType = "QueryChanged"
	EventFilterCleared   EventType = "FilterCleared"
	EventCommitRequested EventType = "CommitRequested"
	EventAssetCreated    EventType = "AssetCreated"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogBuiltEvent is emitted once the catalog has been built
type CatalogBuiltEvent struct {
	Count int
}

func (e CatalogBuiltEvent) Type() EventType { return EventCatalogBuilt }

// QueryChangedEvent is emitted after the match list was recomputed
type QueryChangedEvent struct {
	Query      string
	TokenCount int
	MatchCount int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// FilterClearedEvent is emitted when the query is cleared
type FilterClearedEvent struct {
	MatchCount int
}

func (e FilterClearedEvent) Type() EventType { return EventFilterCleared }

// CommitRequestedEvent is emitted right before an entry is handed to the sink
type CommitRequestedEvent struct {
	Name        string
	Destination string
}

func (e CommitRequestedEvent) Type() EventType { return EventCommitRequested }

// AssetCreatedEvent is emitted when the sink has written an asset
type AssetCreatedEvent struct {
	Name string
	Path string
	GUID string
}

func (e AssetCreatedEvent) Type() EventType { return EventAssetCreated }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
