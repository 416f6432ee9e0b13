package cli

import (
	log "github.com/sirupsen/logrus"

	"assetcreator/internal/eventbus"
)

// subscribeLogger writes every domain event to the log
func subscribeLogger(bus eventbus.EventBus) []func() {
	return []func(){
		bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
			event := e.(eventbus.ConfigLoadedEvent)
			log.Debugf("Config loaded from %s", event.Path)
		}),
		bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
			event := e.(eventbus.ConfigSavedEvent)
			log.Infof("Config saved to %s", event.Path)
		}),
		bus.Subscribe(eventbus.EventCatalogBuilt, func(e eventbus.DomainEvent) {
			event := e.(eventbus.CatalogBuiltEvent)
			log.Infof("Catalog built with %d types", event.Count)
		}),
		bus.Subscribe(eventbus.EventQueryChanged, func(e eventbus.DomainEvent) {
			event := e.(eventbus.QueryChangedEvent)
			log.Debugf("Query %q: %d tokens, %d matches", event.Query, event.TokenCount, event.MatchCount)
		}),
		bus.Subscribe(eventbus.EventFilterCleared, func(e eventbus.DomainEvent) {
			event := e.(eventbus.FilterClearedEvent)
			log.Debugf("Filter cleared, %d matches", event.MatchCount)
		}),
		bus.Subscribe(eventbus.EventCommitRequested, func(e eventbus.DomainEvent) {
			event := e.(eventbus.CommitRequestedEvent)
			log.Infof("Creating %s in %q", event.Name, event.Destination)
		}),
		bus.Subscribe(eventbus.EventAssetCreated, func(e eventbus.DomainEvent) {
			event := e.(eventbus.AssetCreatedEvent)
			log.Infof("Asset %s created at %s", event.Name, event.Path)
		}),
		bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
			event := e.(eventbus.ErrorEvent)
			log.Errorf("%s: %v", event.Message, event.Err)
		}),
	}
}
