// Package session owns the interactive filter state: the query text, the
// derived match list and the pending focus request.
package session

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"assetcreator/internal/catalog"
	"assetcreator/internal/domain"
	"assetcreator/internal/eventbus"
	"assetcreator/internal/search"
	"assetcreator/internal/sink"
)

// ErrNoSink is returned by Commit when the session was built without a sink
var ErrNoSink = errors.New("session: no sink configured")

// State holds the current search context
type State struct {
	Query   string
	Tokens  []search.Token
	Matches []domain.CatalogEntry
	// FocusPending asks the presentation layer to refocus the query field
	FocusPending bool
}

// Session is one interactive search over the shared catalog. It is not safe
// for concurrent use; each window owns its own Session.
type Session struct {
	state    State
	provider *catalog.Provider
	sink     sink.Sink
	bus      eventbus.EventBus
	opts     search.Options
}

// Option configures a Session
type Option func(*Session)

// WithSink sets the sink used by Commit
func WithSink(s sink.Sink) Option {
	return func(sess *Session) { sess.sink = s }
}

// WithBus publishes session events on bus
func WithBus(bus eventbus.EventBus) Option {
	return func(sess *Session) { sess.bus = bus }
}

// WithSearchOptions selects the grammar and matched fields
func WithSearchOptions(opts search.Options) Option {
	return func(sess *Session) { sess.opts = opts }
}

// New starts a session. The catalog is built here if no other session has
// built it yet. The initial match list is the whole catalog.
func New(provider *catalog.Provider, opts ...Option) *Session {
	s := &Session{provider: provider}
	for _, opt := range opts {
		opt(s)
	}
	s.apply("")
	s.state.FocusPending = true
	return s
}

// SetQuery replaces the query text and recomputes the match list. Setting
// the same text again does nothing.
func (s *Session) SetQuery(text string) {
	if text == s.state.Query {
		return
	}
	s.apply(text)

	s.publish(eventbus.QueryChangedEvent{
		Query:      text,
		TokenCount: len(s.state.Tokens),
		MatchCount: len(s.state.Matches),
	})
}

// Clear empties the query and requests that focus return to the query field
func (s *Session) Clear() {
	s.SetQuery("")
	s.state.FocusPending = true

	s.publish(eventbus.FilterClearedEvent{MatchCount: len(s.state.Matches)})
}

// CurrentMatches returns the match list. The slice is a snapshot valid until
// the next SetQuery or Clear and must not be modified.
func (s *Session) CurrentMatches() []domain.CatalogEntry {
	return s.state.Matches
}

// Len returns the number of current matches
func (s *Session) Len() int {
	return len(s.state.Matches)
}

// Query returns the current query text
func (s *Session) Query() string {
	return s.state.Query
}

// Tokens returns the tokens of the current query
func (s *Session) Tokens() []search.Token {
	return s.state.Tokens
}

// Catalog returns the full catalog
func (s *Session) Catalog() []domain.CatalogEntry {
	return s.provider.Entries()
}

// TakeFocusRequest reports a pending focus request and clears it
func (s *Session) TakeFocusRequest() bool {
	pending := s.state.FocusPending
	s.state.FocusPending = false
	return pending
}

// Commit hands entry to the sink. The sink's result and error are returned
// unchanged.
func (s *Session) Commit(entry domain.CatalogEntry, destinationDirectory string) (sink.Result, error) {
	return Commit(s.sink, s.bus, entry, destinationDirectory)
}

// Commit creates entry through sk without an interactive session
func Commit(sk sink.Sink, bus eventbus.EventBus, entry domain.CatalogEntry, destinationDirectory string) (sink.Result, error) {
	if sk == nil {
		return sink.Result{}, ErrNoSink
	}

	if bus != nil {
		bus.Publish(eventbus.CommitRequestedEvent{Name: entry.Name, Destination: destinationDirectory})
	}

	res, err := sk.CreateAndPersist(entry, destinationDirectory)
	if err != nil {
		log.Errorf("Failed to create %s: %v", entry.Name, err)
		if bus != nil {
			bus.Publish(eventbus.ErrorEvent{Message: "create " + entry.Name, Err: err})
		}
		return res, err
	}

	if bus != nil {
		bus.Publish(eventbus.AssetCreatedEvent{Name: entry.Name, Path: res.Path, GUID: res.GUID})
	}
	return res, nil
}

func (s *Session) apply(text string) {
	matcher := search.Compile(text, s.opts)

	s.state.Query = text
	s.state.Tokens = matcher.Tokens()
	s.state.Matches = search.Filter(s.provider.Entries(), matcher)

	log.Debugf("Query %q: %d tokens, %d matches", text, len(s.state.Tokens), len(s.state.Matches))
}

func (s *Session) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
