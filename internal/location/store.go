package location

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/mikaw/roost/internal/directory"
)

// Source identifies which tier produced the working selection.
type Source int

const (
	SourceNone Source = iota
	SourceDurable
	SourceSession
	SourceBackend
)

// String returns the tier name for logging.
func (s Source) String() string {
	switch s {
	case SourceDurable:
		return "durable"
	case SourceSession:
		return "session"
	case SourceBackend:
		return "backend"
	default:
		return "none"
	}
}

// Selection is the reconciled working location handed to the rest of the
// application.
type Selection struct {
	Location directory.Location
	Source   Source
	// UserSelected is true once the user has explicitly picked a location;
	// from then on reconciliation stops consulting the session and backend
	// tiers until Clear.
	UserSelected bool
}

// Durable is the boundary to location storage that survives restarts.
type Durable interface {
	Read() (directory.Location, bool)
	Write(directory.Location) error
	Clear() error
}

// Session is the boundary to location storage scoped to one program run.
type Session interface {
	Read() (directory.Location, bool)
	Write(directory.Location)
	Clear()
}

// DefaultFetcher supplies the backend's default location, the last tier of
// the chain.
type DefaultFetcher interface {
	DefaultLocation(ctx context.Context) (directory.Location, error)
}

// Store reconciles and owns the working location selection.
type Store struct {
	durable Durable
	session Session
	backend DefaultFetcher

	mu      sync.Mutex
	current Selection
	nextSub int
	subs    map[int]func(Selection)
}

// NewStore builds a store over the three tiers. Any tier may be nil, in
// which case it simply never resolves.
func NewStore(durable Durable, session Session, backend DefaultFetcher) *Store {
	return &Store{
		durable: durable,
		session: session,
		backend: backend,
		subs:    make(map[int]func(Selection)),
	}
}

// resolverStep is one tier of the precedence chain: it reports the location
// it found, whether it found one, and whether the find counts as an explicit
// user choice.
type resolverStep struct {
	source       Source
	userSelected bool
	resolve      func(ctx context.Context) (directory.Location, bool, error)
}

func (s *Store) chain() []resolverStep {
	return []resolverStep{
		{
			source:       SourceDurable,
			userSelected: true,
			resolve: func(ctx context.Context) (directory.Location, bool, error) {
				if s.durable == nil {
					return directory.Location{}, false, nil
				}
				loc, ok := s.durable.Read()
				return loc, ok, nil
			},
		},
		{
			source: SourceSession,
			resolve: func(ctx context.Context) (directory.Location, bool, error) {
				if s.session == nil {
					return directory.Location{}, false, nil
				}
				loc, ok := s.session.Read()
				return loc, ok, nil
			},
		},
		{
			source: SourceBackend,
			resolve: func(ctx context.Context) (directory.Location, bool, error) {
				if s.backend == nil {
					return directory.Location{}, false, nil
				}
				loc, err := s.backend.DefaultLocation(ctx)
				if err != nil {
					return directory.Location{}, false, err
				}
				if !loc.Valid() {
					return directory.Location{}, false, fmt.Errorf("backend default location %q is incomplete", loc.ID)
				}
				return loc, true, nil
			},
		},
	}
}

// Reconcile walks the tiers in precedence order and adopts the first hit.
// Once a selection is user-selected, later passes return it untouched until
// Clear. A tier that errors is logged and skipped; when no tier resolves the
// zero Selection is returned along with the last error seen.
func (s *Store) Reconcile(ctx context.Context) (Selection, error) {
	s.mu.Lock()
	if s.current.UserSelected {
		sel := s.current
		s.mu.Unlock()
		return sel, nil
	}
	s.mu.Unlock()

	var lastErr error
	for _, step := range s.chain() {
		loc, ok, err := step.resolve(ctx)
		if err != nil {
			log.Printf("location: %s tier failed: %v", step.source, err)
			lastErr = err
			continue
		}
		if !ok {
			continue
		}

		sel := Selection{Location: loc, Source: step.source, UserSelected: step.userSelected}
		if cur, ok := s.adoptReconciled(sel); !ok {
			// An explicit Select landed while this tier was resolving; the
			// user's choice wins over the late reconcile result.
			return cur, nil
		}
		if step.source == SourceBackend && s.session != nil {
			// Remember the backend default so later passes skip the lookup.
			s.session.Write(loc)
		}
		return sel, nil
	}

	return Selection{}, lastErr
}

// adoptReconciled installs a reconciled selection unless an explicit user
// choice arrived while the tiers were being walked. The user-selected check
// and the install are one critical section, so a concurrent Select can never
// be overwritten by a slow tier lookup.
func (s *Store) adoptReconciled(sel Selection) (Selection, bool) {
	s.mu.Lock()
	if s.current.UserSelected && !sel.UserSelected {
		cur := s.current
		s.mu.Unlock()
		return cur, false
	}
	changed := s.current != sel
	s.current = sel
	subs := make([]func(Selection), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if changed {
		for _, fn := range subs {
			fn(sel)
		}
	}
	return sel, true
}

// Select records an explicit user choice: write-through to the durable and
// session tiers, then broadcast. The durable write failing does not undo the
// in-memory selection; it is logged and the session still carries the value.
func (s *Store) Select(loc directory.Location) error {
	if !loc.Valid() {
		return fmt.Errorf("select location: record %q is incomplete", loc.ID)
	}

	var err error
	if s.durable != nil {
		if werr := s.durable.Write(loc); werr != nil {
			log.Printf("location: durable write failed: %v", werr)
			err = werr
		}
	}
	if s.session != nil {
		s.session.Write(loc)
	}

	s.adopt(Selection{Location: loc, Source: SourceDurable, UserSelected: true})
	return err
}

// Clear removes the durable and session entries, resets the user-selected
// flag, and broadcasts the now-empty selection. The next Reconcile falls
// back to the backend default.
func (s *Store) Clear() error {
	var err error
	if s.durable != nil {
		if cerr := s.durable.Clear(); cerr != nil {
			log.Printf("location: durable clear failed: %v", cerr)
			err = cerr
		}
	}
	if s.session != nil {
		s.session.Clear()
	}

	s.adopt(Selection{})
	return err
}

// Current returns the working selection without reconciling.
func (s *Store) Current() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// OnChange registers a subscriber for selection changes and returns an
// unsubscribe function. Subscribers run synchronously on the goroutine that
// changed the selection.
func (s *Store) OnChange(fn func(Selection)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) adopt(sel Selection) {
	s.mu.Lock()
	changed := s.current != sel
	s.current = sel
	subs := make([]func(Selection), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range subs {
		fn(sel)
	}
}
