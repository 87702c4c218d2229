// Package app wires data access to application state. It implements the two
// fetch flows (startup load and row selection) and contains their failures:
// a failing fetch is logged, leaves state untouched, and is returned to the
// caller for inspection only.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rshade/partyplanner/internal/logging"
	"github.com/rshade/partyplanner/internal/party"
	"github.com/rshade/partyplanner/internal/state"
)

// Fetcher is the data access surface used by App. *api.Client satisfies it.
type Fetcher interface {
	FetchParties(ctx context.Context) ([]party.Party, error)
	FetchPartyDetail(ctx context.Context, id int) (party.Party, error)
}

// ErrNotListed is returned when a selection names a party that is not in the
// loaded list.
var ErrNotListed = errors.New("party is not in the list")

// App owns the state store and the fetcher.
type App struct {
	fetcher Fetcher
	store   *state.Store
	logger  zerolog.Logger
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the base logger; the app tags it with its component name.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) {
		a.logger = logging.ComponentLogger(l, "app")
	}
}

// WithStore uses an existing store instead of a fresh one.
func WithStore(s *state.Store) Option {
	return func(a *App) {
		if s != nil {
			a.store = s
		}
	}
}

// New returns an App with an empty store.
func New(fetcher Fetcher, opts ...Option) *App {
	a := &App{
		fetcher: fetcher,
		store:   state.New(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Store returns the state store.
func (a *App) Store() *state.Store {
	return a.store
}

// Snapshot returns the current state for rendering.
func (a *App) Snapshot() state.Snapshot {
	return a.store.Snapshot()
}

// Load fetches the party list and stores it. On failure the previous list is
// kept.
func (a *App) Load(ctx context.Context) error {
	parties, err := a.fetcher.FetchParties(ctx)
	if err != nil {
		a.logger.Error().Ctx(ctx).Err(err).Msg("error fetching parties")
		return err
	}

	a.store.SetParties(parties)
	a.logger.Debug().Ctx(ctx).Int("count", len(parties)).Msg("parties loaded")
	return nil
}

// Selection is a detail fetch that has been requested but not yet resolved.
// Selections are ordered by when NewSelection was called.
type Selection struct {
	ID    int
	token uint64
}

// NewSelection records a click on the party with the given id. Call it at the
// moment of the click, then Resolve it, possibly on another goroutine.
func (a *App) NewSelection(id int) Selection {
	return Selection{ID: id, token: a.store.BeginSelection()}
}

// Resolve fetches the selection's detail and makes it the selected party.
// When a later selection has already been shown, the response is dropped and
// Resolve returns nil.
func (a *App) Resolve(ctx context.Context, sel Selection) error {
	p, err := a.FetchDetail(ctx, sel.ID)
	if err != nil {
		return err
	}

	if !a.store.CommitSelection(sel.token, p) {
		a.logger.Debug().Ctx(ctx).Int("party_id", sel.ID).Msg("dropping superseded party details")
		return nil
	}
	a.logger.Debug().Ctx(ctx).Int("party_id", sel.ID).Msg("party selected")
	return nil
}

// Select is NewSelection followed by Resolve.
func (a *App) Select(ctx context.Context, id int) error {
	return a.Resolve(ctx, a.NewSelection(id))
}

// SelectListed selects id only when it is in the loaded list. Otherwise no
// request is made, the skip is logged and ErrNotListed is returned.
func (a *App) SelectListed(ctx context.Context, id int) error {
	if _, ok := a.store.Snapshot().Party(id); !ok {
		a.logger.Warn().Ctx(ctx).Int("party_id", id).Msg("skipping selection of unlisted party")
		return fmt.Errorf("party %d: %w", id, ErrNotListed)
	}
	return a.Select(ctx, id)
}

// FetchDetail fetches one party's details without changing state. Failures
// are logged and returned.
func (a *App) FetchDetail(ctx context.Context, id int) (party.Party, error) {
	p, err := a.fetcher.FetchPartyDetail(ctx, id)
	if err != nil {
		a.logger.Error().Ctx(ctx).Err(err).Int("party_id", id).Msg("error fetching party details")
		return party.Party{}, err
	}
	return p, nil
}
