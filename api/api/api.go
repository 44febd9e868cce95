/* api.go
 * This file contains the public methods for interacting with this package.
 * It owns the in-memory mirror of the matches collection: the mirror is
 * replaced wholesale by every subscription push and is never patched
 * locally, so a failed mutation can never desynchronise it. Presentation
 * layers should only ever call through this package, not the sub packages
 * for store and logic.
 */

package api

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"matchday-bot/api/catalog"
	"matchday-bot/api/logic"
	"matchday-bot/api/shared"
	"matchday-bot/api/store"
	"matchday-bot/internal/log"
)

// API mediates between the presentation layers and the match store. All
// remote failures are caught here, logged, and surfaced as a plain false;
// no error crosses the mutation boundary.
type API struct {
	Store store.Interface

	// now is the clock used for new match ids and timestamps; tests
	// override it for deterministic records.
	now func() time.Time

	mu          sync.RWMutex
	mirror      []shared.MatchRecord
	unsubscribe func()
	closed      bool
}

// NewAPI creates a new API instance backed by a MongoDB store.
func NewAPI(dbName string, mongoURI string) (*API, error) {
	s, err := store.NewStore(dbName, mongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	return NewAPIWithStore(s), nil
}

// NewAPIWithStore creates an API over an existing store implementation.
// Used directly by tests with a mock store.
func NewAPIWithStore(s store.Interface) *API {
	return &API{
		Store: s,
		now:   time.Now,
	}
}

// Subscribe opens the push subscription that keeps the mirror current.
// Every push replaces the mirror in full; onUpdate (optional) then receives
// the display-ordered collection. An API value holds at most one active
// subscription.
func (a *API) Subscribe(onUpdate func([]shared.MatchRecord)) error {
	a.mu.Lock()
	if a.unsubscribe != nil {
		a.mu.Unlock()
		return fmt.Errorf("already subscribed")
	}
	a.closed = false
	a.mu.Unlock()

	unsubscribe, err := a.Store.WatchMatches(func(matches []shared.MatchRecord) {
		a.mu.Lock()
		if a.closed {
			// A push that arrives after Close is a no-op, not a crash
			a.mu.Unlock()
			return
		}
		a.mirror = matches
		a.mu.Unlock()

		if onUpdate != nil {
			onUpdate(logic.SortForDisplay(matches))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to open match subscription: %w", err)
	}

	a.mu.Lock()
	a.unsubscribe = unsubscribe
	a.mu.Unlock()
	return nil
}

// Close tears the subscription down. Calling Close more than once, or
// without a prior Subscribe, is tolerated.
func (a *API) Close() {
	a.mu.Lock()
	a.closed = true
	unsubscribe := a.unsubscribe
	a.unsubscribe = nil
	a.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Matches returns the current collection in display order: unfinished
// matches first, newest created first within each group. The order is
// recomputed on every call from the mirror, never stored.
func (a *API) Matches() []shared.MatchRecord {
	a.mu.RLock()
	snapshot := make([]shared.MatchRecord, len(a.mirror))
	copy(snapshot, a.mirror)
	a.mu.RUnlock()

	return logic.SortForDisplay(snapshot)
}

// FindByID returns the mirror's record with the given id, without a remote
// round trip. Used to seed the edit flow.
func (a *API) FindByID(id string) (shared.MatchRecord, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, m := range a.mirror {
		if m.ID == id {
			return m, true
		}
	}
	return shared.MatchRecord{}, false
}

// CreateOrUpdate validates the form and saves a match. With an empty
// editingID a fresh id and creation timestamp are assigned; otherwise the
// existing record's id and original timestamp are reused so the remote
// store overwrites in place. On any failure the attempted record is simply
// dropped (the mirror stays whatever the last push delivered) and false
// is returned for the caller to notify the user.
func (a *API) CreateOrUpdate(form shared.MatchForm, editingID string) bool {
	stadium, ok := catalog.ByID(form.StadiumID)
	if !ok {
		log.Warn("rejecting match with unknown stadium", zap.Int("stadium_id", form.StadiumID))
		return false
	}
	if !shared.ValidMatchDay(form.MatchDay) {
		log.Warn("rejecting match with invalid day", zap.String("day", form.MatchDay))
		return false
	}
	if !logic.ValidMatchTime(form.MatchTime) {
		log.Warn("rejecting match with invalid time", zap.String("time", form.MatchTime))
		return false
	}

	size := stadium.PlayersPerTeam()
	record := shared.MatchRecord{
		Stadium:      stadium,
		Team1Players: logic.ShapeRoster(form.Team1Players, size),
		Team2Players: logic.ShapeRoster(form.Team2Players, size),
		MatchTime:    form.MatchTime,
		MatchDay:     form.MatchDay,
	}

	if editingID == "" {
		now := a.now()
		// Wall-clock ids are only monotonic-enough; bump past any id already
		// mirrored so two quick creates never overwrite each other
		for {
			if _, exists := a.FindByID(strconv.FormatInt(now.UnixMilli(), 10)); !exists {
				break
			}
			now = now.Add(time.Millisecond)
		}
		record.ID = strconv.FormatInt(now.UnixMilli(), 10)
		record.Timestamp = now
	} else {
		existing, found := a.FindByID(editingID)
		if !found {
			log.Warn("edit requested for unknown match", zap.String("id", editingID))
			return false
		}
		record.ID = existing.ID
		record.Timestamp = existing.Timestamp
	}

	if err := a.Store.SaveMatch(context.TODO(), record); err != nil {
		log.Error("failed to save match", zap.String("id", record.ID), zap.Error(err))
		return false
	}
	return true
}

// Remove deletes a match by id. The mirror is subscription-driven, so a
// failure needs no rollback; the caller is just told it didn't happen.
func (a *API) Remove(id string) bool {
	if err := a.Store.DeleteMatch(context.TODO(), id); err != nil {
		log.Error("failed to delete match", zap.String("id", id), zap.Error(err))
		return false
	}
	return true
}

// UpdateScore records the final score for a match. The raw form input is
// coerced leniently (empty or non-numeric sides become 0) and written as a
// partial update so no other field of the record is touched.
func (a *API) UpdateScore(id string, input shared.ScoreInput) bool {
	score := logic.CoerceScore(input)
	if err := a.Store.UpdateMatchScore(context.TODO(), id, score); err != nil {
		log.Error("failed to update match score", zap.String("id", id), zap.Error(err))
		return false
	}
	return true
}
