/* test_mocks.go
 * Contains mock structures for testing against the store interface.
 */

package api

import (
	"context"
	"errors"
	"sync"

	"matchday-bot/api/shared"
	"matchday-bot/api/store"
)

// ErrMockNotFound is returned when a mock operation targets a missing id.
var ErrMockNotFound = errors.New("no match found with that id")

// MockStore implements the store Interface for testing. Documents are kept
// in insertion order (newest last); snapshots are delivered newest-created
// first, matching the real store's created_at descending sort. After every
// successful mutation the current snapshot is pushed to the registered
// watcher, mimicking the change stream.
type MockStore struct {
	mu    sync.Mutex
	docs  map[string]shared.MatchRecord
	order []string

	// Error injection for testing failure paths
	SaveMatchError        error
	DeleteMatchError      error
	UpdateMatchScoreError error
	FetchMatchesError     error
	WatchMatchesError     error

	onChange         func([]shared.MatchRecord)
	UnsubscribeCalls int
}

// Ensure MockStore implements the store interface
var _ store.Interface = (*MockStore)(nil)

// NewMockStore creates a new empty MockStore
func NewMockStore() *MockStore {
	return &MockStore{
		docs: make(map[string]shared.MatchRecord),
	}
}

// SaveMatch mock implementation: upsert plus push
func (m *MockStore) SaveMatch(ctx context.Context, match shared.MatchRecord) error {
	if m.SaveMatchError != nil {
		return m.SaveMatchError
	}
	m.mu.Lock()
	if _, exists := m.docs[match.ID]; !exists {
		m.order = append(m.order, match.ID)
	}
	m.docs[match.ID] = match
	m.mu.Unlock()

	m.PushSnapshot()
	return nil
}

// DeleteMatch mock implementation: remove plus push
func (m *MockStore) DeleteMatch(ctx context.Context, id string) error {
	if m.DeleteMatchError != nil {
		return m.DeleteMatchError
	}
	m.mu.Lock()
	delete(m.docs, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.mu.Unlock()

	m.PushSnapshot()
	return nil
}

// UpdateMatchScore mock implementation: partial update plus push
func (m *MockStore) UpdateMatchScore(ctx context.Context, id string, score shared.Score) error {
	if m.UpdateMatchScoreError != nil {
		return m.UpdateMatchScoreError
	}
	m.mu.Lock()
	doc, ok := m.docs[id]
	if !ok {
		m.mu.Unlock()
		return ErrMockNotFound
	}
	doc.Score = &score
	m.docs[id] = doc
	m.mu.Unlock()

	m.PushSnapshot()
	return nil
}

// FetchMatches mock implementation
func (m *MockStore) FetchMatches(ctx context.Context) ([]shared.MatchRecord, error) {
	if m.FetchMatchesError != nil {
		return nil, m.FetchMatchesError
	}
	return m.snapshot(), nil
}

// WatchMatches mock implementation: registers the watcher and delivers the
// initial snapshot synchronously, like the real subscription does.
func (m *MockStore) WatchMatches(onChange func([]shared.MatchRecord)) (func(), error) {
	if m.WatchMatchesError != nil {
		return nil, m.WatchMatchesError
	}
	m.mu.Lock()
	m.onChange = onChange
	m.mu.Unlock()

	onChange(m.snapshot())

	return func() {
		m.mu.Lock()
		m.UnsubscribeCalls++
		m.mu.Unlock()
	}, nil
}

// Disconnect mock implementation
func (m *MockStore) Disconnect(ctx context.Context) error {
	return nil
}

// PushSnapshot delivers the current document set to the registered watcher.
func (m *MockStore) PushSnapshot() {
	m.mu.Lock()
	onChange := m.onChange
	m.mu.Unlock()
	if onChange != nil {
		onChange(m.snapshot())
	}
}

// Push delivers an arbitrary collection state to the registered watcher,
// e.g. the empty push a failing subscription produces.
func (m *MockStore) Push(matches []shared.MatchRecord) {
	m.mu.Lock()
	onChange := m.onChange
	m.mu.Unlock()
	if onChange != nil {
		onChange(matches)
	}
}

// Docs returns the stored record for an id, for assertions.
func (m *MockStore) Doc(id string) (shared.MatchRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[id]
	return doc, ok
}

// snapshot returns the stored documents newest-created first.
func (m *MockStore) snapshot() []shared.MatchRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]shared.MatchRecord, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, m.docs[m.order[i]])
	}
	return out
}
