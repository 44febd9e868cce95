/* server_test.go
 * Contains unit tests for the read-only HTTP handlers using httptest
 */

package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchday-bot/api/api"
	"matchday-bot/api/shared"
)

// newTestServer returns a Server over a subscribed API with a mock store
func newTestServer(t *testing.T) (*Server, *api.MockStore) {
	t.Helper()

	mockStore := api.NewMockStore()
	apiPtr := api.NewAPIWithStore(mockStore)
	require.NoError(t, apiPtr.Subscribe(nil))
	t.Cleanup(apiPtr.Close)

	return &Server{api: apiPtr}, mockStore
}

func doRequest(s *Server, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)
	return rec
}

func seedMatch(t *testing.T, mockStore *api.MockStore, id string) {
	t.Helper()
	err := mockStore.SaveMatch(context.TODO(), shared.MatchRecord{
		ID:        id,
		Stadium:   shared.Stadium{ID: 1, Name: "Vake Park Arena", MaxPlayers: 10},
		MatchTime: "19:00",
		MatchDay:  "Friday",
	})
	require.NoError(t, err)
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMatches_Empty(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/api/matches")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Matches []shared.MatchRecord `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Matches)
}

func TestMatches_ListsCollection(t *testing.T) {
	s, mockStore := newTestServer(t)
	seedMatch(t, mockStore, "m1")
	seedMatch(t, mockStore, "m2")

	rec := doRequest(s, http.MethodGet, "/api/matches")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Matches []shared.MatchRecord `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Matches, 2)
}

func TestMatch_Found(t *testing.T) {
	s, mockStore := newTestServer(t)
	seedMatch(t, mockStore, "m1")

	rec := doRequest(s, http.MethodGet, "/api/matches/m1")

	require.Equal(t, http.StatusOK, rec.Code)
	var match shared.MatchRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &match))
	assert.Equal(t, "m1", match.ID)
	assert.Equal(t, "Vake Park Arena", match.Stadium.Name)
}

func TestMatch_NotFound(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/api/matches/missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no match found")
}

func TestMatches_MethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, http.MethodPost, "/api/matches")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
