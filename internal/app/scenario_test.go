package app_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/partyplanner/internal/api"
	"github.com/rshade/partyplanner/internal/app"
	"github.com/rshade/partyplanner/internal/render"
)

func renderHTML(t *testing.T, a *app.App) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, render.Page(a.Snapshot()).Render(context.Background(), &sb))
	return sb.String()
}

func TestLaunchPartyScenario(t *testing.T) {
	var detailHits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/cohort/parties", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"data":[{"id":1,"name":"Launch Party","date":"2024-01-01","location":"HQ"}]}`)
	})
	mux.HandleFunc("GET /api/cohort/parties/1", func(w http.ResponseWriter, _ *http.Request) {
		detailHits.Add(1)
		_, _ = io.WriteString(w, `{"data":{"id":1,"name":"Launch Party","date":"2024-01-01","location":"HQ","description":"Kickoff","guestList":"Alice, Bob"}}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	a := app.New(api.NewClient(srv.URL+"/api", "cohort"))
	ctx := context.Background()

	require.NoError(t, a.Load(ctx))
	page := renderHTML(t, a)
	assert.Equal(t, 1, strings.Count(page, "<li "))
	assert.Contains(t, page, ">Launch Party</a>")
	assert.Contains(t, page, render.SelectPrompt)

	require.NoError(t, a.Select(ctx, 1))
	assert.Equal(t, int32(1), detailHits.Load())

	page = renderHTML(t, a)
	for _, want := range []string{"Launch Party", "2024-01-01", "HQ", "Kickoff", "Alice, Bob"} {
		assert.Contains(t, page, want)
	}
	assert.Contains(t, page, render.GuestListLabel)
	assert.NotContains(t, page, render.SelectPrompt)
}
