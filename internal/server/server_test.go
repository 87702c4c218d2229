package server_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/partyplanner/internal/api"
	"github.com/rshade/partyplanner/internal/app"
	"github.com/rshade/partyplanner/internal/metrics"
	"github.com/rshade/partyplanner/internal/render"
	"github.com/rshade/partyplanner/internal/server"
)

const partiesBody = `{"data":[{"id":1,"name":"Launch Party"},{"id":7,"name":"Broken"},{"id":42,"name":"Retro"}]}`

// upstream fakes the parties API and counts detail requests. Detail requests
// for party 1 wait until release is closed.
type upstream struct {
	srv     *httptest.Server
	details atomic.Int32

	slowStarted chan struct{}
	release     chan struct{}
	releaseOnce sync.Once
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{
		slowStarted: make(chan struct{}, 1),
		release:     make(chan struct{}),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/cohort/parties", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, partiesBody)
	})
	mux.HandleFunc("GET /api/cohort/parties/1", func(w http.ResponseWriter, r *http.Request) {
		u.details.Add(1)
		select {
		case u.slowStarted <- struct{}{}:
		default:
		}
		select {
		case <-u.release:
		case <-r.Context().Done():
			return
		}
		_, _ = io.WriteString(w, `{"data":{"id":1,"name":"Launch Party","date":"2024-01-01","location":"HQ","description":"Kickoff"}}`)
	})
	mux.HandleFunc("GET /api/cohort/parties/42", func(w http.ResponseWriter, _ *http.Request) {
		u.details.Add(1)
		_, _ = io.WriteString(w, `{"data":{"id":42,"name":"Retro","date":"2024-06-01","location":"Room 4","description":"Look back","guestList":"Ann"}}`)
	})
	mux.HandleFunc("GET /api/cohort/parties/7", func(w http.ResponseWriter, _ *http.Request) {
		u.details.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})
	u.srv = httptest.NewServer(mux)
	t.Cleanup(u.srv.Close)
	t.Cleanup(u.releaseSlow)
	return u
}

func (u *upstream) releaseSlow() {
	u.releaseOnce.Do(func() { close(u.release) })
}

func newPageServer(t *testing.T, up *upstream, m *metrics.Metrics) (*httptest.Server, *app.App) {
	t.Helper()
	a := app.New(api.NewClient(up.srv.URL+"/api", "cohort"))
	require.NoError(t, a.Load(context.Background()))

	s := server.New(a, server.WithMetrics(m))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, a
}

func get(t *testing.T, url string) (int, string, http.Header) {
	t.Helper()
	resp, err := http.Get(url) //nolint:noctx // Test helper.
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body), resp.Header
}

func TestIndex_RendersList(t *testing.T) {
	ts, _ := newPageServer(t, newUpstream(t), nil)

	code, body, header := get(t, ts.URL+"/")

	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, header.Get("Content-Type"), "text/html")
	assert.NotEmpty(t, header.Get("X-Trace-Id"))
	assert.Contains(t, body, `<div id="app">`)
	assert.Contains(t, body, `<a href="/parties/42">Retro</a>`)
	assert.Contains(t, body, render.SelectPrompt)
}

func TestParty_SelectsAndRenders(t *testing.T) {
	up := newUpstream(t)
	ts, a := newPageServer(t, up, nil)

	code, body, _ := get(t, ts.URL+"/parties/42")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, int32(1), up.details.Load())
	assert.Contains(t, body, `<article class="party-card">`)
	assert.Contains(t, body, "Room 4")
	assert.Contains(t, body, "Launch Party")
	assert.NotContains(t, body, render.SelectPrompt)

	// The selection belongs to the response, not the shared state.
	assert.False(t, a.Snapshot().HasSelection())
}

func TestParty_SelectionIsPerRequest(t *testing.T) {
	up := newUpstream(t)
	ts, _ := newPageServer(t, up, nil)

	type result struct {
		code int
		body string
	}
	slow := make(chan result, 1)
	go func() {
		resp, err := http.Get(ts.URL + "/parties/1") //nolint:noctx // Test helper.
		if err != nil {
			slow <- result{}
			return
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		slow <- result{code: resp.StatusCode, body: string(body)}
	}()

	select {
	case <-up.slowStarted:
	case <-time.After(5 * time.Second):
		t.Fatal("detail request for party 1 never reached the API")
	}

	// A later visitor's request finishes while the first is still waiting.
	code, body, _ := get(t, ts.URL+"/parties/42")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Room 4")

	up.releaseSlow()
	var first result
	select {
	case first = <-slow:
	case <-time.After(5 * time.Second):
		t.Fatal("request for party 1 did not complete")
	}
	assert.Equal(t, http.StatusOK, first.code)
	assert.Contains(t, first.body, "Kickoff")
	assert.NotContains(t, first.body, "Room 4")

	// A fresh visitor sees no one's selection.
	_, body, _ = get(t, ts.URL+"/")
	assert.Contains(t, body, render.SelectPrompt)
	assert.NotContains(t, body, `<article class="party-card">`)
}

func TestParty_FailedFetchRendersListWithoutSelection(t *testing.T) {
	up := newUpstream(t)
	ts, _ := newPageServer(t, up, nil)

	_, _, _ = get(t, ts.URL+"/parties/42")
	code, body, _ := get(t, ts.URL+"/parties/7")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, int32(2), up.details.Load())
	assert.Contains(t, body, "Launch Party")
	assert.Contains(t, body, render.SelectPrompt)
	assert.NotContains(t, body, "Room 4")
}

func TestParty_UnlistedID(t *testing.T) {
	up := newUpstream(t)
	ts, _ := newPageServer(t, up, nil)

	code, _, _ := get(t, ts.URL+"/parties/99")

	assert.Equal(t, http.StatusNotFound, code)
	assert.Zero(t, up.details.Load())
}

func TestParty_EmptyListIsNotFound(t *testing.T) {
	up := newUpstream(t)
	a := app.New(api.NewClient(up.srv.URL+"/api", "missing-cohort"))
	require.Error(t, a.Load(context.Background()))

	ts := httptest.NewServer(server.New(a).Handler())
	t.Cleanup(ts.Close)

	code, _, _ := get(t, ts.URL+"/parties/42")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Zero(t, up.details.Load())
}

func TestParty_NonIntegerID(t *testing.T) {
	up := newUpstream(t)
	ts, _ := newPageServer(t, up, nil)

	code, _, _ := get(t, ts.URL+"/parties/abc")

	assert.Equal(t, http.StatusNotFound, code)
	assert.Zero(t, up.details.Load())
}

func TestUnknownPath(t *testing.T) {
	ts, _ := newPageServer(t, newUpstream(t), nil)

	code, _, _ := get(t, ts.URL+"/nope")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestHealthz(t *testing.T) {
	ts, _ := newPageServer(t, newUpstream(t), nil)

	code, body, _ := get(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)
}

func TestMetrics(t *testing.T) {
	m := metrics.New()
	ts, _ := newPageServer(t, newUpstream(t), m)

	_, _, _ = get(t, ts.URL+"/")
	code, body, _ := get(t, ts.URL+"/metrics")

	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "partyplanner_page_requests_total")
}

func TestMetricsRouteAbsentWithoutMetrics(t *testing.T) {
	ts, _ := newPageServer(t, newUpstream(t), nil)

	code, _, _ := get(t, ts.URL+"/metrics")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestServe_LoadsAndShutsDown(t *testing.T) {
	up := newUpstream(t)
	a := app.New(api.NewClient(up.srv.URL+"/api", "cohort"))
	s := server.New(a, server.WithAddr("127.0.0.1:0"))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz") //nolint:noctx // Test polling.
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)
	assert.Len(t, a.Snapshot().Parties, 3)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestNew_Defaults(t *testing.T) {
	s := server.New(app.New(nil))
	assert.Equal(t, ":8080", s.Addr())
}
