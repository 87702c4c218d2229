// Package api is the data access layer: a read-only client for the parties
// REST endpoint.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/partyplanner/internal/metrics"
	"github.com/rshade/partyplanner/internal/party"
	"github.com/rshade/partyplanner/pkg/version"
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 4 << 20

// Observer receives one call per fetch. *metrics.Metrics satisfies it.
type Observer interface {
	ObserveFetch(resource, outcome string, elapsed time.Duration)
}

// Client fetches parties from {base}/{cohort}/parties.
type Client struct {
	baseURL    string
	cohort     string
	httpClient *http.Client
	observer   Observer
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// WithTimeout sets a per-request timeout on the client's http.Client.
// Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		c := *cl.httpClient
		c.Timeout = d
		cl.httpClient = &c
	}
}

// WithObserver reports every fetch to o.
func WithObserver(o Observer) Option {
	return func(cl *Client) {
		cl.observer = o
	}
}

// WithLogger sets the client's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(cl *Client) {
		cl.logger = l
	}
}

// NewClient returns a client for the given API base URL and cohort path segment.
func NewClient(baseURL, cohort string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		cohort:     cohort,
		httpClient: &http.Client{},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PartiesURL returns {base}/{cohort}/parties.
func (c *Client) PartiesURL() (string, error) {
	u, err := url.JoinPath(c.baseURL, c.cohort, "parties")
	if err != nil {
		return "", fmt.Errorf("building parties url: %w", err)
	}
	return u, nil
}

// PartyURL returns {base}/{cohort}/parties/{id}.
func (c *Client) PartyURL(id int) (string, error) {
	u, err := url.JoinPath(c.baseURL, c.cohort, "parties", strconv.Itoa(id))
	if err != nil {
		return "", fmt.Errorf("building party url: %w", err)
	}
	return u, nil
}

// FetchParties returns the data array of GET {base}/{cohort}/parties, in
// server order.
func (c *Client) FetchParties(ctx context.Context) ([]party.Party, error) {
	fail := func(kind Kind, status int, err error) *FetchError {
		return &FetchError{Resource: ResourceParties, Kind: kind, StatusCode: status, Err: err}
	}

	u, err := c.PartiesURL()
	if err != nil {
		return nil, fail(KindTransport, 0, err)
	}

	start := time.Now()
	body, status, err := c.get(ctx, u)
	if err != nil {
		c.observe(ResourceParties, metrics.OutcomeTransport, start)
		return nil, fail(KindTransport, 0, err)
	}
	if !isSuccess(status) {
		c.observe(ResourceParties, metrics.OutcomeHTTPStatus, start)
		return nil, fail(KindHTTPStatus, status, fmt.Errorf("%w: %d", ErrHTTPStatus, status))
	}

	parties, err := party.DecodeList(body)
	if err != nil {
		c.observe(ResourceParties, metrics.OutcomeTransport, start)
		return nil, fail(KindTransport, status, err)
	}

	c.observe(ResourceParties, metrics.OutcomeOK, start)
	c.logger.Debug().Ctx(ctx).Int("count", len(parties)).Msg("fetched parties")
	return parties, nil
}

// FetchPartyDetail returns the data object of GET {base}/{cohort}/parties/{id}.
func (c *Client) FetchPartyDetail(ctx context.Context, id int) (party.Party, error) {
	fail := func(kind Kind, status int, err error) *FetchError {
		return &FetchError{
			Resource: ResourcePartyDetail, ID: id, HasID: true,
			Kind: kind, StatusCode: status, Err: err,
		}
	}

	u, err := c.PartyURL(id)
	if err != nil {
		return party.Party{}, fail(KindTransport, 0, err)
	}

	start := time.Now()
	body, status, err := c.get(ctx, u)
	if err != nil {
		c.observe(ResourcePartyDetail, metrics.OutcomeTransport, start)
		return party.Party{}, fail(KindTransport, 0, err)
	}
	if !isSuccess(status) {
		c.observe(ResourcePartyDetail, metrics.OutcomeHTTPStatus, start)
		return party.Party{}, fail(KindHTTPStatus, status, fmt.Errorf("%w: %d", ErrHTTPStatus, status))
	}

	p, err := party.DecodeOne(body)
	if err != nil {
		c.observe(ResourcePartyDetail, metrics.OutcomeTransport, start)
		return party.Party{}, fail(KindTransport, status, err)
	}

	c.observe(ResourcePartyDetail, metrics.OutcomeOK, start)
	c.logger.Debug().Ctx(ctx).Int("party_id", id).Msg("fetched party detail")
	return p, nil
}

// get performs the request and reads the body. The status code is returned
// even when it is not 2xx.
func (c *Client) get(ctx context.Context, u string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("GET %s: %w", u, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

func (c *Client) observe(resource, outcome string, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveFetch(resource, outcome, time.Since(start))
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
