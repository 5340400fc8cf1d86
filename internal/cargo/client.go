// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package cargo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/nookipedia/nookipedia-api/internal/cache"
	"github.com/nookipedia/nookipedia-api/internal/metrics"
)

// anonRowCap is the upstream per-query row limit for unauthenticated
// clients. Queries wanting more rows than this are made with the bot
// session when one is configured.
const anonRowCap = 500

// Options configures a Client.
type Options struct {
	// BaseURL is the wiki root (e.g. https://nookipedia.com/). Page URLs
	// and Special:FilePath lookups derive from it.
	BaseURL string

	// APIURL is the api.php endpoint serving cargoquery.
	APIURL string

	// BotUsername/BotPassword enable authenticated fetches. Both empty
	// disables authentication entirely.
	BotUsername string
	BotPassword string

	// Timeout bounds each individual upstream HTTP call.
	Timeout time.Duration

	// ResultTTL is how long fetch results are memoized. SessionTTL is how
	// long a bot login session is kept.
	ResultTTL  time.Duration
	SessionTTL time.Duration

	// Cache stores memoized results and the bot session.
	Cache cache.Cacher

	// HTTPClient overrides the default client, used by tests.
	HTTPClient *http.Client
}

// Client fetches and normalizes Cargo query results.
type Client struct {
	httpClient *http.Client
	cache      cache.Cacher
	baseURL    string
	pageBase   string
	apiURL     string
	botUser    string
	botPass    string
	resultTTL  time.Duration
	sessionTTL time.Duration
	loginMu    sync.Mutex
}

// New creates a Cargo client.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	base := strings.TrimSuffix(opts.BaseURL, "/") + "/"
	return &Client{
		httpClient: httpClient,
		cache:      opts.Cache,
		baseURL:    base,
		pageBase:   base + "wiki/",
		apiURL:     opts.APIURL,
		botUser:    opts.BotUsername,
		botPass:    opts.BotPassword,
		resultTTL:  opts.ResultTTL,
		sessionTTL: opts.SessionTTL,
	}
}

// botConfigured reports whether authenticated fetches are available.
func (c *Client) botConfigured() bool {
	return c.botUser != "" && c.botPass != ""
}

// cargoResponse mirrors the upstream cargoquery envelope. Warnings signal a
// truncated batch; Error signals a rejected query (often an expired bot
// session).
type cargoResponse struct {
	CargoQuery []struct {
		Title map[string]any `json:"title"`
	} `json:"cargoquery"`
	Warnings map[string]any `json:"warnings"`
	Error    *cargoAPIError `json:"error"`
}

type cargoAPIError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (e *cargoAPIError) String() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Info)
}

// doQuery performs a single upstream cargoquery HTTP call. When sess is
// non-nil the request asserts bot rights and presents the session
// credentials.
func (c *Client) doQuery(ctx context.Context, params url.Values, sess *session) (*cargoResponse, error) {
	if sess != nil {
		params = cloneValues(params)
		params.Set("assert", "bot")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
		for _, cookie := range sess.Cookies {
			req.AddCookie(cookie)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RecordCargoRequest(sess != nil, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("cargoquery request: %w", err)
	}
	defer resp.Body.Close()

	var parsed cargoResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode cargoquery response: %w", err)
	}
	return &parsed, nil
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for key, vals := range v {
		out[key] = append([]string(nil), vals...)
	}
	return out
}
