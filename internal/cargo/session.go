// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package cargo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/nookipedia/nookipedia-api/internal/logging"
	"github.com/nookipedia/nookipedia-api/internal/metrics"
)

// sessionCacheKey is the cache key for the bot session. Sessions live for
// the configured session TTL (30 days by default, the MediaWiki maximum).
const sessionCacheKey = "mw_session"

// session holds the credentials of an authenticated bot login: the login
// token presented as a bearer and the cookies MediaWiki set on success.
type session struct {
	Token   string
	Cookies []*http.Cookie
}

type loginTokenResponse struct {
	Query struct {
		Tokens struct {
			LoginToken string `json:"logintoken"`
		} `json:"tokens"`
	} `json:"query"`
}

type loginResponse struct {
	Login *struct {
		Result string `json:"result"`
	} `json:"login"`
}

// login performs the two-step MediaWiki bot login: fetch a login token, then
// post the bot credentials with that token. On success the session is cached
// for the session TTL and returned.
func (c *Client) login(ctx context.Context) (*session, error) {
	sess, err := c.doLogin(ctx)
	metrics.RecordLogin(err)
	if err != nil {
		logging.Error().Err(err).Msg("MediaWiki bot login failed")
		return nil, &UpstreamError{Op: "login", Err: err}
	}

	logging.Info().Msg("successfully logged into MediaWiki API")
	c.cache.SetWithTTL(sessionCacheKey, sess, c.sessionTTL)
	return sess, nil
}

func (c *Client) doLogin(ctx context.Context) (*session, error) {
	// Step 1: fetch a login token.
	tokenURL := c.apiURL + "?action=query&meta=tokens&type=login&format=json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tokenURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("retrieve login token: %w", err)
	}
	defer resp.Body.Close()

	var tokenResp loginTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, fmt.Errorf("decode login token response: %w", err)
	}
	token := tokenResp.Query.Tokens.LoginToken
	if token == "" {
		return nil, errors.New("could not retrieve login token")
	}
	tokenCookies := resp.Cookies()

	// Step 2: post credentials with the token and the token-request cookies.
	form := url.Values{}
	form.Set("action", "login")
	form.Set("lgname", c.botUser)
	form.Set("lgpassword", c.botPass)
	form.Set("lgtoken", token)
	form.Set("format", "json")

	postReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	postReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range tokenCookies {
		postReq.AddCookie(cookie)
	}

	postResp, err := c.httpClient.Do(postReq)
	if err != nil {
		return nil, fmt.Errorf("post login credentials: %w", err)
	}
	defer postResp.Body.Close()

	var loginResp loginResponse
	if err := json.NewDecoder(postResp.Body).Decode(&loginResp); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	if loginResp.Login == nil || loginResp.Login.Result != "Success" {
		return nil, errors.New("login was not accepted by the wiki")
	}

	return &session{Token: token, Cookies: postResp.Cookies()}, nil
}

// currentSession returns the cached bot session, logging in when the cache
// is cold or the entry has expired.
func (c *Client) currentSession(ctx context.Context) (*session, error) {
	if v, ok := c.cache.Get(sessionCacheKey); ok {
		if sess, ok := v.(*session); ok {
			metrics.CacheHits.WithLabelValues("session").Inc()
			return sess, nil
		}
	}
	metrics.CacheMisses.WithLabelValues("session").Inc()

	c.loginMu.Lock()
	defer c.loginMu.Unlock()

	// Another request may have logged in while we waited for the lock.
	if v, ok := c.cache.Get(sessionCacheKey); ok {
		if sess, ok := v.(*session); ok {
			return sess, nil
		}
	}
	return c.login(ctx)
}
