// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package cargo

import (
	"context"
	"errors"
	"html"
	"net/url"
	"strconv"
	"strings"

	"github.com/nookipedia/nookipedia-api/internal/cache"
	"github.com/nookipedia/nookipedia-api/internal/logging"
	"github.com/nookipedia/nookipedia-api/internal/metrics"
)

// FetchOptions carries per-request variations that affect the result rows
// and therefore participate in the memoization key.
type FetchOptions struct {
	// ThumbSize, when non-empty, rewrites image fields to CDN thumbnail
	// URLs of the given pixel width.
	ThumbSize string
}

// Fetch runs a Cargo query, paging through the upstream until req.Limit rows
// are collected or the table is exhausted, and returns normalized rows.
// Results are memoized for the client's result TTL.
func (c *Client) Fetch(ctx context.Context, req QueryRequest, opts FetchOptions) ([]Row, error) {
	baseParams := req.params()

	keyParams := map[string]string{"thumbsize": opts.ThumbSize}
	for k := range baseParams {
		keyParams[k] = baseParams.Get(k)
	}
	key := cache.GenerateKey("cargoquery", keyParams)
	if v, ok := c.cache.Get(key); ok {
		if rows, ok := v.([]Row); ok {
			metrics.CacheHits.WithLabelValues("cargo").Inc()
			return copyRows(rows), nil
		}
	}
	metrics.CacheMisses.WithLabelValues("cargo").Inc()

	collected, err := c.fetchAll(ctx, req, baseParams)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(collected))
	for _, raw := range collected {
		row := normalizeRow(raw, c.pageBase)
		if opts.ThumbSize != "" {
			if err := c.resolveThumbnails(ctx, row, opts.ThumbSize); err != nil {
				return nil, err
			}
		}
		rows = append(rows, row)
	}

	c.cache.SetWithTTL(key, rows, c.resultTTL)
	return copyRows(rows), nil
}

// copyRows hands each caller its own rows. Formatters reshape rows in
// place; without the copy they would corrupt the memoized originals.
func copyRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, row := range rows {
		dup := make(Row, len(row))
		for k, v := range row {
			dup[k] = v
		}
		out[i] = dup
	}
	return out
}

// fetchAll pages through the upstream. Each iteration asks for the remaining
// row count at an offset of what has been collected so far; the loop ends
// when the limit is met, a batch comes back empty, or a batch is short with
// no truncation warning attached.
func (c *Client) fetchAll(ctx context.Context, req QueryRequest, baseParams url.Values) ([]map[string]any, error) {
	useAuth := c.botConfigured() && req.Limit > anonRowCap

	var collected []map[string]any
	for {
		remaining := req.Limit - len(collected)
		if remaining <= 0 {
			break
		}

		params := cloneValues(baseParams)
		params.Set("limit", strconv.Itoa(remaining))
		params.Set("offset", strconv.Itoa(len(collected)))

		var (
			parsed *cargoResponse
			err    error
		)
		if useAuth {
			parsed, err = c.queryAuthenticated(ctx, params)
		} else {
			parsed, err = c.doQuery(ctx, params, nil)
		}
		if err != nil {
			return nil, &UpstreamError{Op: "cargoquery", Params: req.Tables, Err: err}
		}
		if parsed.Error != nil {
			return nil, &UpstreamError{Op: "cargoquery", Params: req.Tables, Err: errors.New(parsed.Error.String())}
		}

		if len(parsed.CargoQuery) == 0 {
			break
		}
		for _, entry := range parsed.CargoQuery {
			collected = append(collected, entry.Title)
		}

		// A short batch without warnings means the upstream had nothing
		// more to give. With warnings the batch was truncated server-side
		// and another page must be requested.
		if parsed.Warnings == nil && len(parsed.CargoQuery) < remaining {
			break
		}
	}
	return collected, nil
}

// queryAuthenticated makes a bot-asserted query, retrying once with a fresh
// login when the wiki rejects the session, and finally degrading to an
// anonymous query so large requests still return the capped row count
// rather than failing outright.
func (c *Client) queryAuthenticated(ctx context.Context, params url.Values) (*cargoResponse, error) {
	sess, err := c.currentSession(ctx)
	if err != nil {
		logging.Warn().Err(err).Msg("bot session unavailable, falling back to anonymous query")
		return c.doQuery(ctx, params, nil)
	}

	parsed, err := c.doQuery(ctx, params, sess)
	if err != nil {
		return nil, err
	}
	if parsed.Error == nil {
		return parsed, nil
	}

	// The error may be an expired token; retry once with a fresh login.
	c.cache.Delete(sessionCacheKey)
	sess, loginErr := c.currentSession(ctx)
	if loginErr == nil {
		parsed, err = c.doQuery(ctx, params, sess)
		if err != nil {
			return nil, err
		}
		if parsed.Error == nil {
			return parsed, nil
		}
	}

	logging.Warn().Msg("authenticated cargo query rejected twice, retrying anonymously")
	return c.doQuery(ctx, params, nil)
}

// normalizeRow flattens field names, unescapes HTML entities in all string
// values, and rewrites the url field from a page title to a full wiki link.
func normalizeRow(raw map[string]any, pageBase string) Row {
	row := make(Row, len(raw))
	for key, value := range raw {
		row[strings.ReplaceAll(key, " ", "_")] = deepUnescape(value)
	}

	if pageName, ok := row["url"].(string); ok {
		row["url"] = pageBase + strings.ReplaceAll(pageName, " ", "_")
	}
	return row
}

// deepUnescape unescapes HTML entities in strings nested anywhere within
// the value.
func deepUnescape(value any) any {
	switch v := value.(type) {
	case string:
		return html.UnescapeString(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = deepUnescape(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = deepUnescape(e)
		}
		return out
	default:
		return value
	}
}
