// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package cargo

import (
	"net/url"
	"strconv"
)

// Row is a single normalized Cargo result: keys are flattened (spaces
// replaced with underscores), values are HTML-unescaped strings as returned
// by the wiki.
type Row map[string]any

// QueryRequest describes one cargoquery invocation. Limit is the total
// number of rows wanted; the client pages through the upstream in chunks
// until the limit is reached or the table is exhausted.
type QueryRequest struct {
	Tables  string
	JoinOn  string
	Fields  string
	Where   string
	OrderBy string
	Limit   int
}

// params renders the request as cargoquery URL parameters. Empty optional
// fields are omitted entirely; Cargo rejects blank join_on and where values.
func (q QueryRequest) params() url.Values {
	v := url.Values{}
	v.Set("action", "cargoquery")
	v.Set("format", "json")
	v.Set("tables", q.Tables)
	v.Set("fields", q.Fields)
	v.Set("limit", strconv.Itoa(q.Limit))
	if q.JoinOn != "" {
		v.Set("join_on", q.JoinOn)
	}
	if q.Where != "" {
		v.Set("where", q.Where)
	}
	if q.OrderBy != "" {
		v.Set("order_by", q.OrderBy)
	}
	return v
}
