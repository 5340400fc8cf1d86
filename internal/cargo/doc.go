// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

// Package cargo implements the MediaWiki Cargo client: where-clause
// construction, paginated fetching with optional bot authentication, result
// normalization (key flattening, HTML unescaping, page URL synthesis), and
// thumbnail URL resolution via Special:FilePath.
//
// Fetch results are memoized in a TTL cache keyed by the full parameter set,
// so repeated identical queries are served without touching the wiki.
package cargo
