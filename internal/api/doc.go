// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

// Package api is the HTTP surface: the chi router, key authorization,
// Accept-Version negotiation, and one handler per wiki entity. Handlers
// build Cargo queries, fetch through the cargo client, and reshape rows
// with the format package before responding.
package api
