// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package format

import "github.com/nookipedia/nookipedia-api/internal/version"

// Options carries the per-request switches that change response shapes.
type Options struct {
	// Version is the client's parsed Accept-Version.
	Version version.Version

	// NHDetails folds the nh_* villager columns into a nested nh_details
	// object when set (the villager endpoints' nhdetails=true parameter).
	NHDetails bool
}
