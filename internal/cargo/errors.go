// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package cargo

import "fmt"

// UpstreamError reports a failed interaction with the wiki. Op identifies
// the operation ("cargoquery", "login", "thumbnail") and Params carries the
// query parameters for diagnostics.
type UpstreamError struct {
	Op     string
	Params string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Params != "" {
		return fmt.Sprintf("cargo %s failed for parameters %s: %v", e.Op, e.Params, e.Err)
	}
	return fmt.Sprintf("cargo %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
