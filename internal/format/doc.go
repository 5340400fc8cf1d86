// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

// Package format reshapes normalized Cargo rows into the public response
// contracts. Formatters coerce stringly-typed wiki values into JSON booleans
// and numbers, collapse numbered column families (material1..material6) into
// arrays and object lists, and branch on the client's Accept-Version to
// reproduce historical response shapes.
package format
