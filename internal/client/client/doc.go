// Package client contains the client-side building blocks for talking to the
// travel-assistant backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): Login,
//     Register, Ping, trip CRUD, packing-list generation, suggestions and
//     receipt analysis.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that injects the
//     bearer token through a RoundTripper for authenticated endpoints and
//     maps HTTP outcomes to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound and
// ErrRequestFailed. Other non-2xx responses surface as *APIError.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use once constructed. All operations
// accept context.Context and honor cancellation; a canceled context is
// returned as-is rather than reported as ErrUnavailable.
package client
