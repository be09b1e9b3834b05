// Package client talks to the AiVantu video-generation backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the backend's REST surface: health, catalogues, gallery, profile,
//     uploads, video generation, assistant, voice preview, payment orders
//     and file download.
//  2. A concrete HTTP implementation (see HTTPClient) that builds JSON,
//     urlencoded and multipart requests against one base URL and decodes
//     the JSON answers.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Every call makes a single attempt. Failures are classified with sentinel
// errors matched by errors.Is: ErrUnavailable (transport), ErrUnexpectedStatus
// (anything but 200, as *StatusError) and ErrMalformedResponse (body is not
// the JSON we expect).
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context; the only other deadline is http.Client.Timeout.
package client
