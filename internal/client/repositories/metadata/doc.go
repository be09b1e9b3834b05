// Package metadata persists the signed-in session and other client state as
// key/value rows in the local SQLite database.
package metadata
