// Package cli provides the interactive AiVantu command-line client.
//
// App wires configuration, the local SQLite store, the backend HTTP client
// and the services, then runs a REPL until the user exits. A background
// watcher pings the server and the prompt shows whether it is online.
//
// Commands cover the whole client: sign-in, dashboard and gallery, the
// create-video flow, profile editing, the assistant, voice previews,
// downloads with local history, optional archiving to object storage and
// payment orders. A failing command prints a single "Error: ..." line and
// the session continues.
package cli
