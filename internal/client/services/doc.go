// Package services holds the application logic behind each CLI command.
//
// Every service owns one or two round trips to the backend through
// client.Client plus whatever local bookkeeping the command needs (session,
// render history, downloads). Services never print; they return values and
// errors for the CLI layer to present.
package services
