// Package renders keeps a local record of every video the user asked the
// backend to generate: what was requested, what came back, and where the
// file ended up once downloaded or archived.
package renders
