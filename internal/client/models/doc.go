// Package models defines the DTOs exchanged with the AiVantu backend and the
// records the client keeps locally.
//
// Backend JSON is loosely specified: most fields are optional and some have
// aliases (download_url / video_url, photo / photo_url). Each response type
// has a WithDefaults method that resolves aliases and substitutes the
// documented default for anything missing, so callers never deal with blanks.
package models
