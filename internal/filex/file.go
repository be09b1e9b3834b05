// Package filex contains local file helpers: directory preparation and
// attachment type checks done before anything is sent to the backend.
package filex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind is the category of an attachment as the backend understands it.
type Kind string

const (
	KindImage Kind = "image"
	KindAudio Kind = "audio"
	KindVideo Kind = "video"
)

var (
	ErrUnsupportedKind      = errors.New("unsupported attachment kind")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrNotRegularFile       = errors.New("not a regular file")
)

var allowedExtensions = map[Kind][]string{
	KindImage: {"png", "jpg", "jpeg", "gif", "webp"},
	KindAudio: {"mp3", "wav", "ogg", "m4a"},
	KindVideo: {"mp4", "mov", "mkv", "webm"},
}

// ParseKind maps user input ("image", "audio", "video") to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := allowedExtensions[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
	}
	return k, nil
}

// AllowedExtensions lists the lower-case extensions accepted for k.
func AllowedExtensions(k Kind) []string {
	return append([]string(nil), allowedExtensions[k]...)
}

// HasAllowedExtension reports whether name ends with an extension allowed for k.
func HasAllowedExtension(name string, k Kind) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return false
	}
	for _, e := range allowedExtensions[k] {
		if e == ext {
			return true
		}
	}
	return false
}

// CheckAttachment verifies that path is an existing regular file whose
// extension the backend accepts for k.
func CheckAttachment(path string, k Kind) error {
	if _, ok := allowedExtensions[k]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedKind, k)
	}
	if !HasAllowedExtension(path, k) {
		return fmt.Errorf("%w: %s (allowed for %s: %s)", ErrUnsupportedExtension,
			filepath.Base(path), k, strings.Join(allowedExtensions[k], ", "))
	}
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}
	return nil
}

// EnsureDir creates dir (relative paths resolve against the working
// directory) and returns its absolute path.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}

// NameFromURL derives a local file name from the last path segment of a
// download URL, dropping any query string. fallback is used when the URL has
// no usable segment.
func NameFromURL(rawURL, fallback string) string {
	s, _, _ := strings.Cut(rawURL, "?")
	s, _, _ = strings.Cut(s, "#")
	name := s[strings.LastIndex(s, "/")+1:]
	if name == "" || name == "." || name == ".." {
		return fallback
	}
	return name
}
