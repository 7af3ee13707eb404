// Package pathmap turns captured request URLs into relative, slash-separated
// file paths.
//
// Paths are percent-decoded, dot segments are resolved against the URL root
// so a mapped path never climbs above the output directory, and a trailing
// slash is dropped: http://example.com/dir/ maps to example.com/dir.
package pathmap

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

var (
	ErrInvalidURL       = errors.New("invalid URL")
	ErrEncodedSeparator = errors.New("path contains an encoded separator")
	ErrEmptyPath        = errors.New("URL maps to an empty path")
)

// Strategy maps an absolute URL to a relative slash-separated path.
type Strategy func(rawURL string) (string, error)

// Default is the strategy harx uses for both listing and extraction.
var Default Strategy = HostPath

// HostPath maps scheme://host:port/a/b?q to host/a/b. The host is lowercased
// and the port dropped.
func HostPath(rawURL string) (string, error) {
	u, rel, err := split(rawURL)
	if err != nil {
		return "", err
	}

	host := strings.ToLower(u.Hostname())
	if host == "." || host == ".." || strings.ContainsAny(host, `/\`) {
		return "", fmt.Errorf("%w: unusable host %q", ErrInvalidURL, host)
	}

	p := path.Join(host, rel)
	if p == "" || p == "." {
		return "", ErrEmptyPath
	}
	return p, nil
}

// PathOnly maps scheme://host/a/b?q to a/b, ignoring the host. URLs from
// different hosts with the same path collide.
func PathOnly(rawURL string) (string, error) {
	_, rel, err := split(rawURL)
	if err != nil {
		return "", err
	}
	if rel == "" {
		return "", ErrEmptyPath
	}
	return rel, nil
}

// split parses rawURL and returns its decoded, cleaned path without the
// leading slash. Query and fragment are discarded.
func split(rawURL string) (*url.URL, string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if !u.IsAbs() {
		return nil, "", fmt.Errorf("%w: %q is not absolute", ErrInvalidURL, rawURL)
	}

	escaped := u.EscapedPath()
	if u.Opaque != "" {
		escaped = u.Opaque
	}
	if hasEncodedSeparator(escaped) {
		return nil, "", fmt.Errorf("%w: %s", ErrEncodedSeparator, escaped)
	}

	decoded, err := url.PathUnescape(escaped)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if strings.ContainsRune(decoded, 0) {
		return nil, "", fmt.Errorf("%w: path contains a NUL byte", ErrInvalidURL)
	}

	cleaned := path.Clean("/" + decoded)
	return u, strings.TrimPrefix(cleaned, "/"), nil
}

func hasEncodedSeparator(escaped string) bool {
	lower := strings.ToLower(escaped)
	return strings.Contains(lower, "%2f") || strings.Contains(lower, "%5c")
}
