// Package har reads HTTP Archive documents and collates their entries.
//
// Only the fields harx consumes are modelled; everything else in a HAR 1.2
// document is ignored on decode.
package har

import (
	"strings"
	"time"
)

// Encoding values for Content.Encoding
const (
	EncodingBase64 = "base64"
)

// Entry is one recorded request/response pair.
type Entry struct {
	StartedDateTime string   `json:"startedDateTime"` // ISO 8601, used for ordering
	Request         Request  `json:"request"`
	Response        Response `json:"response"`

	// Source names the input the entry was read from ("-" for stdin).
	Source string `json:"-"`
	// Index is the entry's position inside its source.
	Index  int    `json:"-"`
}

type Request struct {
	Method string `json:"method,omitempty"`
	URL    string `json:"url"`
}

type Response struct {
	Status  int     `json:"status,omitempty"`
	Content Content `json:"content"`
}

// Content describes the response body. Text is absent for bodies the
// recorder did not keep; it is then treated as empty.
type Content struct {
	MimeType string `json:"mimeType"`
	Text     string `json:"text,omitempty"`
	Encoding string `json:"encoding,omitempty"`
}

// IsBase64 reports whether Text holds base64-encoded bytes.
func (c Content) IsBase64() bool {
	return c.Encoding == EncodingBase64
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Started parses StartedDateTime. Date-times without a zone are read in
// local time and bare dates as UTC midnight; ok is false when no layout fits.
func (e Entry) Started() (t time.Time, ok bool) {
	s := strings.TrimSpace(e.StartedDateTime)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		loc := time.Local
		if layout == "2006-01-02" {
			loc = time.UTC
		}
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
