// Package mimetype parses "type/subtype" media types and builds the
// response filter used to select HAR entries.
package mimetype

import "strings"

// Wildcard matches every subtype of a type.
const Wildcard = "*"

// MediaType is a parsed MIME type. Both fields are lowercase; parameters
// are dropped.
type MediaType struct {
	Type    string
	Subtype string
}

func (m MediaType) String() string {
	return m.Type + "/" + m.Subtype
}

// Parse extracts type and subtype from s. Surrounding whitespace and any
// ";"-separated parameters are ignored. It reports false when either part is
// empty or holds characters outside the HTTP token set.
func Parse(s string) (MediaType, bool) {
	s = strings.Trim(s, httpWhitespace)

	slash := strings.IndexByte(s, '/')
	if slash <= 0 {
		return MediaType{}, false
	}
	typ := s[:slash]
	rest := s[slash+1:]

	subtype := rest
	if semi := strings.IndexByte(rest, ';'); semi >= 0 {
		subtype = rest[:semi]
	}
	subtype = strings.TrimRight(subtype, httpWhitespace)

	if !isToken(typ) || !isToken(subtype) {
		return MediaType{}, false
	}
	return MediaType{
		Type:    strings.ToLower(typ),
		Subtype: strings.ToLower(subtype),
	}, true
}

const httpWhitespace = " \t\r\n"

func isToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isTokenByte(s[i]) {
			return false
		}
	}
	return true
}

func isTokenByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("!#$%&'*+-.^_`|~", c) >= 0
}
