package mimetype

// Filter selects entries by response MIME type. The zero value, and any
// filter built from an empty or unparsable pattern, accepts everything.
type Filter struct {
	want   MediaType
	active bool
}

// NewFilter builds a Filter from a user pattern such as "image/*" or
// "text/html".
func NewFilter(pattern string) Filter {
	if pattern == "" {
		return Filter{}
	}
	mt, ok := Parse(pattern)
	if !ok {
		return Filter{}
	}
	return Filter{want: mt, active: true}
}

// Active reports whether the filter rejects anything at all.
func (f Filter) Active() bool {
	return f.active
}

// Pattern returns the normalized pattern, or "" for an accept-all filter.
func (f Filter) Pattern() string {
	if !f.active {
		return ""
	}
	return f.want.String()
}

// Match reports whether an entry with the given response MIME type passes.
// With an active filter, missing or malformed MIME types never match.
func (f Filter) Match(mimeType string) bool {
	if !f.active {
		return true
	}
	got, ok := Parse(mimeType)
	if !ok || got.Type != f.want.Type {
		return false
	}
	return f.want.Subtype == Wildcard || f.want.Subtype == got.Subtype
}
