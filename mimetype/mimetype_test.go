package mimetype

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   MediaType
		wantOK bool
	}{
		{"image/png", MediaType{"image", "png"}, true},
		{"Text/HTML", MediaType{"text", "html"}, true},
		{"text/html; charset=utf-8", MediaType{"text", "html"}, true},
		{"  application/json  ", MediaType{"application", "json"}, true},
		{"image/*", MediaType{"image", "*"}, true},
		{"application/vnd.api+json", MediaType{"application", "vnd.api+json"}, true},
		{"", MediaType{}, false},
		{"text", MediaType{}, false},
		{"/html", MediaType{}, false},
		{"text/", MediaType{}, false},
		{"text/ ;charset=utf-8", MediaType{}, false},
		{"te xt/html", MediaType{}, false},
		{"text/ht(ml", MediaType{}, false},
		{"tëxt/html", MediaType{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok=%v, want %v", tt.in, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFilterMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		mime    string
		want    bool
	}{
		{"wildcard png", "image/*", "image/png", true},
		{"wildcard jpeg", "image/*", "image/jpeg", true},
		{"wildcard other type", "image/*", "text/html", false},
		{"wildcard missing", "image/*", "", false},
		{"wildcard malformed", "image/*", "image", false},
		{"exact", "text/html", "text/html", true},
		{"exact with params", "text/html", "text/html; charset=UTF-8", true},
		{"exact case", "text/html", "TEXT/Html", true},
		{"exact other subtype", "text/html", "text/plain", false},
		{"no pattern accepts missing", "", "", true},
		{"no pattern accepts anything", "", "whatever", true},
		{"unparsable pattern accepts all", "not a mime", "text/plain", true},
		{"unparsable pattern accepts missing", "image", "", true},
		{"star type is literal", "*/*", "text/plain", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter(tt.pattern)
			if got := f.Match(tt.mime); got != tt.want {
				t.Errorf("NewFilter(%q).Match(%q) = %v, want %v", tt.pattern, tt.mime, got, tt.want)
			}
		})
	}
}

func TestFilterActive(t *testing.T) {
	if NewFilter("").Active() {
		t.Error("empty pattern should be inactive")
	}
	if NewFilter("bogus").Active() {
		t.Error("unparsable pattern should be inactive")
	}
	f := NewFilter("Image/*")
	if !f.Active() {
		t.Fatal("expected active filter")
	}
	if f.Pattern() != "image/*" {
		t.Errorf("expected normalized pattern image/*, got %q", f.Pattern())
	}
	var zero Filter
	if !zero.Match("") {
		t.Error("zero filter should accept everything")
	}
}
