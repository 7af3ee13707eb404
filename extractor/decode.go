package extractor

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/harx-tools/harx/har"
)

// ErrDecode is wrapped by errors from bodies that claim base64 but are not.
var ErrDecode = errors.New("invalid base64 body")

// Body returns the bytes to write for a response. Text without base64
// encoding is written as-is.
func Body(c har.Content) ([]byte, error) {
	if !c.IsBase64() {
		return []byte(c.Text), nil
	}
	return decodeBase64(c.Text)
}

// decodeBase64 follows forgiving base64: ASCII whitespace is ignored and
// padding may be left off.
func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return -1
		}
		return r
	}, s)

	if len(s)%4 == 0 {
		switch {
		case strings.HasSuffix(s, "=="):
			s = s[:len(s)-2]
		case strings.HasSuffix(s, "="):
			s = s[:len(s)-1]
		}
	}

	data, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return data, nil
}
