package har

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/harx-tools/harx/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNoEntries is wrapped by ParseError when a document has no log.entries array.
var ErrNoEntries = errors.New("missing log.entries array")

// ParseError reports an input that is not a usable HAR document.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid HAR in %s: %v", displayName(e.Source), e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// rawDocument tells a missing or null entries array apart from an empty one.
type rawDocument struct {
	Log *struct {
		Entries *[]Entry `json:"entries"`
	} `json:"log"`
}

// Parse decodes one source into its entries, in document order. Each entry
// is stamped with the source name and its index.
func Parse(src Source) ([]Entry, error) {
	var doc rawDocument
	if err := json.Unmarshal(src.Data, &doc); err != nil {
		return nil, &ParseError{Source: src.Name, Err: err}
	}
	if doc.Log == nil || doc.Log.Entries == nil {
		return nil, &ParseError{Source: src.Name, Err: ErrNoEntries}
	}

	entries := *doc.Log.Entries
	for i := range entries {
		entries[i].Source = src.Name
		entries[i].Index = i
	}

	logger.Debug("parsed source", "source", src.Name, "entries", len(entries))
	return entries, nil
}
