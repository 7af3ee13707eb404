package har

import (
	"sort"
	"time"
)

// MatchFunc selects entries during collation.
type MatchFunc func(Entry) bool

// Collate parses every source, concatenates their entries in source order,
// drops the ones match rejects and stable-sorts the rest by start time.
// A nil match keeps everything. Any ParseError aborts the whole collation.
//
// Entries with unparsable start times sort after all others and keep their
// relative order.
func Collate(sources []Source, match MatchFunc) ([]Entry, error) {
	var all []Entry
	for _, src := range sources {
		entries, err := Parse(src)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}

	type keyed struct {
		entry   Entry
		started time.Time
		ok      bool
	}

	kept := make([]keyed, 0, len(all))
	for _, e := range all {
		if match != nil && !match(e) {
			continue
		}
		t, ok := e.Started()
		kept = append(kept, keyed{entry: e, started: t, ok: ok})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.ok != b.ok {
			return a.ok
		}
		return a.ok && a.started.Before(b.started)
	})

	out := make([]Entry, len(kept))
	for i, k := range kept {
		out[i] = k.entry
	}
	return out, nil
}
