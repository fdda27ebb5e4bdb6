package profile

import (
	"strconv"
	"strings"

	"github.com/ashureev/founder-compass/internal/domain"
)

// ApplyUpdates merges an update map extracted from the latest turn into a
// copy of the profile and returns the copy. Per entry:
//
//   - unknown field names are skipped silently;
//   - list fields union the candidate items (trimmed, empties dropped,
//     case-sensitive exact dedup), keeping prior order and appending new
//     items in supplied order;
//   - scalar fields take the first non-empty trimmed candidate,
//     overwriting the previous value entirely;
//   - empty candidates never erase an existing value.
//
// Applying the same update map twice yields the same profile as applying
// it once.
func ApplyUpdates(p domain.Profile, updates map[string]any) domain.Profile {
	for name, raw := range updates {
		f, ok := Lookup(name)
		if !ok {
			continue
		}
		items := candidateItems(raw)
		if len(items) == 0 {
			continue
		}
		if f.Kind == List {
			dst := f.list(&p)
			*dst = unionInto(*dst, items)
			continue
		}
		*f.scalar(&p) = items[0]
	}
	return p
}

// candidateItems normalizes a raw JSON-decoded candidate value into
// trimmed non-empty strings. Unsupported shapes yield nothing.
func candidateItems(raw any) []string {
	var out []string
	appendItem := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	switch v := raw.(type) {
	case string:
		appendItem(v)
	case []string:
		for _, s := range v {
			appendItem(s)
		}
	case []any:
		for _, e := range v {
			switch s := e.(type) {
			case string:
				appendItem(s)
			case float64:
				appendItem(strconv.FormatFloat(s, 'f', -1, 64))
			}
		}
	case float64:
		appendItem(strconv.FormatFloat(v, 'f', -1, 64))
	}
	return out
}

// unionInto returns existing plus the items not already in it, preserving
// both orders. The result never shares a backing array with existing, so
// merged profiles cannot alias the input.
func unionInto(existing, items []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(items))
	for _, s := range existing {
		seen[s] = struct{}{}
	}
	out := append(make([]string, 0, len(existing)+len(items)), existing...)
	for _, s := range items {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
