package kvstore

import "sort"

// SortedKeys returns the keys of entries in lexical order. Backends write in
// this order so that multi-key writes are deterministic.
func SortedKeys(entries map[string][]byte) []string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
