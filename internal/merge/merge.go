// Package merge combines content lists into a single deduplicated,
// date-ordered view. Pure functions only; no I/O.
package merge

import (
	"sort"

	"github.com/PriKalra/priyata-universe/internal/content"
)

// Merge combines the given lists into one list with unique links, sorted
// by date descending. Earlier lists take precedence: a duplicate link
// from a later list replaces the kept item only when it is strictly
// newer, so on equal dates the earlier list's version survives. The sort
// is stable, so items with equal dates keep their relative input order.
func Merge(lists ...[]content.Item) []content.Item {
	var out []content.Item
	index := make(map[string]int)

	for _, list := range lists {
		for _, item := range list {
			at, seen := index[item.Link]
			if !seen {
				index[item.Link] = len(out)
				out = append(out, item)
				continue
			}
			if item.Date > out[at].Date {
				out[at] = item
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
