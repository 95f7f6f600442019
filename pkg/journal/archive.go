package journal

import (
	"fmt"
	"sort"
	"time"

	"tableflip.dev/daypack/pkg/store"
)

// Archived groups the partition's entries into month buckets keyed by
// zero-padded "YYYY-MM", excluding the month of now. It is a pure projection:
// recomputed from the stored collection every call, never persisted.
//
// Entries whose date does not parse as an ISO date are excluded without
// comment (skip-and-continue); a single bad record never breaks the archive.
func (s Store) Archived(p store.Partition, now time.Time) (map[string][]Entry, error) {
	entries, err := s.List(p)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string][]Entry)
	for _, e := range entries {
		t, err := time.Parse(layoutISO, e.Date)
		if err != nil {
			continue
		}
		if t.Year() == now.Year() && t.Month() == now.Month() {
			continue
		}
		key := fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
		buckets[key] = append(buckets[key], e)
	}

	for key := range buckets {
		bucket := buckets[key]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Date > bucket[j].Date
		})
	}
	return buckets, nil
}

// MonthKeys returns the bucket keys newest first, the order the archive is
// presented in.
func MonthKeys(buckets map[string][]Entry) []string {
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}
