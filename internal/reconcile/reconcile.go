// Package reconcile compares icon collections and classifies every entry by
// import status. All functions are pure: they perform no I/O and never
// mutate their inputs, so callers may hand over live slices.
package reconcile

import "github.com/arkadas/deskgrid/internal/icons"

// Result partitions a source collection relative to a target collection.
// Every source record lands in exactly one bucket; bucket order follows the
// iteration order of the source.
type Result struct {
	FilesToImport   []icons.Record
	AlreadyImported []icons.Pair
	Modified        []icons.ModifiedPair
}

// Total returns the number of classified source records.
func (r Result) Total() int {
	return len(r.FilesToImport) + len(r.AlreadyImported) + len(r.Modified)
}

// Profiles reconciles a source profile against a target profile. Identity is
// the record id: a source record whose id exists in the target is compared
// field by field, anything else is importable. Records with an empty id are
// unmatchable and always land in FilesToImport. Duplicate ids within the
// target are tolerated with last-write-wins indexing.
func Profiles(target, source []icons.Record) Result {
	index := make(map[string]icons.Record, len(target))
	for _, t := range target {
		if t.ID == "" {
			continue
		}
		index[t.ID] = t
	}

	var res Result
	for _, s := range source {
		t, ok := index[s.ID]
		if s.ID == "" || !ok {
			res.FilesToImport = append(res.FilesToImport, s)
			continue
		}
		diffs := DiffFields(t, s, icons.ComparedFields)
		if len(diffs) == 0 {
			res.AlreadyImported = append(res.AlreadyImported, icons.Pair{Current: t, Other: s})
			continue
		}
		res.Modified = append(res.Modified, icons.ModifiedPair{Current: t, Other: s, Differences: diffs})
	}
	return res
}
