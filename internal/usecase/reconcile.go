package usecase

import "slices"

// diffFacilities computes the delta between a room's desired facility
// set and its current one: toAdd = desired minus current, toRemove =
// current minus desired. Both results come back sorted ascending so the
// applied statements are deterministic. Duplicates in either input
// collapse.
func diffFacilities(desired, current []int64) (toAdd, toRemove []int64) {
	want := make(map[int64]struct{}, len(desired))
	for _, id := range desired {
		want[id] = struct{}{}
	}
	have := make(map[int64]struct{}, len(current))
	for _, id := range current {
		have[id] = struct{}{}
	}

	for id := range want {
		if _, ok := have[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	for id := range have {
		if _, ok := want[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}

	slices.Sort(toAdd)
	slices.Sort(toRemove)
	return toAdd, toRemove
}
