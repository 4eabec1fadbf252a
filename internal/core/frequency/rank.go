package frequency

import (
	"golang.org/x/exp/slices"

	"exusiai.dev/ssq-predictor/internal/model"
)

// Rank orders every tally by descending count.
//
// Red ties keep the order in which numbers were first tallied, so the sort must be
// stable and must run over the insertion-ordered entries, never over a map.
// Blue ties go to the smaller number.
func Rank(tally *model.FrequencyTally) *model.RankedCandidates {
	ranked := &model.RankedCandidates{}

	for pos := range tally.Reds {
		entries := tally.Reds[pos].Entries()
		slices.SortStableFunc(entries, func(a, b model.TallyEntry) bool {
			return a.Count > b.Count
		})

		numbers := make([]int, len(entries))
		for i, e := range entries {
			numbers[i] = e.Number
		}
		ranked.Reds[pos] = numbers
	}

	blue := make([]model.TallyEntry, len(tally.Blue))
	for i, count := range tally.Blue {
		blue[i] = model.TallyEntry{Number: i + 1, Count: count}
	}
	// blue is built in ascending number order, so stability gives the ascending tie-break
	slices.SortStableFunc(blue, func(a, b model.TallyEntry) bool {
		return a.Count > b.Count
	})
	ranked.Blue = make([]int, len(blue))
	for i, e := range blue {
		ranked.Blue[i] = e.Number
	}

	return ranked
}
