package model

// TallyEntry is the number of times Number has been observed.
type TallyEntry struct {
	Number int
	Count  int
}

// PositionTally counts numbers observed at a single red position. Entries keep the
// order in which each number was first seen, which ranking relies on to break ties.
type PositionTally struct {
	entries []TallyEntry
	index   map[int]int
}

func (t *PositionTally) Add(number int) {
	if t.index == nil {
		t.index = make(map[int]int)
	}
	if i, ok := t.index[number]; ok {
		t.entries[i].Count++
		return
	}
	t.index[number] = len(t.entries)
	t.entries = append(t.entries, TallyEntry{Number: number, Count: 1})
}

func (t *PositionTally) Count(number int) int {
	if i, ok := t.index[number]; ok {
		return t.entries[i].Count
	}
	return 0
}

// Entries returns a copy of the tally in first-seen order.
func (t *PositionTally) Entries() []TallyEntry {
	out := make([]TallyEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *PositionTally) Len() int {
	return len(t.entries)
}

func (t *PositionTally) Total() int {
	total := 0
	for _, e := range t.entries {
		total += e.Count
	}
	return total
}

// FrequencyTally holds per-position red tallies and a dense blue tally where
// Blue[n-1] is the count for blue number n.
type FrequencyTally struct {
	Reds  [RedCount]PositionTally
	Blue  [BlueMax]int
	Draws int
}

// RankedCandidates are candidate numbers ordered from most to least frequent.
type RankedCandidates struct {
	Reds [RedCount][]int
	Blue []int
}
