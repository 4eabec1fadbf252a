package prediction

import (
	"fmt"

	"exusiai.dev/ssq-predictor/internal/model"
	"exusiai.dev/ssq-predictor/internal/pkg/ssqerr"
)

/*
Generate produces count candidate sets from ranked candidates.

For rank index i:

 1. each red position p picks ranked.Reds[p][i mod len(ranked.Reds[p])], so positions
    with fewer observed numbers than count wrap around to their top candidates;
 2. picks are committed left to right. A pick already committed by an earlier position
    is replaced by the first candidate of the same position that is not yet committed.
    If there is none, generation fails with ErrCandidateExhausted;
 3. blue picks ranked.Blue[i mod len(ranked.Blue)] and is never deduplicated.
*/
func Generate(ranked *model.RankedCandidates, count int) ([]model.CandidateSet, error) {
	if count <= 0 {
		return nil, ssqerr.ErrInvalidReq.Msg("prediction count must be greater than 0, got %d", count)
	}
	for pos, list := range ranked.Reds {
		if len(list) == 0 {
			return nil, ssqerr.ErrCandidateExhausted.Msg("red position %d has no ranked candidates", pos)
		}
	}
	if len(ranked.Blue) == 0 {
		return nil, ssqerr.ErrCandidateExhausted.Msg("blue has no ranked candidates")
	}

	sets := make([]model.CandidateSet, 0, count)
	for i := 0; i < count; i++ {
		var picks [model.RedCount]int
		for pos, list := range ranked.Reds {
			picks[pos] = list[i%len(list)]
		}

		reds, err := resolveDuplicates(i, picks, ranked)
		if err != nil {
			return nil, err
		}

		var set model.CandidateSet
		for pos, red := range reds {
			set.Reds[pos] = pad(red)
		}
		set.Blue = pad(ranked.Blue[i%len(ranked.Blue)])
		sets = append(sets, set)
	}

	return sets, nil
}

func resolveDuplicates(rank int, picks [model.RedCount]int, ranked *model.RankedCandidates) ([model.RedCount]int, error) {
	committed := make(map[int]struct{}, model.RedCount)
	for pos, pick := range picks {
		if _, dup := committed[pick]; dup {
			substitute, ok := firstUnused(ranked.Reds[pos], committed)
			if !ok {
				return picks, ssqerr.ErrCandidateExhausted.Msg("rank %d, red position %d: every ranked candidate is already used in this set", rank+1, pos)
			}
			picks[pos] = substitute
		}
		committed[picks[pos]] = struct{}{}
	}
	return picks, nil
}

func firstUnused(candidates []int, committed map[int]struct{}) (int, bool) {
	for _, c := range candidates {
		if _, used := committed[c]; !used {
			return c, true
		}
	}
	return 0, false
}

func pad(n int) string {
	return fmt.Sprintf("%02d", n)
}
