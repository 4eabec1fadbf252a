package frequency

import (
	"github.com/pkg/errors"

	"exusiai.dev/ssq-predictor/internal/model"
	"exusiai.dev/ssq-predictor/internal/pkg/ssqerr"
)

// Tabulate counts red numbers per position and blue numbers across draws, in the
// order the draws are given. The first invalid draw aborts tabulation.
func Tabulate(draws []model.Draw) (*model.FrequencyTally, error) {
	if len(draws) == 0 {
		return nil, ssqerr.ErrInvalidReq.Msg("no draw records to tabulate")
	}

	tally := &model.FrequencyTally{}
	for i := range draws {
		draw := &draws[i]
		if err := draw.Validate(); err != nil {
			var e *ssqerr.SSQError
			if !errors.As(err, &e) {
				return nil, err
			}
			return nil, e.
				Msg("record #%d: %s", i, e.Message).
				WithExtras(ssqerr.Extras{"index": i, "issue": draw.Issue})
		}

		for pos, red := range draw.Reds {
			tally.Reds[pos].Add(red)
		}
		tally.Blue[draw.Blue-1]++
		tally.Draws++
	}

	return tally, nil
}
