package model

import (
	"exusiai.dev/ssq-predictor/internal/pkg/ssqerr"
)

const (
	// RedCount is the number of position-significant primary (red) numbers in a draw.
	RedCount = 6

	RedMin  = 1
	RedMax  = 33
	BlueMin = 1
	BlueMax = 16
)

// Draw is one historical SSQ draw. Reds are position-significant: Reds[i] is only
// comparable with Reds[i] of another draw.
type Draw struct {
	Issue string        `json:"issue"`
	Date  string        `json:"date"`
	Reds  [RedCount]int `json:"reds"`
	Blue  int           `json:"blue"`
}

func (d *Draw) Validate() error {
	seen := make(map[int]struct{}, RedCount)
	for pos, red := range d.Reds {
		if red < RedMin || red > RedMax {
			return ssqerr.ErrMalformedRecord.Msg("draw %q: red number %d at position %d is out of range %d..%d", d.Issue, red, pos, RedMin, RedMax)
		}
		if _, ok := seen[red]; ok {
			return ssqerr.ErrMalformedRecord.Msg("draw %q: red number %d appears more than once", d.Issue, red)
		}
		seen[red] = struct{}{}
	}
	if d.Blue < BlueMin || d.Blue > BlueMax {
		return ssqerr.ErrMalformedRecord.Msg("draw %q: blue number %d is out of range %d..%d", d.Issue, d.Blue, BlueMin, BlueMax)
	}
	return nil
}
