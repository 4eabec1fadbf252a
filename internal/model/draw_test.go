package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"exusiai.dev/ssq-predictor/internal/pkg/ssqerr"
)

func TestDrawValidate(t *testing.T) {
	type testCase struct {
		name  string
		draw  Draw
		valid bool
	}

	testCases := []testCase{
		{"ok", Draw{Issue: "2024001", Reds: [6]int{1, 5, 12, 20, 28, 33}, Blue: 16}, true},
		{"red zero", Draw{Issue: "2024002", Reds: [6]int{0, 5, 12, 20, 28, 33}, Blue: 1}, false},
		{"red too large", Draw{Issue: "2024003", Reds: [6]int{1, 5, 12, 20, 28, 34}, Blue: 1}, false},
		{"duplicate red", Draw{Issue: "2024004", Reds: [6]int{1, 5, 5, 20, 28, 33}, Blue: 1}, false},
		{"blue missing", Draw{Issue: "2024005", Reds: [6]int{1, 5, 12, 20, 28, 33}}, false},
		{"blue too large", Draw{Issue: "2024006", Reds: [6]int{1, 5, 12, 20, 28, 33}, Blue: 17}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.draw.Validate()
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ssqerr.ErrMalformedRecord), "expect malformed record error, got %v", err)
		})
	}
}

func TestPositionTallyKeepsFirstSeenOrder(t *testing.T) {
	var tally PositionTally
	for _, n := range []int{9, 3, 9, 7, 3, 9} {
		tally.Add(n)
	}

	assert.Equal(t, []TallyEntry{{Number: 9, Count: 3}, {Number: 3, Count: 2}, {Number: 7, Count: 1}}, tally.Entries())
	assert.Equal(t, 6, tally.Total())
	assert.Equal(t, 2, tally.Count(3))
	assert.Equal(t, 0, tally.Count(33))
	assert.Equal(t, 3, tally.Len())
}
