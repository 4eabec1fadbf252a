package draw

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"exusiai.dev/ssq-predictor/internal/model"
	"exusiai.dev/ssq-predictor/internal/pkg/ssqerr"
)

// Decode parses a draw notice document:
//
//	{"result": [{"code": "2024030", "date": "2024-03-17(日)", "red": "02,09,13,19,26,30", "blue": "11"}, ...]}
//
// Results are kept in document order, which is most recent first. Range checks are
// left to tabulation; Decode only rejects records it cannot represent.
func Decode(body []byte) ([]model.Draw, error) {
	results, err := resultArray(body)
	if err != nil {
		return nil, err
	}
	return decodeResults(results)
}

func decodeResults(results []gjson.Result) ([]model.Draw, error) {
	draws := make([]model.Draw, 0, len(results))
	for i, r := range results {
		d, err := decodeDraw(i, r)
		if err != nil {
			return nil, err
		}
		draws = append(draws, d)
	}
	return draws, nil
}

func resultArray(body []byte) ([]gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return nil, ssqerr.ErrUpstream.Msg("draw notice response is not valid JSON")
	}
	result := gjson.GetBytes(body, "result")
	if !result.IsArray() {
		return nil, ssqerr.ErrUpstream.Msg("draw notice response has no result array; the upstream format may have changed")
	}
	return result.Array(), nil
}

func decodeDraw(i int, r gjson.Result) (model.Draw, error) {
	d := model.Draw{
		Issue: r.Get("code").String(),
		Date:  r.Get("date").String(),
	}
	malformed := func(format string, args ...interface{}) error {
		return ssqerr.ErrMalformedRecord.
			Msg("record #%d (issue %q): "+format, append([]interface{}{i, d.Issue}, args...)...).
			WithExtras(ssqerr.Extras{"index": i, "issue": d.Issue})
	}

	red := r.Get("red")
	if !red.Exists() || red.String() == "" {
		return d, malformed("missing red numbers")
	}
	parts := strings.Split(red.String(), ",")
	if len(parts) != model.RedCount {
		return d, malformed("expect %d red numbers, got %d", model.RedCount, len(parts))
	}
	for pos, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return d, malformed("red number %q at position %d is not numeric", part, pos)
		}
		d.Reds[pos] = n
	}

	blue := r.Get("blue")
	if !blue.Exists() || blue.String() == "" {
		return d, malformed("missing blue number")
	}
	n, err := strconv.Atoi(strings.TrimSpace(blue.String()))
	if err != nil {
		return d, malformed("blue number %q is not numeric", blue.String())
	}
	d.Blue = n

	return d, nil
}
