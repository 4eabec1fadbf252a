package report

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"exusiai.dev/ssq-predictor/internal/model"
)

const (
	// TimestampLayout is used both in the report header and in the report file name.
	TimestampLayout = "20060102-150405"

	Title       = "双色球号码预测"
	GroupSize   = 5
	Separator   = "======================================"
	Placeholder = "--"
)

// FormatText renders the batch in the fixed report layout. Rows are grouped by five
// with a separator between groups; the last group is padded with placeholder rows.
func FormatText(batch *model.PredictionBatch) string {
	var b strings.Builder

	b.WriteString(Title + "\n")
	b.WriteString(batch.GeneratedAt.Format(TimestampLayout) + "\n")
	fmt.Fprintf(&b, "根据双色球近 %d 期的开奖结果分析：\n", batch.IssueCount)

	groups := lo.Chunk(batch.Sets, GroupSize)
	rank := 0
	for g, group := range groups {
		for _, set := range group {
			rank++
			writeRow(&b, rank, set.Reds[:], set.Blue)
		}
		if g != len(groups)-1 {
			b.WriteString(Separator + "\n")
		}
	}

	if rem := len(batch.Sets) % GroupSize; rem != 0 {
		blank := lo.Times(model.RedCount, func(int) string { return Placeholder })
		for i := rem; i < GroupSize; i++ {
			rank++
			writeRow(&b, rank, blank, Placeholder)
		}
	}

	return b.String()
}

func writeRow(b *strings.Builder, rank int, reds []string, blue string) {
	fmt.Fprintf(b, "预测%2d> 红区 %s - 蓝区 %s\n", rank, strings.Join(reds, " "), blue)
}
