package logger

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
	"go.uber.org/fx/fxevent"
)

func TestFxLoggerReportsFailures(t *testing.T) {
	var buf bytes.Buffer
	l := &fxLogger{l: zerolog.New(&buf).Level(zerolog.InfoLevel)}

	l.LogEvent(&fxevent.Provided{
		ConstructorName: "draw.NewSource()",
		ModuleName:      "draw",
		OutputTypeNames: []string{"draw.Source"},
	})
	assert.Empty(t, buf.String(), "successful events are debug level")

	l.LogEvent(&fxevent.Provided{
		ConstructorName: "draw.NewSource()",
		ModuleName:      "draw",
		OutputTypeNames: []string{"draw.Source"},
		Err:             errors.New("unknown draw source kind"),
	})

	line := gjson.Parse(buf.String())
	assert.Equal(t, "error", line.Get("level").String())
	assert.Equal(t, "unknown draw source kind", line.Get("error").String())
	assert.Equal(t, "draw.NewSource()", line.Get("fx\\.constructor").String())
	assert.Equal(t, "draw.Source", line.Get("fx\\.types.0").String())
}
