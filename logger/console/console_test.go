package console_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cityroute/logger/console"
)

func TestConsoleLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Level:       "warn",
		Output:      &buf,
		NoTimestamp: true,
	})

	l.Info("hidden")
	l.Debug("hidden")
	l.Warn("skipped line", "line", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "skipped line")
	assert.Contains(t, out, "line=3")
}

func TestConsoleLogger_UnknownLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	l := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Level:       "chatty",
		Output:      &buf,
		NoTimestamp: true,
	})

	l.Debug("hidden")
	l.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
