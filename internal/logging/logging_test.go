package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLevels(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	Setup(&buf, false)
	slog.Debug("hidden")
	slog.Info("shown", "radius", 200)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "radius=200")

	buf.Reset()
	logger := Setup(&buf, true)
	slog.Debug("candidate accepted")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Same(t, logger, slog.Default())
}
