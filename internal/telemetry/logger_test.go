package telemetry

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_WritesComponentTag(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "demo")

	log.Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, "demo")
	assert.Contains(t, out, "hello")
}

func TestReclaimer_LogsOneEventPerName(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "collector")
	report := Reclaimer(log)

	report("A")
	report("B")

	out := buf.String()
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "B")
	assert.Contains(t, out, "payload reclaimed")
}
