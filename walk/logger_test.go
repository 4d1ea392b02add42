package walk

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdLoggerLevelGating(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(&buf, LogWarning)

	assert.True(t, l.ShouldLog(LogError))
	assert.True(t, l.ShouldLog(LogWarning))
	assert.False(t, l.ShouldLog(LogInfo))
	assert.False(t, l.ShouldLog(LogNone))

	l.Log(LogInfo, "hidden")
	l.Log(LogError, "shown")

	assert.Contains(t, buf.String(), "shown")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNullLoggerDiscardsEverything(t *testing.T) {
	var l ILogger = NullLogger{}
	assert.False(t, l.ShouldLog(LogError))
	l.Log(LogError, "dropped")
}
