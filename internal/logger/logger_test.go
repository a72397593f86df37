package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(orig) })
	return &buf
}

func TestEnvLogger_Debug(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		expectLog bool
	}{
		{name: "logs when SYSDASH_DEBUG is set", envValue: "1", expectLog: true},
		{name: "silent when SYSDASH_DEBUG is unset", envValue: "", expectLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)
			t.Setenv("SYSDASH_DEBUG", tt.envValue)

			l := NewEnvLogger("[test]")
			l.Debug("debug message %d", 42)

			if tt.expectLog {
				assert.Contains(t, buf.String(), "[test] debug message 42")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestEnvLogger_Levels(t *testing.T) {
	buf := captureLog(t)

	l := NewEnvLogger("[test]")
	l.Info("info here")
	l.Warn("warn here")
	l.Error("error here")

	out := buf.String()
	assert.Contains(t, out, "[test] info here")
	assert.Contains(t, out, "[test] WARN: warn here")
	assert.Contains(t, out, "[test] ERROR: error here")
}

func TestNoop_DiscardsEverything(t *testing.T) {
	buf := captureLog(t)

	l := Noop()
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	assert.Empty(t, buf.String())
}

func TestBufferLogger_CapturesMessages(t *testing.T) {
	l := NewBufferLogger()
	l.Info("hello %s", "world")
	l.Error("boom")

	require.Len(t, l.Messages, 2)
	assert.Equal(t, "info", l.Messages[0].Level)
	assert.Equal(t, "hello world", l.Messages[0].Message)
	assert.True(t, l.HasLevel("error"))
	assert.False(t, l.HasLevel("warn"))

	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	buffer := NewBufferLogger()
	SetDefault(buffer)

	Default().Info("via default")
	require.Len(t, buffer.Messages, 1)
	assert.True(t, strings.Contains(buffer.Messages[0].Message, "via default"))
}
