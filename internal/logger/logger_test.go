package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, level string, fn func()) string {
	t.Helper()
	buf := &bytes.Buffer{}
	SetTestOutput(buf)
	defer UnsetTestOutput()

	InitLogger(level)
	fn()

	return buf.String()
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		logFn    func()
		contains []string
		excludes []string
	}{
		{
			name:     "info log",
			level:    "info",
			logFn:    func() { Info("installing mod", Fields{"mod": "worldedit"}) },
			contains: []string{"installing mod", "mod=worldedit", "INFO"},
		},
		{
			name:     "debug suppressed at info level",
			level:    "info",
			logFn:    func() { Debug("cache probe") },
			excludes: []string{"cache probe"},
		},
		{
			name:     "debug shown at debug level",
			level:    "debug",
			logFn:    func() { Debugf("cache probe for %s", "worldedit") },
			contains: []string{"cache probe for worldedit", "DEBUG"},
		},
		{
			name:     "warn with fields",
			level:    "warn",
			logFn:    func() { Warn("cache write failed", Fields{"path": "/tmp/x"}) },
			contains: []string{"cache write failed", "path=/tmp/x", "WARN"},
		},
		{
			name:     "error formatted",
			level:    "error",
			logFn:    func() { Errorf("rollback failed: %v", "boom") },
			contains: []string{"rollback failed: boom", "ERROR"},
		},
		{
			name:     "unknown level falls back to info",
			level:    "chatty",
			logFn:    func() { Info("still works") },
			contains: []string{"still works"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureOutput(t, tt.level, tt.logFn)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, not := range tt.excludes {
				assert.NotContains(t, out, not)
			}
		})
	}
}
