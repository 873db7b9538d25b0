package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		level   string
		wantErr bool
	}{
		{name: "development", mode: "development", level: "debug"},
		{name: "production", mode: "production", level: "info"},
		{name: "bad level", mode: "development", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.mode, tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, l.SugaredLogger)
		})
	}
}

func TestLogger_With(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "lesson").Info("lesson created", "lesson_id", 7)
	l.Debug("dropped")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "lesson created", entry.Message)
	assert.Equal(t, map[string]interface{}{"component": "lesson", "lesson_id": int64(7)}, entry.ContextMap())
}
