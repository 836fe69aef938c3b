package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew_LevelFallsBackToInfo(t *testing.T) {
	l := New("svc", "test", "not-a-level")
	z := AsZap(l)

	assert.True(t, z.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, z.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_DebugLevel(t *testing.T) {
	z := AsZap(New("svc", "test", "debug"))
	assert.True(t, z.Core().Enabled(zapcore.DebugLevel))
}

func TestWith_KeepsZapBacking(t *testing.T) {
	l := NewNop().With("component", "x")
	assert.NotNil(t, AsZap(l))
	l.Info("ignored", "k", "v")
	Sync(l)
}

type otherLogger struct{ Logger }

func TestAsZap_ForeignLoggerIsNop(t *testing.T) {
	z := AsZap(otherLogger{})
	assert.False(t, z.Core().Enabled(zapcore.ErrorLevel))
}
