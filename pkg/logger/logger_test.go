package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"sistema-cadastro/backend/config"
)

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		l, err := NewLogger(&config.LogConfig{Level: "warn", Format: format})
		if err != nil {
			t.Fatalf("format=%s: %v", format, err)
		}
		if l.Core().Enabled(zapcore.InfoLevel) {
			t.Errorf("format=%s: info não deveria estar habilitado com level=warn", format)
		}
		if !l.Core().Enabled(zapcore.ErrorLevel) {
			t.Errorf("format=%s: error deveria estar habilitado", format)
		}
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := NewLogger(&config.LogConfig{Level: "barulhento"}); err == nil {
		t.Error("esperado erro para nível inválido")
	}
}
