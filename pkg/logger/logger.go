package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sistema-cadastro/backend/config"
)

// NewLogger cria o logger zap conforme log.format e log.level.
//
// "console" usa a configuração de desenvolvimento com níveis coloridos;
// qualquer outro formato gera JSON de produção com timestamp ISO8601 em "ts".
// Todas as entradas carregam service=sistema-cadastro para filtragem no
// agregador. Nível desconhecido é erro, nunca cai num padrão silencioso.
func NewLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	switch cfg.Format {
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "ts"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("nível de log inválido %q: %w", cfg.Level, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("falha ao iniciar logger: %w", err)
	}

	return logger.With(zap.String("service", "sistema-cadastro")), nil
}
