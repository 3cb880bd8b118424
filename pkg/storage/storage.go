package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"sistema-cadastro/backend/config"
)

// Store armazenamento de arquivos enviados, endereçados pelo nome gerado
type Store interface {
	// Save grava o conteúdo e devolve o nome gerado a partir do nome original
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	Delete(ctx context.Context, name string) error
}

// New escolhe a implementação conforme storage.driver
func New(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (Store, error) {
	switch cfg.Driver {
	case "local":
		return NewLocalStore(cfg.Dir)
	case "b2":
		return NewB2Store(ctx, &cfg.B2, logger)
	default:
		return nil, fmt.Errorf("driver de storage desconhecido: %q", cfg.Driver)
	}
}

// GenerateName monta "<unix-millis>-<aleatório><extensão original>"
func GenerateName(originalName string, now time.Time) string {
	ext := filepath.Ext(filepath.Base(strings.ReplaceAll(originalName, "\\", "/")))
	return fmt.Sprintf("%d-%d%s", now.UnixMilli(), rand.IntN(1_000_000_000), ext)
}
