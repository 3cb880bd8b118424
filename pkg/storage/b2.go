package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kurin/blazer/b2"
	"go.uber.org/zap"

	"sistema-cadastro/backend/config"
)

// B2Store grava os arquivos num bucket Backblaze B2
type B2Store struct {
	bucket *b2.Bucket
	logger *zap.Logger
}

// NewB2Store autentica e abre o bucket configurado
func NewB2Store(ctx context.Context, cfg *config.B2Config, logger *zap.Logger) (*B2Store, error) {
	client, err := b2.NewClient(ctx, cfg.AccountID, cfg.AppKey)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar cliente b2: %w", err)
	}

	bucket, err := client.Bucket(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir bucket %q: %w", cfg.Bucket, err)
	}

	logger.Info("storage b2 pronto", zap.String("bucket", cfg.Bucket))
	return &B2Store{bucket: bucket, logger: logger}, nil
}

func (s *B2Store) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	name := GenerateName(originalName, time.Now())
	w := s.bucket.Object(name).NewWriter(ctx)

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("falha ao enviar objeto: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("falha ao finalizar objeto: %w", err)
	}
	return name, nil
}

func (s *B2Store) Delete(ctx context.Context, name string) error {
	if err := s.bucket.Object(name).Delete(ctx); err != nil {
		return fmt.Errorf("falha ao remover objeto: %w", err)
	}
	return nil
}
