package service

import (
	"context"
	"io"

	"go.uber.org/zap"

	"sistema-cadastro/backend/pkg/storage"
)

// Attachment arquivo recebido no multipart
type Attachment struct {
	Name    string
	Content io.Reader
}

// discardBlob remove o arquivo gravado quando o INSERT correspondente falhou
func discardBlob(ctx context.Context, store storage.Store, name string, logger *zap.Logger) {
	if err := store.Delete(ctx, name); err != nil {
		logger.Warn("arquivo órfão não removido", zap.String("arquivo", name), zap.Error(err))
	}
}
