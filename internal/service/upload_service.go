package service

import (
	"context"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"sistema-cadastro/backend/internal/model"
	"sistema-cadastro/backend/internal/repository"
	"sistema-cadastro/backend/pkg/storage"
)

// UploadService arquivos avulsos por usuário
type UploadService interface {
	Create(ctx context.Context, userID int64, file *Attachment) (*model.Upload, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Upload, error)
}

type uploadService struct {
	repo   *repository.Repository
	store  storage.Store
	logger *zap.Logger
}

// NewUploadService cria o UploadService
func NewUploadService(repo *repository.Repository, store storage.Store, logger *zap.Logger) UploadService {
	return &uploadService{repo: repo, store: store, logger: logger}
}

func (s *uploadService) Create(ctx context.Context, userID int64, file *Attachment) (*model.Upload, error) {
	if file == nil {
		return nil, ErrMissingFile
	}

	name, err := s.store.Save(ctx, file.Name, file.Content)
	if err != nil {
		s.logger.Error("falha ao gravar arquivo", zap.Int64("usuario_id", userID), zap.Error(err))
		return nil, err
	}

	u := &model.Upload{
		UserID:       userID,
		FileName:     name,
		OriginalName: filepath.Base(strings.ReplaceAll(file.Name, "\\", "/")),
	}
	if err := s.repo.Upload.Create(ctx, u); err != nil {
		s.logger.Error("falha ao registrar upload", zap.Int64("usuario_id", userID), zap.Error(err))
		discardBlob(ctx, s.store, name, s.logger)
		return nil, err
	}
	return u, nil
}

func (s *uploadService) ListByUser(ctx context.Context, userID int64) ([]model.Upload, error) {
	list, err := s.repo.Upload.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("falha ao listar uploads", zap.Int64("usuario_id", userID), zap.Error(err))
		return nil, err
	}
	if list == nil {
		list = []model.Upload{}
	}
	return list, nil
}
