package repository

import (
	"context"

	"gorm.io/gorm"

	"sistema-cadastro/backend/internal/model"
)

// UploadRepository acesso à tabela uploads
type UploadRepository interface {
	Create(ctx context.Context, u *model.Upload) error
	ListByUser(ctx context.Context, userID int64) ([]model.Upload, error)
}

type uploadRepo struct {
	db *gorm.DB
}

// NewUploadRepo cria o UploadRepository
func NewUploadRepo(db *gorm.DB) UploadRepository {
	return &uploadRepo{db: db}
}

func (r *uploadRepo) Create(ctx context.Context, u *model.Upload) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *uploadRepo) ListByUser(ctx context.Context, userID int64) ([]model.Upload, error) {
	var uploads []model.Upload
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", userID).
		Order("criado_em DESC, id DESC").
		Find(&uploads).Error
	return uploads, err
}
