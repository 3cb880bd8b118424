package repository

import (
	"context"

	"gorm.io/gorm"

	"sistema-cadastro/backend/internal/model"
)

// CommitteeRepository acesso à tabela bancas
type CommitteeRepository interface {
	Create(ctx context.Context, c *model.Committee) error
	// GetByStudent devolve a banca mais antiga do aluno
	GetByStudent(ctx context.Context, studentID int64) (*model.Committee, error)
	ListByEvaluator(ctx context.Context, evaluatorID int64) ([]model.CommitteeView, error)
}

type committeeRepo struct {
	db *gorm.DB
}

// NewCommitteeRepo cria o CommitteeRepository
func NewCommitteeRepo(db *gorm.DB) CommitteeRepository {
	return &committeeRepo{db: db}
}

func (r *committeeRepo) Create(ctx context.Context, c *model.Committee) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *committeeRepo) GetByStudent(ctx context.Context, studentID int64) (*model.Committee, error) {
	var c model.Committee
	err := r.db.WithContext(ctx).
		Where("aluno_id = ?", studentID).
		Order("id ASC").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *committeeRepo) ListByEvaluator(ctx context.Context, evaluatorID int64) ([]model.CommitteeView, error) {
	var rows []model.CommitteeView
	err := r.db.WithContext(ctx).
		Table("bancas AS b").
		Select("b.*, COALESCE(u.nome, '') AS aluno_nome").
		Joins("LEFT JOIN usuarios u ON u.id = b.aluno_id").
		Where("b.avaliador1_id = ? OR b.avaliador2_id = ? OR b.avaliador3_id = ?", evaluatorID, evaluatorID, evaluatorID).
		Order("b.id ASC").
		Scan(&rows).Error
	return rows, err
}
