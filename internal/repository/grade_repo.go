package repository

import (
	"context"

	"gorm.io/gorm"

	"sistema-cadastro/backend/internal/model"
)

// GradeRepository acesso à tabela notas
type GradeRepository interface {
	// CreateBatch insere todas as notas num único INSERT
	CreateBatch(ctx context.Context, grades []model.Grade) error
	// ListByStudent devolve as notas do aluno, mais recentes primeiro
	ListByStudent(ctx context.Context, studentID int64) ([]model.GradeView, error)
}

type gradeRepo struct {
	db *gorm.DB
}

// NewGradeRepo cria o GradeRepository
func NewGradeRepo(db *gorm.DB) GradeRepository {
	return &gradeRepo{db: db}
}

func (r *gradeRepo) CreateBatch(ctx context.Context, grades []model.Grade) error {
	if len(grades) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&grades).Error
}

func (r *gradeRepo) ListByStudent(ctx context.Context, studentID int64) ([]model.GradeView, error) {
	var rows []model.GradeView
	err := r.db.WithContext(ctx).
		Table("notas AS n").
		Select("n.*, COALESCE(u.nome, '') AS avaliador_nome").
		Joins("LEFT JOIN usuarios u ON u.id = n.avaliador_id").
		Where("n.aluno_id = ?", studentID).
		Order("n.data_avaliacao DESC, n.id DESC").
		Scan(&rows).Error
	return rows, err
}
