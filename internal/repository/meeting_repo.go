package repository

import (
	"context"

	"gorm.io/gorm"

	"sistema-cadastro/backend/internal/model"
)

// MeetingRepository acesso à tabela reunioes
type MeetingRepository interface {
	Create(ctx context.Context, m *model.Meeting) error
	// ListByStudent traz professor_nome, ordenado por data e horário
	ListByStudent(ctx context.Context, studentID int64) ([]model.MeetingView, error)
	// ListByProfessor traz aluno_nome, ordenado por data
	ListByProfessor(ctx context.Context, professorID int64) ([]model.MeetingView, error)
}

type meetingRepo struct {
	db *gorm.DB
}

// NewMeetingRepo cria o MeetingRepository
func NewMeetingRepo(db *gorm.DB) MeetingRepository {
	return &meetingRepo{db: db}
}

func (r *meetingRepo) Create(ctx context.Context, m *model.Meeting) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *meetingRepo) ListByStudent(ctx context.Context, studentID int64) ([]model.MeetingView, error) {
	var rows []model.MeetingView
	err := r.db.WithContext(ctx).
		Table("reunioes AS r").
		Select("r.*, COALESCE(u.nome, '') AS professor_nome").
		Joins("LEFT JOIN usuarios u ON u.id = r.professor_id").
		Where("r.aluno_id = ?", studentID).
		Order("r.data DESC, r.horario DESC, r.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *meetingRepo) ListByProfessor(ctx context.Context, professorID int64) ([]model.MeetingView, error) {
	var rows []model.MeetingView
	err := r.db.WithContext(ctx).
		Table("reunioes AS r").
		Select("r.*, COALESCE(u.nome, '') AS aluno_nome").
		Joins("LEFT JOIN usuarios u ON u.id = r.aluno_id").
		Where("r.professor_id = ?", professorID).
		Order("r.data DESC, r.id DESC").
		Scan(&rows).Error
	return rows, err
}
