package repository

import (
	"context"

	"gorm.io/gorm"

	"sistema-cadastro/backend/internal/model"
)

// DeliveryScheduleRepository acesso à tabela cronogramas
type DeliveryScheduleRepository interface {
	Create(ctx context.Context, s *model.DeliverySchedule) error
	List(ctx context.Context) ([]model.DeliveryScheduleView, error)
	ListByStudent(ctx context.Context, studentID int64) ([]model.DeliveryScheduleView, error)
}

type deliveryScheduleRepo struct {
	db *gorm.DB
}

// NewDeliveryScheduleRepo cria o DeliveryScheduleRepository
func NewDeliveryScheduleRepo(db *gorm.DB) DeliveryScheduleRepository {
	return &deliveryScheduleRepo{db: db}
}

func (r *deliveryScheduleRepo) Create(ctx context.Context, s *model.DeliverySchedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *deliveryScheduleRepo) List(ctx context.Context) ([]model.DeliveryScheduleView, error) {
	var rows []model.DeliveryScheduleView
	err := r.withStudentName(ctx).Scan(&rows).Error
	return rows, err
}

func (r *deliveryScheduleRepo) ListByStudent(ctx context.Context, studentID int64) ([]model.DeliveryScheduleView, error) {
	var rows []model.DeliveryScheduleView
	err := r.withStudentName(ctx).
		Where("c.aluno_id = ?", studentID).
		Scan(&rows).Error
	return rows, err
}

// withStudentName consulta base: junta o nome do aluno e ordena pelo prazo
func (r *deliveryScheduleRepo) withStudentName(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("cronogramas AS c").
		Select("c.*, COALESCE(u.nome, '') AS aluno_nome").
		Joins("LEFT JOIN usuarios u ON u.id = c.aluno_id").
		Order("c.data_entrega ASC, c.horario_entrega ASC, c.id ASC")
}
