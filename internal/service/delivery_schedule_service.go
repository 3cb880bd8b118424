package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"sistema-cadastro/backend/internal/dto"
	"sistema-cadastro/backend/internal/model"
	"sistema-cadastro/backend/internal/repository"
)

// DeliveryScheduleService prazos de entrega
type DeliveryScheduleService interface {
	Create(ctx context.Context, req *dto.CreateDeliveryScheduleRequest) (*model.DeliverySchedule, error)
	List(ctx context.Context) ([]model.DeliveryScheduleView, error)
	ListByStudent(ctx context.Context, studentID int64) ([]model.DeliveryScheduleView, error)
	// ExportICS gera um calendário iCalendar com as entregas do aluno
	ExportICS(ctx context.Context, studentID int64) (string, error)
}

type deliveryScheduleService struct {
	repo   *repository.Repository
	loc    *time.Location
	logger *zap.Logger
}

// NewDeliveryScheduleService cria o serviço; loc é o fuso em que data/horário de entrega são interpretados
func NewDeliveryScheduleService(repo *repository.Repository, loc *time.Location, logger *zap.Logger) DeliveryScheduleService {
	if loc == nil {
		loc = time.UTC
	}
	return &deliveryScheduleService{repo: repo, loc: loc, logger: logger}
}

func (s *deliveryScheduleService) Create(ctx context.Context, req *dto.CreateDeliveryScheduleRequest) (*model.DeliverySchedule, error) {
	date, err := parseDate(req.DataEntrega, nil)
	if err != nil {
		return nil, err
	}
	clock, err := normalizeClock(req.HorarioEntrega)
	if err != nil {
		return nil, err
	}

	entry := &model.DeliverySchedule{
		StudentID:    req.AlunoID,
		DeliveryType: req.TipoEntrega,
		DeliveryDate: date,
		DeliveryTime: clock,
	}
	if err := s.repo.DeliverySchedule.Create(ctx, entry); err != nil {
		s.logger.Error("falha ao cadastrar cronograma", zap.Int64("aluno_id", req.AlunoID), zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (s *deliveryScheduleService) List(ctx context.Context) ([]model.DeliveryScheduleView, error) {
	rows, err := s.repo.DeliverySchedule.List(ctx)
	if err != nil {
		s.logger.Error("falha ao listar cronogramas", zap.Error(err))
		return nil, err
	}
	if rows == nil {
		rows = []model.DeliveryScheduleView{}
	}
	return rows, nil
}

func (s *deliveryScheduleService) ListByStudent(ctx context.Context, studentID int64) ([]model.DeliveryScheduleView, error) {
	rows, err := s.repo.DeliverySchedule.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("falha ao listar cronogramas do aluno", zap.Int64("aluno_id", studentID), zap.Error(err))
		return nil, err
	}
	if rows == nil {
		rows = []model.DeliveryScheduleView{}
	}
	return rows, nil
}

// ────────────────────── ExportICS ──────────────────────

// deliveryEventLength duração de cada evento no calendário
const deliveryEventLength = time.Hour

func (s *deliveryScheduleService) ExportICS(ctx context.Context, studentID int64) (string, error) {
	rows, err := s.ListByStudent(ctx, studentID)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//sistema-cadastro//cronogramas//PT")
	cal.SetName(fmt.Sprintf("Cronograma do aluno %d", studentID))

	for _, r := range rows {
		start, err := s.deliveryStart(r.DeliverySchedule)
		if err != nil {
			s.logger.Warn("cronograma com horário ilegível ignorado", zap.Int64("id", r.ID), zap.Error(err))
			continue
		}

		ev := cal.AddEvent(fmt.Sprintf("cronograma-%d@sistema-cadastro", r.ID))
		ev.SetDtStampTime(r.DefinedAt)
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(deliveryEventLength))
		ev.SetSummary(r.DeliveryType)
		ev.SetDescription(fmt.Sprintf("Entrega de %s: %s", r.StudentName, r.DeliveryType))
	}

	return cal.Serialize(), nil
}

func (s *deliveryScheduleService) deliveryStart(e model.DeliverySchedule) (time.Time, error) {
	clock, err := time.Parse("15:04", e.DeliveryTime)
	if err != nil {
		return time.Time{}, err
	}
	d := e.DeliveryDate
	return time.Date(d.Year(), d.Month(), d.Day(), clock.Hour(), clock.Minute(), 0, 0, s.loc), nil
}
