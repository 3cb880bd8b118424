package service

import (
	"context"

	"go.uber.org/zap"

	"sistema-cadastro/backend/internal/dto"
	"sistema-cadastro/backend/internal/model"
	"sistema-cadastro/backend/internal/repository"
	"sistema-cadastro/backend/pkg/storage"
)

// MeetingService registro e consulta de reuniões
type MeetingService interface {
	// Create grava o documento opcional e a reunião
	Create(ctx context.Context, req *dto.CreateMeetingRequest, doc *Attachment) (*model.Meeting, error)
	ListByStudent(ctx context.Context, studentID int64) ([]model.MeetingView, error)
	ListByProfessor(ctx context.Context, professorID int64) ([]model.MeetingView, error)
}

type meetingService struct {
	repo   *repository.Repository
	store  storage.Store
	logger *zap.Logger
}

// NewMeetingService cria o MeetingService
func NewMeetingService(repo *repository.Repository, store storage.Store, logger *zap.Logger) MeetingService {
	return &meetingService{repo: repo, store: store, logger: logger}
}

func (s *meetingService) Create(ctx context.Context, req *dto.CreateMeetingRequest, doc *Attachment) (*model.Meeting, error) {
	date, err := parseDate(req.Data, nil)
	if err != nil {
		return nil, err
	}
	clock, err := normalizeClock(req.Horario)
	if err != nil {
		return nil, err
	}

	m := &model.Meeting{
		StudentID:   req.AlunoID,
		ProfessorID: req.ProfessorID,
		Date:        date,
		Time:        clock,
		Description: req.Descricao,
	}

	if doc != nil {
		name, err := s.store.Save(ctx, doc.Name, doc.Content)
		if err != nil {
			s.logger.Error("falha ao gravar documento da reunião", zap.Error(err))
			return nil, err
		}
		m.Document = &name
	}

	if err := s.repo.Meeting.Create(ctx, m); err != nil {
		s.logger.Error("falha ao registrar reunião", zap.Int64("aluno_id", req.AlunoID), zap.Error(err))
		if m.Document != nil {
			discardBlob(ctx, s.store, *m.Document, s.logger)
		}
		return nil, err
	}
	return m, nil
}

func (s *meetingService) ListByStudent(ctx context.Context, studentID int64) ([]model.MeetingView, error) {
	rows, err := s.repo.Meeting.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("falha ao listar reuniões do aluno", zap.Int64("aluno_id", studentID), zap.Error(err))
		return nil, err
	}
	if rows == nil {
		rows = []model.MeetingView{}
	}
	return rows, nil
}

func (s *meetingService) ListByProfessor(ctx context.Context, professorID int64) ([]model.MeetingView, error) {
	rows, err := s.repo.Meeting.ListByProfessor(ctx, professorID)
	if err != nil {
		s.logger.Error("falha ao listar reuniões do professor", zap.Int64("professor_id", professorID), zap.Error(err))
		return nil, err
	}
	if rows == nil {
		rows = []model.MeetingView{}
	}
	return rows, nil
}
