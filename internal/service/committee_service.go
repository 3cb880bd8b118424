package service

import (
	"context"

	"go.uber.org/zap"

	"sistema-cadastro/backend/internal/dto"
	"sistema-cadastro/backend/internal/model"
	"sistema-cadastro/backend/internal/repository"
	pkgerrors "sistema-cadastro/backend/pkg/errors"
)

// CommitteeService bancas avaliadoras
type CommitteeService interface {
	Create(ctx context.Context, req *dto.CreateCommitteeRequest) (*model.Committee, error)
	GetByStudent(ctx context.Context, studentID int64) (*model.Committee, error)
	ListByEvaluator(ctx context.Context, evaluatorID int64) ([]model.CommitteeView, error)
}

type committeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCommitteeService cria o CommitteeService
func NewCommitteeService(repo *repository.Repository, logger *zap.Logger) CommitteeService {
	return &committeeService{repo: repo, logger: logger}
}

// Create não confere papéis dos avaliadores nem banca prévia do aluno
func (s *committeeService) Create(ctx context.Context, req *dto.CreateCommitteeRequest) (*model.Committee, error) {
	c := &model.Committee{
		StudentID:    req.AlunoID,
		Evaluator1ID: req.Avaliador1ID,
		Evaluator2ID: req.Avaliador2ID,
		Evaluator3ID: req.Avaliador3ID,
	}
	if err := s.repo.Committee.Create(ctx, c); err != nil {
		s.logger.Error("falha ao cadastrar banca", zap.Int64("aluno_id", req.AlunoID), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (s *committeeService) GetByStudent(ctx context.Context, studentID int64) (*model.Committee, error) {
	c, err := s.repo.Committee.GetByStudent(ctx, studentID)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, ErrCommitteeNotFound
		}
		s.logger.Error("falha ao buscar banca", zap.Int64("aluno_id", studentID), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (s *committeeService) ListByEvaluator(ctx context.Context, evaluatorID int64) ([]model.CommitteeView, error) {
	rows, err := s.repo.Committee.ListByEvaluator(ctx, evaluatorID)
	if err != nil {
		s.logger.Error("falha ao listar bancas do avaliador", zap.Int64("avaliador_id", evaluatorID), zap.Error(err))
		return nil, err
	}
	if rows == nil {
		rows = []model.CommitteeView{}
	}
	return rows, nil
}
