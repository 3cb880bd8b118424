package service

import (
	"context"

	"go.uber.org/zap"

	"sistema-cadastro/backend/internal/dto"
	"sistema-cadastro/backend/internal/model"
	"sistema-cadastro/backend/internal/repository"
	pkgerrors "sistema-cadastro/backend/pkg/errors"
)

// UserService listagens por papel e troca de papel
type UserService interface {
	ListStudents(ctx context.Context) ([]dto.StudentListItem, error)
	ListProfessors(ctx context.Context) ([]dto.ProfessorListItem, error)
	UpdateType(ctx context.Context, req *dto.UpdateTypeRequest) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService cria o UserService
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) ListStudents(ctx context.Context) ([]dto.StudentListItem, error) {
	users, err := s.repo.User.ListByTypes(ctx, model.RoleStudent)
	if err != nil {
		s.logger.Error("falha ao listar alunos", zap.Error(err))
		return nil, err
	}

	result := make([]dto.StudentListItem, 0, len(users))
	for _, u := range users {
		result = append(result, dto.StudentListItem{
			ID:      u.ID,
			Nome:    u.Name,
			Contato: u.Contact,
			CPF:     u.CPF,
			Cidade:  u.City,
		})
	}
	return result, nil
}

func (s *userService) ListProfessors(ctx context.Context) ([]dto.ProfessorListItem, error) {
	users, err := s.repo.User.ListByTypes(ctx, model.StaffRoles...)
	if err != nil {
		s.logger.Error("falha ao listar professores", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ProfessorListItem, 0, len(users))
	for _, u := range users {
		result = append(result, dto.ProfessorListItem{
			ID:      u.ID,
			Nome:    u.Name,
			Contato: u.Contact,
		})
	}
	return result, nil
}

func (s *userService) UpdateType(ctx context.Context, req *dto.UpdateTypeRequest) error {
	if !model.IsValidRole(req.Tipo) {
		return ErrInvalidRole
	}

	if err := s.repo.User.UpdateType(ctx, req.ID, req.Tipo); err != nil {
		if pkgerrors.IsNotFound(err) {
			return ErrUserNotFound
		}
		s.logger.Error("falha ao atualizar tipo", zap.Int64("id", req.ID), zap.Error(err))
		return err
	}

	s.logger.Info("tipo de usuário atualizado", zap.Int64("id", req.ID), zap.String("tipo", req.Tipo))
	return nil
}
