package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"sistema-cadastro/backend/internal/dto"
	"sistema-cadastro/backend/internal/model"
	"sistema-cadastro/backend/internal/repository"
	pkgerrors "sistema-cadastro/backend/pkg/errors"
)

// AuthService cadastro e login
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, error)
	RegisterStudent(ctx context.Context, req *dto.CreateStudentRequest) (*model.User, error)
	RegisterProfessor(ctx context.Context, req *dto.CreateProfessorRequest) (*model.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*model.User, error)
}

type authService struct {
	repo   *repository.Repository
	hasher PasswordHasher
	logger *zap.Logger
}

// NewAuthService cria o AuthService
func NewAuthService(repo *repository.Repository, hasher PasswordHasher, logger *zap.Logger) AuthService {
	return &authService{repo: repo, hasher: hasher, logger: logger}
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, error) {
	if !model.IsValidRole(req.Tipo) {
		return nil, ErrInvalidRole
	}
	birth, err := parseDate(req.DataNascimento, &model.DefaultBirthDate)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Type:          req.Tipo,
		Name:          req.Nome,
		BirthDate:     birth,
		Contact:       req.Contato,
		CPF:           req.CPF,
		RG:            req.RG,
		City:          req.Cidade,
		Address:       req.Endereco,
		MaritalStatus: req.EstadoCivil,
		Sex:           req.Sexo,
		FatherName:    req.NomePai,
		MotherName:    req.NomeMae,
	}
	if err := s.create(ctx, user, req.Senha); err != nil {
		return nil, err
	}
	return user, nil
}

// ────────────────────── RegisterStudent ──────────────────────

func (s *authService) RegisterStudent(ctx context.Context, req *dto.CreateStudentRequest) (*model.User, error) {
	user := &model.User{
		Type:      model.RoleStudent,
		Name:      req.Nome,
		BirthDate: model.DefaultBirthDate,
		CPF:       req.Matricula,
	}
	if err := s.create(ctx, user, req.Senha); err != nil {
		return nil, err
	}
	return user, nil
}

// ────────────────────── RegisterProfessor ──────────────────────

func (s *authService) RegisterProfessor(ctx context.Context, req *dto.CreateProfessorRequest) (*model.User, error) {
	user := &model.User{
		Type:      model.RoleProfessor,
		Name:      req.Nome,
		BirthDate: model.DefaultBirthDate,
		Contact:   req.Disciplina,
	}
	if err := s.create(ctx, user, req.Senha); err != nil {
		return nil, err
	}
	return user, nil
}

// create consulta o nome, gera o hash e insere.
// A consulta prévia não é atômica com o INSERT; o índice único em usuarios.nome
// decide a corrida e vira ErrDuplicate.
func (s *authService) create(ctx context.Context, user *model.User, password string) error {
	existing, err := s.repo.User.GetByName(ctx, user.Name)
	if err != nil && !pkgerrors.IsNotFound(err) {
		s.logger.Error("falha ao consultar usuário", zap.String("nome", user.Name), zap.Error(err))
		return err
	}
	if existing != nil {
		return ErrUserExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("falha ao gerar hash da senha", zap.Error(err))
		return err
	}
	user.PasswordHash = hash

	if err := s.repo.User.Create(ctx, user); err != nil {
		if pkgerrors.IsDuplicateKey(err) {
			return ErrDuplicate
		}
		s.logger.Error("falha ao inserir usuário", zap.String("tipo", user.Type), zap.Error(err))
		return err
	}

	s.logger.Info("usuário cadastrado", zap.Int64("id", user.ID), zap.String("tipo", user.Type))
	return nil
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*model.User, error) {
	var (
		user *model.User
		err  error
	)
	if req.Nome != "" {
		user, err = s.repo.User.GetByName(ctx, req.Nome)
	} else {
		user, err = s.repo.User.GetByCPF(ctx, req.CPF)
	}
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("falha ao consultar usuário", zap.Error(err))
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Senha); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrWrongPassword
		}
		s.logger.Error("hash de senha ilegível", zap.Int64("id", user.ID), zap.Error(err))
		return nil, err
	}

	return user, nil
}
