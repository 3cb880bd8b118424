package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sistema-cadastro/backend/internal/dto"
	"sistema-cadastro/backend/internal/service"
	"sistema-cadastro/backend/pkg/response"
)

// AuthHandler cadastro e login
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler cria o AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register cadastro completo
// POST /cadastro
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Tipo, nome e senha são obrigatórios.")
		return
	}

	if _, err := h.authSvc.Register(c.Request.Context(), &req); err != nil {
		h.handleRegisterError(c, err, "Usuário já cadastrado!", "Erro ao cadastrar usuário")
		return
	}

	response.Message(c, "Usuário cadastrado com sucesso!")
}

// RegisterStudent cadastro de aluno pelo painel
// POST /api/alunos
func (h *AuthHandler) RegisterStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Nome, matrícula e senha são obrigatórios.")
		return
	}

	if _, err := h.authSvc.RegisterStudent(c.Request.Context(), &req); err != nil {
		h.handleRegisterError(c, err, "Aluno com esta matrícula já cadastrado.", "Erro ao cadastrar aluno.")
		return
	}

	response.CreatedMessage(c, "Aluno cadastrado com sucesso!")
}

// RegisterProfessor cadastro de professor pelo painel
// POST /api/professores
func (h *AuthHandler) RegisterProfessor(c *gin.Context) {
	var req dto.CreateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Nome, disciplina e senha são obrigatórios.")
		return
	}

	if _, err := h.authSvc.RegisterProfessor(c.Request.Context(), &req); err != nil {
		h.handleRegisterError(c, err, "Professor já cadastrado.", "Erro ao cadastrar professor.")
		return
	}

	response.CreatedMessage(c, "Professor cadastrado com sucesso!")
}

// Login por nome (ou cpf) e senha
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Informe nome e senha!")
		return
	}

	user, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.Unauthorized(c, "Usuário não encontrado. Faça o cadastro primeiro!")
		case errors.Is(err, service.ErrWrongPassword):
			response.Unauthorized(c, "Senha incorreta!")
		default:
			response.InternalError(c, "Erro no servidor")
		}
		return
	}

	response.OK(c, dto.LoginResponse{Message: "Login realizado com sucesso", Usuario: user})
}

func (h *AuthHandler) handleRegisterError(c *gin.Context, err error, conflictMsg, internalMsg string) {
	switch {
	case errors.Is(err, service.ErrUserExists):
		response.BadRequest(c, "Usuário já cadastrado!")
	case errors.Is(err, service.ErrDuplicate):
		response.Conflict(c, conflictMsg)
	case errors.Is(err, service.ErrInvalidRole):
		response.BadRequest(c, "Tipo de usuário inválido.")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, "Data de nascimento inválida.")
	default:
		response.InternalError(c, internalMsg)
	}
}
