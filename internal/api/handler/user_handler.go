package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sistema-cadastro/backend/internal/dto"
	"sistema-cadastro/backend/internal/service"
	"sistema-cadastro/backend/pkg/response"
)

// UserHandler listagens e troca de papel
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler cria o UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListStudents GET /api/alunos
func (h *UserHandler) ListStudents(c *gin.Context) {
	list, err := h.userSvc.ListStudents(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Erro ao buscar alunos")
		return
	}
	response.OK(c, list)
}

// ListProfessors GET /api/professores (professores e coordenadores)
func (h *UserHandler) ListProfessors(c *gin.Context) {
	list, err := h.userSvc.ListProfessors(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Erro ao buscar professores")
		return
	}
	response.OK(c, list)
}

// UpdateType PUT /api/atualizar-tipo
func (h *UserHandler) UpdateType(c *gin.Context) {
	var req dto.UpdateTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "ID e tipo são obrigatórios.")
		return
	}

	if err := h.userSvc.UpdateType(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			response.BadRequest(c, "ID e tipo são obrigatórios.")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "Usuário não encontrado.")
		default:
			response.InternalError(c, "Erro ao atualizar tipo de usuário.")
		}
		return
	}

	response.Message(c, "Tipo de usuário atualizado com sucesso!")
}
