package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sistema-cadastro/backend/internal/dto"
	"sistema-cadastro/backend/internal/service"
	"sistema-cadastro/backend/pkg/response"
)

// CommitteeHandler bancas
type CommitteeHandler struct {
	committeeSvc service.CommitteeService
}

// NewCommitteeHandler cria o CommitteeHandler
func NewCommitteeHandler(committeeSvc service.CommitteeService) *CommitteeHandler {
	return &CommitteeHandler{committeeSvc: committeeSvc}
}

// Create POST /api/bancas
func (h *CommitteeHandler) Create(c *gin.Context) {
	var req dto.CreateCommitteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Todos os campos são obrigatórios.")
		return
	}

	committee, err := h.committeeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "Erro ao cadastrar banca.")
		return
	}

	response.Created(c, dto.CreatedResponse{Message: "Banca cadastrada com sucesso!", ID: committee.ID})
}

// GetByStudent GET /api/bancas/:alunoId
func (h *CommitteeHandler) GetByStudent(c *gin.Context) {
	studentID, ok := MustGetIDParam(c, "alunoId")
	if !ok {
		return
	}

	committee, err := h.committeeSvc.GetByStudent(c.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrCommitteeNotFound) {
			response.NotFound(c, "Banca não encontrada.")
			return
		}
		response.InternalError(c, "Erro ao buscar banca.")
		return
	}

	response.OK(c, committee)
}

// ListByEvaluator GET /api/bancas/avaliador/:avaliadorId
func (h *CommitteeHandler) ListByEvaluator(c *gin.Context) {
	evaluatorID, ok := MustGetIDParam(c, "avaliadorId")
	if !ok {
		return
	}

	list, err := h.committeeSvc.ListByEvaluator(c.Request.Context(), evaluatorID)
	if err != nil {
		response.InternalError(c, "Erro ao buscar bancas.")
		return
	}
	response.OK(c, list)
}
