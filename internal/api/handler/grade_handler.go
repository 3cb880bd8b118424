package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"sistema-cadastro/backend/internal/dto"
	"sistema-cadastro/backend/internal/service"
	"sistema-cadastro/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GradeHandler notas
type GradeHandler struct {
	gradeSvc service.GradeService
}

// NewGradeHandler cria o GradeHandler
func NewGradeHandler(gradeSvc service.GradeService) *GradeHandler {
	return &GradeHandler{gradeSvc: gradeSvc}
}

// Create POST /api/notas
func (h *GradeHandler) Create(c *gin.Context) {
	var req dto.CreateGradesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Informe aluno, avaliador e ao menos uma nota.")
		return
	}

	if _, err := h.gradeSvc.Create(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrEmptyGrades) {
			response.BadRequest(c, "Informe aluno, avaliador e ao menos uma nota.")
			return
		}
		response.InternalError(c, "Erro ao registrar notas.")
		return
	}

	response.CreatedMessage(c, "Notas registradas com sucesso!")
}

// ListByStudent GET /api/notas/:alunoId
func (h *GradeHandler) ListByStudent(c *gin.Context) {
	studentID, ok := MustGetIDParam(c, "alunoId")
	if !ok {
		return
	}

	list, err := h.gradeSvc.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c, "Erro ao buscar notas.")
		return
	}
	response.OK(c, list)
}

// Export GET /api/notas/:alunoId/export
func (h *GradeHandler) Export(c *gin.Context) {
	studentID, ok := MustGetIDParam(c, "alunoId")
	if !ok {
		return
	}

	buf, filename, err := h.gradeSvc.Export(c.Request.Context(), studentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "Aluno não encontrado.")
		default:
			response.InternalError(c, "Erro ao exportar notas.")
		}
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
