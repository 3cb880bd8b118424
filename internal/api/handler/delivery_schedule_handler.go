package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"sistema-cadastro/backend/internal/dto"
	"sistema-cadastro/backend/internal/service"
	"sistema-cadastro/backend/pkg/response"
)

// DeliveryScheduleHandler cronogramas de entrega
type DeliveryScheduleHandler struct {
	scheduleSvc service.DeliveryScheduleService
}

// NewDeliveryScheduleHandler cria o DeliveryScheduleHandler
func NewDeliveryScheduleHandler(scheduleSvc service.DeliveryScheduleService) *DeliveryScheduleHandler {
	return &DeliveryScheduleHandler{scheduleSvc: scheduleSvc}
}

// Create POST /api/cronogramas
func (h *DeliveryScheduleHandler) Create(c *gin.Context) {
	var req dto.CreateDeliveryScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Aluno, tipo, data e horário de entrega são obrigatórios.")
		return
	}

	entry, err := h.scheduleSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate), errors.Is(err, service.ErrInvalidTime):
			response.BadRequest(c, "Data ou horário de entrega inválido.")
		default:
			response.InternalError(c, "Erro ao cadastrar cronograma.")
		}
		return
	}

	response.Created(c, dto.CreatedResponse{Message: "Cronograma cadastrado com sucesso!", ID: entry.ID})
}

// List GET /api/cronogramas
func (h *DeliveryScheduleHandler) List(c *gin.Context) {
	list, err := h.scheduleSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Erro ao buscar cronogramas.")
		return
	}
	response.OK(c, list)
}

// ListByStudent GET /api/cronogramas/:alunoId
func (h *DeliveryScheduleHandler) ListByStudent(c *gin.Context) {
	studentID, ok := MustGetIDParam(c, "alunoId")
	if !ok {
		return
	}

	list, err := h.scheduleSvc.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c, "Erro ao buscar cronogramas.")
		return
	}
	response.OK(c, list)
}

// ExportICS GET /api/cronogramas/:alunoId/ics
func (h *DeliveryScheduleHandler) ExportICS(c *gin.Context) {
	studentID, ok := MustGetIDParam(c, "alunoId")
	if !ok {
		return
	}

	feed, err := h.scheduleSvc.ExportICS(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c, "Erro ao gerar calendário.")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=cronograma_aluno_%d.ics", studentID))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}
