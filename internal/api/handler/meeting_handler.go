package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sistema-cadastro/backend/internal/dto"
	"sistema-cadastro/backend/internal/service"
	"sistema-cadastro/backend/pkg/response"
)

// MeetingHandler reuniões de orientação
type MeetingHandler struct {
	meetingSvc service.MeetingService
}

// NewMeetingHandler cria o MeetingHandler
func NewMeetingHandler(meetingSvc service.MeetingService) *MeetingHandler {
	return &MeetingHandler{meetingSvc: meetingSvc}
}

// Create POST /api/reunioes (multipart, arquivo opcional "documento")
func (h *MeetingHandler) Create(c *gin.Context) {
	var req dto.CreateMeetingRequest
	if !bindOrReject(c, &req, "Aluno, professor, data e horário são obrigatórios.") {
		return
	}

	doc, closeDoc, err := formAttachment(c, "documento")
	if err != nil {
		if isBodyTooLarge(err) {
			response.RequestTooLarge(c)
			return
		}
		response.BadRequest(c, "Documento inválido.")
		return
	}
	if closeDoc != nil {
		defer closeDoc()
	}

	meeting, err := h.meetingSvc.Create(c.Request.Context(), &req, doc)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate), errors.Is(err, service.ErrInvalidTime):
			response.BadRequest(c, "Data ou horário inválido.")
		default:
			response.InternalError(c, "Erro ao registrar reunião.")
		}
		return
	}

	response.Created(c, dto.MeetingCreatedResponse{
		Message:   "Reunião registrada com sucesso!",
		ID:        meeting.ID,
		Documento: meeting.Document,
	})
}

// ListByStudent GET /api/reunioes/aluno/:alunoId
func (h *MeetingHandler) ListByStudent(c *gin.Context) {
	studentID, ok := MustGetIDParam(c, "alunoId")
	if !ok {
		return
	}

	list, err := h.meetingSvc.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c, "Erro ao buscar reuniões.")
		return
	}
	response.OK(c, list)
}

// ListByProfessor GET /api/reunioes/professor/:professorId
func (h *MeetingHandler) ListByProfessor(c *gin.Context) {
	professorID, ok := MustGetIDParam(c, "professorId")
	if !ok {
		return
	}

	list, err := h.meetingSvc.ListByProfessor(c.Request.Context(), professorID)
	if err != nil {
		response.InternalError(c, "Erro ao buscar reuniões.")
		return
	}
	response.OK(c, list)
}
