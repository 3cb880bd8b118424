package handler

import (
	"github.com/gin-gonic/gin"

	"sistema-cadastro/backend/internal/dto"
	"sistema-cadastro/backend/internal/service"
	"sistema-cadastro/backend/pkg/response"
)

// UploadHandler arquivos avulsos
type UploadHandler struct {
	uploadSvc service.UploadService
}

// NewUploadHandler cria o UploadHandler
func NewUploadHandler(uploadSvc service.UploadService) *UploadHandler {
	return &UploadHandler{uploadSvc: uploadSvc}
}

// Create POST /api/uploads (multipart, arquivo obrigatório "arquivo")
func (h *UploadHandler) Create(c *gin.Context) {
	var req dto.CreateUploadRequest
	if !bindOrReject(c, &req, "Usuário e arquivo são obrigatórios.") {
		return
	}

	file, closeFile, err := formAttachment(c, "arquivo")
	if err != nil && isBodyTooLarge(err) {
		response.RequestTooLarge(c)
		return
	}
	if err != nil || file == nil {
		response.BadRequest(c, "Usuário e arquivo são obrigatórios.")
		return
	}
	defer closeFile()

	upload, err := h.uploadSvc.Create(c.Request.Context(), req.UsuarioID, file)
	if err != nil {
		response.InternalError(c, "Erro ao enviar arquivo.")
		return
	}

	response.Created(c, dto.UploadCreatedResponse{
		Message: "Arquivo enviado com sucesso!",
		ID:      upload.ID,
		Arquivo: upload.FileName,
	})
}

// ListByUser GET /api/uploads/:usuarioId
func (h *UploadHandler) ListByUser(c *gin.Context) {
	userID, ok := MustGetIDParam(c, "usuarioId")
	if !ok {
		return
	}

	list, err := h.uploadSvc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, "Erro ao buscar arquivos.")
		return
	}
	response.OK(c, list)
}
