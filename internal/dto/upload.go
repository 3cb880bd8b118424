package dto

// CreateUploadRequest campos do formulário multipart de /api/uploads.
// O arquivo obrigatório vem no campo "arquivo".
type CreateUploadRequest struct {
	UsuarioID int64 `form:"usuario_id" binding:"required"`
}

// UploadCreatedResponse confirmação com o nome gravado
type UploadCreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Arquivo string `json:"arquivo"`
}
