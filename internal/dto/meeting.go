package dto

// CreateMeetingRequest campos do formulário multipart de /api/reunioes.
// O arquivo opcional vem no campo "documento".
type CreateMeetingRequest struct {
	AlunoID     int64  `form:"aluno_id"     binding:"required"`
	ProfessorID int64  `form:"professor_id" binding:"required"`
	Data        string `form:"data"         binding:"required"`
	Horario     string `form:"horario"      binding:"required"`
	Descricao   string `form:"descricao"`
}

// MeetingCreatedResponse confirmação com o nome do documento gravado
type MeetingCreatedResponse struct {
	Message   string  `json:"message"`
	ID        int64   `json:"id"`
	Documento *string `json:"documento"`
}
