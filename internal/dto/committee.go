package dto

// CreateCommitteeRequest nova banca
type CreateCommitteeRequest struct {
	AlunoID      int64 `json:"aluno_id"      binding:"required"`
	Avaliador1ID int64 `json:"avaliador1_id" binding:"required"`
	Avaliador2ID int64 `json:"avaliador2_id" binding:"required"`
	Avaliador3ID int64 `json:"avaliador3_id" binding:"required"`
}

// CreatedResponse confirmação com o id gerado
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
