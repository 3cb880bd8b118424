package dto

import "sistema-cadastro/backend/internal/model"

// UpdateTypeRequest troca de papel (PUT /api/atualizar-tipo)
type UpdateTypeRequest struct {
	ID   int64  `json:"id"   binding:"required"`
	Tipo string `json:"tipo" binding:"required"`
}

// LoginResponse resposta do login; o hash da senha nunca é serializado
type LoginResponse struct {
	Message string      `json:"message"`
	Usuario *model.User `json:"usuario"`
}

// StudentListItem projeção de /api/alunos
type StudentListItem struct {
	ID      int64  `json:"id"`
	Nome    string `json:"nome"`
	Contato string `json:"contato"`
	CPF     string `json:"cpf"`
	Cidade  string `json:"cidade"`
}

// ProfessorListItem projeção de /api/professores
type ProfessorListItem struct {
	ID      int64  `json:"id"`
	Nome    string `json:"nome"`
	Contato string `json:"contato"`
}
