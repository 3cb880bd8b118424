package dto

import "github.com/shopspring/decimal"

// GradeItem par critério/nota. Nota é ponteiro para que ausência e zero sejam distintos.
type GradeItem struct {
	Criterio string           `json:"criterio" binding:"required,max=150"`
	Nota     *decimal.Decimal `json:"nota"     binding:"required"`
}

// CreateGradesRequest lançamento de notas de um avaliador para um aluno
type CreateGradesRequest struct {
	AlunoID     int64       `json:"aluno_id"     binding:"required"`
	AvaliadorID int64       `json:"avaliador_id" binding:"required"`
	Notas       []GradeItem `json:"notas"        binding:"required,min=1,dive"`
}
