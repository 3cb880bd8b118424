package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Grade uma nota por critério, tabela notas (somente inserção)
type Grade struct {
	ID          int64           `gorm:"primaryKey"                                 json:"id"`
	StudentID   int64           `gorm:"column:aluno_id;not null;index"             json:"aluno_id"`
	EvaluatorID int64           `gorm:"column:avaliador_id;not null"               json:"avaliador_id"`
	Criterion   string          `gorm:"column:criterio;type:varchar(150);not null" json:"criterio"`
	Score       decimal.Decimal `gorm:"column:nota;type:decimal(5,2);not null"     json:"nota"`
	EvaluatedAt time.Time       `gorm:"column:data_avaliacao;autoCreateTime"       json:"data_avaliacao"`
}

// TableName nome da tabela
func (Grade) TableName() string { return "notas" }

// GradeView nota com o nome do avaliador
type GradeView struct {
	Grade
	EvaluatorName string `gorm:"column:avaliador_nome" json:"avaliador_nome"`
}
