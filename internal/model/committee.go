package model

import "time"

// Committee banca avaliadora de um aluno, tabela bancas
type Committee struct {
	ID           int64     `gorm:"primaryKey"                              json:"id"`
	StudentID    int64     `gorm:"column:aluno_id;not null;index"          json:"aluno_id"`
	Evaluator1ID int64     `gorm:"column:avaliador1_id;not null"           json:"avaliador1_id"`
	Evaluator2ID int64     `gorm:"column:avaliador2_id;not null"           json:"avaliador2_id"`
	Evaluator3ID int64     `gorm:"column:avaliador3_id;not null"           json:"avaliador3_id"`
	CreatedAt    time.Time `gorm:"column:criado_em;autoCreateTime"         json:"criado_em"`
}

// TableName nome da tabela
func (Committee) TableName() string { return "bancas" }

// CommitteeView banca com o nome do aluno
type CommitteeView struct {
	Committee
	StudentName string `gorm:"column:aluno_nome" json:"aluno_nome"`
}
