package model

import "time"

// Meeting reunião de orientação, tabela reunioes
type Meeting struct {
	ID          int64     `gorm:"primaryKey"                               json:"id"`
	StudentID   int64     `gorm:"column:aluno_id;not null;index"           json:"aluno_id"`
	ProfessorID int64     `gorm:"column:professor_id;not null;index"       json:"professor_id"`
	Date        Date      `gorm:"column:data;not null"                     json:"data"`
	Time        string    `gorm:"column:horario;type:varchar(5);not null"  json:"horario"`
	Description string    `gorm:"column:descricao;type:text;not null"      json:"descricao"`
	Document    *string   `gorm:"column:documento;type:varchar(255)"       json:"documento"`
	CreatedAt   time.Time `gorm:"column:criado_em;autoCreateTime"          json:"criado_em"`
}

// TableName nome da tabela
func (Meeting) TableName() string { return "reunioes" }

// MeetingView reunião com o nome da contraparte.
// Na listagem por aluno vem professor_nome; na listagem por professor, aluno_nome.
type MeetingView struct {
	Meeting
	ProfessorName string `gorm:"column:professor_nome" json:"professor_nome,omitempty"`
	StudentName   string `gorm:"column:aluno_nome"     json:"aluno_nome,omitempty"`
}
