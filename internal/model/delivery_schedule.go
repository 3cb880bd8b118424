package model

import "time"

// DeliverySchedule prazo de entrega de um aluno, tabela cronogramas
type DeliverySchedule struct {
	ID           int64     `gorm:"primaryKey"                                      json:"id"`
	StudentID    int64     `gorm:"column:aluno_id;not null;index"                  json:"aluno_id"`
	DeliveryType string    `gorm:"column:tipo_entrega;type:varchar(100);not null"  json:"tipo_entrega"`
	DeliveryDate Date      `gorm:"column:data_entrega;not null"                    json:"data_entrega"`
	DeliveryTime string    `gorm:"column:horario_entrega;type:varchar(5);not null" json:"horario_entrega"`
	DefinedAt    time.Time `gorm:"column:data_definicao;autoCreateTime"            json:"data_definicao"`
}

// TableName nome da tabela
func (DeliverySchedule) TableName() string { return "cronogramas" }

// DeliveryScheduleView cronograma com o nome do aluno
type DeliveryScheduleView struct {
	DeliverySchedule
	StudentName string `gorm:"column:aluno_nome" json:"aluno_nome"`
}
