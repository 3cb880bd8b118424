package model

import "time"

// Upload arquivo avulso de um usuário, tabela uploads
type Upload struct {
	ID           int64     `gorm:"primaryKey"                                    json:"id"`
	UserID       int64     `gorm:"column:usuario_id;not null;index"              json:"usuario_id"`
	FileName     string    `gorm:"column:arquivo;type:varchar(255);not null"     json:"arquivo"`
	OriginalName string    `gorm:"column:nome_original;type:varchar(255);not null" json:"nome_original"`
	CreatedAt    time.Time `gorm:"column:criado_em;autoCreateTime"               json:"criado_em"`
}

// TableName nome da tabela
func (Upload) TableName() string { return "uploads" }

// All modelos do schema, na ordem de criação
func All() []interface{} {
	return []interface{}{
		&User{},
		&Committee{},
		&Grade{},
		&Meeting{},
		&DeliverySchedule{},
		&Upload{},
	}
}
