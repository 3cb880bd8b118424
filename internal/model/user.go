package model

import "time"

// User tabela usuarios
type User struct {
	ID            int64     `gorm:"primaryKey"                                   json:"id"`
	Type          string    `gorm:"column:tipo;type:varchar(20);not null;index"  json:"tipo"`
	Name          string    `gorm:"column:nome;type:varchar(150);not null;uniqueIndex" json:"nome"`
	BirthDate     Date      `gorm:"column:data_nascimento;not null"              json:"data_nascimento"`
	Contact       string    `gorm:"column:contato;type:varchar(150);not null"    json:"contato"`
	CPF           string    `gorm:"column:cpf;type:varchar(20);not null"         json:"cpf"`
	RG            string    `gorm:"column:rg;type:varchar(20);not null"          json:"rg"`
	City          string    `gorm:"column:cidade;type:varchar(100);not null"     json:"cidade"`
	Address       string    `gorm:"column:endereco;type:varchar(255);not null"   json:"endereco"`
	MaritalStatus string    `gorm:"column:estado_civil;type:varchar(30);not null" json:"estado_civil"`
	Sex           string    `gorm:"column:sexo;type:varchar(20);not null"        json:"sexo"`
	FatherName    string    `gorm:"column:nome_pai;type:varchar(150);not null"   json:"nome_pai"`
	MotherName    string    `gorm:"column:nome_mae;type:varchar(150);not null"   json:"nome_mae"`
	PasswordHash  string    `gorm:"column:senha;type:varchar(255);not null"      json:"-"`
	CreatedAt     time.Time `gorm:"column:criado_em;autoCreateTime"              json:"criado_em"`
}

// TableName nome da tabela
func (User) TableName() string { return "usuarios" }
