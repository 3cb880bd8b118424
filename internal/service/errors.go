package service

import "errors"

// ── erros de negócio ──

var (
	ErrUserExists        = errors.New("usuário já cadastrado")
	ErrDuplicate         = errors.New("registro duplicado")
	ErrUserNotFound      = errors.New("usuário não encontrado")
	ErrWrongPassword     = errors.New("senha incorreta")
	ErrInvalidRole       = errors.New("tipo de usuário inválido")
	ErrInvalidDate       = errors.New("data inválida")
	ErrInvalidTime       = errors.New("horário inválido")
	ErrCommitteeNotFound = errors.New("banca não encontrada")
	ErrEmptyGrades       = errors.New("nenhuma nota informada")
	ErrMissingFile       = errors.New("arquivo obrigatório")
)
