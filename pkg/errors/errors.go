package errors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation SQLSTATE de violação de unicidade no PostgreSQL
const pgUniqueViolation = "23505"

// IsDuplicateKey indica se o banco recusou a escrita por chave duplicada.
// Cobre o erro traduzido pelo GORM (TranslateError) e o pgconn cru.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// IsNotFound indica ausência de registro
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
