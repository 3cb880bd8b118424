package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// notas saem como número no JSON (8.5), não como string
	decimal.MarshalJSONWithoutQuotes = true
}

// ── papéis de usuário ──

const (
	RoleStudent     = "aluno"
	RoleProfessor   = "professor"
	RoleCoordinator = "coordenador"
)

// Roles papéis aceitos em usuarios.tipo
var Roles = []string{RoleStudent, RoleProfessor, RoleCoordinator}

// StaffRoles papéis listados em /api/professores
var StaffRoles = []string{RoleProfessor, RoleCoordinator}

// IsValidRole confere se o papel é conhecido
func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// ── Date: coluna DATE sem horário ──

// DateLayout formato de data usado na API e no banco
const DateLayout = "2006-01-02"

// Date corresponde a uma coluna DATE; implementa Scanner/Valuer e JSON "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate cria uma data em UTC
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate aceita "YYYY-MM-DD" ou RFC 3339
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("data inválida %q", s)
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// DefaultBirthDate data de nascimento usada quando o cadastro não informa
var DefaultBirthDate = NewDate(1900, time.January, 1)

func (d Date) String() string { return d.Format(DateLayout) }

// GormDataType tipo da coluna no AutoMigrate
func (Date) GormDataType() string { return "date" }

// Scan lê DATE do driver (time.Time no pgx/sqlite, texto em alguns casos)
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("Date.Scan: tipo não suportado %T", src)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) >= len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("Date.Scan: %w", err)
	}
	*d = Date{t}
	return nil
}

// Value grava como texto "YYYY-MM-DD"
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
