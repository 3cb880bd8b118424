package service

import (
	"time"

	"sistema-cadastro/backend/internal/model"
)

// parseDate converte a data recebida; vazio usa fallback quando informado
func parseDate(s string, fallback *model.Date) (model.Date, error) {
	if s == "" && fallback != nil {
		return *fallback, nil
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return model.Date{}, ErrInvalidDate
	}
	return d, nil
}

// normalizeClock aceita "HH:MM" ou "HH:MM:SS" e devolve "HH:MM"
func normalizeClock(s string) (string, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", ErrInvalidTime
}
