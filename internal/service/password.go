package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hash de senha de mão única
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Compare devolve nil quando a senha confere
	Compare(hash, plain string) error
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher cria o hasher bcrypt com o custo configurado
func NewBcryptHasher(cost int) PasswordHasher {
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *bcryptHasher) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
