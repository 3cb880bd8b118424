package validation

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"sistema-cadastro/backend/internal/model"
)

var (
	once   sync.Once
	regErr error
)

// Register registra as regras próprias no validador do gin.
//
//	papel: aluno | professor | coordenador
func Register() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			regErr = fmt.Errorf("validador do gin não é *validator.Validate")
			return
		}
		regErr = v.RegisterValidation("papel", validateRole)
	})
	return regErr
}

func validateRole(fl validator.FieldLevel) bool {
	return model.IsValidRole(fl.Field().String())
}
