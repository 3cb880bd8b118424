package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type roleHolder struct {
	Tipo string `binding:"required,papel"`
}

func TestRegister_RoleRule(t *testing.T) {
	if err := Register(); err != nil {
		t.Fatalf("Register: %v", err)
	}
	// segunda chamada é no-op
	if err := Register(); err != nil {
		t.Fatalf("Register repetido: %v", err)
	}

	for _, role := range []string{"aluno", "professor", "coordenador"} {
		if err := binding.Validator.ValidateStruct(&roleHolder{Tipo: role}); err != nil {
			t.Errorf("%s deveria ser aceito: %v", role, err)
		}
	}
	for _, role := range []string{"admin", "Aluno", ""} {
		if err := binding.Validator.ValidateStruct(&roleHolder{Tipo: role}); err == nil {
			t.Errorf("%q deveria ser recusado", role)
		}
	}
}
