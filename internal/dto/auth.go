package dto

// ── cadastro e login ──

// RegisterRequest cadastro completo (POST /cadastro)
type RegisterRequest struct {
	Tipo           string `json:"tipo"            binding:"required,papel"`
	Nome           string `json:"nome"            binding:"required,max=150"`
	DataNascimento string `json:"data_nascimento"`
	Contato        string `json:"contato"         binding:"max=150"`
	CPF            string `json:"cpf"             binding:"max=20"`
	RG             string `json:"rg"              binding:"max=20"`
	Cidade         string `json:"cidade"          binding:"max=100"`
	Endereco       string `json:"endereco"        binding:"max=255"`
	EstadoCivil    string `json:"estado_civil"    binding:"max=30"`
	Sexo           string `json:"sexo"            binding:"max=20"`
	NomePai        string `json:"nome_pai"        binding:"max=150"`
	NomeMae        string `json:"nome_mae"        binding:"max=150"`
	Senha          string `json:"senha"           binding:"required"`
}

// CreateStudentRequest cadastro de aluno pelo painel (POST /api/alunos).
// A matrícula é gravada em usuarios.cpf.
type CreateStudentRequest struct {
	Nome      string `json:"nome"      binding:"required,max=150"`
	Matricula string `json:"matricula" binding:"required,max=20"`
	Senha     string `json:"senha"     binding:"required"`
}

// CreateProfessorRequest cadastro de professor pelo painel (POST /api/professores).
// A disciplina é gravada em usuarios.contato.
type CreateProfessorRequest struct {
	Nome       string `json:"nome"       binding:"required,max=150"`
	Disciplina string `json:"disciplina" binding:"required,max=150"`
	Senha      string `json:"senha"      binding:"required"`
}

// LoginRequest login por nome ou, alternativamente, por cpf
type LoginRequest struct {
	Nome  string `json:"nome"  binding:"required_without=CPF"`
	CPF   string `json:"cpf"   binding:"required_without=Nome"`
	Senha string `json:"senha" binding:"required"`
}
