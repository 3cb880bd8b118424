package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"sistema-cadastro/backend/internal/dto"
	"sistema-cadastro/backend/internal/model"
)

func scoreOf(d decimal.Decimal) *decimal.Decimal { return &d }

func TestGradeService_CreateInsertsOneRowPerItem(t *testing.T) {
	repo, m := newTestRepos()
	svc := NewGradeService(repo, nopLogger)

	n, err := svc.Create(context.Background(), &dto.CreateGradesRequest{
		AlunoID:     1,
		AvaliadorID: 2,
		Notas: []dto.GradeItem{
			{Criterio: "Clareza", Nota: scoreOf(decimal.RequireFromString("8.5"))},
			{Criterio: "Método", Nota: scoreOf(decimal.NewFromInt(9))},
			{Criterio: "Defesa", Nota: scoreOf(decimal.RequireFromString("7.25"))},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 || len(m.grade.rows) != 3 {
		t.Errorf("esperado 3 notas, obtido n=%d linhas=%d", n, len(m.grade.rows))
	}
	if m.grade.batches != 1 {
		t.Errorf("esperado um único INSERT, obtido %d", m.grade.batches)
	}
	for _, g := range m.grade.rows {
		if g.StudentID != 1 || g.EvaluatorID != 2 {
			t.Errorf("nota com ids errados: %+v", g)
		}
	}
}

func TestGradeService_CreateRejectsEmpty(t *testing.T) {
	repo, m := newTestRepos()
	_, err := NewGradeService(repo, nopLogger).Create(context.Background(), &dto.CreateGradesRequest{AlunoID: 1, AvaliadorID: 2})
	if !errors.Is(err, ErrEmptyGrades) {
		t.Errorf("esperado ErrEmptyGrades, obtido %v", err)
	}
	if len(m.grade.rows) != 0 {
		t.Error("nada deveria ser gravado")
	}
}

func TestGradeService_CreateRejectsItemWithoutScore(t *testing.T) {
	repo, m := newTestRepos()
	_, err := NewGradeService(repo, nopLogger).Create(context.Background(), &dto.CreateGradesRequest{
		AlunoID:     1,
		AvaliadorID: 2,
		Notas: []dto.GradeItem{
			{Criterio: "Clareza", Nota: scoreOf(decimal.NewFromInt(8))},
			{Criterio: "Método"},
		},
	})
	if !errors.Is(err, ErrEmptyGrades) {
		t.Errorf("esperado ErrEmptyGrades, obtido %v", err)
	}
	if len(m.grade.rows) != 0 {
		t.Error("nenhuma nota deveria ser gravada")
	}
}

func TestGradeService_Export(t *testing.T) {
	repo, m := newTestRepos()
	ctx := context.Background()
	student := &model.User{Type: model.RoleStudent, Name: "Ana"}
	if err := m.user.Create(ctx, student); err != nil {
		t.Fatal(err)
	}
	m.grade.names[2] = "Bruno"

	svc := NewGradeService(repo, nopLogger)
	if _, err := svc.Create(ctx, &dto.CreateGradesRequest{
		AlunoID:     student.ID,
		AvaliadorID: 2,
		Notas:       []dto.GradeItem{{Criterio: "Clareza", Nota: scoreOf(decimal.RequireFromString("8.5"))}},
	}); err != nil {
		t.Fatal(err)
	}

	buf, filename, err := svc.Export(ctx, student.ID)
	if err != nil {
		t.Fatal(err)
	}
	if filename != "notas_aluno_1.xlsx" {
		t.Errorf("nome inesperado: %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("planilha ilegível: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(gradeSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("esperado título, cabeçalho e 1 nota; obtido %d linhas", len(rows))
	}
	if rows[0][0] != "Notas de Ana" {
		t.Errorf("título inesperado: %v", rows[0])
	}
	if rows[2][0] != "Clareza" || rows[2][1] != "8.5" || rows[2][2] != "Bruno" {
		t.Errorf("linha de nota inesperada: %v", rows[2])
	}

	if _, _, err := svc.Export(ctx, 99); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("esperado ErrUserNotFound, obtido %v", err)
	}
}
