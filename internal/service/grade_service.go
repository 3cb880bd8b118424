package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"sistema-cadastro/backend/internal/dto"
	"sistema-cadastro/backend/internal/model"
	"sistema-cadastro/backend/internal/repository"
	pkgerrors "sistema-cadastro/backend/pkg/errors"
)

// ErrExportFailed falha ao gerar planilha
var ErrExportFailed = errors.New("falha ao gerar planilha")

// GradeService lançamento, consulta e exportação de notas
type GradeService interface {
	// Create insere uma linha por par critério/nota e devolve quantas foram gravadas
	Create(ctx context.Context, req *dto.CreateGradesRequest) (int, error)
	ListByStudent(ctx context.Context, studentID int64) ([]model.GradeView, error)
	// Export gera um .xlsx com as notas do aluno
	Export(ctx context.Context, studentID int64) (*bytes.Buffer, string, error)
}

type gradeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGradeService cria o GradeService
func NewGradeService(repo *repository.Repository, logger *zap.Logger) GradeService {
	return &gradeService{repo: repo, logger: logger}
}

func (s *gradeService) Create(ctx context.Context, req *dto.CreateGradesRequest) (int, error) {
	if len(req.Notas) == 0 {
		return 0, ErrEmptyGrades
	}

	grades := make([]model.Grade, 0, len(req.Notas))
	for _, n := range req.Notas {
		if n.Nota == nil {
			return 0, ErrEmptyGrades
		}
		grades = append(grades, model.Grade{
			StudentID:   req.AlunoID,
			EvaluatorID: req.AvaliadorID,
			Criterion:   n.Criterio,
			Score:       *n.Nota,
		})
	}

	if err := s.repo.Grade.CreateBatch(ctx, grades); err != nil {
		s.logger.Error("falha ao registrar notas",
			zap.Int64("aluno_id", req.AlunoID),
			zap.Int64("avaliador_id", req.AvaliadorID),
			zap.Error(err),
		)
		return 0, err
	}
	return len(grades), nil
}

func (s *gradeService) ListByStudent(ctx context.Context, studentID int64) ([]model.GradeView, error) {
	rows, err := s.repo.Grade.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("falha ao listar notas", zap.Int64("aluno_id", studentID), zap.Error(err))
		return nil, err
	}
	if rows == nil {
		rows = []model.GradeView{}
	}
	return rows, nil
}

// ────────────────────── Export ──────────────────────

const gradeSheet = "Notas"

func (s *gradeService) Export(ctx context.Context, studentID int64) (*bytes.Buffer, string, error) {
	student, err := s.repo.User.GetByID(ctx, studentID)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, "", ErrUserNotFound
		}
		s.logger.Error("falha ao buscar aluno", zap.Int64("aluno_id", studentID), zap.Error(err))
		return nil, "", err
	}

	rows, err := s.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(gradeSheet)
	if err != nil {
		s.logger.Error("falha ao criar aba", zap.Error(err))
		return nil, "", ErrExportFailed
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(gradeSheet, "A", "A", 30)
	f.SetColWidth(gradeSheet, "B", "B", 10)
	f.SetColWidth(gradeSheet, "C", "C", 30)
	f.SetColWidth(gradeSheet, "D", "D", 20)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#305496"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	f.SetCellValue(gradeSheet, "A1", fmt.Sprintf("Notas de %s", student.Name))
	f.MergeCell(gradeSheet, "A1", "D1")
	f.SetCellStyle(gradeSheet, "A1", "A1", headerStyle)

	for i, h := range []string{"Critério", "Nota", "Avaliador", "Data"} {
		c, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(gradeSheet, c, h)
	}
	f.SetCellStyle(gradeSheet, "A2", "D2", headerStyle)

	for i, g := range rows {
		row := i + 3
		score, _ := g.Score.Float64()
		f.SetCellValue(gradeSheet, fmt.Sprintf("A%d", row), g.Criterion)
		f.SetCellValue(gradeSheet, fmt.Sprintf("B%d", row), score)
		f.SetCellValue(gradeSheet, fmt.Sprintf("C%d", row), g.EvaluatorName)
		f.SetCellValue(gradeSheet, fmt.Sprintf("D%d", row), g.EvaluatedAt.Format("02/01/2006 15:04"))
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("falha ao escrever planilha", zap.Error(err))
		return nil, "", ErrExportFailed
	}

	return buf, fmt.Sprintf("notas_aluno_%d.xlsx", studentID), nil
}
