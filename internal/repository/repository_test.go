package repository_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sistema-cadastro/backend/internal/model"
	"sistema-cadastro/backend/internal/repository"
	"sistema-cadastro/backend/pkg/database"
	pkgerrors "sistema-cadastro/backend/pkg/errors"
)

// newTestRepo abre um SQLite em memória isolado por teste
func newTestRepo(t *testing.T) (*repository.Repository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig(false))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// ":memory:" é por conexão; uma só conexão mantém o mesmo banco
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return repository.NewRepository(db), db
}

func createUser(t *testing.T, repo *repository.Repository, name, userType string) *model.User {
	t.Helper()
	u := &model.User{
		Type:         userType,
		Name:         name,
		BirthDate:    model.DefaultBirthDate,
		PasswordHash: "$2a$10$placeholder",
	}
	require.NoError(t, repo.User.Create(context.Background(), u))
	require.NotZero(t, u.ID)
	return u
}

// ── usuarios ──

func TestUserRepo_DuplicateNameIsTranslated(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()
	createUser(t, repo, "Ana", model.RoleStudent)

	err := repo.User.Create(ctx, &model.User{Type: model.RoleStudent, Name: "Ana", BirthDate: model.DefaultBirthDate, PasswordHash: "x"})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsDuplicateKey(err), "esperado erro de chave duplicada, obtido %v", err)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("nome = ?", "Ana").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserRepo_Lookups(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	u := createUser(t, repo, "Bruno", model.RoleProfessor)
	require.NoError(t, repo.User.UpdateType(ctx, u.ID, model.RoleProfessor))

	byName, err := repo.User.GetByName(ctx, "Bruno")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)
	assert.Equal(t, "1900-01-01", byName.BirthDate.String())

	_, err = repo.User.GetByName(ctx, "Ninguém")
	assert.True(t, pkgerrors.IsNotFound(err))

	_, err = repo.User.GetByID(ctx, 999)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestUserRepo_UpdateTypeAndList(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	a := createUser(t, repo, "Ana", model.RoleStudent)
	createUser(t, repo, "Bia", model.RoleStudent)
	createUser(t, repo, "Caio", model.RoleCoordinator)

	require.NoError(t, repo.User.UpdateType(ctx, a.ID, model.RoleProfessor))

	staff, err := repo.User.ListByTypes(ctx, model.StaffRoles...)
	require.NoError(t, err)
	names := make([]string, 0, len(staff))
	for _, u := range staff {
		names = append(names, u.Name)
	}
	assert.Equal(t, []string{"Ana", "Caio"}, names)

	students, err := repo.User.ListByTypes(ctx, model.RoleStudent)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Bia", students[0].Name)

	err = repo.User.UpdateType(ctx, 12345, model.RoleStudent)
	assert.True(t, pkgerrors.IsNotFound(err))
}

// ── bancas ──

func TestCommitteeRepo_FirstRowAndEvaluatorListing(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	aluno := createUser(t, repo, "Ana", model.RoleStudent)

	first := &model.Committee{StudentID: aluno.ID, Evaluator1ID: 10, Evaluator2ID: 11, Evaluator3ID: 12}
	require.NoError(t, repo.Committee.Create(ctx, first))
	require.NoError(t, repo.Committee.Create(ctx, &model.Committee{StudentID: aluno.ID, Evaluator1ID: 20, Evaluator2ID: 21, Evaluator3ID: 11}))

	got, err := repo.Committee.GetByStudent(ctx, aluno.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.EqualValues(t, 10, got.Evaluator1ID)

	_, err = repo.Committee.GetByStudent(ctx, 777)
	assert.True(t, pkgerrors.IsNotFound(err))

	views, err := repo.Committee.ListByEvaluator(ctx, 11)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Ana", views[0].StudentName)

	views, err = repo.Committee.ListByEvaluator(ctx, 20)
	require.NoError(t, err)
	assert.Len(t, views, 1)
}

// ── notas ──

func TestGradeRepo_BatchAndOrdering(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	aluno := createUser(t, repo, "Ana", model.RoleStudent)
	prof := createUser(t, repo, "Prof. Carla", model.RoleProfessor)

	first := []model.Grade{
		{StudentID: aluno.ID, EvaluatorID: prof.ID, Criterion: "Escrita", Score: decimal.RequireFromString("7.5")},
		{StudentID: aluno.ID, EvaluatorID: prof.ID, Criterion: "Apresentação", Score: decimal.RequireFromString("9")},
	}
	require.NoError(t, repo.Grade.CreateBatch(ctx, first))
	second := []model.Grade{
		{StudentID: aluno.ID, EvaluatorID: prof.ID, Criterion: "Metodologia", Score: decimal.RequireFromString("8.25")},
	}
	require.NoError(t, repo.Grade.CreateBatch(ctx, second))

	rows, err := repo.Grade.ListByStudent(ctx, aluno.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Metodologia", rows[0].Criterion)
	assert.Equal(t, "Prof. Carla", rows[0].EvaluatorName)
	assert.True(t, rows[0].Score.Equal(decimal.RequireFromString("8.25")), "nota=%s", rows[0].Score)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].EvaluatedAt.After(rows[i-1].EvaluatedAt), "ordem deve ser decrescente")
	}

	require.NoError(t, repo.Grade.CreateBatch(ctx, nil))
}

// ── reunioes ──

func TestMeetingRepo_ListingsJoinCounterpartName(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	aluno := createUser(t, repo, "Ana", model.RoleStudent)
	prof := createUser(t, repo, "Prof. Carla", model.RoleProfessor)

	doc := "1700000000000-1.pdf"
	meetings := []*model.Meeting{
		{StudentID: aluno.ID, ProfessorID: prof.ID, Date: model.NewDate(2024, 3, 1), Time: "09:00", Description: "kickoff"},
		{StudentID: aluno.ID, ProfessorID: prof.ID, Date: model.NewDate(2024, 3, 8), Time: "08:00", Description: "revisão", Document: &doc},
		{StudentID: aluno.ID, ProfessorID: prof.ID, Date: model.NewDate(2024, 3, 8), Time: "14:00", Description: "ajustes"},
	}
	for _, m := range meetings {
		require.NoError(t, repo.Meeting.Create(ctx, m))
	}

	byStudent, err := repo.Meeting.ListByStudent(ctx, aluno.ID)
	require.NoError(t, err)
	require.Len(t, byStudent, 3)
	assert.Equal(t, "ajustes", byStudent[0].Description)
	assert.Equal(t, "revisão", byStudent[1].Description)
	assert.Equal(t, "kickoff", byStudent[2].Description)
	assert.Equal(t, "Prof. Carla", byStudent[0].ProfessorName)
	require.NotNil(t, byStudent[1].Document)
	assert.Equal(t, doc, *byStudent[1].Document)
	assert.Nil(t, byStudent[0].Document)
	assert.Equal(t, "2024-03-08", byStudent[0].Date.String())

	byProf, err := repo.Meeting.ListByProfessor(ctx, prof.ID)
	require.NoError(t, err)
	require.Len(t, byProf, 3)
	assert.Equal(t, "Ana", byProf[0].StudentName)
	assert.Equal(t, "2024-03-01", byProf[2].Date.String())
}

// ── cronogramas ──

func TestDeliveryScheduleRepo_OrderedByDeadline(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	ana := createUser(t, repo, "Ana", model.RoleStudent)
	bia := createUser(t, repo, "Bia", model.RoleStudent)

	entries := []*model.DeliverySchedule{
		{StudentID: ana.ID, DeliveryType: "Versão final", DeliveryDate: model.NewDate(2024, 11, 30), DeliveryTime: "18:00"},
		{StudentID: bia.ID, DeliveryType: "Projeto", DeliveryDate: model.NewDate(2024, 6, 15), DeliveryTime: "23:59"},
		{StudentID: ana.ID, DeliveryType: "Projeto", DeliveryDate: model.NewDate(2024, 6, 15), DeliveryTime: "12:00"},
	}
	for _, e := range entries {
		require.NoError(t, repo.DeliverySchedule.Create(ctx, e))
	}

	all, err := repo.DeliverySchedule.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Ana", all[0].StudentName)
	assert.Equal(t, "12:00", all[0].DeliveryTime)
	assert.Equal(t, "Bia", all[1].StudentName)
	assert.Equal(t, "Versão final", all[2].DeliveryType)

	mine, err := repo.DeliverySchedule.ListByStudent(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Projeto", mine[0].DeliveryType)
	assert.False(t, mine[0].DefinedAt.IsZero())
}

// ── uploads ──

func TestUploadRepo_ListByUser(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upload.Create(ctx, &model.Upload{UserID: 1, FileName: "a.pdf", OriginalName: "tcc.pdf"}))
	require.NoError(t, repo.Upload.Create(ctx, &model.Upload{UserID: 1, FileName: "b.png"}))
	require.NoError(t, repo.Upload.Create(ctx, &model.Upload{UserID: 2, FileName: "c.txt"}))

	list, err := repo.Upload.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b.png", list[0].FileName)

	empty, err := repo.Upload.ListByUser(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
