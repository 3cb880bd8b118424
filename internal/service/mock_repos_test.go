package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sistema-cadastro/backend/internal/model"
	"sistema-cadastro/backend/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users     map[int64]*model.User
	nextID    int64
	createErr error
	// skipNameLookup simula a corrida: GetByName não enxerga o registro concorrente
	skipNameLookup bool
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, u := range m.users {
		if u.Name == user.Name || (user.CPF != "" && u.CPF == user.CPF) {
			return gorm.ErrDuplicatedKey
		}
	}
	m.nextID++
	user.ID = m.nextID
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByName(_ context.Context, name string) (*model.User, error) {
	if m.skipNameLookup {
		return nil, gorm.ErrRecordNotFound
	}
	for _, u := range m.users {
		if u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByCPF(_ context.Context, cpf string) (*model.User, error) {
	for _, u := range m.users {
		if cpf != "" && u.CPF == cpf {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) UpdateType(_ context.Context, id int64, userType string) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Type = userType
	return nil
}

func (m *mockUserRepo) ListByTypes(_ context.Context, types ...string) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		for _, t := range types {
			if u.Type == t {
				result = append(result, *u)
				break
			}
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock CommitteeRepository ──

type mockCommitteeRepo struct {
	rows []model.Committee
}

func (m *mockCommitteeRepo) Create(_ context.Context, c *model.Committee) error {
	c.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *c)
	return nil
}

func (m *mockCommitteeRepo) GetByStudent(_ context.Context, studentID int64) (*model.Committee, error) {
	for _, c := range m.rows {
		if c.StudentID == studentID {
			cp := c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCommitteeRepo) ListByEvaluator(_ context.Context, evaluatorID int64) ([]model.CommitteeView, error) {
	var result []model.CommitteeView
	for _, c := range m.rows {
		if c.Evaluator1ID == evaluatorID || c.Evaluator2ID == evaluatorID || c.Evaluator3ID == evaluatorID {
			result = append(result, model.CommitteeView{Committee: c})
		}
	}
	return result, nil
}

// ── Mock GradeRepository ──

type mockGradeRepo struct {
	rows    []model.Grade
	batches int
	names   map[int64]string
}

func (m *mockGradeRepo) CreateBatch(_ context.Context, grades []model.Grade) error {
	if len(grades) == 0 {
		return nil
	}
	m.batches++
	for i := range grades {
		grades[i].ID = int64(len(m.rows) + 1)
		grades[i].EvaluatedAt = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
		m.rows = append(m.rows, grades[i])
	}
	return nil
}

func (m *mockGradeRepo) ListByStudent(_ context.Context, studentID int64) ([]model.GradeView, error) {
	var result []model.GradeView
	for i := len(m.rows) - 1; i >= 0; i-- {
		g := m.rows[i]
		if g.StudentID == studentID {
			result = append(result, model.GradeView{Grade: g, EvaluatorName: m.names[g.EvaluatorID]})
		}
	}
	return result, nil
}

// ── Mock MeetingRepository ──

type mockMeetingRepo struct {
	rows      []model.Meeting
	createErr error
}

func (m *mockMeetingRepo) Create(_ context.Context, meeting *model.Meeting) error {
	if m.createErr != nil {
		return m.createErr
	}
	meeting.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *meeting)
	return nil
}

func (m *mockMeetingRepo) ListByStudent(_ context.Context, studentID int64) ([]model.MeetingView, error) {
	var result []model.MeetingView
	for _, r := range m.rows {
		if r.StudentID == studentID {
			result = append(result, model.MeetingView{Meeting: r})
		}
	}
	return result, nil
}

func (m *mockMeetingRepo) ListByProfessor(_ context.Context, professorID int64) ([]model.MeetingView, error) {
	var result []model.MeetingView
	for _, r := range m.rows {
		if r.ProfessorID == professorID {
			result = append(result, model.MeetingView{Meeting: r})
		}
	}
	return result, nil
}

// ── Mock DeliveryScheduleRepository ──

type mockDeliveryScheduleRepo struct {
	rows []model.DeliverySchedule
}

func (m *mockDeliveryScheduleRepo) Create(_ context.Context, s *model.DeliverySchedule) error {
	s.ID = int64(len(m.rows) + 1)
	s.DefinedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m.rows = append(m.rows, *s)
	return nil
}

func (m *mockDeliveryScheduleRepo) List(_ context.Context) ([]model.DeliveryScheduleView, error) {
	var result []model.DeliveryScheduleView
	for _, r := range m.rows {
		result = append(result, model.DeliveryScheduleView{DeliverySchedule: r, StudentName: "Ana"})
	}
	return result, nil
}

func (m *mockDeliveryScheduleRepo) ListByStudent(_ context.Context, studentID int64) ([]model.DeliveryScheduleView, error) {
	var result []model.DeliveryScheduleView
	for _, r := range m.rows {
		if r.StudentID == studentID {
			result = append(result, model.DeliveryScheduleView{DeliverySchedule: r, StudentName: "Ana"})
		}
	}
	return result, nil
}

// ── Mock UploadRepository ──

type mockUploadRepo struct {
	rows      []model.Upload
	createErr error
}

func (m *mockUploadRepo) Create(_ context.Context, u *model.Upload) error {
	if m.createErr != nil {
		return m.createErr
	}
	u.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *u)
	return nil
}

func (m *mockUploadRepo) ListByUser(_ context.Context, userID int64) ([]model.Upload, error) {
	var result []model.Upload
	for _, u := range m.rows {
		if u.UserID == userID {
			result = append(result, u)
		}
	}
	return result, nil
}

// ── Mock storage.Store ──

type mockStore struct {
	mu      sync.Mutex
	files   map[string][]byte
	deleted []string
	saveErr error
	seq     int
}

func newMockStore() *mockStore {
	return &mockStore{files: make(map[string][]byte)}
}

func (m *mockStore) Save(_ context.Context, originalName string, r io.Reader) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	name := fmt.Sprintf("blob-%d-%s", m.seq, originalName)
	m.files[name] = b
	return name, nil
}

func (m *mockStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, name)
	m.deleted = append(m.deleted, name)
	return nil
}

// ── helpers ──

var errDBDown = errors.New("conexão recusada")

type testRepos struct {
	user      *mockUserRepo
	committee *mockCommitteeRepo
	grade     *mockGradeRepo
	meeting   *mockMeetingRepo
	schedule  *mockDeliveryScheduleRepo
	upload    *mockUploadRepo
}

func newTestRepos() (*repository.Repository, *testRepos) {
	m := &testRepos{
		user:      newMockUserRepo(),
		committee: &mockCommitteeRepo{},
		grade:     &mockGradeRepo{names: map[int64]string{}},
		meeting:   &mockMeetingRepo{},
		schedule:  &mockDeliveryScheduleRepo{},
		upload:    &mockUploadRepo{},
	}
	return &repository.Repository{
		User:             m.user,
		Committee:        m.committee,
		Grade:            m.grade,
		Meeting:          m.meeting,
		DeliverySchedule: m.schedule,
		Upload:           m.upload,
	}, m
}

func testHasher() PasswordHasher {
	return NewBcryptHasher(bcrypt.MinCost)
}

func attachment(name, content string) *Attachment {
	return &Attachment{Name: name, Content: bytes.NewBufferString(content)}
}

var nopLogger = zap.NewNop()
