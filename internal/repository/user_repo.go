package repository

import (
	"context"

	"gorm.io/gorm"

	"sistema-cadastro/backend/internal/model"
)

// UserRepository acesso à tabela usuarios
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByName(ctx context.Context, name string) (*model.User, error)
	GetByCPF(ctx context.Context, cpf string) (*model.User, error)
	// UpdateType devolve gorm.ErrRecordNotFound quando nenhuma linha casou
	UpdateType(ctx context.Context, id int64, userType string) error
	ListByTypes(ctx context.Context, types ...string) ([]model.User, error)
}

// userRepo implementação GORM
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo cria o UserRepository
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByName(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("nome = ?", name).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByCPF(ctx context.Context, cpf string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) UpdateType(ctx context.Context, id int64, userType string) error {
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("tipo", userType)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepo) ListByTypes(ctx context.Context, types ...string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("tipo IN ?", types).
		Order("id ASC").
		Find(&users).Error
	return users, err
}
