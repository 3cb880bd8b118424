package service

import (
	"time"

	"go.uber.org/zap"

	"sistema-cadastro/backend/config"
	"sistema-cadastro/backend/internal/repository"
	"sistema-cadastro/backend/pkg/storage"
)

// Service agrega todos os serviços
type Service struct {
	Auth             AuthService
	User             UserService
	Committee        CommitteeService
	Grade            GradeService
	Meeting          MeetingService
	DeliverySchedule DeliveryScheduleService
	Upload           UploadService
}

// NewService monta os serviços sobre o repositório e o storage injetados
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	store storage.Store,
	logger *zap.Logger,
) *Service {
	hasher := NewBcryptHasher(cfg.Auth.BcryptCost)

	loc, err := time.LoadLocation(cfg.Database.Timezone)
	if err != nil {
		logger.Warn("fuso horário inválido, usando UTC", zap.String("timezone", cfg.Database.Timezone), zap.Error(err))
		loc = time.UTC
	}

	return &Service{
		Auth:             NewAuthService(repo, hasher, logger),
		User:             NewUserService(repo, logger),
		Committee:        NewCommitteeService(repo, logger),
		Grade:            NewGradeService(repo, logger),
		Meeting:          NewMeetingService(repo, store, logger),
		DeliverySchedule: NewDeliveryScheduleService(repo, loc, logger),
		Upload:           NewUploadService(repo, store, logger),
	}
}
