package repository

import "gorm.io/gorm"

// Repository agrega todos os repositórios, um por tabela
type Repository struct {
	User             UserRepository
	Committee        CommitteeRepository
	Grade            GradeRepository
	Meeting          MeetingRepository
	DeliverySchedule DeliveryScheduleRepository
	Upload           UploadRepository
}

// NewRepository cria o agregado sobre a mesma conexão injetada
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:             NewUserRepo(db),
		Committee:        NewCommitteeRepo(db),
		Grade:            NewGradeRepo(db),
		Meeting:          NewMeetingRepo(db),
		DeliverySchedule: NewDeliveryScheduleRepo(db),
		Upload:           NewUploadRepo(db),
	}
}
