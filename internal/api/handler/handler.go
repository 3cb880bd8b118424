package handler

import "sistema-cadastro/backend/internal/service"

// Handler agrega todos os handlers HTTP
type Handler struct {
	Auth             *AuthHandler
	User             *UserHandler
	Committee        *CommitteeHandler
	Grade            *GradeHandler
	Meeting          *MeetingHandler
	DeliverySchedule *DeliveryScheduleHandler
	Upload           *UploadHandler
}

// NewHandler cria o agregado de handlers
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:             NewAuthHandler(svc.Auth),
		User:             NewUserHandler(svc.User),
		Committee:        NewCommitteeHandler(svc.Committee),
		Grade:            NewGradeHandler(svc.Grade),
		Meeting:          NewMeetingHandler(svc.Meeting),
		DeliverySchedule: NewDeliveryScheduleHandler(svc.DeliverySchedule),
		Upload:           NewUploadHandler(svc.Upload),
	}
}
