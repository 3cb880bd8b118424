package dto

// CreateDeliveryScheduleRequest novo prazo de entrega
type CreateDeliveryScheduleRequest struct {
	AlunoID        int64  `json:"aluno_id"        binding:"required"`
	TipoEntrega    string `json:"tipo_entrega"    binding:"required,max=100"`
	DataEntrega    string `json:"data_entrega"    binding:"required"`
	HorarioEntrega string `json:"horario_entrega" binding:"required"`
}
