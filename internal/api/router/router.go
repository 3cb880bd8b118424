package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"sistema-cadastro/backend/config"
	"sistema-cadastro/backend/internal/api/handler"
	"sistema-cadastro/backend/internal/api/middleware"
	"sistema-cadastro/backend/internal/api/validation"
)

// Setup monta o engine do gin com middlewares e rotas
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) (*gin.Engine, error) {
	if err := validation.Register(); err != nil {
		return nil, err
	}

	r := gin.New()

	// ── middlewares globais ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyMB << 20))

	// ── infraestrutura ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// arquivos enviados só são servidos daqui quando ficam no disco local
	if cfg.Storage.Driver == "local" {
		r.Static(cfg.Storage.PublicPath, cfg.Storage.Dir)
	}

	// ── cadastro e login ──
	r.POST("/cadastro", h.Auth.Register)
	r.POST("/login", h.Auth.Login)

	api := r.Group("/api")
	{
		// usuários
		api.GET("/alunos", h.User.ListStudents)
		api.POST("/alunos", h.Auth.RegisterStudent)
		api.GET("/professores", h.User.ListProfessors)
		api.POST("/professores", h.Auth.RegisterProfessor)
		api.PUT("/atualizar-tipo", h.User.UpdateType)

		// bancas
		bancas := api.Group("/bancas")
		{
			bancas.POST("", h.Committee.Create)
			bancas.GET("/:alunoId", h.Committee.GetByStudent)
			bancas.GET("/avaliador/:avaliadorId", h.Committee.ListByEvaluator)
		}

		// notas
		notas := api.Group("/notas")
		{
			notas.POST("", h.Grade.Create)
			notas.GET("/:alunoId", h.Grade.ListByStudent)
			notas.GET("/:alunoId/export", h.Grade.Export)
		}

		// reuniões
		reunioes := api.Group("/reunioes")
		{
			reunioes.POST("", h.Meeting.Create)
			reunioes.GET("/aluno/:alunoId", h.Meeting.ListByStudent)
			reunioes.GET("/professor/:professorId", h.Meeting.ListByProfessor)
		}

		// cronogramas
		cronogramas := api.Group("/cronogramas")
		{
			cronogramas.POST("", h.DeliverySchedule.Create)
			cronogramas.GET("", h.DeliverySchedule.List)
			cronogramas.GET("/:alunoId", h.DeliverySchedule.ListByStudent)
			cronogramas.GET("/:alunoId/ics", h.DeliverySchedule.ExportICS)
		}

		// uploads
		uploads := api.Group("/uploads")
		{
			uploads.POST("", h.Upload.Create)
			uploads.GET("/:usuarioId", h.Upload.ListByUser)
		}
	}

	return r, nil
}
