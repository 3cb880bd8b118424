package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sistema-cadastro/backend/config"
	"sistema-cadastro/backend/internal/api/handler"
	"sistema-cadastro/backend/internal/api/router"
	"sistema-cadastro/backend/internal/repository"
	"sistema-cadastro/backend/internal/service"
	"sistema-cadastro/backend/pkg/database"
	applogger "sistema-cadastro/backend/pkg/logger"
	"sistema-cadastro/backend/pkg/storage"
)

func main() {
	configPath := flag.String("config", "", "caminho do arquivo de configuração (yaml)")
	flag.Parse()

	// 1. configuração
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "falha ao carregar configuração: %v\n", err)
		os.Exit(1)
	}

	// 2. log
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "falha ao iniciar log: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("iniciando aplicação",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
		zap.String("storage", cfg.Storage.Driver),
	)

	// 3. banco
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("falha ao conectar no banco", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("falha ao obter sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("falha nas migrações", zap.Error(err))
	}

	// 4. storage de arquivos
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := storage.New(ctx, &cfg.Storage, logger)
	cancel()
	if err != nil {
		logger.Fatal("falha ao iniciar storage", zap.Error(err))
	}

	// 5. Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, store, logger)
	h := handler.NewHandler(svc)

	// 6. rotas
	gin.SetMode(gin.ReleaseMode)
	engine, err := router.Setup(cfg, h, logger)
	if err != nil {
		logger.Fatal("falha ao montar rotas", zap.Error(err))
	}

	// 7. servidor HTTP com encerramento gracioso
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP no ar", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("servidor HTTP falhou", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("sinal recebido, encerrando", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("erro ao encerrar servidor", zap.Error(err))
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("erro ao fechar banco", zap.Error(err))
	}

	logger.Info("servidor encerrado")
}
