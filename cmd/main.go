package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/resumeforge/resumeforge-server/internal/ai"
	"github.com/resumeforge/resumeforge-server/internal/api/http/handler"
	"github.com/resumeforge/resumeforge-server/internal/api/http/router"
	httpserver "github.com/resumeforge/resumeforge-server/internal/api/http/server"
	"github.com/resumeforge/resumeforge-server/internal/config"
	"github.com/resumeforge/resumeforge-server/internal/googleid"
	"github.com/resumeforge/resumeforge-server/internal/logger"
	"github.com/resumeforge/resumeforge-server/internal/mailer"
	"github.com/resumeforge/resumeforge-server/internal/model"
	"github.com/resumeforge/resumeforge-server/internal/repository/postgres"
	"github.com/resumeforge/resumeforge-server/internal/security"
	"github.com/resumeforge/resumeforge-server/internal/server"
	"github.com/resumeforge/resumeforge-server/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	resumeRepo := postgres.NewResumeRepository(db)

	hasher := security.NewBcryptHasher()
	resetMailer := mailer.New(mailer.Config{
		Enabled:  cfg.SMTP.Enabled,
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	verifier := googleid.New(googleid.Config{})
	generator := ai.NewGroqClient(ai.Config{
		APIKey:  cfg.Groq.APIKey,
		BaseURL: cfg.Groq.BaseURL,
		Model:   cfg.Groq.Model,
	})

	accountService := service.NewAccount(userRepo, hasher, resetMailer, verifier, service.AccountConfig{
		GoogleClientID: cfg.Auth.GoogleClientID,
		DebugResetCode: cfg.Auth.DebugResetCode,
	}, logger)
	resumeService := service.NewResume(resumeRepo, generator, logger)

	engine := router.New(
		handler.NewAuth(accountService, logger),
		handler.NewResume(resumeService, logger),
		logger,
	)
	httpServer := httpserver.New(engine, fmt.Sprintf(":%s", cfg.HTTP.Port), logger)

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
