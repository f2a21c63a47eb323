package main

import (
	"context"
	"database/sql"
	"errors"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/vncsmyrnk/questions/internal/adapters/handler/http"
	"github.com/vncsmyrnk/questions/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/questions/internal/core/services"
	"github.com/vncsmyrnk/questions/internal/platform/config"
	"github.com/vncsmyrnk/questions/internal/platform/logger"
	"github.com/vncsmyrnk/questions/internal/platform/metrics"
)

func main() {
	cfg, envFound, err := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if !envFound {
		log.Info().Msg("No .env file found")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := sql.Open("postgres", cfg.DB.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to reach database")
	}

	server := &stdhttp.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newHandler(db, cfg, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
		os.Exit(1)
	}
}

func newHandler(db *sql.DB, cfg config.Config, log zerolog.Logger) stdhttp.Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// Initialize Repositories
	tx := postgres.NewTransactor(db)
	questionRepo := postgres.NewQuestionRepository(db)
	answerRepo := postgres.NewAnswerRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	tallyRepo := postgres.NewTallyRepository(db)
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)

	// Initialize Services
	questionSvc := services.NewQuestionService(questionRepo, answerRepo, tallyRepo, tx, m)
	answerSvc := services.NewAnswerService(questionRepo, answerRepo, tallyRepo, tx)
	voteSvc := services.NewVoteService(answerRepo, voteRepo, tx, m)
	userSvc := services.NewUserService(userRepo)
	profileSvc := services.NewProfileService(profileRepo)

	return http.NewHandler(log, http.NewAuthenticator(cfg.JWTSecret), http.Handlers{
		Questions: http.NewQuestionHandler(questionSvc, voteSvc),
		Answers:   http.NewAnswerHandler(answerSvc),
		Votes:     http.NewVoteHandler(voteSvc),
		Users:     http.NewUserHandler(userSvc),
		Profiles:  http.NewProfileHandler(profileSvc),
		Metrics:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})
}
