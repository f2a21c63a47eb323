package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/vncsmyrnk/questions/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/questions/internal/core/services"
	"github.com/vncsmyrnk/questions/internal/platform/config"
	"github.com/vncsmyrnk/questions/internal/platform/logger"
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

	flag.StringVar(&cfg.DB.Host, "db-host", cfg.DB.Host, "Database host")
	flag.StringVar(&cfg.DB.Port, "db-port", cfg.DB.Port, "Database port")
	flag.StringVar(&cfg.DB.User, "db-user", cfg.DB.User, "Database user")
	flag.StringVar(&cfg.DB.Password, "db-pass", cfg.DB.Password, "Database password")
	flag.StringVar(&cfg.DB.Name, "db-name", cfg.DB.Name, "Database name")
	timeout := flag.Duration("timeout", 5*time.Minute, "Maximum duration of the audit")
	flag.Parse()

	os.Exit(run(cfg, *timeout, log))
}

// run audits every question and returns the process exit code: 1 when any
// tally disagrees.
func run(cfg config.Config, timeout time.Duration, log zerolog.Logger) int {
	db, err := sql.Open("postgres", cfg.DB.DSN())
	if err != nil {
		log.Error().Err(err).Msg("failed to open database")
		return 1
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Error().Err(err).Msg("failed to reach database")
		return 1
	}

	tallySvc := services.NewTallyService(postgres.NewTallyRepository(db))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Info().Msg("Starting tally audit...")

	mismatches, err := tallySvc.AuditTallies(ctx)
	if err != nil {
		log.Error().Err(err).Msg("tally audit failed")
		return 1
	}

	for _, m := range mismatches {
		log.Warn().
			Stringer("question_id", m.QuestionID).
			Int64("question_count", m.QuestionCount).
			Int64("answer_sum", m.AnswerSum).
			Int64("direct_count", m.DirectCount).
			Msg("vote tally mismatch")
	}
	if len(mismatches) > 0 {
		return 1
	}

	log.Info().Msg("Tally audit completed, all counts consistent.")
	return 0
}
