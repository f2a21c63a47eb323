package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	_ "github.com/lib/pq"

	"github.com/vncsmyrnk/questions/internal/platform/config"
	"github.com/vncsmyrnk/questions/internal/platform/logger"
)

var basePath = filepath.Join(".", "internal", "adapters", "repository", "postgres", "migrations")

// Usage: migrations <name>   applies the single file matching name
//
//	migrations up       applies every *.up.sql file in order
func main() {
	cfg, _, err := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if len(os.Args) < 2 {
		log.Fatal().Msg("a migration name is required.")
	}
	migrationName := os.Args[1]

	db, err := sql.Open("postgres", cfg.DB.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	var files []string
	if migrationName == "up" {
		files, err = upMigrationFiles(basePath)
	} else {
		var f string
		f, err = migrationFilePath(basePath, migrationName)
		files = []string{f}
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to locate migrations")
	}

	for _, f := range files {
		content, err := os.ReadFile(filepath.Join(basePath, f))
		if err != nil {
			log.Fatal().Err(err).Str("file", f).Msg("failed to read migration")
		}
		if _, err := db.Exec(string(content)); err != nil {
			log.Fatal().Err(err).Str("file", f).Msg("failed to execute migration")
		}
		log.Info().Str("file", f).Msg("migration executed")
	}
}

func upMigrationFiles(basePath string) ([]string, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func migrationFilePath(basePath string, migrationName string) (string, error) {
	regex, err := regexp.Compile(fmt.Sprintf(`^.*%s\.sql$`, regexp.QuoteMeta(migrationName)))
	if err != nil {
		return "", fmt.Errorf("invalid pattern: %w", err)
	}

	files, err := os.ReadDir(basePath)
	if err != nil {
		return "", err
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if regex.MatchString(f.Name()) {
			return f.Name(), nil
		}
	}

	return "", fmt.Errorf("migration file %q not found", migrationName)
}
