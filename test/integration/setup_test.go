package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/vncsmyrnk/questions/internal/adapters/handler/http"
	repo "github.com/vncsmyrnk/questions/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/questions/internal/core/ports"
	"github.com/vncsmyrnk/questions/internal/core/services"
	"github.com/vncsmyrnk/questions/internal/platform/metrics"
)

const jwtSecret = "test-secret"

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	TallySvc    ports.TallyService
	Metrics     *metrics.Metrics
	DBContainer testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dirPath, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)
	require.NoError(t, applyMigrations(db))

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	tx := repo.NewTransactor(db)
	questionRepo := repo.NewQuestionRepository(db)
	answerRepo := repo.NewAnswerRepository(db)
	voteRepo := repo.NewVoteRepository(db)
	tallyRepo := repo.NewTallyRepository(db)

	questionSvc := services.NewQuestionService(questionRepo, answerRepo, tallyRepo, tx, m)
	answerSvc := services.NewAnswerService(questionRepo, answerRepo, tallyRepo, tx)
	voteSvc := services.NewVoteService(answerRepo, voteRepo, tx, m)
	userSvc := services.NewUserService(repo.NewUserRepository(db))
	profileSvc := services.NewProfileService(repo.NewProfileRepository(db))

	router := handler.NewHandler(zerolog.Nop(), handler.NewAuthenticator(jwtSecret), handler.Handlers{
		Questions: handler.NewQuestionHandler(questionSvc, voteSvc),
		Answers:   handler.NewAnswerHandler(answerSvc),
		Votes:     handler.NewVoteHandler(voteSvc),
		Users:     handler.NewUserHandler(userSvc),
		Profiles:  handler.NewProfileHandler(profileSvc),
		Metrics:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		TallySvc:    services.NewTallyService(tallyRepo),
		Metrics:     m,
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// createUserAndToken inserts a user and signs an access token for it.
func (app *TestApp) createUserAndToken(t *testing.T) (uuid.UUID, string) {
	t.Helper()

	userID := uuid.New()
	username := "user-" + userID.String()[:8]
	_, err := app.DB.Exec(
		"INSERT INTO users (id, username, email) VALUES ($1, $2, $3)",
		userID, username, username+"@example.com",
	)
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(15 * time.Minute).Unix(),
		"iat": time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return userID, signed
}

// request sends body as JSON with the token as the access_token cookie.
func (app *TestApp) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, app.Server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	}

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func (app *TestApp) createQuestion(t *testing.T, token, text string, answers ...string) questionBody {
	t.Helper()

	payload := map[string]any{"text": text, "answers": answerPayload(answers)}
	resp := app.request(t, http.MethodPost, "/api/questions", token, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[questionBody](t, resp)
}

func answerPayload(texts []string) []map[string]string {
	out := make([]map[string]string, 0, len(texts))
	for _, text := range texts {
		out = append(out, map[string]string{"text": text})
	}
	return out
}

type answerBody struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question"`
	Text       string    `json:"text"`
	VotesCount int64     `json:"votes_count"`
}

type questionBody struct {
	ID            uuid.UUID    `json:"id"`
	Owner         uuid.UUID    `json:"owner"`
	OwnerUsername string       `json:"owner_username"`
	Text          string       `json:"text"`
	Answers       []answerBody `json:"answers"`
	VotesCount    int64        `json:"votes_count"`
}

type voteBody struct {
	ID       uuid.UUID `json:"id"`
	Answer   uuid.UUID `json:"answer"`
	Question uuid.UUID `json:"question"`
	Voter    uuid.UUID `json:"voter"`
}
