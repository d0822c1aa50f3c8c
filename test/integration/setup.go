package integration

import (
	"context"
	"database/sql"
	"fmt"
	stdhttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	apihttp "github.com/cipavote/api/internal/adapters/handler/http"
	pgrepo "github.com/cipavote/api/internal/adapters/repository/postgres"
	"github.com/cipavote/api/internal/adapters/storage/local"
	"github.com/cipavote/api/internal/core/services"
)

const adminToken = "integration-admin-token"

type testApp struct {
	Server    *httptest.Server
	Client    *stdhttp.Client
	DB        *sql.DB
	UploadDir string

	container testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
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
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	ctx := context.Background()

	container, connStr, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	require.NoError(t, applyMigrations(db))

	uploadDir := t.TempDir()
	photoStore, err := local.NewPhotoStore(uploadDir)
	require.NoError(t, err)

	branchRepo := pgrepo.NewBranchRepository(db)
	candidateRepo := pgrepo.NewCandidateRepository(db)
	voteRepo := pgrepo.NewVoteRepository(db)
	tallyRepo := pgrepo.NewTallyRepository(db)

	branchService := services.NewBranchService(branchRepo)
	candidateService := services.NewCandidateService(branchRepo, candidateRepo, voteRepo, photoStore)
	voteService := services.NewVoteService(branchRepo, candidateRepo, voteRepo)
	tallyService := services.NewTallyService(branchRepo, tallyRepo)

	handler := apihttp.NewHandler(
		apihttp.RouterConfig{AdminToken: adminToken, UploadDir: uploadDir},
		apihttp.NewBranchHandler(branchService),
		apihttp.NewCandidateHandler(candidateService),
		apihttp.NewVoteHandler(voteService),
		apihttp.NewAdminHandler(candidateService, tallyService, photoStore),
	)

	server := httptest.NewServer(handler)

	return &testApp{
		Server:    server,
		Client:    server.Client(),
		DB:        db,
		UploadDir: uploadDir,
		container: container,
	}
}

func (a *testApp) Teardown(t *testing.T) {
	t.Helper()
	a.Server.Close()
	a.DB.Close()
	if err := a.container.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func createBranch(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	var id int
	err := db.QueryRow("INSERT INTO branches (name) VALUES ($1) RETURNING id", name).Scan(&id)
	require.NoError(t, err)
	return id
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func createCandidate(t *testing.T, db *sql.DB, branchID int, name, sector string) int {
	t.Helper()
	var id int
	err := db.QueryRow(
		"INSERT INTO candidates (branch_id, name, sector) VALUES ($1, $2, $3) RETURNING id",
		branchID, name, sector,
	).Scan(&id)
	require.NoError(t, err)
	return id
}
