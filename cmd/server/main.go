package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/cipavote/api/internal/adapters/handler/http"
	"github.com/cipavote/api/internal/adapters/repository/postgres"
	"github.com/cipavote/api/internal/adapters/storage/local"
	"github.com/cipavote/api/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	adminToken := os.Getenv("ADMIN_TOKEN")
	if adminToken == "" {
		log.Fatal("ADMIN_TOKEN must be set")
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	photoStore, err := local.NewPhotoStore(uploadDir)
	if err != nil {
		log.Fatal(err)
	}

	// Initialize Repositories
	branchRepo := postgres.NewBranchRepository(db)
	candidateRepo := postgres.NewCandidateRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	tallyRepo := postgres.NewTallyRepository(db)

	// Initialize Services
	branchService := services.NewBranchService(branchRepo)
	candidateService := services.NewCandidateService(branchRepo, candidateRepo, voteRepo, photoStore)
	voteService := services.NewVoteService(branchRepo, candidateRepo, voteRepo)
	tallyService := services.NewTallyService(branchRepo, tallyRepo)

	handler := http.NewHandler(
		http.RouterConfig{AdminToken: adminToken, UploadDir: uploadDir},
		http.NewBranchHandler(branchService),
		http.NewCandidateHandler(candidateService),
		http.NewVoteHandler(voteService),
		http.NewAdminHandler(candidateService, tallyService, photoStore),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &stdhttp.Server{Addr: "0.0.0.0:" + port, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func dbConnString() string {
	dbName := os.Getenv("POSTGRES_DB")
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}
