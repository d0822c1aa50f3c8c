package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type seedBranch struct {
	id   int
	name string
}

type seedCandidate struct {
	id       int
	branchID int
	name     string
	sector   string
}

var branches = []seedBranch{
	{1, "LIVE! INDUSTRIAL"},
	{2, "LIVE! ROUPAS"},
	{3, "LIVE! TEXTIL"},
	{4, "FILIAL CISSA"},
	{5, "FILIAL CORUPÁ"},
}

var candidates = []seedCandidate{
	{1, 1, "Ana Silva Santos", "Produção"},
	{2, 1, "Carlos Eduardo Lima", "Qualidade"},
	{3, 1, "Mariana Costa Pereira", "Logística"},
	{4, 2, "João Pedro Oliveira", "Vendas"},
	{5, 2, "Fernanda Rodrigues", "Marketing"},
	{6, 3, "Roberto Silva Nunes", "Tecelagem"},
	{7, 3, "Camila Fernandes", "Acabamento"},
	{8, 4, "Paulo Henrique Sousa", "Administração"},
	{9, 5, "Laura Beatriz Santos", "Recursos Humanos"},
	{10, 5, "Diego Almeida Costa", "Financeiro"},
}

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

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log.Println("Seeding branches and candidates...")

	for _, b := range branches {
		_, err := db.ExecContext(ctx,
			`INSERT INTO branches (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			b.id, b.name)
		if err != nil {
			log.Fatalf("Failed to seed branch %q: %v", b.name, err)
		}
	}

	for _, c := range candidates {
		_, err := db.ExecContext(ctx,
			`INSERT INTO candidates (id, branch_id, name, sector) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`,
			c.id, c.branchID, c.name, c.sector)
		if err != nil {
			log.Fatalf("Failed to seed candidate %q: %v", c.name, err)
		}
	}

	// Seeding with explicit ids leaves the sequences behind; bump them past
	// the highest seeded value.
	for _, stmt := range []string{
		`SELECT setval('branches_id_seq', (SELECT MAX(id) FROM branches))`,
		`SELECT setval('candidates_id_seq', (SELECT MAX(id) FROM candidates))`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Fatalf("Failed to adjust sequence: %v", err)
		}
	}

	log.Println("Seed completed successfully.")
}

func dbConnString() string {
	dbName := os.Getenv("POSTGRES_DB")
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}
