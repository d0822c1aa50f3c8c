package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cipavote/api/internal/core/domain"
	"github.com/cipavote/api/internal/core/ports"
)

type branchRepository struct {
	db *sql.DB
}

func NewBranchRepository(db *sql.DB) ports.BranchRepository {
	return &branchRepository{
		db: db,
	}
}

func (r *branchRepository) List(ctx context.Context) ([]domain.Branch, error) {
	query := `SELECT id, name FROM branches ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	branches := []domain.Branch{}
	for rows.Next() {
		var b domain.Branch
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating branches: %w", err)
	}
	return branches, nil
}

func (r *branchRepository) GetByID(ctx context.Context, id int) (*domain.Branch, error) {
	query := `SELECT id, name FROM branches WHERE id = $1`
	var b domain.Branch
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}
	return &b, nil
}

func (r *branchRepository) GetDetail(ctx context.Context, id int) (*domain.BranchDetail, error) {
	query := `
		SELECT b.id, b.name,
			(SELECT COUNT(*) FROM candidates c WHERE c.branch_id = b.id),
			(SELECT COUNT(*) FROM votes v WHERE v.branch_id = b.id)
		FROM branches b
		WHERE b.id = $1
	`
	var d domain.BranchDetail
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name, &d.CandidateCount, &d.VoteCount)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to get branch detail: %w", err)
	}
	return &d, nil
}
