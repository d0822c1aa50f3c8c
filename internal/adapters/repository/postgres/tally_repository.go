package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cipavote/api/internal/core/domain"
	"github.com/cipavote/api/internal/core/ports"
)

type tallyRepository struct {
	db *sql.DB
}

func NewTallyRepository(db *sql.DB) ports.TallyRepository {
	return &tallyRepository{
		db: db,
	}
}

func (r *tallyRepository) Results(ctx context.Context, branchID *int) ([]domain.TallyRow, error) {
	// A branch-filtered report is read per branch, so branch name leads the
	// ordering; the global report leads with the vote count.
	orderBy := `ORDER BY COUNT(v.id) DESC, b.name ASC, c.name ASC`
	if branchID != nil {
		orderBy = `ORDER BY b.name ASC, COUNT(v.id) DESC`
	}

	query := `
		SELECT c.id, c.name, c.sector, b.name, COUNT(v.id)
		FROM candidates c
		JOIN branches b ON b.id = c.branch_id
		LEFT JOIN votes v ON v.candidate_id = c.id
		WHERE $1::int IS NULL OR c.branch_id = $1
		GROUP BY c.id, c.name, c.sector, b.name
		` + orderBy

	rows, err := r.db.QueryContext(ctx, query, nullableInt(branchID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch results: %w", err)
	}
	defer rows.Close()

	results := []domain.TallyRow{}
	for rows.Next() {
		var t domain.TallyRow
		if err := rows.Scan(&t.CandidateID, &t.Name, &t.Sector, &t.Branch, &t.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating results: %w", err)
	}
	return results, nil
}

func (r *tallyRepository) CountVotes(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM votes`)
}

func (r *tallyRepository) CountCandidates(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM candidates`)
}

func (r *tallyRepository) CountBranches(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM branches`)
}

func (r *tallyRepository) CountBranchesWithCandidates(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(DISTINCT branch_id) FROM candidates`)
}

func (r *tallyRepository) PerBranch(ctx context.Context) ([]domain.BranchStats, error) {
	query := `
		SELECT b.id, b.name,
			(SELECT COUNT(*) FROM votes v WHERE v.branch_id = b.id),
			(SELECT COUNT(*) FROM candidates c WHERE c.branch_id = b.id)
		FROM branches b
		ORDER BY b.name ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch per-branch stats: %w", err)
	}
	defer rows.Close()

	stats := []domain.BranchStats{}
	for rows.Next() {
		var s domain.BranchStats
		if err := rows.Scan(&s.ID, &s.Name, &s.VoteCount, &s.CandidateCount); err != nil {
			return nil, fmt.Errorf("failed to scan branch stats: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating branch stats: %w", err)
	}
	return stats, nil
}

func (r *tallyRepository) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to count: %w", err)
	}
	return n, nil
}
