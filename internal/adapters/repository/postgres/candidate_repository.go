package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cipavote/api/internal/core/domain"
	"github.com/cipavote/api/internal/core/ports"
)

type candidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) ports.CandidateRepository {
	return &candidateRepository{
		db: db,
	}
}

func (r *candidateRepository) ListByBranch(ctx context.Context, branchID int) ([]domain.CandidateSummary, error) {
	query := `
		SELECT id, name, sector, photo_url
		FROM candidates
		WHERE branch_id = $1
		ORDER BY name ASC
	`
	rows, err := r.db.QueryContext(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates := []domain.CandidateSummary{}
	for rows.Next() {
		var c domain.CandidateSummary
		if err := rows.Scan(&c.ID, &c.Name, &c.Sector, &c.PhotoURL); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidates: %w", err)
	}
	return candidates, nil
}

func (r *candidateRepository) ListDetailed(ctx context.Context, branchID *int) ([]domain.CandidateDetail, error) {
	query := `
		SELECT c.id, c.name, c.sector, c.photo_url, b.id, b.name,
			(SELECT COUNT(*) FROM votes v WHERE v.candidate_id = c.id)
		FROM candidates c
		JOIN branches b ON b.id = c.branch_id
		WHERE $1::int IS NULL OR c.branch_id = $1
		ORDER BY b.name ASC, c.name ASC
	`
	rows, err := r.db.QueryContext(ctx, query, nullableInt(branchID))
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	return scanCandidateDetails(rows)
}

func (r *candidateRepository) GetByID(ctx context.Context, id int) (*domain.Candidate, error) {
	query := `
		SELECT id, branch_id, name, sector, photo_url, created_at
		FROM candidates
		WHERE id = $1
	`
	var c domain.Candidate
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.BranchID, &c.Name, &c.Sector, &c.PhotoURL, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return &c, nil
}

func (r *candidateRepository) GetDetail(ctx context.Context, id int) (*domain.CandidateDetail, error) {
	query := `
		SELECT c.id, c.name, c.sector, c.photo_url, b.id, b.name,
			(SELECT COUNT(*) FROM votes v WHERE v.candidate_id = c.id)
		FROM candidates c
		JOIN branches b ON b.id = c.branch_id
		WHERE c.id = $1
	`
	var d domain.CandidateDetail
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&d.ID, &d.Name, &d.Sector, &d.PhotoURL, &d.Branch.ID, &d.Branch.Name, &d.VoteCount)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to get candidate detail: %w", err)
	}
	return &d, nil
}

func (r *candidateRepository) Save(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		INSERT INTO candidates (branch_id, name, sector, photo_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, candidate.BranchID, candidate.Name, candidate.Sector, candidate.PhotoURL).
		Scan(&candidate.ID, &candidate.CreatedAt)
	if err != nil {
		if translated := translateConstraint(err); translated != err {
			return translated
		}
		return fmt.Errorf("failed to save candidate: %w", err)
	}
	return nil
}

func (r *candidateRepository) Update(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		UPDATE candidates
		SET name = $2, sector = $3, photo_url = $4
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, candidate.ID, candidate.Name, candidate.Sector, candidate.PhotoURL)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	if affected == 0 {
		return domain.ErrCandidateNotFound
	}
	return nil
}

func (r *candidateRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM candidates WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		// The service checks the vote count first; the FK on votes is the
		// backstop if a vote lands in between.
		if translated := translateConstraint(err); translated == domain.ErrInvalidReference {
			return domain.ErrCandidateHasVotes
		}
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if affected == 0 {
		return domain.ErrCandidateNotFound
	}
	return nil
}

func scanCandidateDetails(rows *sql.Rows) ([]domain.CandidateDetail, error) {
	candidates := []domain.CandidateDetail{}
	for rows.Next() {
		var d domain.CandidateDetail
		if err := rows.Scan(&d.ID, &d.Name, &d.Sector, &d.PhotoURL, &d.Branch.ID, &d.Branch.Name, &d.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidates: %w", err)
	}
	return candidates, nil
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
