package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cipavote/api/internal/core/domain"
	"github.com/cipavote/api/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

func (r *voteRepository) Save(ctx context.Context, vote *domain.Vote) error {
	query := `
		INSERT INTO votes (branch_id, registration, national_id, candidate_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, cast_at
	`
	err := r.db.QueryRowContext(ctx, query, vote.BranchID, vote.Registration, vote.NationalID, vote.CandidateID).
		Scan(&vote.ID, &vote.CastAt)
	if err != nil {
		if translated := translateConstraint(err); translated != err {
			return translated
		}
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}

func (r *voteRepository) Exists(ctx context.Context, branchID int, registration, nationalID string) (bool, error) {
	query := `SELECT 1 FROM votes WHERE branch_id = $1 AND registration = $2 AND national_id = $3 LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, query, branchID, registration, nationalID).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return true, nil
}

func (r *voteRepository) CountByCandidate(ctx context.Context, candidateID int) (int, error) {
	query := `SELECT COUNT(*) FROM votes WHERE candidate_id = $1`
	var count int
	if err := r.db.QueryRowContext(ctx, query, candidateID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count votes for candidate: %w", err)
	}
	return count, nil
}
