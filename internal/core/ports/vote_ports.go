package ports

import (
	"context"

	"github.com/cipavote/api/internal/core/domain"
)

type VoteRepository interface {
	// Save inserts the vote and fills in its generated ID and timestamp.
	// A compound-key collision surfaces as domain.ErrAlreadyVoted.
	Save(ctx context.Context, vote *domain.Vote) error
	Exists(ctx context.Context, branchID int, registration, nationalID string) (bool, error)
	CountByCandidate(ctx context.Context, candidateID int) (int, error)
}

type EligibilityInput struct {
	BranchID     int
	Registration string
	NationalID   string
}

type CastVoteInput struct {
	BranchID     int
	Registration string
	NationalID   string
	CandidateID  int
}

type VoteService interface {
	CheckEligibility(ctx context.Context, input EligibilityInput) (bool, error)
	CastVote(ctx context.Context, input CastVoteInput) (*domain.Receipt, error)
}
