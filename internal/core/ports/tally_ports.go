package ports

import (
	"context"

	"github.com/cipavote/api/internal/core/domain"
)

type TallyRepository interface {
	// Results returns per-candidate counts. With a branch filter rows come
	// ordered by branch name then votes descending; without one, by votes
	// descending then branch and candidate name.
	Results(ctx context.Context, branchID *int) ([]domain.TallyRow, error)
	CountVotes(ctx context.Context) (int, error)
	CountCandidates(ctx context.Context) (int, error)
	CountBranches(ctx context.Context) (int, error)
	CountBranchesWithCandidates(ctx context.Context) (int, error)
	PerBranch(ctx context.Context) ([]domain.BranchStats, error)
}

type TallyService interface {
	Results(ctx context.Context, branchID *int) ([]domain.TallyRow, error)
	Overview(ctx context.Context) (*domain.Overview, error)
	Statistics(ctx context.Context) (*domain.Statistics, error)
}
