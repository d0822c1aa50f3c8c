package ports

import (
	"context"

	"github.com/cipavote/api/internal/core/domain"
)

type CandidateRepository interface {
	ListByBranch(ctx context.Context, branchID int) ([]domain.CandidateSummary, error)
	ListDetailed(ctx context.Context, branchID *int) ([]domain.CandidateDetail, error)
	GetByID(ctx context.Context, id int) (*domain.Candidate, error)
	GetDetail(ctx context.Context, id int) (*domain.CandidateDetail, error)
	Save(ctx context.Context, candidate *domain.Candidate) error
	Update(ctx context.Context, candidate *domain.Candidate) error
	Delete(ctx context.Context, id int) error
}

type CreateCandidateInput struct {
	BranchID int
	Name     string
	Sector   string
	// PhotoURL is empty when no photo was uploaded; the service falls back
	// to the placeholder.
	PhotoURL string
}

// UpdateCandidateInput is a partial update: nil fields are left untouched.
type UpdateCandidateInput struct {
	Name     *string
	Sector   *string
	PhotoURL *string
}

type CandidateService interface {
	ListByBranch(ctx context.Context, branchID int) ([]domain.CandidateSummary, error)
	ListAdmin(ctx context.Context, branchID *int) ([]domain.CandidateDetail, error)
	Get(ctx context.Context, id int) (*domain.CandidateDetail, error)
	Create(ctx context.Context, input CreateCandidateInput) (*domain.Candidate, error)
	Update(ctx context.Context, id int, input UpdateCandidateInput) (*domain.Candidate, error)
	Delete(ctx context.Context, id int) error
}
