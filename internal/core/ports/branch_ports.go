package ports

import (
	"context"

	"github.com/cipavote/api/internal/core/domain"
)

type BranchRepository interface {
	List(ctx context.Context) ([]domain.Branch, error)
	GetByID(ctx context.Context, id int) (*domain.Branch, error)
	GetDetail(ctx context.Context, id int) (*domain.BranchDetail, error)
}

type BranchService interface {
	List(ctx context.Context) ([]domain.Branch, error)
	Get(ctx context.Context, id int) (*domain.BranchDetail, error)
}
