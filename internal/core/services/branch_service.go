package services

import (
	"context"

	"github.com/cipavote/api/internal/core/domain"
	"github.com/cipavote/api/internal/core/ports"
)

type branchService struct {
	repo ports.BranchRepository
}

func NewBranchService(repo ports.BranchRepository) ports.BranchService {
	return &branchService{repo: repo}
}

func (s *branchService) List(ctx context.Context) ([]domain.Branch, error) {
	return s.repo.List(ctx)
}

func (s *branchService) Get(ctx context.Context, id int) (*domain.BranchDetail, error) {
	return s.repo.GetDetail(ctx, id)
}
