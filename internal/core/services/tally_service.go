package services

import (
	"context"
	"fmt"

	"github.com/cipavote/api/internal/core/domain"
	"github.com/cipavote/api/internal/core/ports"
)

type tallyService struct {
	branchRepo ports.BranchRepository
	tallyRepo  ports.TallyRepository
}

func NewTallyService(branchRepo ports.BranchRepository, tallyRepo ports.TallyRepository) ports.TallyService {
	return &tallyService{
		branchRepo: branchRepo,
		tallyRepo:  tallyRepo,
	}
}

func (s *tallyService) Results(ctx context.Context, branchID *int) ([]domain.TallyRow, error) {
	if branchID != nil {
		if *branchID < 1 {
			verr := &domain.ValidationError{}
			verr.Add("branch", "branch id must be a positive number")
			return nil, verr
		}
		if _, err := s.branchRepo.GetByID(ctx, *branchID); err != nil {
			return nil, err
		}
	}
	return s.tallyRepo.Results(ctx, branchID)
}

func (s *tallyService) Overview(ctx context.Context) (*domain.Overview, error) {
	results, err := s.tallyRepo.Results(ctx, nil)
	if err != nil {
		return nil, err
	}

	totalVotes, err := s.tallyRepo.CountVotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	participating, err := s.tallyRepo.CountBranchesWithCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count participating branches: %w", err)
	}

	return &domain.Overview{
		Results: results,
		Statistics: domain.OverviewStats{
			TotalVotes:            totalVotes,
			TotalCandidates:       len(results),
			ParticipatingBranches: participating,
		},
	}, nil
}

func (s *tallyService) Statistics(ctx context.Context) (*domain.Statistics, error) {
	totalVotes, err := s.tallyRepo.CountVotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	totalCandidates, err := s.tallyRepo.CountCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count candidates: %w", err)
	}
	totalBranches, err := s.tallyRepo.CountBranches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count branches: %w", err)
	}
	perBranch, err := s.tallyRepo.PerBranch(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Statistics{
		Totals: domain.StatTotals{
			Votes:      totalVotes,
			Candidates: totalCandidates,
			Branches:   totalBranches,
		},
		PerBranch: perBranch,
	}, nil
}
