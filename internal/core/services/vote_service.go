package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/cipavote/api/internal/core/domain"
	"github.com/cipavote/api/internal/core/ports"
)

var nationalIDPattern = regexp.MustCompile(`^\d{11}$`)

type voteService struct {
	branchRepo    ports.BranchRepository
	candidateRepo ports.CandidateRepository
	voteRepo      ports.VoteRepository
}

func NewVoteService(branchRepo ports.BranchRepository, candidateRepo ports.CandidateRepository, voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		branchRepo:    branchRepo,
		candidateRepo: candidateRepo,
		voteRepo:      voteRepo,
	}
}

func (s *voteService) CheckEligibility(ctx context.Context, input ports.EligibilityInput) (bool, error) {
	registration := strings.TrimSpace(input.Registration)
	nationalID := strings.TrimSpace(input.NationalID)

	if err := validateVoter(input.BranchID, registration, nationalID); err != nil {
		return false, err
	}

	if _, err := s.branchRepo.GetByID(ctx, input.BranchID); err != nil {
		return false, err
	}

	exists, err := s.voteRepo.Exists(ctx, input.BranchID, registration, nationalID)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// CastVote runs the full casting pipeline. The Exists pre-check gives a fast
// rejection in the common case; the unique index hit inside voteRepo.Save is
// what actually guarantees a single vote when two requests race past it, and
// both paths surface the same domain.ErrAlreadyVoted.
func (s *voteService) CastVote(ctx context.Context, input ports.CastVoteInput) (*domain.Receipt, error) {
	registration := strings.TrimSpace(input.Registration)
	nationalID := strings.TrimSpace(input.NationalID)

	verr := &domain.ValidationError{}
	validateVoterInto(verr, input.BranchID, registration, nationalID)
	if input.CandidateID < 1 {
		verr.Add("candidate_id", "candidate id must be a positive number")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	branch, err := s.branchRepo.GetByID(ctx, input.BranchID)
	if err != nil {
		return nil, err
	}

	candidate, err := s.candidateRepo.GetByID(ctx, input.CandidateID)
	if err != nil {
		return nil, err
	}
	if candidate.BranchID != input.BranchID {
		return nil, domain.ErrCandidateWrongBranch
	}

	exists, err := s.voteRepo.Exists(ctx, input.BranchID, registration, nationalID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyVoted
	}

	vote := &domain.Vote{
		BranchID:     input.BranchID,
		Registration: registration,
		NationalID:   nationalID,
		CandidateID:  input.CandidateID,
	}
	if err := s.voteRepo.Save(ctx, vote); err != nil {
		return nil, err
	}

	return &domain.Receipt{
		VoteID:    vote.ID,
		Candidate: candidate.Name,
		Sector:    candidate.Sector,
		Branch:    branch.Name,
		CastAt:    vote.CastAt,
	}, nil
}

func validateVoter(branchID int, registration, nationalID string) error {
	verr := &domain.ValidationError{}
	validateVoterInto(verr, branchID, registration, nationalID)
	return verr.ErrOrNil()
}

func validateVoterInto(verr *domain.ValidationError, branchID int, registration, nationalID string) {
	if branchID < 1 {
		verr.Add("branch_id", "branch id must be a positive number")
	}
	if registration == "" {
		verr.Add("registration", "registration is required")
	} else if len(registration) > 50 {
		verr.Add("registration", "registration must have between 1 and 50 characters")
	}
	if !nationalIDPattern.MatchString(nationalID) {
		verr.Add("national_id", "national id must have exactly 11 digits")
	}
}
