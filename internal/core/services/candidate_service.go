package services

import (
	"context"
	"strings"

	"github.com/cipavote/api/internal/core/domain"
	"github.com/cipavote/api/internal/core/ports"
)

type candidateService struct {
	branchRepo    ports.BranchRepository
	candidateRepo ports.CandidateRepository
	voteRepo      ports.VoteRepository
	photos        ports.PhotoStore
}

func NewCandidateService(branchRepo ports.BranchRepository, candidateRepo ports.CandidateRepository, voteRepo ports.VoteRepository, photos ports.PhotoStore) ports.CandidateService {
	return &candidateService{
		branchRepo:    branchRepo,
		candidateRepo: candidateRepo,
		voteRepo:      voteRepo,
		photos:        photos,
	}
}

func (s *candidateService) ListByBranch(ctx context.Context, branchID int) ([]domain.CandidateSummary, error) {
	if branchID < 1 {
		verr := &domain.ValidationError{}
		verr.Add("branch", "branch id must be a positive number")
		return nil, verr
	}

	if _, err := s.branchRepo.GetByID(ctx, branchID); err != nil {
		return nil, err
	}

	return s.candidateRepo.ListByBranch(ctx, branchID)
}

func (s *candidateService) ListAdmin(ctx context.Context, branchID *int) ([]domain.CandidateDetail, error) {
	if branchID != nil && *branchID < 1 {
		verr := &domain.ValidationError{}
		verr.Add("branch", "branch id must be a positive number")
		return nil, verr
	}
	return s.candidateRepo.ListDetailed(ctx, branchID)
}

func (s *candidateService) Get(ctx context.Context, id int) (*domain.CandidateDetail, error) {
	return s.candidateRepo.GetDetail(ctx, id)
}

func (s *candidateService) Create(ctx context.Context, input ports.CreateCandidateInput) (*domain.Candidate, error) {
	name := strings.TrimSpace(input.Name)
	sector := strings.TrimSpace(input.Sector)

	verr := &domain.ValidationError{}
	if input.BranchID < 1 {
		verr.Add("branch_id", "branch id must be a positive number")
	}
	validateNameInto(verr, name)
	validateSectorInto(verr, sector)
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	if _, err := s.branchRepo.GetByID(ctx, input.BranchID); err != nil {
		return nil, err
	}

	photoURL := input.PhotoURL
	if photoURL == "" {
		photoURL = domain.PlaceholderPhotoURL
	}

	candidate := &domain.Candidate{
		BranchID: input.BranchID,
		Name:     name,
		Sector:   sector,
		PhotoURL: photoURL,
	}
	if err := s.candidateRepo.Save(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

func (s *candidateService) Update(ctx context.Context, id int, input ports.UpdateCandidateInput) (*domain.Candidate, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	verr := &domain.ValidationError{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		validateNameInto(verr, name)
		candidate.Name = name
	}
	if input.Sector != nil {
		sector := strings.TrimSpace(*input.Sector)
		validateSectorInto(verr, sector)
		candidate.Sector = sector
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	previousPhoto := candidate.PhotoURL
	if input.PhotoURL != nil {
		candidate.PhotoURL = *input.PhotoURL
	}

	if err := s.candidateRepo.Update(ctx, candidate); err != nil {
		return nil, err
	}

	// Old photo cleanup is best-effort and happens outside the row update;
	// a failure here leaves an orphaned file, never a failed request.
	if input.PhotoURL != nil && previousPhoto != domain.PlaceholderPhotoURL {
		_ = s.photos.Remove(previousPhoto)
	}

	return candidate, nil
}

func (s *candidateService) Delete(ctx context.Context, id int) error {
	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	votes, err := s.voteRepo.CountByCandidate(ctx, id)
	if err != nil {
		return err
	}
	if votes > 0 {
		return domain.ErrCandidateHasVotes
	}

	if err := s.candidateRepo.Delete(ctx, id); err != nil {
		return err
	}

	if candidate.PhotoURL != domain.PlaceholderPhotoURL {
		_ = s.photos.Remove(candidate.PhotoURL)
	}
	return nil
}

func validateNameInto(verr *domain.ValidationError, name string) {
	if len(name) < 2 || len(name) > 100 {
		verr.Add("name", "name must have between 2 and 100 characters")
	}
}

func validateSectorInto(verr *domain.ValidationError, sector string) {
	if len(sector) < 2 || len(sector) > 50 {
		verr.Add("sector", "sector must have between 2 and 50 characters")
	}
}
