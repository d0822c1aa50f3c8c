package services

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/cipavote/api/internal/core/domain"
)

type fakeBranchRepo struct {
	mu       sync.Mutex
	branches map[int]domain.Branch
	calls    int
}

func newFakeBranchRepo(branches ...domain.Branch) *fakeBranchRepo {
	m := make(map[int]domain.Branch, len(branches))
	for _, b := range branches {
		m[b.ID] = b
	}
	return &fakeBranchRepo{branches: m}
}

func (r *fakeBranchRepo) List(ctx context.Context) ([]domain.Branch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	out := []domain.Branch{}
	for _, b := range r.branches {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBranchRepo) GetByID(ctx context.Context, id int) (*domain.Branch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	b, ok := r.branches[id]
	if !ok {
		return nil, domain.ErrBranchNotFound
	}
	return &b, nil
}

func (r *fakeBranchRepo) GetDetail(ctx context.Context, id int) (*domain.BranchDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	b, ok := r.branches[id]
	if !ok {
		return nil, domain.ErrBranchNotFound
	}
	return &domain.BranchDetail{Branch: b}, nil
}

type fakeCandidateRepo struct {
	mu         sync.Mutex
	candidates map[int]domain.Candidate
	deleted    []int
	updated    []domain.Candidate
	nextID     int
	calls      int
}

func newFakeCandidateRepo(candidates ...domain.Candidate) *fakeCandidateRepo {
	m := make(map[int]domain.Candidate, len(candidates))
	nextID := 1
	for _, c := range candidates {
		m[c.ID] = c
		if c.ID >= nextID {
			nextID = c.ID + 1
		}
	}
	return &fakeCandidateRepo{candidates: m, nextID: nextID}
}

func (r *fakeCandidateRepo) ListByBranch(ctx context.Context, branchID int) ([]domain.CandidateSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	out := []domain.CandidateSummary{}
	for _, c := range r.candidates {
		if c.BranchID == branchID {
			out = append(out, domain.CandidateSummary{ID: c.ID, Name: c.Name, Sector: c.Sector, PhotoURL: c.PhotoURL})
		}
	}
	return out, nil
}

func (r *fakeCandidateRepo) ListDetailed(ctx context.Context, branchID *int) ([]domain.CandidateDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	out := []domain.CandidateDetail{}
	for _, c := range r.candidates {
		if branchID != nil && c.BranchID != *branchID {
			continue
		}
		out = append(out, domain.CandidateDetail{ID: c.ID, Name: c.Name, Sector: c.Sector, PhotoURL: c.PhotoURL, Branch: domain.Branch{ID: c.BranchID}})
	}
	return out, nil
}

func (r *fakeCandidateRepo) GetByID(ctx context.Context, id int) (*domain.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	c, ok := r.candidates[id]
	if !ok {
		return nil, domain.ErrCandidateNotFound
	}
	return &c, nil
}

func (r *fakeCandidateRepo) GetDetail(ctx context.Context, id int) (*domain.CandidateDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	c, ok := r.candidates[id]
	if !ok {
		return nil, domain.ErrCandidateNotFound
	}
	return &domain.CandidateDetail{ID: c.ID, Name: c.Name, Sector: c.Sector, PhotoURL: c.PhotoURL, Branch: domain.Branch{ID: c.BranchID}}, nil
}

func (r *fakeCandidateRepo) Save(ctx context.Context, candidate *domain.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	candidate.ID = r.nextID
	candidate.CreatedAt = time.Now()
	r.nextID++
	r.candidates[candidate.ID] = *candidate
	return nil
}

func (r *fakeCandidateRepo) Update(ctx context.Context, candidate *domain.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if _, ok := r.candidates[candidate.ID]; !ok {
		return domain.ErrCandidateNotFound
	}
	r.candidates[candidate.ID] = *candidate
	r.updated = append(r.updated, *candidate)
	return nil
}

func (r *fakeCandidateRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if _, ok := r.candidates[id]; !ok {
		return domain.ErrCandidateNotFound
	}
	delete(r.candidates, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type voterKey struct {
	branchID     int
	registration string
	nationalID   string
}

// fakeVoteRepo enforces the compound-key uniqueness itself, the same way the
// database unique index does, so races past the pre-check surface as
// domain.ErrAlreadyVoted from Save.
type fakeVoteRepo struct {
	mu     sync.Mutex
	votes  map[voterKey]domain.Vote
	nextID int
	// saveErr, when set, is returned by the next Save call.
	saveErr error
	calls   int
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: map[voterKey]domain.Vote{}, nextID: 1}
}

func (r *fakeVoteRepo) Save(ctx context.Context, vote *domain.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.saveErr != nil {
		err := r.saveErr
		r.saveErr = nil
		return err
	}
	key := voterKey{vote.BranchID, vote.Registration, vote.NationalID}
	if _, ok := r.votes[key]; ok {
		return domain.ErrAlreadyVoted
	}
	vote.ID = r.nextID
	vote.CastAt = time.Now()
	r.nextID++
	r.votes[key] = *vote
	return nil
}

func (r *fakeVoteRepo) Exists(ctx context.Context, branchID int, registration, nationalID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	_, ok := r.votes[voterKey{branchID, registration, nationalID}]
	return ok, nil
}

func (r *fakeVoteRepo) CountByCandidate(ctx context.Context, candidateID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	count := 0
	for _, v := range r.votes {
		if v.CandidateID == candidateID {
			count++
		}
	}
	return count, nil
}

type fakePhotoStore struct {
	removed []string
}

func (s *fakePhotoStore) Save(originalName string, r io.Reader) (string, error) {
	return "/uploads/" + originalName, nil
}

func (s *fakePhotoStore) Remove(url string) error {
	s.removed = append(s.removed, url)
	return nil
}
