package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipavote/api/internal/core/domain"
	"github.com/cipavote/api/internal/core/ports"
)

func newVoteFixture() (*fakeBranchRepo, *fakeCandidateRepo, *fakeVoteRepo, ports.VoteService) {
	branchRepo := newFakeBranchRepo(
		domain.Branch{ID: 1, Name: "Industrial"},
		domain.Branch{ID: 2, Name: "Textile"},
	)
	candidateRepo := newFakeCandidateRepo(
		domain.Candidate{ID: 10, BranchID: 1, Name: "Ana Silva", Sector: "Production", PhotoURL: domain.PlaceholderPhotoURL},
		domain.Candidate{ID: 20, BranchID: 2, Name: "Carlos Lima", Sector: "Weaving", PhotoURL: domain.PlaceholderPhotoURL},
	)
	voteRepo := newFakeVoteRepo()
	svc := NewVoteService(branchRepo, candidateRepo, voteRepo)
	return branchRepo, candidateRepo, voteRepo, svc
}

func TestCastVoteFlipsEligibility(t *testing.T) {
	_, _, _, svc := newVoteFixture()
	ctx := context.Background()

	eligible, err := svc.CheckEligibility(ctx, ports.EligibilityInput{BranchID: 1, Registration: "FUNC1", NationalID: "11111111111"})
	require.NoError(t, err)
	assert.True(t, eligible)

	receipt, err := svc.CastVote(ctx, ports.CastVoteInput{BranchID: 1, Registration: "FUNC1", NationalID: "11111111111", CandidateID: 10})
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", receipt.Candidate)
	assert.Equal(t, "Production", receipt.Sector)
	assert.Equal(t, "Industrial", receipt.Branch)
	assert.NotZero(t, receipt.VoteID)
	assert.False(t, receipt.CastAt.IsZero())

	eligible, err = svc.CheckEligibility(ctx, ports.EligibilityInput{BranchID: 1, Registration: "FUNC1", NationalID: "11111111111"})
	require.NoError(t, err)
	assert.False(t, eligible)

	_, err = svc.CastVote(ctx, ports.CastVoteInput{BranchID: 1, Registration: "FUNC1", NationalID: "11111111111", CandidateID: 10})
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
}

func TestCastVoteTrimsVoterFields(t *testing.T) {
	_, _, voteRepo, svc := newVoteFixture()
	ctx := context.Background()

	_, err := svc.CastVote(ctx, ports.CastVoteInput{BranchID: 1, Registration: "  FUNC1  ", NationalID: " 11111111111 ", CandidateID: 10})
	require.NoError(t, err)

	exists, err := voteRepo.Exists(ctx, 1, "FUNC1", "11111111111")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = svc.CastVote(ctx, ports.CastVoteInput{BranchID: 1, Registration: "FUNC1", NationalID: "11111111111", CandidateID: 10})
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
}

func TestCastVoteCandidateFromAnotherBranch(t *testing.T) {
	_, _, _, svc := newVoteFixture()

	_, err := svc.CastVote(context.Background(), ports.CastVoteInput{BranchID: 1, Registration: "FUNC2", NationalID: "22222222222", CandidateID: 20})
	assert.ErrorIs(t, err, domain.ErrCandidateWrongBranch)
}

func TestCastVoteUnknownBranch(t *testing.T) {
	_, _, _, svc := newVoteFixture()

	_, err := svc.CastVote(context.Background(), ports.CastVoteInput{BranchID: 999, Registration: "FUNC1", NationalID: "11111111111", CandidateID: 10})
	assert.ErrorIs(t, err, domain.ErrBranchNotFound)
}

func TestCastVoteUnknownCandidate(t *testing.T) {
	_, _, _, svc := newVoteFixture()

	_, err := svc.CastVote(context.Background(), ports.CastVoteInput{BranchID: 1, Registration: "FUNC1", NationalID: "11111111111", CandidateID: 999})
	assert.ErrorIs(t, err, domain.ErrCandidateNotFound)
}

func TestCastVoteValidatesBeforeAnyLookup(t *testing.T) {
	branchRepo, candidateRepo, voteRepo, svc := newVoteFixture()

	_, err := svc.CastVote(context.Background(), ports.CastVoteInput{BranchID: 1, Registration: "FUNC1", NationalID: "123", CandidateID: 10})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "national_id", verr.Fields[0].Field)

	assert.Zero(t, branchRepo.calls, "branch repo must not be touched on validation failure")
	assert.Zero(t, candidateRepo.calls, "candidate repo must not be touched on validation failure")
	assert.Zero(t, voteRepo.calls, "vote repo must not be touched on validation failure")
}

func TestCastVoteCollectsAllFieldErrors(t *testing.T) {
	_, _, _, svc := newVoteFixture()

	_, err := svc.CastVote(context.Background(), ports.CastVoteInput{BranchID: 0, Registration: "", NationalID: "12ab", CandidateID: 0})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	fields := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		fields[i] = f.Field
	}
	assert.ElementsMatch(t, []string{"branch_id", "registration", "national_id", "candidate_id"}, fields)
}

func TestCheckEligibilityUnknownBranch(t *testing.T) {
	_, _, _, svc := newVoteFixture()

	_, err := svc.CheckEligibility(context.Background(), ports.EligibilityInput{BranchID: 999, Registration: "FUNC1", NationalID: "11111111111"})
	assert.ErrorIs(t, err, domain.ErrBranchNotFound)
}

func TestCheckEligibilityHasNoSideEffects(t *testing.T) {
	_, _, voteRepo, svc := newVoteFixture()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		eligible, err := svc.CheckEligibility(ctx, ports.EligibilityInput{BranchID: 1, Registration: "FUNC1", NationalID: "11111111111"})
		require.NoError(t, err)
		assert.True(t, eligible)
	}
	assert.Empty(t, voteRepo.votes)
}

// A second request can pass the Exists pre-check before the first commits;
// the constraint hit inside Save must come back as the same conflict error.
func TestCastVoteConstraintBackstopMapsToConflict(t *testing.T) {
	_, _, voteRepo, svc := newVoteFixture()
	voteRepo.saveErr = domain.ErrAlreadyVoted

	_, err := svc.CastVote(context.Background(), ports.CastVoteInput{BranchID: 1, Registration: "FUNC1", NationalID: "11111111111", CandidateID: 10})
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
	assert.Empty(t, voteRepo.votes, "no vote may be committed when the constraint fires")
}

func TestConcurrentCastVoteCommitsExactlyOnce(t *testing.T) {
	branchRepo, candidateRepo, voteRepo, svc := newVoteFixture()
	ctx := context.Background()

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CastVote(ctx, ports.CastVoteInput{BranchID: 1, Registration: "FUNC1", NationalID: "11111111111", CandidateID: 10})
		}(i)
	}
	wg.Wait()

	committed := 0
	for _, err := range errs {
		if err == nil {
			committed++
		} else {
			assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
		}
	}
	assert.Equal(t, 1, committed)
	assert.Len(t, voteRepo.votes, 1)

	// Every attempt resolves its branch and candidate before the vote
	// repository decides the winner.
	assert.Equal(t, attempts, branchRepo.calls)
	assert.Equal(t, attempts, candidateRepo.calls)
}

func TestSameVoterDifferentBranchIsADifferentKey(t *testing.T) {
	_, _, voteRepo, svc := newVoteFixture()
	ctx := context.Background()

	_, err := svc.CastVote(ctx, ports.CastVoteInput{BranchID: 1, Registration: "FUNC1", NationalID: "11111111111", CandidateID: 10})
	require.NoError(t, err)

	// The compound key includes the branch: the same registration and
	// national id at another branch is treated as a different voter.
	_, err = svc.CastVote(ctx, ports.CastVoteInput{BranchID: 2, Registration: "FUNC1", NationalID: "11111111111", CandidateID: 20})
	require.NoError(t, err)
	assert.Len(t, voteRepo.votes, 2)
}
