package postgres

import (
	"errors"

	"github.com/lib/pq"

	"github.com/cipavote/api/internal/core/domain"
)

const (
	uniqueViolation     = pq.ErrorCode("23505")
	foreignKeyViolation = pq.ErrorCode("23503")

	voterUniqueConstraint = "votes_voter_unique"
)

// translateConstraint maps Postgres constraint failures onto domain errors.
// This is the single place driver error codes are inspected; everything above
// this package only sees the domain taxonomy. A hit on the compound voter
// index becomes ErrAlreadyVoted so a race caught by the database is
// indistinguishable from one caught by the pre-check.
func translateConstraint(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case uniqueViolation:
		if pqErr.Constraint == voterUniqueConstraint {
			return domain.ErrAlreadyVoted
		}
		return err
	case foreignKeyViolation:
		return domain.ErrInvalidReference
	}
	return err
}
