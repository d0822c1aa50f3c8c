package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBranchNotFound       = errors.New("branch not found")
	ErrCandidateNotFound    = errors.New("candidate not found")
	ErrCandidateWrongBranch = errors.New("candidate does not belong to the selected branch")
	ErrAlreadyVoted         = errors.New("vote already registered for this voter")
	ErrCandidateHasVotes    = errors.New("candidate has received votes and cannot be removed")
	ErrInvalidReference     = errors.New("invalid reference")
	ErrInvalidPhoto         = errors.New("invalid photo: only image files are allowed")
	ErrPhotoTooLarge        = errors.New("photo exceeds the maximum allowed size")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates per-field failures so the boundary can report
// every invalid field at once instead of the first one found.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// ErrOrNil returns the error itself when any field failed, nil otherwise.
func (e *ValidationError) ErrOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
