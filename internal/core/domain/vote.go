package domain

import "time"

// Vote is a single cast ballot. The tuple (BranchID, Registration, NationalID)
// is unique across all votes; the database enforces it with a compound unique
// index, which is the authoritative one-vote-per-person guarantee.
type Vote struct {
	ID           int       `json:"id"`
	BranchID     int       `json:"branch_id"`
	Registration string    `json:"registration"`
	NationalID   string    `json:"national_id"`
	CandidateID  int       `json:"candidate_id"`
	CastAt       time.Time `json:"cast_at"`
}

// Receipt is returned to the voter after a successful cast.
type Receipt struct {
	VoteID    int       `json:"id"`
	Candidate string    `json:"candidate"`
	Sector    string    `json:"sector"`
	Branch    string    `json:"branch"`
	CastAt    time.Time `json:"cast_at"`
}
