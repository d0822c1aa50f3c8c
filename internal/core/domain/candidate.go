package domain

import "time"

// PlaceholderPhotoURL is served when a candidate was registered without a
// photo. The placeholder file is never deleted on candidate removal.
const PlaceholderPhotoURL = "/uploads/placeholder.jpg"

type Candidate struct {
	ID        int       `json:"id"`
	BranchID  int       `json:"branch_id"`
	Name      string    `json:"name"`
	Sector    string    `json:"sector"`
	PhotoURL  string    `json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
}

// CandidateSummary is the public listing shape: no branch, no vote counts.
type CandidateSummary struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Sector   string `json:"sector"`
	PhotoURL string `json:"photo_url"`
}

type CandidateDetail struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Sector    string `json:"sector"`
	PhotoURL  string `json:"photo_url"`
	Branch    Branch `json:"branch"`
	VoteCount int    `json:"vote_count"`
}
