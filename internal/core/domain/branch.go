package domain

type Branch struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// BranchDetail carries the aggregate counts shown on the admin branch view.
type BranchDetail struct {
	Branch
	CandidateCount int `json:"candidate_count"`
	VoteCount      int `json:"vote_count"`
}
