package domain

type TallyRow struct {
	CandidateID int    `json:"candidate_id"`
	Name        string `json:"name"`
	Sector      string `json:"sector"`
	Branch      string `json:"branch"`
	VoteCount   int    `json:"total"`
}

type OverviewStats struct {
	TotalVotes            int `json:"total_votes"`
	TotalCandidates       int `json:"total_candidates"`
	ParticipatingBranches int `json:"participating_branches"`
}

type Overview struct {
	Results    []TallyRow    `json:"results"`
	Statistics OverviewStats `json:"statistics"`
}

type StatTotals struct {
	Votes      int `json:"votes"`
	Candidates int `json:"candidates"`
	Branches   int `json:"branches"`
}

type BranchStats struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	VoteCount      int    `json:"votes"`
	CandidateCount int    `json:"candidates"`
}

type Statistics struct {
	Totals    StatTotals    `json:"totals"`
	PerBranch []BranchStats `json:"per_branch"`
}
