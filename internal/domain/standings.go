package domain

// MemberScore is a member's ledger entry projected onto a team view.
type MemberScore struct {
	StudentID  string `json:"student_id"`
	Status     string `json:"status"`
	Points     int    `json:"points"`
	Percentage int    `json:"percentage"`
}

// TeamStanding is one leaderboard row: a team with its computed score.
type TeamStanding struct {
	Team  Team `json:"team"`
	Score int  `json:"score"`
	Rank  int  `json:"rank"`
}
