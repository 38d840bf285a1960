package dto

import "time"

type TeamMemberDTO struct {
	StudentID string    `json:"student_id"`
	JoinedAt  time.Time `json:"joined_at"`
}

type TeamDTO struct {
	TeamID             string          `json:"team_id"`
	EventID            string          `json:"event_id"`
	TeamName           string          `json:"team_name"`
	LeaderID           string          `json:"leader_id"`
	JoinCode           string          `json:"join_code"`
	CoordinatorComment string          `json:"coordinator_comment,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	Members            []TeamMemberDTO `json:"members"`
}

type MemberScoreDTO struct {
	StudentID  string `json:"student_id"`
	Status     string `json:"status"`
	Points     int    `json:"points"`
	Percentage int    `json:"percentage"`
}

type TeamDetailDTO struct {
	TeamDTO
	Score        int              `json:"score"`
	MemberScores []MemberScoreDTO `json:"member_scores"`
}
