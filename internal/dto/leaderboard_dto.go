package dto

type TeamStandingDTO struct {
	Rank     int      `json:"rank"`
	Score    int      `json:"score"`
	TeamID   string   `json:"team_id"`
	TeamName string   `json:"team_name"`
	LeaderID string   `json:"leader_id"`
	Members  []string `json:"members"`
}
