package request

type CreateTeamRequest struct {
	EventID  string `json:"event_id" validate:"required,min=1,max=255"`
	TeamName string `json:"team_name" validate:"required,min=1,max=100"`
}

type JoinTeamRequest struct {
	EventID  string `json:"event_id" validate:"required,min=1,max=255"`
	JoinCode string `json:"join_code" validate:"required,min=4,max=16"`
}

type LeaveTeamRequest struct {
	TeamID string `json:"team_id" validate:"required,min=1,max=255"`
}

type KickMemberRequest struct {
	TeamID    string `json:"team_id" validate:"required,min=1,max=255"`
	StudentID string `json:"student_id" validate:"required,min=1,max=255"`
}

type DisbandTeamRequest struct {
	TeamID string `json:"team_id" validate:"required,min=1,max=255"`
}
