package dto

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	ErrCodeEventNotFound      = "EVENT_NOT_FOUND"
	ErrCodeEventStarted       = "EVENT_STARTED"
	ErrCodeTeamNotFound       = "TEAM_NOT_FOUND"
	ErrCodeAlreadyOnTeam      = "ALREADY_ON_TEAM"
	ErrCodeTeamFull           = "TEAM_FULL"
	ErrCodeNotAMember         = "NOT_A_MEMBER"
	ErrCodeNotLeader          = "NOT_LEADER"
	ErrCodeLeaderCannotLeave  = "LEADER_CANNOT_LEAVE"
	ErrCodeCannotRemoveLeader = "CANNOT_REMOVE_LEADER"
	ErrCodeContention         = "CONTENTION"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeInternal           = "INTERNAL_ERROR"
)
