package my_errors

import "errors"

// Sentinel my_errors для бизнес-логики
var (
	// Lifecycle my_errors
	ErrEventNotFound       = errors.New("event not found")
	ErrEventAlreadyStarted = errors.New("event has already started, team roster is frozen")
	ErrTeamNotFound        = errors.New("team not found")

	// Validation my_errors
	ErrAlreadyOnTeam      = errors.New("student is already on a team for this event")
	ErrTeamFull           = errors.New("team is full")
	ErrNotAMember         = errors.New("student is not a member of this team")
	ErrNotLeader          = errors.New("only the team leader can perform this action")
	ErrLeaderCannotLeave  = errors.New("leader cannot leave the team, disband it instead")
	ErrCannotRemoveLeader = errors.New("leader cannot be removed from the team")

	// Concurrency my_errors
	ErrVersionConflict      = errors.New("team was modified concurrently")
	ErrOperationContention  = errors.New("operation failed due to contention, try again")
	ErrDuplicateJoinCode    = errors.New("join code already in use for this event")
	ErrCodeGenerationFailed = errors.New("failed to generate a unique join code")

	// Auth my_errors
	ErrInvalidToken = errors.New("invalid token")

	// Input my_errors
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyField   = errors.New("required field is empty")
)
