package domain

import "time"

type Team struct {
	CreatedAt          time.Time    `json:"created_at"`
	TeamID             string       `json:"team_id"`
	EventID            string       `json:"event_id"`
	TeamName           string       `json:"team_name"`
	LeaderID           string       `json:"leader_id"`
	JoinCode           string       `json:"join_code"`
	CoordinatorComment string       `json:"coordinator_comment,omitempty"`
	Members            []TeamMember `json:"members"`
	Version            int64        `json:"-"`
}

type TeamMember struct {
	StudentID string    `json:"student_id"`
	JoinedAt  time.Time `json:"joined_at"`
}

func (t *Team) IsMember(studentID string) bool {
	for _, m := range t.Members {
		if m.StudentID == studentID {
			return true
		}
	}
	return false
}

func (t *Team) MemberIDs() []string {
	ids := make([]string, len(t.Members))
	for i, m := range t.Members {
		ids[i] = m.StudentID
	}
	return ids
}

// WithoutMember returns a copy of the member set with studentID removed.
func (t *Team) WithoutMember(studentID string) []TeamMember {
	members := make([]TeamMember, 0, len(t.Members))
	for _, m := range t.Members {
		if m.StudentID != studentID {
			members = append(members, m)
		}
	}
	return members
}
