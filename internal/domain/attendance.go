package domain

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// AttendanceRecord is a single entry of the attendance ledger. A student with
// no ledger entry for an event is treated as absent with zero points.
type AttendanceRecord struct {
	StudentID   string `json:"student_id"`
	EventID     string `json:"event_id"`
	Status      string `json:"status"`
	PointsGiven int    `json:"points_given"`
}

func (r *AttendanceRecord) IsPresent() bool {
	return r.Status == AttendancePresent
}
