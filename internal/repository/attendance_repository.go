package repository

import (
	"context"
	"errors"
	"fmt"

	"team-portal-service/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AttendanceRepository reads the attendance ledger maintained by the club
// coordinators. A missing record means the student was absent and got zero
// points, so lookups never fail with a not-found error.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

func (r *AttendanceRepository) GetAttendance(ctx context.Context, studentID, eventID string) (*domain.AttendanceRecord, error) {
	query := `
        SELECT student_id, event_id, status, points_given
        FROM attendance
        WHERE student_id = $1 AND event_id = $2
    `
	var record domain.AttendanceRecord
	err := r.pool.QueryRow(ctx, query, studentID, eventID).Scan(
		&record.StudentID, &record.EventID, &record.Status, &record.PointsGiven)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.AttendanceRecord{
				StudentID: studentID,
				EventID:   eventID,
				Status:    domain.AttendanceAbsent,
			}, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return &record, nil
}

// GetEventAttendance fetches the ledger entries of the given students in one
// round trip. Students without an entry are simply missing from the map.
func (r *AttendanceRepository) GetEventAttendance(ctx context.Context, eventID string, studentIDs []string) (map[string]domain.AttendanceRecord, error) {
	records := make(map[string]domain.AttendanceRecord, len(studentIDs))
	if len(studentIDs) == 0 {
		return records, nil
	}

	query := `
        SELECT student_id, event_id, status, points_given
        FROM attendance
        WHERE event_id = $1 AND student_id = ANY($2)
    `
	rows, err := r.pool.Query(ctx, query, eventID, studentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get event attendance: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var record domain.AttendanceRecord
		if err := rows.Scan(&record.StudentID, &record.EventID, &record.Status, &record.PointsGiven); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records[record.StudentID] = record
	}
	if err := rows.Err(); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}
	return records, nil
}
