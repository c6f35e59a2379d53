package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workledger/workledger-backend-go/internal/domain/attendance"
	"github.com/workledger/workledger-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.work_day_id, d.date, a.state,
	a.check_in, a.check_out, a.hours, a.location, a.evidence,
	a.paid, a.created_at, a.updated_at`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var r attendance.Record
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.WorkDayID, &r.Date, &r.State,
		&r.CheckIn, &r.CheckOut, &r.Hours, &r.Location, &r.Evidence,
		&r.Paid, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (a *attendanceRepository) getOne(ctx context.Context, query string, args ...interface{}) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	r, err := scanAttendance(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return r, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	query := `
		WITH a AS (
			INSERT INTO attendance_records (
				id, employee_id, work_day_id, state, check_in, hours,
				location, evidence, paid, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (employee_id, work_day_id) DO NOTHING
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM a JOIN work_days d ON d.id = a.work_day_id
	`

	created, err := a.getOne(ctx, query,
		record.ID, record.EmployeeID, record.WorkDayID, record.State, record.CheckIn, record.Hours,
		record.Location, record.Evidence, record.Paid, record.CreatedAt, record.UpdatedAt,
	)
	if errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.Record{}, attendance.ErrAlreadyCheckedIn
	}
	return created, err
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	return a.getOne(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_records a JOIN work_days d ON d.id = a.work_day_id
		WHERE a.id = $1`, id)
}

// GetByIDForUpdate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByIDForUpdate(ctx context.Context, id string) (attendance.Record, error) {
	return a.getOne(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_records a JOIN work_days d ON d.id = a.work_day_id
		WHERE a.id = $1
		FOR UPDATE OF a`, id)
}

// GetByEmployeeAndDayForUpdate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDayForUpdate(ctx context.Context, employeeID, workDayID string) (attendance.Record, error) {
	return a.getOne(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_records a JOIN work_days d ON d.id = a.work_day_id
		WHERE a.employee_id = $1 AND a.work_day_id = $2
		FOR UPDATE OF a`, employeeID, workDayID)
}

// Close implements attendance.AttendanceRepository.
func (a *attendanceRepository) Close(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	query := `
		WITH a AS (
			UPDATE attendance_records
			SET state = 'closed', check_out = $2, hours = $3, updated_at = NOW()
			WHERE id = $1 AND state = 'open'
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM a JOIN work_days d ON d.id = a.work_day_id
	`

	closed, err := a.getOne(ctx, query, record.ID, record.CheckOut, record.Hours)
	if errors.Is(err, attendance.ErrAttendanceNotFound) {
		if _, getErr := a.GetByID(ctx, record.ID); getErr != nil {
			return attendance.Record{}, getErr
		}
		return attendance.Record{}, attendance.ErrAlreadyCheckedOut
	}
	return closed, err
}

// MarkPaid implements attendance.AttendanceRepository.
func (a *attendanceRepository) MarkPaid(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendance_records SET paid = TRUE, updated_at = NOW()
		WHERE id = $1 AND paid = FALSE`, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark attendance %s paid: %w", id, err)
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	if _, err := a.GetByID(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	w := newWhereBuilder()
	if len(filter.EmployeeIDs) > 0 {
		w.add("a.employee_id = ANY($%d)", filter.EmployeeIDs)
	}
	if len(filter.WorkDayIDs) > 0 {
		w.add("a.work_day_id = ANY($%d)", filter.WorkDayIDs)
	}
	if filter.From != nil {
		w.add("d.date >= $%d", *filter.From)
	}
	if filter.To != nil {
		w.add("d.date <= $%d", *filter.To)
	}
	if filter.Before != nil {
		w.add("d.date < $%d", *filter.Before)
	}
	if filter.State != nil {
		w.add("a.state = $%d", *filter.State)
	}
	if filter.Paid != nil {
		w.add("a.paid = $%d", *filter.Paid)
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a JOIN work_days d ON d.id = a.work_day_id
		WHERE ` + w.sql() + `
		ORDER BY d.date, a.check_in, a.id`

	rows, err := q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Record, 0)
	for rows.Next() {
		r, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}
