package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workledger/workledger-backend-go/internal/domain/overtime"
	"github.com/workledger/workledger-backend-go/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

const overtimeColumns = `
	o.id, o.employee_id, o.work_day_id, d.date, o.state,
	o.started_at, o.ended_at, o.hours, o.proof_text, o.proof_evidence,
	o.paid, o.created_at, o.updated_at`

func scanOvertime(row pgx.Row) (overtime.Record, error) {
	var r overtime.Record
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.WorkDayID, &r.Date, &r.State,
		&r.StartedAt, &r.EndedAt, &r.Hours, &r.ProofText, &r.ProofEvidence,
		&r.Paid, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (o *overtimeRepository) getOne(ctx context.Context, query string, args ...interface{}) (overtime.Record, error) {
	q := GetQuerier(ctx, o.db)

	r, err := scanOvertime(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.Record{}, overtime.ErrOvertimeNotFound
		}
		return overtime.Record{}, fmt.Errorf("failed to get overtime: %w", err)
	}
	return r, nil
}

// Create implements overtime.OvertimeRepository.
func (o *overtimeRepository) Create(ctx context.Context, record overtime.Record) (overtime.Record, error) {
	query := `
		WITH o AS (
			INSERT INTO overtime_records (
				id, employee_id, work_day_id, state, started_at, hours, paid, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (employee_id, work_day_id) WHERE state = 'open' DO NOTHING
			RETURNING *
		)
		SELECT ` + overtimeColumns + `
		FROM o JOIN work_days d ON d.id = o.work_day_id
	`

	created, err := o.getOne(ctx, query,
		record.ID, record.EmployeeID, record.WorkDayID, record.State, record.StartedAt,
		record.Hours, record.Paid, record.CreatedAt, record.UpdatedAt,
	)
	if errors.Is(err, overtime.ErrOvertimeNotFound) {
		return overtime.Record{}, overtime.ErrOvertimeAlreadyOpen
	}
	return created, err
}

// GetByID implements overtime.OvertimeRepository.
func (o *overtimeRepository) GetByID(ctx context.Context, id string) (overtime.Record, error) {
	return o.getOne(ctx, `
		SELECT `+overtimeColumns+`
		FROM overtime_records o JOIN work_days d ON d.id = o.work_day_id
		WHERE o.id = $1`, id)
}

// GetByIDForUpdate implements overtime.OvertimeRepository.
func (o *overtimeRepository) GetByIDForUpdate(ctx context.Context, id string) (overtime.Record, error) {
	return o.getOne(ctx, `
		SELECT `+overtimeColumns+`
		FROM overtime_records o JOIN work_days d ON d.id = o.work_day_id
		WHERE o.id = $1
		FOR UPDATE OF o`, id)
}

// GetOpenForUpdate implements overtime.OvertimeRepository.
func (o *overtimeRepository) GetOpenForUpdate(ctx context.Context, employeeID, workDayID string) (overtime.Record, error) {
	r, err := o.getOne(ctx, `
		SELECT `+overtimeColumns+`
		FROM overtime_records o JOIN work_days d ON d.id = o.work_day_id
		WHERE o.employee_id = $1 AND o.work_day_id = $2 AND o.state = 'open'
		FOR UPDATE OF o`, employeeID, workDayID)
	if errors.Is(err, overtime.ErrOvertimeNotFound) {
		return overtime.Record{}, overtime.ErrNoOpenOvertime
	}
	return r, err
}

// Close implements overtime.OvertimeRepository.
func (o *overtimeRepository) Close(ctx context.Context, record overtime.Record) (overtime.Record, error) {
	query := `
		WITH o AS (
			UPDATE overtime_records
			SET state = 'closed', ended_at = $2, hours = $3, updated_at = NOW()
			WHERE id = $1 AND state = 'open'
			RETURNING *
		)
		SELECT ` + overtimeColumns + `
		FROM o JOIN work_days d ON d.id = o.work_day_id
	`

	closed, err := o.getOne(ctx, query, record.ID, record.EndedAt, record.Hours)
	if errors.Is(err, overtime.ErrOvertimeNotFound) {
		if _, getErr := o.GetByID(ctx, record.ID); getErr != nil {
			return overtime.Record{}, getErr
		}
		return overtime.Record{}, overtime.ErrNoOpenOvertime
	}
	return closed, err
}

// AttachProof implements overtime.OvertimeRepository.
func (o *overtimeRepository) AttachProof(ctx context.Context, id string, text, evidence *string) (overtime.Record, error) {
	query := `
		WITH o AS (
			UPDATE overtime_records
			SET proof_text = $2, proof_evidence = $3, updated_at = NOW()
			WHERE id = $1 AND proof_text IS NULL AND proof_evidence IS NULL
			RETURNING *
		)
		SELECT ` + overtimeColumns + `
		FROM o JOIN work_days d ON d.id = o.work_day_id
	`

	updated, err := o.getOne(ctx, query, id, text, evidence)
	if errors.Is(err, overtime.ErrOvertimeNotFound) {
		if _, getErr := o.GetByID(ctx, id); getErr != nil {
			return overtime.Record{}, getErr
		}
		return overtime.Record{}, overtime.ErrProofAlreadyAttached
	}
	return updated, err
}

// MarkPaid implements overtime.OvertimeRepository.
func (o *overtimeRepository) MarkPaid(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, o.db)

	tag, err := q.Exec(ctx, `
		UPDATE overtime_records SET paid = TRUE, updated_at = NOW()
		WHERE id = $1 AND paid = FALSE`, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark overtime %s paid: %w", id, err)
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	if _, err := o.GetByID(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

// List implements overtime.OvertimeRepository.
func (o *overtimeRepository) List(ctx context.Context, filter overtime.Filter) ([]overtime.Record, error) {
	q := GetQuerier(ctx, o.db)

	w := newWhereBuilder()
	if len(filter.EmployeeIDs) > 0 {
		w.add("o.employee_id = ANY($%d)", filter.EmployeeIDs)
	}
	if len(filter.WorkDayIDs) > 0 {
		w.add("o.work_day_id = ANY($%d)", filter.WorkDayIDs)
	}
	if filter.From != nil {
		w.add("d.date >= $%d", *filter.From)
	}
	if filter.To != nil {
		w.add("d.date <= $%d", *filter.To)
	}
	if filter.State != nil {
		w.add("o.state = $%d", *filter.State)
	}
	if filter.Paid != nil {
		w.add("o.paid = $%d", *filter.Paid)
	}

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_records o JOIN work_days d ON d.id = o.work_day_id
		WHERE ` + w.sql() + `
		ORDER BY d.date, o.started_at, o.id`

	rows, err := q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime: %w", err)
	}
	defer rows.Close()

	records := make([]overtime.Record, 0)
	for rows.Next() {
		r, err := scanOvertime(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}
