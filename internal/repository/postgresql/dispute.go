package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workledger/workledger-backend-go/internal/domain/dispute"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/pkg/database"
)

type disputeRepository struct {
	db *database.DB
}

func NewDisputeRepository(db *database.DB) dispute.DisputeRepository {
	return &disputeRepository{db: db}
}

const disputeColumns = `id, employee_id, reason, resolved, resolved_at, created_at`

func scanDispute(row pgx.Row) (dispute.Dispute, error) {
	var d dispute.Dispute
	err := row.Scan(&d.ID, &d.EmployeeID, &d.Reason, &d.Resolved, &d.ResolvedAt, &d.CreatedAt)
	return d, err
}

func (r *disputeRepository) Create(ctx context.Context, d dispute.Dispute) (dispute.Dispute, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO disputes (id, employee_id, reason, resolved, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + disputeColumns

	created, err := scanDispute(q.QueryRow(ctx, query, d.ID, d.EmployeeID, d.Reason, d.Resolved, d.CreatedAt))
	if err != nil {
		if isForeignKeyViolation(err) {
			return dispute.Dispute{}, employee.ErrEmployeeNotFound
		}
		return dispute.Dispute{}, fmt.Errorf("failed to create dispute: %w", err)
	}

	return created, nil
}

func (r *disputeRepository) GetByID(ctx context.Context, id string) (dispute.Dispute, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanDispute(q.QueryRow(ctx, `SELECT `+disputeColumns+` FROM disputes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dispute.Dispute{}, dispute.ErrDisputeNotFound
		}
		return dispute.Dispute{}, fmt.Errorf("failed to get dispute: %w", err)
	}

	return d, nil
}

func (r *disputeRepository) MarkResolved(ctx context.Context, id string, at time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE disputes SET resolved = TRUE, resolved_at = $2
		WHERE id = $1 AND resolved = FALSE`, id, at)
	if err != nil {
		return false, fmt.Errorf("failed to resolve dispute %s: %w", id, err)
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

func (r *disputeRepository) List(ctx context.Context, filter dispute.Filter) ([]dispute.Dispute, error) {
	q := GetQuerier(ctx, r.db)

	w := newWhereBuilder()
	if len(filter.EmployeeIDs) > 0 {
		w.add("employee_id = ANY($%d)", filter.EmployeeIDs)
	}
	if filter.Resolved != nil {
		w.add("resolved = $%d", *filter.Resolved)
	}

	query := `SELECT ` + disputeColumns + ` FROM disputes WHERE ` + w.sql() + ` ORDER BY created_at DESC, id DESC`

	rows, err := q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list disputes: %w", err)
	}
	defer rows.Close()

	list := make([]dispute.Dispute, 0)
	for rows.Next() {
		d, err := scanDispute(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dispute: %w", err)
		}
		list = append(list, d)
	}

	return list, rows.Err()
}
