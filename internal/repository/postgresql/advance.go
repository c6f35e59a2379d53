package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workledger/workledger-backend-go/internal/domain/advance"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/pkg/database"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

const advanceColumns = `id, employee_id, amount, reason, accepted, accepted_at, created_at`

func scanAdvance(row pgx.Row) (advance.AdvanceRequest, error) {
	var a advance.AdvanceRequest
	err := row.Scan(&a.ID, &a.EmployeeID, &a.Amount, &a.Reason, &a.Accepted, &a.AcceptedAt, &a.CreatedAt)
	return a, err
}

const foreignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

func (r *advanceRepository) Create(ctx context.Context, req advance.AdvanceRequest) (advance.AdvanceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advance_requests (id, employee_id, amount, reason, accepted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + advanceColumns

	created, err := scanAdvance(q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.Amount, req.Reason, req.Accepted, req.CreatedAt,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return advance.AdvanceRequest{}, employee.ErrEmployeeNotFound
		}
		return advance.AdvanceRequest{}, fmt.Errorf("failed to create advance request: %w", err)
	}

	return created, nil
}

func (r *advanceRepository) getOne(ctx context.Context, query string, args ...interface{}) (advance.AdvanceRequest, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAdvance(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.AdvanceRequest{}, advance.ErrAdvanceNotFound
		}
		return advance.AdvanceRequest{}, fmt.Errorf("failed to get advance request: %w", err)
	}
	return a, nil
}

func (r *advanceRepository) GetByID(ctx context.Context, id string) (advance.AdvanceRequest, error) {
	return r.getOne(ctx, `SELECT `+advanceColumns+` FROM advance_requests WHERE id = $1`, id)
}

func (r *advanceRepository) GetByIDForUpdate(ctx context.Context, id string) (advance.AdvanceRequest, error) {
	return r.getOne(ctx, `SELECT `+advanceColumns+` FROM advance_requests WHERE id = $1 FOR UPDATE`, id)
}

func (r *advanceRepository) MarkAccepted(ctx context.Context, id string, at time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE advance_requests SET accepted = TRUE, accepted_at = $2
		WHERE id = $1 AND accepted = FALSE`, id, at)
	if err != nil {
		return false, fmt.Errorf("failed to accept advance request %s: %w", id, err)
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

func (r *advanceRepository) List(ctx context.Context, filter advance.Filter) ([]advance.AdvanceRequest, error) {
	q := GetQuerier(ctx, r.db)

	w := newWhereBuilder()
	if len(filter.EmployeeIDs) > 0 {
		w.add("employee_id = ANY($%d)", filter.EmployeeIDs)
	}
	if filter.Accepted != nil {
		w.add("accepted = $%d", *filter.Accepted)
	}
	if filter.CreatedFrom != nil {
		w.add("created_at >= $%d", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		w.add("created_at < $%d", *filter.CreatedTo)
	}

	query := `SELECT ` + advanceColumns + ` FROM advance_requests WHERE ` + w.sql() + ` ORDER BY created_at DESC, id DESC`

	rows, err := q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list advance requests: %w", err)
	}
	defer rows.Close()

	list := make([]advance.AdvanceRequest, 0)
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance request: %w", err)
		}
		list = append(list, a)
	}

	return list, rows.Err()
}
