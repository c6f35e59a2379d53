package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	"github.com/workledger/workledger-backend-go/internal/pkg/database"
)

type workDayRepositoryImpl struct {
	db *database.DB
}

func NewWorkDayRepository(db *database.DB) workday.WorkDayRepository {
	return &workDayRepositoryImpl{db: db}
}

func (w *workDayRepositoryImpl) Create(ctx context.Context, day workday.WorkDay) (workday.WorkDay, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO work_days (id, date, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (date) DO NOTHING
		RETURNING id, date, created_at
	`

	var created workday.WorkDay
	err := q.QueryRow(ctx, query, day.ID, day.Date, day.CreatedAt).Scan(&created.ID, &created.Date, &created.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workday.WorkDay{}, workday.ErrWorkDayExists
		}
		return workday.WorkDay{}, fmt.Errorf("failed to create work day: %w", err)
	}

	return created, nil
}

func (w *workDayRepositoryImpl) CreateMany(ctx context.Context, days []workday.WorkDay) (int, error) {
	if len(days) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, w.db)

	ids := make([]string, len(days))
	dates := make([]time.Time, len(days))
	createdAt := make([]time.Time, len(days))
	for i, d := range days {
		ids[i], dates[i], createdAt[i] = d.ID, d.Date, d.CreatedAt
	}

	query := `
		INSERT INTO work_days (id, date, created_at)
		SELECT * FROM UNNEST($1::uuid[], $2::date[], $3::timestamptz[])
		ON CONFLICT (date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, ids, dates, createdAt)
	if err != nil {
		return 0, fmt.Errorf("failed to create work days: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func (w *workDayRepositoryImpl) getOne(ctx context.Context, query string, args ...interface{}) (workday.WorkDay, error) {
	q := GetQuerier(ctx, w.db)

	var d workday.WorkDay
	if err := q.QueryRow(ctx, query, args...).Scan(&d.ID, &d.Date, &d.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workday.WorkDay{}, workday.ErrWorkDayNotFound
		}
		return workday.WorkDay{}, fmt.Errorf("failed to get work day: %w", err)
	}
	return d, nil
}

func (w *workDayRepositoryImpl) GetByID(ctx context.Context, id string) (workday.WorkDay, error) {
	return w.getOne(ctx, `SELECT id, date, created_at FROM work_days WHERE id = $1`, id)
}

func (w *workDayRepositoryImpl) GetByDate(ctx context.Context, date time.Time) (workday.WorkDay, error) {
	return w.getOne(ctx, `SELECT id, date, created_at FROM work_days WHERE date = $1`, date)
}

func (w *workDayRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]workday.WorkDay, error) {
	return w.list(ctx, `SELECT id, date, created_at FROM work_days WHERE id = ANY($1) ORDER BY date`, ids)
}

func (w *workDayRepositoryImpl) List(ctx context.Context, filter workday.WorkDayFilter) ([]workday.WorkDay, error) {
	query := `SELECT id, date, created_at FROM work_days WHERE TRUE`
	args := []interface{}{}
	argIdx := 1

	if filter.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.To)
	}
	query += " ORDER BY date"

	return w.list(ctx, query, args...)
}

func (w *workDayRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]workday.WorkDay, error) {
	q := GetQuerier(ctx, w.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list work days: %w", err)
	}
	defer rows.Close()

	days := make([]workday.WorkDay, 0)
	for rows.Next() {
		var d workday.WorkDay
		if err := rows.Scan(&d.ID, &d.Date, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan work day: %w", err)
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

func (w *workDayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, w.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_days WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work day %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return workday.ErrWorkDayNotFound
	}

	return nil
}
