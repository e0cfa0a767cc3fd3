package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rockpoolstays/innboard/internal/dashboard/domain"
	"github.com/rockpoolstays/innboard/internal/dashboard/store"
)

type expensesRepo struct {
	db *sql.DB
}

const expenseColumns = `id, date, category, amount, notes, extra_notes, created_at, updated_at`

func scanExpense(row interface{ Scan(...any) error }) (domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(
		&e.ID, &e.Date, &e.Category, &e.Amount,
		&e.Notes, &e.ExtraNotes, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *expensesRepo) ListExpenses(ctx context.Context, f store.ExpenseFilter) ([]domain.Expense, int, error) {
	where := ""
	var args []any
	if f.Year > 0 && f.Month >= 1 && f.Month <= 12 {
		start := time.Date(f.Year, time.Month(f.Month), 1, 0, 0, 0, 0, time.UTC)
		where = ` WHERE date >= ? AND date < ?`
		args = append(args, start, start.AddDate(0, 1, 0))
	}

	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses` + where + `
		ORDER BY date DESC`
	if f.Limit > 0 {
		page := max(f.Page, 1)
		query += ` LIMIT ? OFFSET ?`
		args = append(args, f.Limit, (page-1)*f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}

func (r *expensesRepo) GetExpenseByID(ctx context.Context, id string) (domain.Expense, error) {
	e, err := scanExpense(r.db.QueryRowContext(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE id = ?`, id))
	if err != nil {
		return domain.Expense{}, mapNotFound(err)
	}
	return e, nil
}

func (r *expensesRepo) CreateExpense(ctx context.Context, e domain.Expense) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO expenses (`+expenseColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Date, e.Category, e.Amount, e.Notes, e.ExtraNotes, now, now,
	)
	return mapConstraint(err)
}

func (r *expensesRepo) UpdateExpense(ctx context.Context, e domain.Expense) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE expenses
		SET date = ?, category = ?, amount = ?, notes = ?, extra_notes = ?, updated_at = ?
		WHERE id = ?`,
		e.Date, e.Category, e.Amount, e.Notes, e.ExtraNotes, time.Now().UTC(),
		e.ID,
	)
	return mapUpdateResult(res, err)
}
