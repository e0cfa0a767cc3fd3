package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rockpoolstays/innboard/internal/dashboard/domain"
)

type incomesRepo struct {
	db *sql.DB
}

const incomeColumns = `id, date, item, amount, type, notes, created_at, updated_at`

func scanIncome(row interface{ Scan(...any) error }) (domain.Income, error) {
	var i domain.Income
	err := row.Scan(
		&i.ID, &i.Date, &i.Item, &i.Amount, &i.Type,
		&i.Notes, &i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

func (r *incomesRepo) ListIncomes(ctx context.Context) ([]domain.Income, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+incomeColumns+`
		FROM incomes
		ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Income
	for rows.Next() {
		i, err := scanIncome(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *incomesRepo) GetIncomeByID(ctx context.Context, id string) (domain.Income, error) {
	i, err := scanIncome(r.db.QueryRowContext(ctx, `
		SELECT `+incomeColumns+`
		FROM incomes
		WHERE id = ?`, id))
	if err != nil {
		return domain.Income{}, mapNotFound(err)
	}
	return i, nil
}

func (r *incomesRepo) CreateIncome(ctx context.Context, i domain.Income) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO incomes (`+incomeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		i.ID, i.Date, i.Item, i.Amount, i.Type, i.Notes, now, now,
	)
	return mapConstraint(err)
}

func (r *incomesRepo) UpdateIncome(ctx context.Context, i domain.Income) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE incomes
		SET date = ?, item = ?, amount = ?, type = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		i.Date, i.Item, i.Amount, i.Type, i.Notes, time.Now().UTC(),
		i.ID,
	)
	return mapUpdateResult(res, err)
}
