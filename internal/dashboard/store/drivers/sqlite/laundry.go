package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rockpoolstays/innboard/internal/dashboard/domain"
)

type laundryRepo struct {
	db *sql.DB
}

const laundryColumns = `id, delivery_date, retrieval_date, duvet_covers, bed_sheets, pillowcases, large_towels, small_towels, notes, created_at, updated_at`

func scanLaundry(row interface{ Scan(...any) error }) (domain.Laundry, error) {
	var l domain.Laundry
	err := row.Scan(
		&l.ID, &l.DeliveryDate, &l.RetrievalDate,
		&l.DuvetCovers, &l.BedSheets, &l.Pillowcases,
		&l.LargeTowels, &l.SmallTowels,
		&l.Notes, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *laundryRepo) ListLaundry(ctx context.Context) ([]domain.Laundry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+laundryColumns+`
		FROM laundry_records
		ORDER BY delivery_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Laundry
	for rows.Next() {
		l, err := scanLaundry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *laundryRepo) GetLaundryByID(ctx context.Context, id string) (domain.Laundry, error) {
	l, err := scanLaundry(r.db.QueryRowContext(ctx, `
		SELECT `+laundryColumns+`
		FROM laundry_records
		WHERE id = ?`, id))
	if err != nil {
		return domain.Laundry{}, mapNotFound(err)
	}
	return l, nil
}

func (r *laundryRepo) CreateLaundry(ctx context.Context, l domain.Laundry) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO laundry_records (`+laundryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.DeliveryDate, l.RetrievalDate,
		l.DuvetCovers, l.BedSheets, l.Pillowcases,
		l.LargeTowels, l.SmallTowels,
		l.Notes, now, now,
	)
	return mapConstraint(err)
}

func (r *laundryRepo) UpdateLaundry(ctx context.Context, l domain.Laundry) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE laundry_records
		SET delivery_date = ?, retrieval_date = ?, duvet_covers = ?, bed_sheets = ?,
		    pillowcases = ?, large_towels = ?, small_towels = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		l.DeliveryDate, l.RetrievalDate, l.DuvetCovers, l.BedSheets,
		l.Pillowcases, l.LargeTowels, l.SmallTowels, l.Notes, time.Now().UTC(),
		l.ID,
	)
	return mapUpdateResult(res, err)
}
