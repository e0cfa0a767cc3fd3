package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rockpoolstays/innboard/internal/dashboard/domain"
)

type checkInsRepo struct {
	db *sql.DB
}

const checkInColumns = `id, check_in_date, check_out_date, people, rooms, nights, holidays, notes, created_at, updated_at`

func scanCheckIn(row interface{ Scan(...any) error }) (domain.CheckIn, error) {
	var c domain.CheckIn
	err := row.Scan(
		&c.ID, &c.CheckInDate, &c.CheckOutDate,
		&c.People, &c.Rooms, &c.Nights, &c.Holidays,
		&c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *checkInsRepo) ListCheckIns(ctx context.Context) ([]domain.CheckIn, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+checkInColumns+`
		FROM check_ins
		ORDER BY check_in_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CheckIn
	for rows.Next() {
		c, err := scanCheckIn(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *checkInsRepo) GetCheckInByID(ctx context.Context, id string) (domain.CheckIn, error) {
	c, err := scanCheckIn(r.db.QueryRowContext(ctx, `
		SELECT `+checkInColumns+`
		FROM check_ins
		WHERE id = ?`, id))
	if err != nil {
		return domain.CheckIn{}, mapNotFound(err)
	}
	return c, nil
}

func (r *checkInsRepo) CreateCheckIn(ctx context.Context, c domain.CheckIn) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO check_ins (`+checkInColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.CheckInDate, c.CheckOutDate,
		c.People, c.Rooms, c.Nights, c.Holidays,
		c.Notes, now, now,
	)
	return mapConstraint(err)
}

func (r *checkInsRepo) UpdateCheckIn(ctx context.Context, c domain.CheckIn) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE check_ins
		SET check_in_date = ?, check_out_date = ?, people = ?, rooms = ?,
		    nights = ?, holidays = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		c.CheckInDate, c.CheckOutDate, c.People, c.Rooms,
		c.Nights, c.Holidays, c.Notes, time.Now().UTC(),
		c.ID,
	)
	return mapUpdateResult(res, err)
}

// mapUpdateResult normalizes a zero-row UPDATE into ErrNotFound.
func mapUpdateResult(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}
