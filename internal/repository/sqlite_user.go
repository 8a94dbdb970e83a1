package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/routinerunner/internal/db"
	"github.com/alexanderramin/routinerunner/internal/domain"
)

const userColumns = `id, run_start_km, rest_timer_default_sec, pushup_level,
		pushup_start_date, pushup_session_days, created_at, updated_at`

// SQLiteUserRepo implements UserRepo using a SQLite database.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	now := nowUTC()
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.RunStartKm,
		u.RestTimerDefaultSec,
		u.PushupLevel,
		nullableTimeToString(u.PushupStartDate, domain.DateLayout),
		domain.FormatWeekdaySet(u.PushupSessionDays),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var u domain.User
	var startDate sql.NullString
	var sessionDays, createdAt, updatedAt string
	err := row.Scan(
		&u.ID,
		&u.RunStartKm,
		&u.RestTimerDefaultSec,
		&u.PushupLevel,
		&startDate,
		&sessionDays,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	u.PushupStartDate = parseNullableTime(startDate, domain.DateLayout)
	if u.PushupSessionDays, err = domain.ParseWeekdaySet(sessionDays); err != nil {
		return nil, fmt.Errorf("parsing session days for user %s: %w", id, err)
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		u.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		u.UpdatedAt = t
	}
	return &u, nil
}

func (r *SQLiteUserRepo) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET run_start_km = ?, rest_timer_default_sec = ?,
		pushup_level = ?, pushup_start_date = ?, pushup_session_days = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		u.RunStartKm,
		u.RestTimerDefaultSec,
		u.PushupLevel,
		nullableTimeToString(u.PushupStartDate, domain.DateLayout),
		domain.FormatWeekdaySet(u.PushupSessionDays),
		nowUTC(),
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", u.ID, ErrNotFound)
	}
	return nil
}
