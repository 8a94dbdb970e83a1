package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/routinerunner/internal/db"
	"github.com/alexanderramin/routinerunner/internal/domain"
)

// dailyRecordColumns is the canonical SELECT column list for daily_records.
const dailyRecordColumns = `id, user_id, date, detox_status, run_target_km,
		run_actual_km, run_completed, pushup_week, pushup_session,
		pushup_completed, created_at`

// SQLiteDailyRecordRepo implements DailyRecordRepo using a SQLite database.
type SQLiteDailyRecordRepo struct {
	db db.DBTX
}

// NewSQLiteDailyRecordRepo creates a new SQLiteDailyRecordRepo.
func NewSQLiteDailyRecordRepo(conn db.DBTX) *SQLiteDailyRecordRepo {
	return &SQLiteDailyRecordRepo{db: conn}
}

func (r *SQLiteDailyRecordRepo) Create(ctx context.Context, rec *domain.DailyRecord) error {
	query := `INSERT INTO daily_records (` + dailyRecordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		dateToString(rec.Date),
		string(rec.DetoxStatus),
		rec.RunTargetKm,
		nullableFloatToValue(rec.RunActualKm),
		boolToInt(rec.RunCompleted),
		nullableIntToValue(rec.PushupWeek),
		nullableIntToValue(rec.PushupSession),
		boolToInt(rec.PushupDone),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting daily record: %w", err)
	}
	return nil
}

func (r *SQLiteDailyRecordRepo) GetByID(ctx context.Context, id string) (*domain.DailyRecord, error) {
	query := `SELECT ` + dailyRecordColumns + ` FROM daily_records WHERE id = ?`
	rec, err := r.scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("daily record %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return rec, nil
}

func (r *SQLiteDailyRecordRepo) GetByUserDate(ctx context.Context, userID string, date time.Time) (*domain.DailyRecord, error) {
	query := `SELECT ` + dailyRecordColumns + ` FROM daily_records
		WHERE user_id = ? AND date = ?`
	rec, err := r.scanRecord(r.db.QueryRowContext(ctx, query, userID, dateToString(date)))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("daily record for %s on %s: %w", userID, dateToString(date), ErrNotFound)
		}
		return nil, err
	}
	return rec, nil
}

// Update deliberately leaves date, run_target_km, pushup_week and
// pushup_session out of the SET list: those are frozen at creation.
func (r *SQLiteDailyRecordRepo) Update(ctx context.Context, rec *domain.DailyRecord) error {
	query := `UPDATE daily_records SET detox_status = ?, run_actual_km = ?,
		run_completed = ?, pushup_completed = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(rec.DetoxStatus),
		nullableFloatToValue(rec.RunActualKm),
		boolToInt(rec.RunCompleted),
		boolToInt(rec.PushupDone),
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("updating daily record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("daily record %s: %w", rec.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteDailyRecordRepo) ListRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.DailyRecord, error) {
	query := `SELECT ` + dailyRecordColumns + ` FROM daily_records
		WHERE user_id = ? AND date >= ? AND date <= ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, userID, dateToString(from), dateToString(to))
	if err != nil {
		return nil, fmt.Errorf("listing daily records: %w", err)
	}
	defer rows.Close()
	return r.scanRecords(rows)
}

func (r *SQLiteDailyRecordRepo) ListBefore(ctx context.Context, userID string, date time.Time) ([]*domain.DailyRecord, error) {
	query := `SELECT ` + dailyRecordColumns + ` FROM daily_records
		WHERE user_id = ? AND date < ? ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query, userID, dateToString(date))
	if err != nil {
		return nil, fmt.Errorf("listing daily records before %s: %w", dateToString(date), err)
	}
	defer rows.Close()
	return r.scanRecords(rows)
}

func (r *SQLiteDailyRecordRepo) LastCompletedRun(ctx context.Context, userID string) (float64, error) {
	query := `SELECT run_actual_km FROM daily_records
		WHERE user_id = ? AND run_completed = 1 AND run_actual_km IS NOT NULL
		ORDER BY date DESC LIMIT 1`
	var km float64
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&km)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("last completed run for %s: %w", userID, ErrNotFound)
		}
		return 0, fmt.Errorf("querying last completed run: %w", err)
	}
	return km, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteDailyRecordRepo) scanRecord(row rowScanner) (*domain.DailyRecord, error) {
	var rec domain.DailyRecord
	var dateStr, detoxStr, createdAt string
	var actualKm sql.NullFloat64
	var week, session sql.NullInt64
	var runDone, pushupDone int

	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&dateStr,
		&detoxStr,
		&rec.RunTargetKm,
		&actualKm,
		&runDone,
		&week,
		&session,
		&pushupDone,
		&createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning daily record: %w", err)
	}

	date, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing daily record date %q: %w", dateStr, err)
	}
	rec.Date = date
	rec.DetoxStatus = domain.DetoxStatus(detoxStr)
	if actualKm.Valid {
		v := actualKm.Float64
		rec.RunActualKm = &v
	}
	rec.RunCompleted = runDone != 0
	if week.Valid {
		v := int(week.Int64)
		rec.PushupWeek = &v
	}
	if session.Valid {
		v := int(session.Int64)
		rec.PushupSession = &v
	}
	rec.PushupDone = pushupDone != 0
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		rec.CreatedAt = t
	}
	return &rec, nil
}

func (r *SQLiteDailyRecordRepo) scanRecords(rows *sql.Rows) ([]*domain.DailyRecord, error) {
	var records []*domain.DailyRecord
	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily records: %w", err)
	}
	return records, nil
}
