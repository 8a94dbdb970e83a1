package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/routinerunner/internal/db"
	"github.com/alexanderramin/routinerunner/internal/domain"
	"github.com/alexanderramin/routinerunner/internal/progression"
)

const pushupSetColumns = `id, daily_record_id, set_index, target_reps, completed, completed_at`

// SQLitePushupSetRepo implements PushupSetRepo using a SQLite database.
type SQLitePushupSetRepo struct {
	db db.DBTX
}

// NewSQLitePushupSetRepo creates a new SQLitePushupSetRepo.
func NewSQLitePushupSetRepo(conn db.DBTX) *SQLitePushupSetRepo {
	return &SQLitePushupSetRepo{db: conn}
}

// CreateBatch inserts one session's set rows. The caller wraps this in a
// transaction together with daily-record creation; the UNIQUE constraint on
// (daily_record_id, set_index) rejects duplicate creation attempts.
func (r *SQLitePushupSetRepo) CreateBatch(ctx context.Context, sets []*domain.PushupSetRecord) error {
	if len(sets) != progression.SetsPerSession {
		return fmt.Errorf("expected %d set records, got %d", progression.SetsPerSession, len(sets))
	}
	query := `INSERT INTO pushup_sets (` + pushupSetColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	for _, s := range sets {
		_, err := r.db.ExecContext(ctx, query,
			s.ID,
			s.DailyRecordID,
			s.SetIndex,
			s.TargetReps,
			boolToInt(s.Completed),
			nullableTimeToString(s.CompletedAt, time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting pushup set %d: %w", s.SetIndex, err)
		}
	}
	return nil
}

func (r *SQLitePushupSetRepo) GetByID(ctx context.Context, id string) (*domain.PushupSetRecord, error) {
	query := `SELECT ` + pushupSetColumns + ` FROM pushup_sets WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanPushupSet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("pushup set %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLitePushupSetRepo) ListByRecord(ctx context.Context, dailyRecordID string) ([]*domain.PushupSetRecord, error) {
	query := `SELECT ` + pushupSetColumns + ` FROM pushup_sets
		WHERE daily_record_id = ? ORDER BY set_index`
	rows, err := r.db.QueryContext(ctx, query, dailyRecordID)
	if err != nil {
		return nil, fmt.Errorf("listing pushup sets: %w", err)
	}
	defer rows.Close()

	var sets []*domain.PushupSetRecord
	for rows.Next() {
		s, err := scanPushupSet(rows)
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pushup sets: %w", err)
	}
	return sets, nil
}

func (r *SQLitePushupSetRepo) MarkCompleted(ctx context.Context, id string, completedAt time.Time) error {
	query := `UPDATE pushup_sets SET completed = 1, completed_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, completedAt.UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("marking pushup set completed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("pushup set %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanPushupSet(row rowScanner) (*domain.PushupSetRecord, error) {
	var s domain.PushupSetRecord
	var completed int
	var completedAt sql.NullString

	err := row.Scan(
		&s.ID,
		&s.DailyRecordID,
		&s.SetIndex,
		&s.TargetReps,
		&completed,
		&completedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning pushup set: %w", err)
	}

	s.Completed = completed != 0
	s.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
	return &s, nil
}
