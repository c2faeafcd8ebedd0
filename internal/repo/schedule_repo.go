package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	dom "github.com/Xinyu-Cheng/cs103a-cpa02/internal/domain"
)

// ScheduleRepo persists the user<->course join rows. The table carries
// no uniqueness constraint on (user_id, course_id); callers keep adds
// idempotent with Exists before Create.
type ScheduleRepo interface {
	ListByUser(ctx context.Context, userID int64) ([]dom.Schedule, error)
	Exists(ctx context.Context, userID, courseID int64) (bool, error)
	Create(ctx context.Context, userID, courseID int64) error
	Delete(ctx context.Context, userID, courseID int64) error
}

type PGScheduleRepo struct {
	db *pgxpool.Pool
}

func NewPGScheduleRepo(db *pgxpool.Pool) *PGScheduleRepo {
	return &PGScheduleRepo{db: db}
}

func (r *PGScheduleRepo) ListByUser(ctx context.Context, userID int64) ([]dom.Schedule, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, course_id FROM schedules WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Schedule
	for rows.Next() {
		var s dom.Schedule
		if err := rows.Scan(&s.ID, &s.UserID, &s.CourseID); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *PGScheduleRepo) Exists(ctx context.Context, userID, courseID int64) (bool, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM schedules WHERE user_id = $1 AND course_id = $2`,
		userID, courseID).Scan(&n)
	return n > 0, err
}

func (r *PGScheduleRepo) Create(ctx context.Context, userID, courseID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO schedules (user_id, course_id) VALUES ($1, $2)`,
		userID, courseID)
	return err
}

// Delete removes the join row; deleting an absent row is a no-op.
func (r *PGScheduleRepo) Delete(ctx context.Context, userID, courseID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM schedules WHERE user_id = $1 AND course_id = $2`,
		userID, courseID)
	return err
}
