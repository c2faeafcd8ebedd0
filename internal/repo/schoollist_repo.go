package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	dom "github.com/Xinyu-Cheng/cs103a-cpa02/internal/domain"
)

// SchoolListRepo persists the user<->college join rows, with the same
// check-then-insert idempotency policy as ScheduleRepo.
type SchoolListRepo interface {
	ListByUser(ctx context.Context, userID int64) ([]dom.SchoolListEntry, error)
	Exists(ctx context.Context, userID, collegeID int64) (bool, error)
	Create(ctx context.Context, userID, collegeID int64) error
	Delete(ctx context.Context, userID, collegeID int64) error
}

type PGSchoolListRepo struct {
	db *pgxpool.Pool
}

func NewPGSchoolListRepo(db *pgxpool.Pool) *PGSchoolListRepo {
	return &PGSchoolListRepo{db: db}
}

func (r *PGSchoolListRepo) ListByUser(ctx context.Context, userID int64) ([]dom.SchoolListEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, college_id FROM school_lists WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.SchoolListEntry
	for rows.Next() {
		var e dom.SchoolListEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.CollegeID); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *PGSchoolListRepo) Exists(ctx context.Context, userID, collegeID int64) (bool, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM school_lists WHERE user_id = $1 AND college_id = $2`,
		userID, collegeID).Scan(&n)
	return n > 0, err
}

func (r *PGSchoolListRepo) Create(ctx context.Context, userID, collegeID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO school_lists (user_id, college_id) VALUES ($1, $2)`,
		userID, collegeID)
	return err
}

// Delete removes the join row; deleting an absent row is a no-op.
func (r *PGSchoolListRepo) Delete(ctx context.Context, userID, collegeID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM school_lists WHERE user_id = $1 AND college_id = $2`,
		userID, collegeID)
	return err
}
