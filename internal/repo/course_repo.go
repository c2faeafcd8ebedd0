package repo

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	dom "github.com/Xinyu-Cheng/cs103a-cpa02/internal/domain"
)

// CourseRepo provides course catalog persistence. All list queries
// return rows ordered ascending by (term, num_value, section); catalog
// browsing relies on that grouping. Subject, word, availability and
// instructor searches exclude independent-study sections; coursenum and
// id lookups do not.
type CourseRepo interface {
	FindBySubject(ctx context.Context, subject string) ([]dom.Course, error)
	FindByWord(ctx context.Context, word string) ([]dom.Course, error)
	FindAvailable(ctx context.Context, subject string) ([]dom.Course, error)
	FindByCoursenum(ctx context.Context, coursenum string) ([]dom.Course, error)
	FindByInstructor(ctx context.Context, email string) ([]dom.Course, error)
	GetByID(ctx context.Context, id int64) (dom.Course, error)
	ListByIDs(ctx context.Context, ids []int64) ([]dom.Course, error)
	Upsert(ctx context.Context, c dom.Course) error
	Count(ctx context.Context) (int64, error)
}

const courseColumns = `id, subject, coursenum, num, num_value, suffix, section,
	name, term, instructor, waiting, independent_study, times, str_times`

type PGCourseRepo struct {
	db *pgxpool.Pool
}

func NewPGCourseRepo(db *pgxpool.Pool) *PGCourseRepo {
	return &PGCourseRepo{db: db}
}

func (r *PGCourseRepo) FindBySubject(ctx context.Context, subject string) ([]dom.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses WHERE subject = $1 AND independent_study = FALSE
		ORDER BY term, num_value, section`
	rows, err := r.db.Query(ctx, query, subject)
	if err != nil {
		return nil, err
	}
	return scanCourses(rows)
}

func (r *PGCourseRepo) FindByWord(ctx context.Context, word string) ([]dom.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses WHERE name ILIKE $1 AND independent_study = FALSE
		ORDER BY term, num_value, section`
	rows, err := r.db.Query(ctx, query, likePattern(word))
	if err != nil {
		return nil, err
	}
	return scanCourses(rows)
}

func (r *PGCourseRepo) FindAvailable(ctx context.Context, subject string) ([]dom.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses WHERE subject = $1 AND waiting = 0 AND independent_study = FALSE
		ORDER BY term, num_value, section`
	rows, err := r.db.Query(ctx, query, subject)
	if err != nil {
		return nil, err
	}
	return scanCourses(rows)
}

func (r *PGCourseRepo) FindByCoursenum(ctx context.Context, coursenum string) ([]dom.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses WHERE coursenum = $1
		ORDER BY term, num_value, section`
	rows, err := r.db.Query(ctx, query, coursenum)
	if err != nil {
		return nil, err
	}
	return scanCourses(rows)
}

func (r *PGCourseRepo) FindByInstructor(ctx context.Context, email string) ([]dom.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses WHERE instructor = $1 AND independent_study = FALSE
		ORDER BY term, num_value, section`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	return scanCourses(rows)
}

func (r *PGCourseRepo) GetByID(ctx context.Context, id int64) (dom.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)
	return scanCourse(row)
}

func (r *PGCourseRepo) ListByIDs(ctx context.Context, ids []int64) ([]dom.Course, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + courseColumns + `
		FROM courses WHERE id = ANY($1)
		ORDER BY term, num_value, section`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	return scanCourses(rows)
}

// Upsert inserts the course or, when the natural key
// (subject, coursenum, section, term) already exists, updates the row in
// place.
func (r *PGCourseRepo) Upsert(ctx context.Context, c dom.Course) error {
	query := `
		INSERT INTO courses (subject, coursenum, num, num_value, suffix, section,
			name, term, instructor, waiting, independent_study, times, str_times)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (subject, coursenum, section, term) DO UPDATE SET
			num = EXCLUDED.num,
			num_value = EXCLUDED.num_value,
			suffix = EXCLUDED.suffix,
			name = EXCLUDED.name,
			instructor = EXCLUDED.instructor,
			waiting = EXCLUDED.waiting,
			independent_study = EXCLUDED.independent_study,
			times = EXCLUDED.times,
			str_times = EXCLUDED.str_times`
	_, err := r.db.Exec(ctx, query,
		c.Subject, c.Coursenum, c.Num, c.NumValue, c.Suffix, c.Section,
		c.Name, c.Term, c.Instructor, c.Waiting, c.IndependentStudy,
		c.Times, c.StrTimes)
	return err
}

func (r *PGCourseRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM courses`).Scan(&n)
	return n, err
}

func scanCourse(row pgx.Row) (dom.Course, error) {
	var c dom.Course
	err := row.Scan(&c.ID, &c.Subject, &c.Coursenum, &c.Num, &c.NumValue,
		&c.Suffix, &c.Section, &c.Name, &c.Term, &c.Instructor,
		&c.Waiting, &c.IndependentStudy, &c.Times, &c.StrTimes)
	return c, err
}

func scanCourses(rows pgx.Rows) ([]dom.Course, error) {
	defer rows.Close()
	var list []dom.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// likePattern wraps user text in a substring ILIKE pattern, escaping the
// LIKE metacharacters so the input can never change the match semantics.
func likePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(s) + "%"
}
