package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	dom "github.com/Xinyu-Cheng/cs103a-cpa02/internal/domain"
)

// CollegeRepo provides college catalog persistence.
type CollegeRepo interface {
	FindByName(ctx context.Context, name string) ([]dom.College, error)
	GetByID(ctx context.Context, id int64) (dom.College, error)
	ListByIDs(ctx context.Context, ids []int64) ([]dom.College, error)
	Upsert(ctx context.Context, c dom.College) error
	Count(ctx context.Context) (int64, error)
}

type PGCollegeRepo struct {
	db *pgxpool.Pool
}

func NewPGCollegeRepo(db *pgxpool.Pool) *PGCollegeRepo {
	return &PGCollegeRepo{db: db}
}

func (r *PGCollegeRepo) FindByName(ctx context.Context, name string) ([]dom.College, error) {
	query := `
		SELECT id, unit_id, name, state, website_address, city
		FROM colleges WHERE name ILIKE $1 ORDER BY name`
	rows, err := r.db.Query(ctx, query, likePattern(name))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.College
	for rows.Next() {
		var c dom.College
		if err := rows.Scan(&c.ID, &c.UnitID, &c.Name, &c.State,
			&c.WebsiteAddress, &c.City); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PGCollegeRepo) GetByID(ctx context.Context, id int64) (dom.College, error) {
	var c dom.College
	err := r.db.QueryRow(ctx,
		`SELECT id, unit_id, name, state, website_address, city FROM colleges WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.UnitID, &c.Name, &c.State, &c.WebsiteAddress, &c.City)
	return c, err
}

func (r *PGCollegeRepo) ListByIDs(ctx context.Context, ids []int64) ([]dom.College, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, unit_id, name, state, website_address, city
		FROM colleges WHERE id = ANY($1) ORDER BY name`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.College
	for rows.Next() {
		var c dom.College
		if err := rows.Scan(&c.ID, &c.UnitID, &c.Name, &c.State,
			&c.WebsiteAddress, &c.City); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Upsert inserts the college unless a row with the same compound key
// (unit_id, name, state, website_address, city) already exists. Every
// attribute is part of the key, so a key match means the row is already
// up to date and no duplicate is created.
func (r *PGCollegeRepo) Upsert(ctx context.Context, c dom.College) error {
	query := `
		INSERT INTO colleges (unit_id, name, state, website_address, city)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (unit_id, name, state, website_address, city) DO NOTHING`
	_, err := r.db.Exec(ctx, query, c.UnitID, c.Name, c.State, c.WebsiteAddress, c.City)
	return err
}

func (r *PGCollegeRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM colleges`).Scan(&n)
	return n, err
}
