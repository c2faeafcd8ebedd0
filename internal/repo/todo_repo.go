package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	dom "github.com/Xinyu-Cheng/cs103a-cpa02/internal/domain"
)

// TodoRepo provides to-do item persistence. Every mutation is scoped to
// the owning user, so an item id belonging to someone else matches no
// rows.
type TodoRepo interface {
	ListByUser(ctx context.Context, userID int64) ([]dom.TodoItem, error)
	Create(ctx context.Context, t dom.TodoItem) (dom.TodoItem, error)
	SetCompleted(ctx context.Context, userID, id int64, completed bool) error
	Delete(ctx context.Context, userID, id int64) error
}

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) ListByUser(ctx context.Context, userID int64) ([]dom.TodoItem, error) {
	query := `
		SELECT id, user_id, title, description, completed, created_at
		FROM todo_items WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.TodoItem
	for rows.Next() {
		var t dom.TodoItem
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description,
			&t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoRepo) Create(ctx context.Context, t dom.TodoItem) (dom.TodoItem, error) {
	query := `
		INSERT INTO todo_items (user_id, title, description, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, description, completed, created_at`
	var out dom.TodoItem
	err := r.db.QueryRow(ctx, query, t.UserID, t.Title, t.Description, t.CreatedAt).Scan(
		&out.ID, &out.UserID, &out.Title, &out.Description, &out.Completed, &out.CreatedAt,
	)
	return out, err
}

func (r *PGTodoRepo) SetCompleted(ctx context.Context, userID, id int64, completed bool) error {
	_, err := r.db.Exec(ctx,
		`UPDATE todo_items SET completed = $3 WHERE id = $2 AND user_id = $1`,
		userID, id, completed)
	return err
}

func (r *PGTodoRepo) Delete(ctx context.Context, userID, id int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM todo_items WHERE id = $2 AND user_id = $1`,
		userID, id)
	return err
}
