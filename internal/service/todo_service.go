package service

import (
	"context"
	"errors"
	"strings"
	"time"

	dom "github.com/Xinyu-Cheng/cs103a-cpa02/internal/domain"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/repo"
)

var ErrNotFound = errors.New("not found")

// TodoService owns the to-do list rules: createdAt is stamped once at
// creation, and every mutation is scoped to the owning user.
type TodoService struct {
	repo repo.TodoRepo
}

func NewTodoService(r repo.TodoRepo) *TodoService {
	return &TodoService{repo: r}
}

func (s *TodoService) List(ctx context.Context, userID int64) ([]dom.TodoItem, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *TodoService) Add(ctx context.Context, userID int64, title, description string) (dom.TodoItem, error) {
	return s.repo.Create(ctx, dom.TodoItem{
		UserID:      userID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now().UTC(),
	})
}

func (s *TodoService) SetCompleted(ctx context.Context, userID, id int64, completed bool) error {
	return s.repo.SetCompleted(ctx, userID, id, completed)
}

func (s *TodoService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}
