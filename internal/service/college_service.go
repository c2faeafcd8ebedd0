package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	dom "github.com/Xinyu-Cheng/cs103a-cpa02/internal/domain"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/repo"
)

// CollegeService answers college searches and manages each user's
// school list, mirroring ScheduleService's add/show/remove policy.
type CollegeService struct {
	colleges repo.CollegeRepo
	list     repo.SchoolListRepo
}

func NewCollegeService(colleges repo.CollegeRepo, list repo.SchoolListRepo) *CollegeService {
	return &CollegeService{colleges: colleges, list: list}
}

func (s *CollegeService) ByName(ctx context.Context, name string) ([]dom.College, error) {
	return s.colleges.FindByName(ctx, strings.TrimSpace(name))
}

func (s *CollegeService) Show(ctx context.Context, id int64) (dom.College, error) {
	c, err := s.colleges.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.College{}, ErrNotFound
		}
		return dom.College{}, err
	}
	return c, nil
}

// AddToList puts the college on the user's school list. Same non-atomic
// check-then-insert as ScheduleService.Add; sequential adds are
// idempotent.
func (s *CollegeService) AddToList(ctx context.Context, userID, collegeID int64) error {
	exists, err := s.list.Exists(ctx, userID, collegeID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.list.Create(ctx, userID, collegeID)
}

// ShowList returns the colleges on the user's school list.
func (s *CollegeService) ShowList(ctx context.Context, userID int64) ([]dom.College, error) {
	entries, err := s.list.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.CollegeID)
	}
	return s.colleges.ListByIDs(ctx, ids)
}

// RemoveFromList takes the college off the list; removing an absent
// college is a no-op, not an error.
func (s *CollegeService) RemoveFromList(ctx context.Context, userID, collegeID int64) error {
	return s.list.Delete(ctx, userID, collegeID)
}
