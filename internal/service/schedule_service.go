package service

import (
	"context"

	dom "github.com/Xinyu-Cheng/cs103a-cpa02/internal/domain"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/repo"
)

// ScheduleService manages a user's course schedule.
type ScheduleService struct {
	schedules repo.ScheduleRepo
	courses   repo.CourseRepo
}

func NewScheduleService(schedules repo.ScheduleRepo, courses repo.CourseRepo) *ScheduleService {
	return &ScheduleService{schedules: schedules, courses: courses}
}

// Add puts the course on the user's schedule. Check-then-insert is not
// atomic: two concurrent adds of the same course can both pass the
// existence check and leave duplicate rows. Sequential adds stay
// idempotent, and a duplicate row is cosmetic, not a correctness fault.
func (s *ScheduleService) Add(ctx context.Context, userID, courseID int64) error {
	exists, err := s.schedules.Exists(ctx, userID, courseID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.schedules.Create(ctx, userID, courseID)
}

// Show returns the user's scheduled courses ordered by
// (term, num_value, section), same as catalog listings.
func (s *ScheduleService) Show(ctx context.Context, userID int64) ([]dom.Course, error) {
	entries, err := s.schedules.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.CourseID)
	}
	return s.courses.ListByIDs(ctx, ids)
}

// Remove takes the course off the schedule; removing an absent course is
// a no-op, not an error.
func (s *ScheduleService) Remove(ctx context.Context, userID, courseID int64) error {
	return s.schedules.Delete(ctx, userID, courseID)
}
