package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	dom "github.com/Xinyu-Cheng/cs103a-cpa02/internal/domain"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/repo"
)

// CatalogService answers course catalog searches. It owns the
// instructor-email convention: byInst lookups take a bare name and
// append the institutional domain.
type CatalogService struct {
	courses     repo.CourseRepo
	emailDomain string
}

func NewCatalogService(courses repo.CourseRepo, emailDomain string) *CatalogService {
	return &CatalogService{courses: courses, emailDomain: emailDomain}
}

func (s *CatalogService) BySubject(ctx context.Context, subject string) ([]dom.Course, error) {
	return s.courses.FindBySubject(ctx, strings.TrimSpace(subject))
}

func (s *CatalogService) ByWord(ctx context.Context, word string) ([]dom.Course, error) {
	return s.courses.FindByWord(ctx, strings.TrimSpace(word))
}

func (s *CatalogService) ByAvailability(ctx context.Context, subject string) ([]dom.Course, error) {
	return s.courses.FindAvailable(ctx, strings.TrimSpace(subject))
}

func (s *CatalogService) ByCoursenum(ctx context.Context, coursenum string) ([]dom.Course, error) {
	return s.courses.FindByCoursenum(ctx, strings.TrimSpace(coursenum))
}

func (s *CatalogService) ByInstructor(ctx context.Context, name string) ([]dom.Course, error) {
	email := strings.TrimSpace(name) + "@" + s.emailDomain
	return s.courses.FindByInstructor(ctx, email)
}

func (s *CatalogService) Show(ctx context.Context, id int64) (dom.Course, error) {
	c, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Course{}, ErrNotFound
		}
		return dom.Course{}, err
	}
	return c, nil
}
