package service

import (
	"context"
	"strconv"

	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/dataset"
	dom "github.com/Xinyu-Cheng/cs103a-cpa02/internal/domain"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/format"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/repo"
)

// DatasetService bulk-upserts the embedded course and college datasets.
// Records are keyed by their natural keys, so re-running an import
// refreshes rows in place instead of duplicating them. Course rows get
// their derived fields (num, num_value, suffix, display times) computed
// here, at import time.
type DatasetService struct {
	courses  repo.CourseRepo
	colleges repo.CollegeRepo
}

func NewDatasetService(courses repo.CourseRepo, colleges repo.CollegeRepo) *DatasetService {
	return &DatasetService{courses: courses, colleges: colleges}
}

// UpsertColleges imports the college dataset and returns the resulting
// collection size.
func (s *DatasetService) UpsertColleges(ctx context.Context) (int64, error) {
	records, err := dataset.Colleges()
	if err != nil {
		return 0, err
	}
	for _, rec := range records {
		c := dom.College{
			UnitID:         rec.UnitID,
			Name:           rec.Name,
			State:          rec.State,
			WebsiteAddress: rec.WebsiteAddress,
			City:           rec.City,
		}
		if err := s.colleges.Upsert(ctx, c); err != nil {
			return 0, err
		}
	}
	return s.colleges.Count(ctx)
}

// UpsertCourses imports the course dataset and returns the resulting
// collection size.
func (s *DatasetService) UpsertCourses(ctx context.Context) (int64, error) {
	records, err := dataset.Courses()
	if err != nil {
		return 0, err
	}
	for _, rec := range records {
		if err := s.courses.Upsert(ctx, courseFromRecord(rec)); err != nil {
			return 0, err
		}
	}
	return s.courses.Count(ctx)
}

func courseFromRecord(rec dataset.CourseRecord) dom.Course {
	num, suffix := format.ParseCourseNumber(rec.Coursenum)
	numValue := 0
	if num != "" {
		numValue, _ = strconv.Atoi(num)
	}
	return dom.Course{
		Subject:          rec.Subject,
		Coursenum:        rec.Coursenum,
		Num:              num,
		NumValue:         numValue,
		Suffix:           suffix,
		Section:          rec.Section,
		Name:             rec.Name,
		Term:             rec.Term,
		Instructor:       rec.Instructor,
		Waiting:          rec.Waiting,
		IndependentStudy: rec.IndependentStudy,
		Times:            rec.Times,
		StrTimes:         format.FormatMeetingTimes(rec.Times),
	}
}
