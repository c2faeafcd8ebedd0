package service

import (
	"context"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	dom "github.com/Xinyu-Cheng/cs103a-cpa02/internal/domain"
)

// In-memory repositories mirroring the SQL contracts: catalog ordering,
// independent-study exclusion, substring matching and scoped mutations.

// ── mock CourseRepo ──

type mockCourseRepo struct {
	nextID  int64
	courses map[int64]dom.Course
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[int64]dom.Course)}
}

func (m *mockCourseRepo) add(c dom.Course) dom.Course {
	m.nextID++
	c.ID = m.nextID
	m.courses[c.ID] = c
	return c
}

func sortCourses(list []dom.Course) []dom.Course {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Term != list[j].Term {
			return list[i].Term < list[j].Term
		}
		if list[i].NumValue != list[j].NumValue {
			return list[i].NumValue < list[j].NumValue
		}
		return list[i].Section < list[j].Section
	})
	return list
}

func (m *mockCourseRepo) find(keep func(dom.Course) bool) []dom.Course {
	var out []dom.Course
	for _, c := range m.courses {
		if keep(c) {
			out = append(out, c)
		}
	}
	return sortCourses(out)
}

func (m *mockCourseRepo) FindBySubject(_ context.Context, subject string) ([]dom.Course, error) {
	return m.find(func(c dom.Course) bool {
		return c.Subject == subject && !c.IndependentStudy
	}), nil
}

func (m *mockCourseRepo) FindByWord(_ context.Context, word string) ([]dom.Course, error) {
	w := strings.ToLower(word)
	return m.find(func(c dom.Course) bool {
		return strings.Contains(strings.ToLower(c.Name), w) && !c.IndependentStudy
	}), nil
}

func (m *mockCourseRepo) FindAvailable(_ context.Context, subject string) ([]dom.Course, error) {
	return m.find(func(c dom.Course) bool {
		return c.Subject == subject && c.Waiting == 0 && !c.IndependentStudy
	}), nil
}

func (m *mockCourseRepo) FindByCoursenum(_ context.Context, coursenum string) ([]dom.Course, error) {
	return m.find(func(c dom.Course) bool {
		return c.Coursenum == coursenum
	}), nil
}

func (m *mockCourseRepo) FindByInstructor(_ context.Context, email string) ([]dom.Course, error) {
	return m.find(func(c dom.Course) bool {
		return c.Instructor == email && !c.IndependentStudy
	}), nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id int64) (dom.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return dom.Course{}, pgx.ErrNoRows
}

func (m *mockCourseRepo) ListByIDs(_ context.Context, ids []int64) ([]dom.Course, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	return m.find(func(c dom.Course) bool { return want[c.ID] }), nil
}

func (m *mockCourseRepo) Upsert(_ context.Context, c dom.Course) error {
	for id, existing := range m.courses {
		if existing.Subject == c.Subject && existing.Coursenum == c.Coursenum &&
			existing.Section == c.Section && existing.Term == c.Term {
			c.ID = id
			m.courses[id] = c
			return nil
		}
	}
	m.add(c)
	return nil
}

func (m *mockCourseRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.courses)), nil
}

// ── mock ScheduleRepo ──

type mockScheduleRepo struct {
	nextID int64
	rows   []dom.Schedule
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{}
}

func (m *mockScheduleRepo) ListByUser(_ context.Context, userID int64) ([]dom.Schedule, error) {
	var out []dom.Schedule
	for _, r := range m.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockScheduleRepo) Exists(_ context.Context, userID, courseID int64) (bool, error) {
	for _, r := range m.rows {
		if r.UserID == userID && r.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockScheduleRepo) Create(_ context.Context, userID, courseID int64) error {
	m.nextID++
	m.rows = append(m.rows, dom.Schedule{ID: m.nextID, UserID: userID, CourseID: courseID})
	return nil
}

func (m *mockScheduleRepo) Delete(_ context.Context, userID, courseID int64) error {
	kept := m.rows[:0]
	for _, r := range m.rows {
		if !(r.UserID == userID && r.CourseID == courseID) {
			kept = append(kept, r)
		}
	}
	m.rows = kept
	return nil
}

// ── mock TodoRepo ──

type mockTodoRepo struct {
	nextID int64
	items  map[int64]dom.TodoItem
}

func newMockTodoRepo() *mockTodoRepo {
	return &mockTodoRepo{items: make(map[int64]dom.TodoItem)}
}

func (m *mockTodoRepo) ListByUser(_ context.Context, userID int64) ([]dom.TodoItem, error) {
	var out []dom.TodoItem
	for _, t := range m.items {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *mockTodoRepo) Create(_ context.Context, t dom.TodoItem) (dom.TodoItem, error) {
	m.nextID++
	t.ID = m.nextID
	m.items[t.ID] = t
	return t, nil
}

func (m *mockTodoRepo) SetCompleted(_ context.Context, userID, id int64, completed bool) error {
	if t, ok := m.items[id]; ok && t.UserID == userID {
		t.Completed = completed
		m.items[id] = t
	}
	return nil
}

func (m *mockTodoRepo) Delete(_ context.Context, userID, id int64) error {
	if t, ok := m.items[id]; ok && t.UserID == userID {
		delete(m.items, id)
	}
	return nil
}

// ── mock CollegeRepo ──

type mockCollegeRepo struct {
	nextID   int64
	colleges map[int64]dom.College
}

func newMockCollegeRepo() *mockCollegeRepo {
	return &mockCollegeRepo{colleges: make(map[int64]dom.College)}
}

func (m *mockCollegeRepo) add(c dom.College) dom.College {
	m.nextID++
	c.ID = m.nextID
	m.colleges[c.ID] = c
	return c
}

func (m *mockCollegeRepo) FindByName(_ context.Context, name string) ([]dom.College, error) {
	w := strings.ToLower(name)
	var out []dom.College
	for _, c := range m.colleges {
		if strings.Contains(strings.ToLower(c.Name), w) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockCollegeRepo) GetByID(_ context.Context, id int64) (dom.College, error) {
	if c, ok := m.colleges[id]; ok {
		return c, nil
	}
	return dom.College{}, pgx.ErrNoRows
}

func (m *mockCollegeRepo) ListByIDs(_ context.Context, ids []int64) ([]dom.College, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []dom.College
	for _, c := range m.colleges {
		if want[c.ID] {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockCollegeRepo) Upsert(_ context.Context, c dom.College) error {
	for _, existing := range m.colleges {
		if existing.UnitID == c.UnitID && existing.Name == c.Name &&
			existing.State == c.State && existing.WebsiteAddress == c.WebsiteAddress &&
			existing.City == c.City {
			return nil
		}
	}
	m.add(c)
	return nil
}

func (m *mockCollegeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.colleges)), nil
}

// ── mock SchoolListRepo ──

type mockSchoolListRepo struct {
	nextID int64
	rows   []dom.SchoolListEntry
}

func newMockSchoolListRepo() *mockSchoolListRepo {
	return &mockSchoolListRepo{}
}

func (m *mockSchoolListRepo) ListByUser(_ context.Context, userID int64) ([]dom.SchoolListEntry, error) {
	var out []dom.SchoolListEntry
	for _, r := range m.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockSchoolListRepo) Exists(_ context.Context, userID, collegeID int64) (bool, error) {
	for _, r := range m.rows {
		if r.UserID == userID && r.CollegeID == collegeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSchoolListRepo) Create(_ context.Context, userID, collegeID int64) error {
	m.nextID++
	m.rows = append(m.rows, dom.SchoolListEntry{ID: m.nextID, UserID: userID, CollegeID: collegeID})
	return nil
}

func (m *mockSchoolListRepo) Delete(_ context.Context, userID, collegeID int64) error {
	kept := m.rows[:0]
	for _, r := range m.rows {
		if !(r.UserID == userID && r.CollegeID == collegeID) {
			kept = append(kept, r)
		}
	}
	m.rows = kept
	return nil
}

// ── mock UserRepo ──

type mockUserRepo struct {
	nextID int64
	users  map[string]dom.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]dom.User)}
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (dom.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (dom.User, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return dom.User{}, pgx.ErrNoRows
}

func (m *mockUserRepo) Create(_ context.Context, username, passwordHash string) (dom.User, error) {
	m.nextID++
	u := dom.User{ID: m.nextID, Username: username, PasswordHash: passwordHash}
	m.users[username] = u
	return u, nil
}
