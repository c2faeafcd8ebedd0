package handlers

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/auth"
	dom "github.com/Xinyu-Cheng/cs103a-cpa02/internal/domain"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubCollegeRepo backs CollegeService with a fixed set of colleges.
type stubCollegeRepo struct {
	colleges map[int64]dom.College
}

func (s *stubCollegeRepo) FindByName(_ context.Context, name string) ([]dom.College, error) {
	var out []dom.College
	for _, c := range s.colleges {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(name)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubCollegeRepo) GetByID(_ context.Context, id int64) (dom.College, error) {
	if c, ok := s.colleges[id]; ok {
		return c, nil
	}
	return dom.College{}, pgx.ErrNoRows
}

func (s *stubCollegeRepo) ListByIDs(_ context.Context, ids []int64) ([]dom.College, error) {
	var out []dom.College
	for _, id := range ids {
		if c, ok := s.colleges[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubCollegeRepo) Upsert(_ context.Context, _ dom.College) error { return nil }
func (s *stubCollegeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.colleges)), nil
}

// stubSchoolListRepo is an empty, inert school list.
type stubSchoolListRepo struct{}

func (stubSchoolListRepo) ListByUser(_ context.Context, _ int64) ([]dom.SchoolListEntry, error) {
	return nil, nil
}
func (stubSchoolListRepo) Exists(_ context.Context, _, _ int64) (bool, error) { return false, nil }
func (stubSchoolListRepo) Create(_ context.Context, _, _ int64) error         { return nil }
func (stubSchoolListRepo) Delete(_ context.Context, _, _ int64) error         { return nil }

const errorTemplate = `{{define "error.html"}}error {{.status}}: {{.message}}{{end}}`

func newCollegeRouter(repo *stubCollegeRepo) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("t").Parse(errorTemplate)))
	h := NewCollegeHandler(service.NewCollegeService(repo, stubSchoolListRepo{}))
	r.GET("/colleges/show/:collegeId", h.Show)
	r.NoRoute(NotFound)
	return r
}

func TestCollegeHandler_Show_JSON(t *testing.T) {
	r := newCollegeRouter(&stubCollegeRepo{colleges: map[int64]dom.College{
		1: {ID: 1, UnitID: 164465, Name: "Brandeis University", State: "MA", City: "Waltham"},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/colleges/show/1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var got dom.College
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if got.Name != "Brandeis University" || got.UnitID != 164465 {
		t.Errorf("got %+v", got)
	}
}

func TestCollegeHandler_Show_UnknownID(t *testing.T) {
	r := newCollegeRouter(&stubCollegeRepo{colleges: map[int64]dom.College{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/colleges/show/99", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "error 404") {
		t.Errorf("expected the error view, got %q", w.Body.String())
	}
}

func TestCollegeHandler_Show_MalformedID(t *testing.T) {
	r := newCollegeRouter(&stubCollegeRepo{colleges: map[int64]dom.College{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/colleges/show/banana", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestNotFound_UnmatchedRoute(t *testing.T) {
	r := newCollegeRouter(&stubCollegeRepo{colleges: map[int64]dom.College{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/no/such/page", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "page not found") {
		t.Errorf("body = %q", w.Body.String())
	}
}

// The login gate aborts before the handler runs, so a nil service is
// never touched for anonymous requests.
func TestLoginGate_AnonymousNeverReachesHandler(t *testing.T) {
	r := gin.New()
	h := NewTodoHandler(nil)
	r.GET("/todo", auth.RequireLogin(), h.List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todo", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}
