package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/auth"
	dom "github.com/Xinyu-Cheng/cs103a-cpa02/internal/domain"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/dto"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/service"
)

// CatalogHandler handles the public course search and detail pages.
type CatalogHandler struct {
	svc *service.CatalogService
}

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// BySubject lists courses in a subject.
func (h *CatalogHandler) BySubject(c *gin.Context) {
	var form dto.SubjectForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, err)
		return
	}
	courses, err := h.svc.BySubject(c.Request.Context(), form.Subject)
	if err != nil {
		fail(c, err)
		return
	}
	h.renderList(c, courses)
}

// ByWord lists courses whose name contains the given word.
func (h *CatalogHandler) ByWord(c *gin.Context) {
	var form dto.WordForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, err)
		return
	}
	courses, err := h.svc.ByWord(c.Request.Context(), form.Word)
	if err != nil {
		fail(c, err)
		return
	}
	h.renderList(c, courses)
}

// ByAvailability lists courses in a subject with an empty waitlist.
func (h *CatalogHandler) ByAvailability(c *gin.Context) {
	var form dto.SubjectForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, err)
		return
	}
	courses, err := h.svc.ByAvailability(c.Request.Context(), form.Subject)
	if err != nil {
		fail(c, err)
		return
	}
	h.renderList(c, courses)
}

// ByCoursenum lists all sections with a given course number.
func (h *CatalogHandler) ByCoursenum(c *gin.Context) {
	var form dto.CoursenumForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, err)
		return
	}
	courses, err := h.svc.ByCoursenum(c.Request.Context(), form.Coursenum)
	if err != nil {
		fail(c, err)
		return
	}
	h.renderList(c, courses)
}

// ByInstructorForm lists courses taught by the instructor named in the
// form body.
func (h *CatalogHandler) ByInstructorForm(c *gin.Context) {
	var form dto.InstructorForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, err)
		return
	}
	courses, err := h.svc.ByInstructor(c.Request.Context(), form.Email)
	if err != nil {
		fail(c, err)
		return
	}
	h.renderList(c, courses)
}

// ByInstructorParam lists courses taught by the instructor named in the
// path.
func (h *CatalogHandler) ByInstructorParam(c *gin.Context) {
	courses, err := h.svc.ByInstructor(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, err)
		return
	}
	h.renderList(c, courses)
}

// Show renders the detail page for one course.
func (h *CatalogHandler) Show(c *gin.Context) {
	courseID, ok := parseID(c, "courseId")
	if !ok {
		return
	}
	course, err := h.svc.Show(c.Request.Context(), courseID)
	if err != nil {
		fail(c, err)
		return
	}
	user, _ := auth.CurrentUser(c)
	c.HTML(http.StatusOK, "course.html", gin.H{"user": user, "course": course})
}

func (h *CatalogHandler) renderList(c *gin.Context, courses []dom.Course) {
	user, _ := auth.CurrentUser(c)
	c.HTML(http.StatusOK, "courselist.html", gin.H{"user": user, "courses": courses})
}
