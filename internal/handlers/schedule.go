package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/auth"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/service"
)

// ScheduleHandler handles the caller's course schedule. All routes are
// auth-gated.
type ScheduleHandler struct {
	svc *service.ScheduleService
}

func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

// Add puts a course on the schedule, then shows the schedule. Adding a
// course that is already there changes nothing.
func (h *ScheduleHandler) Add(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	courseID, ok := parseID(c, "courseId")
	if !ok {
		return
	}
	if err := h.svc.Add(c.Request.Context(), user.ID, courseID); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/schedule/show")
}

// Show renders the caller's scheduled courses, ordered by term.
func (h *ScheduleHandler) Show(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	courses, err := h.svc.Show(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "schedule.html", gin.H{"user": user, "courses": courses})
}

// Remove takes a course off the schedule, then shows the schedule.
func (h *ScheduleHandler) Remove(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	courseID, ok := parseID(c, "courseId")
	if !ok {
		return
	}
	if err := h.svc.Remove(c.Request.Context(), user.ID, courseID); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/schedule/show")
}
