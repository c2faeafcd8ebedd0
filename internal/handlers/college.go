package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/auth"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/dto"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/service"
)

// CollegeHandler handles college search, college detail and the
// caller's school list.
type CollegeHandler struct {
	svc *service.CollegeService
}

func NewCollegeHandler(svc *service.CollegeService) *CollegeHandler {
	return &CollegeHandler{svc: svc}
}

// ByName lists colleges whose name contains the given text.
func (h *CollegeHandler) ByName(c *gin.Context) {
	var form dto.CollegeNameForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, err)
		return
	}
	colleges, err := h.svc.ByName(c.Request.Context(), form.Name)
	if err != nil {
		fail(c, err)
		return
	}
	user, _ := auth.CurrentUser(c)
	c.HTML(http.StatusOK, "collegelist.html", gin.H{"user": user, "colleges": colleges})
}

// Show returns one college as a raw JSON payload rather than a page.
func (h *CollegeHandler) Show(c *gin.Context) {
	collegeID, ok := parseID(c, "collegeId")
	if !ok {
		return
	}
	college, err := h.svc.Show(c.Request.Context(), collegeID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, college)
}

// AddToList puts a college on the caller's school list; already-listed
// colleges are left alone.
func (h *CollegeHandler) AddToList(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	collegeID, ok := parseID(c, "collegeId")
	if !ok {
		return
	}
	if err := h.svc.AddToList(c.Request.Context(), user.ID, collegeID); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/schoolList/show")
}

// ShowList renders the caller's school list.
func (h *CollegeHandler) ShowList(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	colleges, err := h.svc.ShowList(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "schoollist.html", gin.H{"user": user, "colleges": colleges})
}

// RemoveFromList takes a college off the caller's school list.
func (h *CollegeHandler) RemoveFromList(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	collegeID, ok := parseID(c, "collegeId")
	if !ok {
		return
	}
	if err := h.svc.RemoveFromList(c.Request.Context(), user.ID, collegeID); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/schoolList/show")
}
