package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/auth"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/dto"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/service"
)

// TodoHandler handles the to-do list pages. Every route here sits
// behind RequireLogin, so CurrentUser is always set.
type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// List renders the caller's to-do list.
func (h *TodoHandler) List(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	items, err := h.svc.List(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "todo.html", gin.H{"user": user, "items": items})
}

// Add inserts an item and goes back to the list.
func (h *TodoHandler) Add(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	var form dto.TodoForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, err)
		return
	}
	if _, err := h.svc.Add(c.Request.Context(), user.ID, form.Title, form.Description); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/todo")
}

// Delete removes the caller's item by id.
func (h *TodoHandler) Delete(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), user.ID, itemID); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/todo")
}

// Completed sets the completed flag from the :value path segment.
func (h *TodoHandler) Completed(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}
	completed := c.Param("value") == "true"
	if err := h.svc.SetCompleted(c.Request.Context(), user.ID, itemID, completed); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/todo")
}
