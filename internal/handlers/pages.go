package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/auth"
)

// PageHandler renders the static pages.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Home(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	c.HTML(http.StatusOK, "index.html", gin.H{"user": user})
}

func (h *PageHandler) About(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	c.HTML(http.StatusOK, "about.html", gin.H{"user": user})
}

// CollegeSearchPage renders the college search form.
func (h *PageHandler) CollegeSearchPage(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	c.HTML(http.StatusOK, "collegelist.html", gin.H{"user": user, "colleges": nil})
}
