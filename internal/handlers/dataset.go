package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/service"
)

// DatasetHandler exposes the administrative bulk-upsert routes.
type DatasetHandler struct {
	svc *service.DatasetService
}

func NewDatasetHandler(svc *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{svc: svc}
}

// UpsertColleges loads (or refreshes) the college collection from the
// static dataset and reports the resulting size.
func (h *DatasetHandler) UpsertColleges(c *gin.Context) {
	n, err := h.svc.UpsertColleges(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.String(http.StatusOK, "data uploaded: %d", n)
}

// UpsertCourses loads (or refreshes) the course collection from the
// static dataset and reports the resulting size.
func (h *DatasetHandler) UpsertCourses(c *gin.Context) {
	n, err := h.svc.UpsertCourses(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.String(http.StatusOK, "data uploaded: %d", n)
}
