package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/service"
)

// httpError carries an HTTP status alongside the message. Everything
// else defaults to 500 at the terminal renderer.
type httpError struct {
	status int
	msg    string
}

func (e *httpError) Error() string { return e.msg }

// fail is the single terminal error boundary: it renders the generic
// error view with the status taken from the error (default 500).
// Handlers forward failures here unchanged; there are no retries and no
// partial-failure compensation.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, service.ErrNotFound) {
		status = http.StatusNotFound
	}
	var he *httpError
	if errors.As(err, &he) {
		status = he.status
	}
	c.HTML(status, "error.html", gin.H{
		"status":  status,
		"message": err.Error(),
	})
	c.Abort()
}

// NotFound converts an unmatched route into a 404 through the terminal
// error renderer.
func NotFound(c *gin.Context) {
	fail(c, &httpError{status: http.StatusNotFound, msg: "page not found"})
}

// parseID extracts a positive integer path parameter. A malformed id is
// reported through the terminal renderer as a 404: from the browser's
// point of view a garbage id names nothing.
func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		fail(c, &httpError{status: http.StatusNotFound, msg: "invalid " + name})
		return 0, false
	}
	return id, true
}
