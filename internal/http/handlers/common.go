package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError binds and validates the request body, answering 400 on
// failure so callers can just return.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request == nil || c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "bad_request", "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid payload", err.Error())
		return false
	}
	return true
}
