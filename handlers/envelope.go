package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 50
	MaxLimit     = 1000
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data"`
	Error     string      `json:"error,omitempty"`
	TotalRows *int        `json:"totalRows,omitempty"`
	Details   string      `json:"details,omitempty"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

func respondRows(c *gin.Context, data interface{}, totalRows int) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, TotalRows: &totalRows})
}

func respondError(c *gin.Context, status int, msg string, details string) {
	c.JSON(status, APIResponse{Success: false, Data: []interface{}{}, Error: msg, Details: details})
}

// parseLimit reads ?limit= with bounds; zero or garbage falls back to the
// default.
func parseLimit(c *gin.Context) int {
	limit := DefaultLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return limit
}
