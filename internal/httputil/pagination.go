package httputil

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParsePage parses the 1-based page query parameter.
// Missing, malformed or non-positive values fall back to page 1; an
// out-of-range page is not an error, it just resolves to an empty list.
func ParsePage(c *gin.Context) int {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
