package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/errors"
)

// ParseUintParam parses a positive integer path parameter. A non-numeric or
// zero value is a validation error, not a not-found.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("Invalid %s: %q", name, raw))
	}
	return uint(id), nil
}
