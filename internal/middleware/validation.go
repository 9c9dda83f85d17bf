package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/devcamper/internal/pkg/validation"
)

// BindJSON decodes and validates the request body into obj. Every violated
// field is reported in the returned error.
func BindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return validation.FromBindError(err, obj)
	}
	return nil
}
