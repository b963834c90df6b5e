package response

import (
	"github.com/gin-gonic/gin"
	domainerrors "streaming-service.backend/internal/domain/errors"
	"streaming-service.backend/pkg/utils"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Paginated sends a list with pagination metadata
func Paginated(c *gin.Context, status int, items interface{}, meta utils.PaginationMeta) {
	c.JSON(status, gin.H{
		"items": items,
		"meta":  meta,
	})
}

// Error sends an error response. Domain errors are mapped to their HTTP status.
func Error(c *gin.Context, err error) {
	appErr := domainerrors.FromDomain(err)

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// ErrorWithError sends an error response with a specific status and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}
