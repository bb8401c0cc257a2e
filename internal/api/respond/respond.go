// Package respond translates the policy core's tagged errors into HTTP
// responses. It is the only place where that mapping happens; handlers
// return core errors as-is.
package respond

import (
	"errors"
	"net/http"

	"inkwell-app/internal/domain/access"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, access.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		// Invisible and absent must be indistinguishable. A broken
		// foreign key on insert means the referenced row is gone, which
		// is the same absence from the caller's point of view.
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, access.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, access.ErrWindowNotOpen):
		c.JSON(http.StatusForbidden, gin.H{"error": "Submissions are not open yet"})
	case errors.Is(err, access.ErrWindowClosed):
		c.JSON(http.StatusForbidden, gin.H{"error": "Submissions are closed"})
	case errors.Is(err, access.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflict"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
