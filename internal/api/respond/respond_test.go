package respond

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell-app/internal/domain/access"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TestError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", access.ErrNotFound, http.StatusNotFound},
		{"missing row", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"dangling reference", gorm.ErrForeignKeyViolated, http.StatusNotFound},
		{"forbidden", access.ErrForbidden, http.StatusForbidden},
		{"window not open", access.ErrWindowNotOpen, http.StatusForbidden},
		{"window closed", access.ErrWindowClosed, http.StatusForbidden},
		{"conflict", access.ErrConflict, http.StatusConflict},
		{"anything else", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			Error(c, tt.err)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
