package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betravel/errors"
)

func newGuestSessionRouter(captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/booking", GuestSessionMiddleware(), func(c *gin.Context) {
		*captured = GuestSessionID(c)
		c.Status(http.StatusOK)
	})
	return router
}

func TestGuestSessionMiddlewareIssuesNewID(t *testing.T) {
	var captured string
	router := newGuestSessionRouter(&captured)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", nil)
	router.ServeHTTP(w, req)

	require.NotEmpty(t, captured)
	assert.Equal(t, captured, w.Header().Get("X-Session-ID"))
}

func TestGuestSessionMiddlewareKeepsExistingID(t *testing.T) {
	var captured string
	router := newGuestSessionRouter(&captured)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", nil)
	req.Header.Set("X-Session-ID", "khach-abc-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "khach-abc-123", captured)
	assert.Equal(t, "khach-abc-123", w.Header().Get("X-Session-ID"))
}

func TestGuestSessionIDWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, "", GuestSessionID(c))
}

func TestErrorHandlerMapsAppError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/loi", func(c *gin.Context) {
		_ = c.Error(errors.NewAppError(errors.ErrCodeTripNotFound, "Chuyến đi không tồn tại", nil))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/loi", nil))

	assert.Contains(t, w.Body.String(), "Chuyến đi không tồn tại")
}
