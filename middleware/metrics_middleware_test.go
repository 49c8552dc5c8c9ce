package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPathLabelUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var label string
	r := gin.New()
	r.GET("/rounds/:id/scores", func(c *gin.Context) {
		label = pathLabel(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rounds/0d1f6a2e/scores", nil)
	r.ServeHTTP(w, req)

	// Two rounds must land in the same time series.
	assert.Equal(t, "/rounds/:id/scores", label)
}

func TestPathLabelOnUnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var label string
	r := gin.New()
	r.NoRoute(func(c *gin.Context) {
		label = pathLabel(c)
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, "unmatched", label)
}
