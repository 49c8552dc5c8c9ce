package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"fieldscore/models"
)

func domainErrorStatus(err error) int {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	DomainError(c, err)
	return w.Code
}

func TestDomainErrorStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, domainErrorStatus(models.ErrParticipantNotFound))

	// Everything else is a rejected request, not a missing resource.
	assert.Equal(t, http.StatusBadRequest, domainErrorStatus(models.ErrImmutableField))
	assert.Equal(t, http.StatusBadRequest, domainErrorStatus(models.ErrScoringLocked))
	assert.Equal(t, http.StatusBadRequest, domainErrorStatus(models.ErrRoundNotActive))
	assert.Equal(t, http.StatusBadRequest, domainErrorStatus(models.ErrScorerProtected))
}

func TestDomainErrorBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	DomainError(c, models.ErrImmutableField)

	assert.JSONEq(t, `{"error": "cannot change the scorer of a round"}`, w.Body.String())
}
