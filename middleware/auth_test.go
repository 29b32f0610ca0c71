package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gbotemi-ojo/quick-medics-management/auth"
)

type fakeSession struct{ present bool }

func (s fakeSession) Present() bool { return s.present }

func testRouter(secret string, session SessionPresence) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", ValidateSession(secret, session), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("staff_email")})
	})
	return r
}

func TestValidateSessionAllowsValidToken(t *testing.T) {
	const secret = "test-secret"
	token, err := auth.IssueStaffToken(secret, "staff@quickmedics.ng")
	require.NoError(t, err)

	r := testRouter(secret, fakeSession{present: true})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "staff@quickmedics.ng")
}

func TestValidateSessionRejectsMissingHeader(t *testing.T) {
	r := testRouter("test-secret", fakeSession{present: true})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateSessionRejectsBadToken(t *testing.T) {
	r := testRouter("test-secret", fakeSession{present: true})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateSessionRejectsClearedSession(t *testing.T) {
	const secret = "test-secret"
	token, err := auth.IssueStaffToken(secret, "staff@quickmedics.ng")
	require.NoError(t, err)

	// The JWT is still within its lifetime, but the backend session was
	// wiped by a 401; the gate must force a fresh login.
	r := testRouter(secret, fakeSession{present: false})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
