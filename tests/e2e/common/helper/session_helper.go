//go:build e2e

package helper

import (
	"net/http"
	"testing"

	"hotel-frontdesk/internal/handler/dto/request"
	"hotel-frontdesk/internal/pkg/cookie"
	"hotel-frontdesk/tests/common/dbtest"
	"hotel-frontdesk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// LoginStaff logs in through the real endpoint and returns the access
// token issued in the cookie, usable as a Bearer token on later requests.
func LoginStaff(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, access, "login did not set an access token cookie")
	require.NotEmpty(t, access.Value)

	return access.Value
}

// CreateStaffAndLogin provisions a staff account and returns its id and a
// valid access token.
func CreateStaffAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) (uuid.UUID, string) {
	t.Helper()

	staffID := dbtest.CreateTestStaff(t, db, email, role)
	token := LoginStaff(t, router, email, dbtest.TestStaffPassword)
	return staffID, token
}
