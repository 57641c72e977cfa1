//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hotel-frontdesk/internal/domain/staff"
	"hotel-frontdesk/internal/handler/dto/request"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/pkg/cookie"
	"hotel-frontdesk/tests/common/dbtest"
	"hotel-frontdesk/tests/common/httptest"
	"hotel-frontdesk/tests/e2e"
	"hotel-frontdesk/tests/e2e/common/helper"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestStaff(s.T(), s.DB, "admin@example.com", string(staff.RoleAdmin))
	dbtest.CreateTestStaff(s.T(), s.DB, "desk@example.com", string(staff.RoleReceptionist))
	dbtest.CreateTestStaff(s.T(), s.DB, "inactive@example.com", string(staff.RoleViewer))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE staff SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "desk@example.com",
			password:       dbtest.TestStaffPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown account",
			email:          "nobody@example.com",
			password:       dbtest.TestStaffPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "desk@example.com",
			password:       "letmein",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive account",
			email:          "inactive@example.com",
			password:       dbtest.TestStaffPassword,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty email",
			email:          "",
			password:       dbtest.TestStaffPassword,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password",
			email:          "desk@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
				require.NotNil(t, access)
				require.NotEmpty(t, access.Value)
				require.True(t, access.HttpOnly)

				refresh := httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
				require.NotNil(t, refresh)
				require.NotEmpty(t, refresh.Value)

				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM staff WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login was not updated")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("valid refresh token rotates the pair", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "desk@example.com", Password: dbtest.TestStaffPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)
		refresh := httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
		require.NotNil(t, refresh)

		w2 := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil,
			[]*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: refresh.Value}}, "")
		require.Equal(t, http.StatusOK, w2.Code, w2.Body.String())

		rotated := httptest.ExtractCookie(w2, cookie.AccessTokenCookieName)
		require.NotNil(t, rotated)
		require.NotEmpty(t, rotated.Value)
	})

	s.Run("missing refresh token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("garbage refresh token", func() {
		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, refreshURL, nil,
			[]*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "not-a-jwt"}}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("authenticated staff sees their own profile", func() {
		t := s.T()
		token := helper.LoginStaff(t, s.Router, "admin@example.com", dbtest.TestStaffPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me resdto.StaffResponse
		httptest.DecodeResponseBody(t, w.Body, &me)
		require.Equal(t, "admin@example.com", me.Email)
		require.Equal(t, string(staff.RoleAdmin), me.Role)
	})

	s.Run("no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("logout clears both cookies", func() {
		t := s.T()
		token := helper.LoginStaff(t, s.Router, "desk@example.com", dbtest.TestStaffPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		for _, name := range []string{cookie.AccessTokenCookieName, cookie.RefreshTokenCookieName} {
			cleared := httptest.ExtractCookie(w, name)
			require.NotNil(t, cleared)
			require.Empty(t, cleared.Value)
			require.Negative(t, cleared.MaxAge)
		}
	})
}
