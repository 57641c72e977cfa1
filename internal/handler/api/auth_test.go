//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-frontdesk/internal/handler/api"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/pkg/cookie"
	"hotel-frontdesk/internal/pkg/jwt"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/tests/common/builder"
	"hotel-frontdesk/tests/common/httptest"
	commandsmock "hotel-frontdesk/tests/mock/commands"
	queriesmock "hotel-frontdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockAuth  *commandsmock.MockAuthCommands
	mockStaff *queriesmock.MockStaffQueries
	handler   *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockStaff = queriesmock.NewMockStaffQueries(s.mockCtrl)

	cfg := config.NewTestConfig()
	tokens := jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration)
	s.handler = api.NewAuthHandler(s.mockAuth, s.mockStaff, tokens, cfg.Cookie)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", s.handler.Me)

	// Authenticated variant of /auth/me without running the real middleware.
	s.router.GET("/auth/me-as/:id", func(c *gin.Context) {
		c.Set("staff_id", uuid.MustParse(c.Param("id")))
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin_Success() {
	b := builder.NewStaffBuilder()
	pair := &commands.TokenPair{AccessToken: "access-jwt", RefreshToken: "refresh-jwt"}

	s.mockAuth.EXPECT().Login(gomock.Any(), b.Email, b.Password).Return(pair, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", b.BuildLoginRequestDTO(), "")

	var resp resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("logged in", resp.Message)

	access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	s.Require().NotNil(access)
	s.Equal("access-jwt", access.Value)
	s.True(access.HttpOnly)

	refresh := httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
	s.Require().NotNil(refresh)
	s.Equal("refresh-jwt", refresh.Value)
}

func (s *AuthHandlerTestSuite) TestLogin_Failures() {
	testCases := []struct {
		name       string
		err        error
		expectCode int
		expectBody string
	}{
		{"wrong credentials", commands.ErrAuthenticationFailed, http.StatusUnauthorized, "Invalid email or password"},
		{"inactive account", commands.ErrAccountInactive, http.StatusForbidden, "Account is inactive"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			b := builder.NewStaffBuilder()

			s.mockAuth.EXPECT().Login(gomock.Any(), b.Email, b.Password).Return(nil, tc.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", b.BuildLoginRequestDTO(), "")
			httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectBody)
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogin_MalformedBody() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login",
		map[string]string{"email": "not-an-email"}, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	s.Run("rotates the pair", func() {
		pair := &commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}

		s.mockAuth.EXPECT().Refresh(gomock.Any(), "old-refresh").Return(pair, nil)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "old-refresh"}}
		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, cookies, "")

		var resp resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("refreshed", resp.Message)

		refreshed := httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
		s.Require().NotNil(refreshed)
		s.Equal("new-refresh", refreshed.Value)
	})

	s.Run("missing cookie", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("rejected token", func() {
		s.mockAuth.EXPECT().Refresh(gomock.Any(), "stale").Return(nil, commands.ErrAuthenticationFailed)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "stale"}}
		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, cookies, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
	s.Equal(http.StatusNoContent, w.Code)

	// Both cookies are expired on the client.
	for _, name := range []string{cookie.AccessTokenCookieName, cookie.RefreshTokenCookieName} {
		cleared := httptest.ExtractCookie(w, name)
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
		s.Negative(cleared.MaxAge)
	}
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success", func() {
		b := builder.NewStaffBuilder()

		s.mockStaff.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me-as/"+b.ID.String(), nil, "")

		var resp resdto.StaffResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(b.Email, resp.Email)
		s.Equal(b.Role, resp.Role)
	})

	s.Run("unauthenticated", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Not authenticated")
	})

	s.Run("staff row gone", func() {
		id := uuid.New()

		s.mockStaff.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrStaffNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me-as/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Staff member not found")
	})
}
