//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-frontdesk/internal/domain/guest"
	"hotel-frontdesk/internal/handler/api"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/tests/common/builder"
	"hotel-frontdesk/tests/common/httptest"
	"hotel-frontdesk/tests/common/testutil"
	commandsmock "hotel-frontdesk/tests/mock/commands"
	queriesmock "hotel-frontdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GuestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockGuestCommands
	mockQueries  *queriesmock.MockGuestQueries
	handler      *api.GuestHandler
}

func (s *GuestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockGuestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockGuestQueries(s.mockCtrl)
	s.handler = api.NewGuestHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/guests", s.handler.Register)
	s.router.GET("/guests", s.handler.Search)
	s.router.GET("/guests/:id", s.handler.Get)
	s.router.PUT("/guests/:id", s.handler.Update)
	s.router.DELETE("/guests/:id", s.handler.Delete)
}

func (s *GuestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGuestHandlerSuite(t *testing.T) {
	suite.Run(t, new(GuestHandlerTestSuite))
}

func (s *GuestHandlerTestSuite) TestRegister_Success() {
	b := builder.NewGuestBuilder()

	s.mockCommands.EXPECT().Register(gomock.Any(), b.BuildParams()).Return(b.ID, nil)
	s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildView(), nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/guests", b.BuildRequestDTO(), "")

	var resp resdto.GuestResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
	s.Equal(b.FirstName, resp.FirstName)
	s.Equal(b.LastName, resp.LastName)
	s.Equal(b.Gender, resp.Gender)
}

func (s *GuestHandlerTestSuite) TestRegister_ValidationErrors() {
	testCases := []struct {
		name string
		err  error
	}{
		{"empty first name", guest.ErrEmptyFirstName},
		{"invalid gender", guest.ErrInvalidGender},
		{"future birthdate", guest.ErrBirthdateInFuture},
		{"unknown nationality", guest.ErrUnknownNationality},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			b := builder.NewGuestBuilder()

			s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/guests", b.BuildRequestDTO(), "")
			httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "")
		})
	}
}

func (s *GuestHandlerTestSuite) TestRegister_MissingLastName() {
	reqBody := testutil.DtoMap(s.T(), builder.NewGuestBuilder().BuildRequestDTO(),
		testutil.Field("last_name", nil))

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/guests", reqBody, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
}

func (s *GuestHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		b := builder.NewGuestBuilder()

		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests/"+b.ID.String(), nil, "")

		var resp resdto.GuestResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(b.ID, resp.ID)
		s.Require().NotNil(resp.Birthdate)
		s.Equal("1990-12-10", resp.Birthdate.String())
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid guest ID format")
	})

	s.Run("not found", func() {
		id := uuid.New()

		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.ErrGuestNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Guest profile not found")
	})
}

func (s *GuestHandlerTestSuite) TestUpdate() {
	s.Run("success", func() {
		b := builder.NewGuestBuilder().With(func(b *builder.GuestBuilder) {
			b.Address = "4 Cavendish Square, London"
		})

		s.mockCommands.EXPECT().Update(gomock.Any(), b.ID, b.BuildParams()).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/guests/"+b.ID.String(), b.BuildRequestDTO(), "")

		var resp resdto.GuestResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Require().NotNil(resp.Address)
		s.Equal(b.Address, *resp.Address)
	})

	s.Run("not found", func() {
		b := builder.NewGuestBuilder()

		s.mockCommands.EXPECT().Update(gomock.Any(), b.ID, gomock.Any()).Return(errs.ErrGuestNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/guests/"+b.ID.String(), b.BuildRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Guest profile not found")
	})
}

func (s *GuestHandlerTestSuite) TestSearch() {
	s.Run("default limit", func() {
		b := builder.NewGuestBuilder()

		s.mockQueries.EXPECT().
			SearchByName(gomock.Any(), "Love", 50).
			Return([]*queries.GuestView{b.BuildView()}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests?name=Love", nil, "")

		var resp []*resdto.GuestResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("explicit limit", func() {
		s.mockQueries.EXPECT().
			SearchByName(gomock.Any(), "Love", 5).
			Return([]*queries.GuestView{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests?name=Love&limit=5", nil, "")
		s.Equal(http.StatusOK, w.Code)
	})
}

func (s *GuestHandlerTestSuite) TestDelete() {
	s.Run("success", func() {
		id := uuid.New()

		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/guests/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("not found", func() {
		id := uuid.New()

		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(errs.ErrGuestNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/guests/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Guest profile not found")
	})
}
