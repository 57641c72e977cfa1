//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-frontdesk/internal/handler/api"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/pkg/civil"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/tests/common/builder"
	"hotel-frontdesk/tests/common/httptest"
	queriesmock "hotel-frontdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FrontDeskHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockFrontDesk *queriesmock.MockFrontDeskQueries
	handler       *api.FrontDeskHandler
}

func (s *FrontDeskHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockFrontDesk = queriesmock.NewMockFrontDeskQueries(s.mockCtrl)
	s.handler = api.NewFrontDeskHandler(s.mockFrontDesk)

	s.router.GET("/frontdesk/arrivals", s.handler.Arrivals)
	s.router.GET("/frontdesk/in-house", s.handler.InHouse)
	s.router.GET("/frontdesk/departures", s.handler.Departures)
}

func (s *FrontDeskHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFrontDeskHandlerSuite(t *testing.T) {
	suite.Run(t, new(FrontDeskHandlerTestSuite))
}

func (s *FrontDeskHandlerTestSuite) TestBoard() {
	date := civil.NewDate(2026, time.September, 10)
	views := []*queries.ReservationView{builder.NewReservationBuilder().BuildView()}

	testCases := []struct {
		name   string
		path   string
		expect func() *gomock.Call
	}{
		{"arrivals", "/frontdesk/arrivals", func() *gomock.Call {
			return s.mockFrontDesk.EXPECT().ArrivingOn(gomock.Any(), date).Return(views, nil)
		}},
		{"in-house", "/frontdesk/in-house", func() *gomock.Call {
			return s.mockFrontDesk.EXPECT().InHouseOn(gomock.Any(), date).Return(views, nil)
		}},
		{"departures", "/frontdesk/departures", func() *gomock.Call {
			return s.mockFrontDesk.EXPECT().DepartingOn(gomock.Any(), date).Return(views, nil)
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.expect()

			w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.path+"?date=2026-09-10", nil, "")

			var resp []*resdto.ReservationResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
			s.Len(resp, 1)
		})
	}
}

func (s *FrontDeskHandlerTestSuite) TestBoard_BadDate() {
	for _, path := range []string{"/frontdesk/arrivals", "/frontdesk/in-house", "/frontdesk/departures"} {
		s.Run(path, func() {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		})
	}
}
